// Package logger provides the leveled logging used by every provisioning
// step. Output goes to stderr so that command output streamed to stdout by
// external tools stays separable.
package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func LevelFromString(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

type leveledLogger struct {
	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
}

var defaultLogger = newLeveled(os.Stderr, INFO)

func newLeveled(w io.Writer, level Level) *leveledLogger {
	l := &leveledLogger{
		debug: log.New(io.Discard, "DEBUG: ", log.LstdFlags),
		info:  log.New(io.Discard, "INFO: ", log.LstdFlags),
		warn:  log.New(io.Discard, "WARN: ", log.LstdFlags),
		err:   log.New(io.Discard, "ERROR: ", log.LstdFlags),
	}
	if level <= DEBUG {
		l.debug.SetOutput(w)
	}
	if level <= INFO {
		l.info.SetOutput(w)
	}
	if level <= WARN {
		l.warn.SetOutput(w)
	}
	if level <= ERROR {
		l.err.SetOutput(w)
	}
	return l
}

// Init reconfigures the package-level logger. Safe to call more than once;
// the last call wins.
func Init(level string) {
	defaultLogger = newLeveled(os.Stderr, LevelFromString(level))
}

// SetOutput redirects all levels to w. Used by the setup wizard to capture
// step output.
func SetOutput(w io.Writer) {
	for _, l := range []*log.Logger{defaultLogger.debug, defaultLogger.info, defaultLogger.warn, defaultLogger.err} {
		if l.Writer() != io.Discard {
			l.SetOutput(w)
		}
	}
}

func Debugf(format string, v ...interface{}) {
	defaultLogger.debug.Printf(format, v...)
}

func Infof(format string, v ...interface{}) {
	defaultLogger.info.Printf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	defaultLogger.warn.Printf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	defaultLogger.err.Printf(format, v...)
}
