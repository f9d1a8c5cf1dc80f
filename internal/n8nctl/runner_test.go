package n8nctl

import (
	"fmt"
	"strings"
)

// fakeRunner records every command line and lets tests script failures,
// outputs, and missing binaries.
type fakeRunner struct {
	cmds    []string
	fail    map[string]error
	outputs map[string]string
	missing map[string]bool
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		fail:    map[string]error{},
		outputs: map[string]string{},
		missing: map[string]bool{},
	}
}

func (f *fakeRunner) record(name string, args []string) string {
	line := strings.Join(append([]string{name}, args...), " ")
	f.cmds = append(f.cmds, line)
	return line
}

func (f *fakeRunner) errFor(line string) error {
	for prefix, err := range f.fail {
		if strings.HasPrefix(line, prefix) {
			return err
		}
	}
	return nil
}

func (f *fakeRunner) Run(name string, args ...string) error {
	return f.errFor(f.record(name, args))
}

func (f *fakeRunner) Output(name string, args ...string) (string, error) {
	line := f.record(name, args)
	out := ""
	for prefix, o := range f.outputs {
		if strings.HasPrefix(line, prefix) {
			out = o
			break
		}
	}
	return out, f.errFor(line)
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) ran(prefix string) bool {
	return f.indexOf(prefix) >= 0
}

func (f *fakeRunner) indexOf(prefix string) int {
	for i, line := range f.cmds {
		if strings.HasPrefix(line, prefix) {
			return i
		}
	}
	return -1
}
