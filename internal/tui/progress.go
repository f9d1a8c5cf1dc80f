package tui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/roey132/n8n-one-click-setup/internal/logger"
	"github.com/roey132/n8n-one-click-setup/internal/n8nctl"
)

type stepStatus int

const (
	stepPending stepStatus = iota
	stepRunning
	stepDone
	stepFailed
)

type progressStep struct {
	label  string
	status stepStatus
	err    error
	run    func() error
}

type stepDoneMsg struct {
	index int
	err   error
}

type progressModel struct {
	state   *wizardState
	steps   []progressStep
	spinner spinner.Model
	prov    *n8nctl.Provisioner
	current int
	done    bool
	errMsg  string
}

func newProgressModel(state *wizardState) *progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &progressModel{
		state:   state,
		spinner: sp,
	}
}

func (m *progressModel) Init() tea.Cmd {
	m.current = 0
	m.done = false
	m.errMsg = ""
	m.prov = nil
	m.steps = []progressStep{
		{label: "Writing environment file", run: m.writeEnv},
	}
	m.steps[0].status = stepRunning

	return tea.Batch(m.spinner.Tick, m.runStep(0))
}

// writeEnv records the wizard answers in ./.env and builds the provisioner,
// appending the pipeline steps behind the first one.
func (m *progressModel) writeEnv() error {
	path, err := n8nctl.ApplyWizardEnv(m.state.domain, m.state.email, m.state.enableTLS)
	if err != nil {
		return err
	}
	prov, err := n8nctl.NewDefaultProvisioner(path, m.state.withRedis)
	if err != nil {
		return err
	}
	m.prov = prov
	for _, s := range prov.Steps() {
		m.steps = append(m.steps, progressStep{label: s.Label, run: s.Run})
	}
	return nil
}

func (m *progressModel) runStep(index int) tea.Cmd {
	return func() tea.Msg {
		_, err := captureOutput(m.steps[index].run)
		return stepDoneMsg{index: index, err: err}
	}
}

// captureOutput keeps external tool chatter and log lines off the
// alternate screen while a step runs.
func captureOutput(fn func() error) (string, error) {
	oldOut, oldErr := os.Stdout, os.Stderr
	r, w, _ := os.Pipe()
	os.Stdout, os.Stderr = w, w
	logger.SetOutput(w)

	// Drain concurrently: a chatty image pull can exceed the pipe buffer.
	var buf bytes.Buffer
	drained := make(chan struct{})
	go func() {
		io.Copy(&buf, r)
		close(drained)
	}()

	err := fn()
	w.Close()
	os.Stdout, os.Stderr = oldOut, oldErr
	logger.SetOutput(oldErr)
	<-drained
	return buf.String(), err
}

func (m *progressModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stepDoneMsg:
		m.steps[msg.index].status = stepDone
		if msg.err != nil {
			m.steps[msg.index].status = stepFailed
			m.steps[msg.index].err = msg.err
			m.errMsg = msg.err.Error()
			m.done = true
			return m, nil
		}

		next := msg.index + 1
		if next >= len(m.steps) {
			m.done = true
			return m, func() tea.Msg { return navigateMsg{to: screenComplete} }
		}
		m.current = next
		m.steps[next].status = stepRunning
		return m, m.runStep(next)

	case tea.KeyMsg:
		if m.done && m.errMsg != "" {
			if isEnter(msg) || isEsc(msg) {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Setting Up"))
	b.WriteString("\n\n")

	for _, step := range m.steps {
		var icon string
		switch step.status {
		case stepPending:
			icon = mutedStyle.Render("  ")
		case stepRunning:
			icon = m.spinner.View()
		case stepDone:
			icon = successStyle.Render("OK")
		case stepFailed:
			icon = errorStyle.Render("XX")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", icon, normalStyle.Render(step.label)))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  Error: " + m.errMsg))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("\n  press enter or esc to exit"))
	}

	return b.String()
}
