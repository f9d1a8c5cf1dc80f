package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type option struct {
	label   string
	desc    string
	enabled *bool
}

type optionsModel struct {
	state   *wizardState
	cursor  int
	options []option
	warnMsg string
}

func newOptionsModel(state *wizardState) *optionsModel {
	return &optionsModel{
		state: state,
		options: []option{
			{
				label:   "Let's Encrypt TLS",
				desc:    "Obtain a certificate and redirect HTTP to HTTPS",
				enabled: &state.enableTLS,
			},
			{
				label:   "Redis queue backend",
				desc:    "Run n8n in queue mode backed by redis",
				enabled: &state.withRedis,
			},
		},
	}
}

func (m *optionsModel) Init() tea.Cmd {
	m.warnMsg = ""
	return nil
}

func (m *optionsModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenEmailInput} }
		}
		if isUp(msg) && m.cursor > 0 {
			m.cursor--
		}
		if isDown(msg) && m.cursor < len(m.options)-1 {
			m.cursor++
		}
		if isSpace(msg) {
			opt := m.options[m.cursor]
			*opt.enabled = !*opt.enabled
			m.refreshWarning()
		}
		if isEnter(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenConfirm} }
		}
	}
	return m, nil
}

func (m *optionsModel) refreshWarning() {
	m.warnMsg = ""
	if m.state.enableTLS && (m.state.domain == "" || m.state.email == "") {
		m.warnMsg = "TLS needs a domain and an email; it will be skipped as configured now."
	}
}

func (m *optionsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Options"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Toggle optional features for this deployment."))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		check := checkOff
		if *opt.enabled {
			check = checkOn
		}
		label := normalStyle.Render(opt.label)
		if i == m.cursor {
			label = selectedStyle.Render(opt.label)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", check, label))
		b.WriteString(fmt.Sprintf("      %s\n", mutedStyle.Render(opt.desc)))
	}

	if m.warnMsg != "" {
		b.WriteString("\n  " + warningStyle.Render(m.warnMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("\n  space: toggle  enter: continue  esc: back"))
	return b.String()
}
