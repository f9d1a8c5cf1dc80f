package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	state  *wizardState
	cursor int
}

func newConfirmModel(state *wizardState) *confirmModel {
	return &confirmModel{state: state}
}

func (m *confirmModel) Init() tea.Cmd {
	m.cursor = 0
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenOptions} }
		}
		if (isLeft(msg) || isUp(msg)) && m.cursor > 0 {
			m.cursor--
		}
		if (isRight(msg) || isDown(msg)) && m.cursor < 2 {
			m.cursor++
		}
		if isEnter(msg) {
			switch m.cursor {
			case 0:
				return m, func() tea.Msg { return navigateMsg{to: screenPreflight} }
			case 1:
				return m, func() tea.Msg { return navigateMsg{to: screenOptions} }
			case 2:
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func (m *confirmModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Confirm Setup"))
	b.WriteString("\n\n")

	domain := m.state.domain
	if domain == "" {
		domain = "(none, serve by IP)"
	}
	email := m.state.email
	if email == "" {
		email = "(none)"
	}

	b.WriteString(subtitleStyle.Render("  Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Domain:  %s\n", selectedStyle.Render(domain)))
	b.WriteString(fmt.Sprintf("  Email:   %s\n", selectedStyle.Render(email)))
	b.WriteString(fmt.Sprintf("  TLS:     %s\n", selectedStyle.Render(yesNo(m.state.enableTLS))))
	b.WriteString(fmt.Sprintf("  Redis:   %s\n", selectedStyle.Render(yesNo(m.state.withRedis))))

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  Equivalent CLI Command"))
	b.WriteString("\n")
	cli := "  $ n8nctl up"
	if m.state.withRedis {
		cli += " --redis"
	}
	b.WriteString(mutedStyle.Render(cli))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  (with DOMAIN_NAME, SSL_EMAIL, ENABLE_TLS written to ./.env)"))
	b.WriteString("\n\n")

	buttons := []string{"Confirm", "Back", "Cancel"}
	for i, btn := range buttons {
		if i == m.cursor {
			b.WriteString("  " + borderStyle.Render(selectedStyle.Render(btn)))
		} else {
			b.WriteString("  " + normalStyle.Render("["+btn+"]"))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("\n  left/right: navigate  enter: select  esc: back"))
	return b.String()
}
