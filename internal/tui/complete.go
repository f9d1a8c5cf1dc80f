package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type completeModel struct {
	state  *wizardState
	cursor int
}

func newCompleteModel(state *wizardState) *completeModel {
	return &completeModel{state: state}
}

func (m *completeModel) Init() tea.Cmd {
	return nil
}

func (m *completeModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEnter(msg) || isEsc(msg) || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *completeModel) View() string {
	var b strings.Builder

	b.WriteString(successStyle.Render("  Setup Complete!"))
	b.WriteString("\n\n")

	scheme := "http"
	host := m.state.domain
	if m.state.enableTLS && m.state.domain != "" && m.state.email != "" {
		scheme = "https"
	}
	if host == "" {
		host = "<server-ip>"
	}

	b.WriteString(fmt.Sprintf("  URL:     %s\n", selectedStyle.Render(scheme+"://"+host+"/")))
	b.WriteString(fmt.Sprintf("  Redis:   %s\n", normalStyle.Render(yesNo(m.state.withRedis))))

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  Next Steps"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  $ n8nctl status   # check the stack"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  $ n8nctl doctor   # verify the host"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  $ n8nctl up       # re-apply after editing .env"))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("\n  press enter or q to exit"))
	return b.String()
}
