package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type helpReturnMsg struct{}

type helpModel struct{}

func newHelpModel() *helpModel {
	return &helpModel{}
}

func (m *helpModel) Init() tea.Cmd {
	return nil
}

func (m *helpModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) || msg.String() == "?" || isEnter(msg) || msg.String() == "q" {
			return m, func() tea.Msg { return helpReturnMsg{} }
		}
	}
	return m, nil
}

func (m *helpModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title string
		keys  []struct{ key, desc string }
	}{
		{
			title: "Global",
			keys: []struct{ key, desc string }{
				{"ctrl+c", "Quit immediately"},
				{"?", "Toggle this help screen"},
			},
		},
		{
			title: "Navigation",
			keys: []struct{ key, desc string }{
				{"up / k", "Move up"},
				{"down / j", "Move down"},
				{"left / h", "Previous option"},
				{"right / l", "Next option"},
				{"enter", "Confirm / select"},
				{"esc", "Go back / cancel"},
			},
		},
		{
			title: "Options",
			keys: []struct{ key, desc string }{
				{"space", "Toggle TLS / redis"},
				{"enter", "Continue to confirmation"},
			},
		},
	}

	for _, section := range sections {
		b.WriteString(subtitleStyle.Render("  " + section.title))
		b.WriteString("\n")
		for _, k := range section.keys {
			b.WriteString(selectedStyle.Render("    "+k.key) + "  " + mutedStyle.Render(k.desc))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("\n  press ?, esc, or enter to close"))
	return b.String()
}
