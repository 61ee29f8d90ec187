package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/crxforge/crxforge/internal/i18n"
)

// ConfirmOption represents a yes/no option
type ConfirmOption struct {
	Value       bool
	Label       string
	Description string
}

// ConfirmModel is the bubbletea model for destructive-action confirmation
type ConfirmModel struct {
	title     string
	options   []ConfirmOption
	cursor    int
	selected  bool
	quitting  bool
	confirmed bool
}

var confirmWarnStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true)

// NewConfirmModel creates a confirmation model with the given title
func NewConfirmModel(title string) ConfirmModel {
	options := []ConfirmOption{
		{
			Value:       false,
			Label:       i18n.T("confirm.option.no", nil),
			Description: i18n.T("confirm.option.no.desc", nil),
		},
		{
			Value:       true,
			Label:       i18n.T("confirm.option.yes", nil),
			Description: i18n.T("confirm.option.yes.desc", nil),
		},
	}

	return ConfirmModel{
		title:    title,
		options:  options,
		cursor:   0, // Default to no
		selected: false,
	}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.selected = false
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}

		case "enter", " ":
			m.selected = m.options[m.cursor].Value
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m ConfirmModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(confirmWarnStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(typeSelectedStyle.Render(fmt.Sprintf("> %s", opt.Label)))
		} else {
			b.WriteString(typeOptionStyle.Render(fmt.Sprintf("  %s", opt.Label)))
		}
		b.WriteString("\n")
		b.WriteString(typeDescStyle.Render(opt.Description))
		b.WriteString("\n")
	}

	b.WriteString(typeHelpStyle.Render("↑/↓: move | Enter: select | Esc: cancel"))

	return typeBoxStyle.Render(b.String())
}

// RunFrameworkConfirm asks before a framework replaces the popup entry
// files. Returns false unless the user explicitly picks yes.
func RunFrameworkConfirm(framework string) (bool, error) {
	title := i18n.T("FrameworkOverwriteWarning", map[string]any{"Framework": framework})
	p := tea.NewProgram(NewConfirmModel(title))

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m := finalModel.(ConfirmModel)
	return m.confirmed && m.selected, nil
}
