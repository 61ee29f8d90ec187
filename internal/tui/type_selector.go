package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/crxforge/crxforge/internal/compose"
	"github.com/crxforge/crxforge/internal/i18n"
)

// TypeOption represents an extension type option
type TypeOption struct {
	Type        compose.ExtensionType
	Label       string
	Description string
}

// TypeSelectorModel is the bubbletea model for extension type selection
type TypeSelectorModel struct {
	options   []TypeOption
	cursor    int
	selected  compose.ExtensionType
	quitting  bool
	confirmed bool
}

// Type selector styles
var (
	typeTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	typeOptionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	typeSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Bold(true).
				Padding(0, 1)

	typeDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginLeft(4)

	typeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	typeHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// NewTypeSelectorModel creates a new type selector model
func NewTypeSelectorModel() TypeSelectorModel {
	options := []TypeOption{
		{
			Type:        compose.TypePopup,
			Label:       i18n.T("type.popup.label", nil),
			Description: i18n.T("type.popup.desc", nil),
		},
		{
			Type:        compose.TypeContentScript,
			Label:       i18n.T("type.content.label", nil),
			Description: i18n.T("type.content.desc", nil),
		},
		{
			Type:        compose.TypeSidePanel,
			Label:       i18n.T("type.sidepanel.label", nil),
			Description: i18n.T("type.sidepanel.desc", nil),
		},
		{
			Type:        compose.TypePageAction,
			Label:       i18n.T("type.pageaction.label", nil),
			Description: i18n.T("type.pageaction.desc", nil),
		},
	}

	return TypeSelectorModel{
		options:  options,
		cursor:   0, // Default to popup
		selected: compose.TypePopup,
	}
}

func (m TypeSelectorModel) Init() tea.Cmd {
	return nil
}

func (m TypeSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
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
			m.selected = m.options[m.cursor].Type
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit

		case "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m TypeSelectorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(typeTitleStyle.Render(i18n.T("TypeSelectorTitle", nil)))
	b.WriteString("\n")

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

// RunTypeSelector launches the interactive extension type selector.
// Returns TypeNone when the user cancels.
func RunTypeSelector() (compose.ExtensionType, error) {
	p := tea.NewProgram(NewTypeSelectorModel())

	finalModel, err := p.Run()
	if err != nil {
		return compose.TypeNone, err
	}

	m := finalModel.(TypeSelectorModel)
	if !m.confirmed {
		return compose.TypeNone, nil
	}
	return m.selected, nil
}
