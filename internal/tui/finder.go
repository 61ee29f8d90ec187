package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/crxforge/crxforge/internal/catalog"
	"github.com/crxforge/crxforge/internal/i18n"
	"github.com/sahilm/fuzzy"
)

// FeatureItem wraps a feature descriptor with its project state
type FeatureItem struct {
	Feature  catalog.Descriptor
	Applied  bool // already composed into the project
	Selected bool // user toggled selection
}

// Pending reports whether this feature will be added on confirm. Applied
// features cannot be unselected: composition never removes permissions.
func (f FeatureItem) Pending() bool {
	return !f.Applied && f.Selected
}

// FinderResult holds the result of TUI selection
type FinderResult struct {
	ToAdd     []string
	Cancelled bool
}

// ViewMode represents the current view mode
type ViewMode int

const (
	ModeList ViewMode = iota
	ModeConfirm
)

// FinderModel is the bubbletea model for the feature picker
type FinderModel struct {
	items         []FeatureItem
	filteredItems []FeatureItem
	cursor        int
	width         int
	height        int
	searchInput   textinput.Model
	mode          ViewMode
	quitting      bool
	confirmed     bool
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	appliedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 2).
			Align(lipgloss.Center)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// NewFinderModel creates a new feature picker model
func NewFinderModel(items []FeatureItem) FinderModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 50
	ti.Width = 30

	return FinderModel{
		items:         items,
		filteredItems: items,
		searchInput:   ti,
		mode:          ModeList,
	}
}

func (m FinderModel) Init() tea.Cmd {
	return nil
}

func (m FinderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m FinderModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeConfirm {
		return m.handleConfirmKey(msg)
	}

	return m.handleListKey(msg)
}

func (m FinderModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		// If search has text, clear it; otherwise quit
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.applyFilter()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down":
		if m.cursor < len(m.filteredItems)-1 {
			m.cursor++
		}

	case "tab":
		if len(m.filteredItems) > 0 {
			idx := m.findOriginalIndex(m.cursor)
			if idx >= 0 && !m.items[idx].Applied {
				m.items[idx].Selected = !m.items[idx].Selected
				m.applyFilter()
			}
		}

	case "enter":
		if m.hasChanges() {
			m.mode = ModeConfirm
		}

	case "backspace":
		// Handle backspace for search
		val := m.searchInput.Value()
		if len(val) > 0 {
			m.searchInput.SetValue(val[:len(val)-1])
			m.applyFilter()
		}

	default:
		// Any other printable character goes to search
		if len(msg.String()) == 1 && msg.String()[0] >= 32 && msg.String()[0] < 127 {
			m.searchInput.SetValue(m.searchInput.Value() + msg.String())
			m.applyFilter()
		}
	}

	return m, nil
}

func (m FinderModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirmed = true
		m.quitting = true
		return m, tea.Quit

	case "n", "N", "esc", "q":
		m.mode = ModeList
		return m, nil
	}
	return m, nil
}

func (m *FinderModel) applyFilter() {
	query := m.searchInput.Value()
	if query == "" {
		m.filteredItems = m.items
		if m.cursor >= len(m.filteredItems) {
			m.cursor = max(0, len(m.filteredItems)-1)
		}
		return
	}

	// Build searchable strings
	searchables := make([]string, len(m.items))
	for i, item := range m.items {
		d := item.Feature
		parts := []string{d.ID, d.Title}
		if d.Description != "" {
			parts = append(parts, d.Description)
		}
		parts = append(parts, d.Keywords...)
		parts = append(parts, d.Grants...)
		searchables[i] = strings.ToLower(strings.Join(parts, " "))
	}

	matches := fuzzy.Find(strings.ToLower(query), searchables)
	m.filteredItems = make([]FeatureItem, len(matches))
	for i, match := range matches {
		m.filteredItems[i] = m.items[match.Index]
	}

	if m.cursor >= len(m.filteredItems) {
		m.cursor = max(0, len(m.filteredItems)-1)
	}
}

func (m FinderModel) findOriginalIndex(filteredIdx int) int {
	if filteredIdx < 0 || filteredIdx >= len(m.filteredItems) {
		return -1
	}
	target := m.filteredItems[filteredIdx]
	for i, item := range m.items {
		if item.Feature.ID == target.Feature.ID {
			return i
		}
	}
	return -1
}

func (m FinderModel) hasChanges() bool {
	for _, item := range m.items {
		if item.Pending() {
			return true
		}
	}
	return false
}

func (m FinderModel) pending() []FeatureItem {
	var out []FeatureItem
	for _, item := range m.items {
		if item.Pending() {
			out = append(out, item)
		}
	}
	return out
}

func (m FinderModel) View() string {
	if m.quitting && !m.confirmed {
		return ""
	}

	if m.mode == ModeConfirm {
		return m.renderConfirmModal()
	}

	return m.renderListView()
}

func (m FinderModel) renderListView() string {
	var b strings.Builder

	// Header
	header := titleStyle.Render(i18n.T("TUIHeader", map[string]any{"Count": len(m.items)}))
	b.WriteString(header)
	b.WriteString("\n\n")

	// Calculate layout
	listWidth := 40
	previewWidth := max(30, m.width-listWidth-6)
	listHeight := max(5, m.height-8)

	// Build list
	var listLines []string
	for i, item := range m.filteredItems {
		line := m.renderItem(i, item)
		listLines = append(listLines, line)
	}

	// Paginate if needed
	start := 0
	if m.cursor >= listHeight {
		start = m.cursor - listHeight + 1
	}
	end := min(start+listHeight, len(listLines))

	visibleList := strings.Join(listLines[start:end], "\n")

	// Build preview
	preview := m.renderPreview(previewWidth)

	// Combine list and preview horizontally
	listBox := lipgloss.NewStyle().Width(listWidth).Render(visibleList)
	previewBox := previewStyle.Width(previewWidth).Height(listHeight).Render(preview)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listBox, "  ", previewBox)
	b.WriteString(content)
	b.WriteString("\n\n")

	// Search bar (always visible)
	searchQuery := m.searchInput.Value()
	if searchQuery != "" {
		b.WriteString("> " + searchQuery + "_")
	} else {
		b.WriteString(helpStyle.Render("> type to filter..."))
	}
	b.WriteString("\n")

	// Help
	help := helpStyle.Render("↑/↓: move | Tab: toggle | Enter: confirm | Esc: clear/quit")
	b.WriteString(help)

	return b.String()
}

func (m FinderModel) renderItem(idx int, item FeatureItem) string {
	cursor := "  "
	if idx == m.cursor {
		cursor = "> "
	}

	var checkbox string
	var style lipgloss.Style

	switch {
	case item.Applied:
		checkbox = "[*]"
		style = appliedStyle
	case item.Selected:
		checkbox = "[+]"
		style = pendingStyle
	default:
		checkbox = "[ ]"
		style = normalStyle
	}

	text := fmt.Sprintf("%s%s %s", cursor, checkbox, item.Feature.ID)
	if item.Feature.Catalog != "" {
		text += "@" + item.Feature.Catalog
	}

	if idx == m.cursor {
		return selectedStyle.Render(text)
	}
	return style.Render(text)
}

func (m FinderModel) renderPreview(width int) string {
	if len(m.filteredItems) == 0 || m.cursor >= len(m.filteredItems) {
		return i18n.T("TUIPreviewEmpty", nil)
	}

	item := m.filteredItems[m.cursor]
	d := item.Feature

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Feature: %s\n", d.ID))
	b.WriteString(fmt.Sprintf("Title: %s\n", d.Title))

	if item.Applied {
		b.WriteString(appliedStyle.Render("Status: Applied") + "\n")
	}

	b.WriteString("\n")

	if d.Description != "" {
		b.WriteString(fmt.Sprintf("Description:\n  %s\n\n", d.Description))
	}

	if len(d.Grants) > 0 {
		b.WriteString(fmt.Sprintf("Permissions: %s\n", strings.Join(d.Grants, ", ")))
	}

	if d.RequiresBackground {
		b.WriteString("Needs a background service worker\n")
	}

	if d.TargetFile != "" {
		b.WriteString(fmt.Sprintf("Injects into: %s\n", d.TargetFile))
	}

	if d.Catalog != "" {
		b.WriteString(fmt.Sprintf("Catalog: %s\n", d.Catalog))
	}

	return b.String()
}

func (m FinderModel) renderConfirmModal() string {
	pending := m.pending()

	var b strings.Builder

	b.WriteString(i18n.T("ConfirmTitle", nil))
	b.WriteString("\n\n")

	b.WriteString(pendingStyle.Render(i18n.T("ToAdd", map[string]any{"Count": len(pending)}, len(pending))))
	b.WriteString("\n")
	for _, item := range pending {
		b.WriteString(fmt.Sprintf("  + %s (%s)\n", item.Feature.ID, item.Feature.Title))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("[y] " + i18n.T("Confirm", nil) + "  [n] " + i18n.T("Cancel", nil)))

	return modalStyle.Render(b.String())
}

// RunFeatureFinder launches the interactive picker over the catalog.
// applied holds ids already composed into the project; they render as
// locked entries.
func RunFeatureFinder(reg *catalog.Registry, applied map[string]bool) (*FinderResult, error) {
	var items []FeatureItem
	for _, d := range reg.All() {
		items = append(items, FeatureItem{
			Feature:  d,
			Applied:  applied[d.ID],
			Selected: applied[d.ID],
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%s", i18n.T("NoFeaturesAvailable", nil))
	}

	model := NewFinderModel(items)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(FinderModel)

	if !m.confirmed {
		return &FinderResult{Cancelled: true}, nil
	}

	var toAdd []string
	for _, item := range m.pending() {
		toAdd = append(toAdd, item.Feature.ID)
	}
	return &FinderResult{ToAdd: toAdd, Cancelled: false}, nil
}
