package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/orbix/internal/camera"
	"github.com/litescript/orbix/internal/catalog"
)

// NavigateMsg asks the root model to fly to a target.
type NavigateMsg struct {
	Target string
}

// navItem is one menu entry.
type navItem struct {
	label  string
	target string
	color  string
}

type navSection struct {
	title string
	items []navItem
}

// NavModel is the navigation overlay: bodies plus a few special views,
// filtered by a typed search term.
type NavModel struct {
	open     bool
	sections []navSection
	section  int
	cursor   int
	query    string
}

// NewNavModel creates the navigation menu.
func NewNavModel() NavModel {
	var bodies []navItem
	for _, b := range catalog.All() {
		bodies = append(bodies, navItem{label: b.Name, target: b.Name, color: b.Color})
	}
	return NavModel{
		sections: []navSection{
			{title: "Bodies", items: bodies},
			{title: "Special Views", items: []navItem{
				{label: "Solar System Overview", target: camera.Overview, color: "#FFD700"},
				{label: "Sun Close-up", target: "Sun", color: "#FF6B35"},
				{label: "Earth & Moon", target: "Moon", color: "#4A99E9"},
			}},
		},
	}
}

// Open reports whether the menu is showing.
func (m NavModel) Open() bool { return m.open }

// Toggle shows or hides the menu, clearing the search.
func (m NavModel) Toggle() NavModel {
	m.open = !m.open
	m.query = ""
	m.cursor = 0
	return m
}

// filtered returns the active section's items matching the query.
func (m NavModel) filtered() []navItem {
	var out []navItem
	q := strings.ToLower(m.query)
	for _, it := range m.sections[m.section].items {
		if strings.Contains(strings.ToLower(it.label), q) {
			out = append(out, it)
		}
	}
	return out
}

// Update handles input while the menu is open.
func (m NavModel) Update(msg tea.Msg) (NavModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.open {
		return m, nil
	}

	items := m.filtered()
	switch key.Type {
	case tea.KeyEsc:
		m = m.Toggle()
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case tea.KeyTab:
		m.section = (m.section + 1) % len(m.sections)
		m.cursor = 0
	case tea.KeyBackspace:
		if m.query != "" {
			r := []rune(m.query)
			m.query = string(r[:len(r)-1])
			m.cursor = 0
		}
	case tea.KeyEnter:
		if m.cursor < len(items) {
			target := items[m.cursor].target
			m = m.Toggle()
			return m, func() tea.Msg { return NavigateMsg{Target: target} }
		}
	case tea.KeySpace:
		m.query += " "
		m.cursor = 0
	case tea.KeyRunes:
		m.query += string(key.Runes)
		m.cursor = 0
	}
	return m, nil
}

// View renders the menu.
func (m NavModel) View() string {
	var b strings.Builder
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	for i, s := range m.sections {
		if i == m.section {
			b.WriteString(titleStyle.Render("▶ " + s.title))
		} else {
			b.WriteString(dimStyle.Render("  " + s.title))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Search: %s▏", m.query)))
	b.WriteString("\n\n")

	items := m.filtered()
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("No matches"))
		b.WriteString("\n")
	}
	for i, it := range items {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(it.color)).Render("●")
		line := fmt.Sprintf(" %s %-22s", dot, it.label)
		if i == m.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("type to search | tab: section | enter: fly | esc: close"))
	return overlayStyle.Render(b.String())
}
