package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WelcomeDismissedMsg reports the welcome screen closing.
type WelcomeDismissedMsg struct {
	StartTutorial bool
}

// WelcomeModel is the first-run screen.
type WelcomeModel struct {
	open bool
}

// NewWelcomeModel creates the welcome screen, shown unless the user has visited before.
func NewWelcomeModel(visited bool) WelcomeModel {
	return WelcomeModel{open: !visited}
}

// Open reports whether the welcome screen is showing.
func (m WelcomeModel) Open() bool { return m.open }

// Update handles input while the screen is showing.
func (m WelcomeModel) Update(msg tea.Msg) (WelcomeModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.open {
		return m, nil
	}
	switch key.String() {
	case "enter", " ", "esc":
		m.open = false
		return m, func() tea.Msg { return WelcomeDismissedMsg{} }
	case "?", "t":
		m.open = false
		return m, func() tea.Msg { return WelcomeDismissedMsg{StartTutorial: true} }
	}
	return m, nil
}

// View renders the welcome screen.
func (m WelcomeModel) View() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#67E8F9"))

	features := []struct{ title, text string }{
		{"Explore", "Fly between the Sun, eight planets and the Moon."},
		{"Learn", "Facts, figures and side-by-side comparisons."},
		{"Play", "Bend orbits, sizes and time itself."},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to Orbix"))
	b.WriteString("\n")
	b.WriteString(textStyle.Render("Your journey through the solar system"))
	b.WriteString("\n\n")
	for _, f := range features {
		b.WriteString(headerStyle.Render(f.title))
		b.WriteString(" ")
		b.WriteString(rowStyle.Render(f.text))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Arrows to look around • +/- to zoom • click bodies for details"))
	b.WriteString("\n\n")
	b.WriteString(selectedRowStyle.Render(" enter: start exploring "))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("?: take the tour"))
	return overlayStyle.Render(b.String())
}
