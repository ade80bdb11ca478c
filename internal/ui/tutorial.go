package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TutorialStep is one page of the guided tour.
type TutorialStep struct {
	Title string
	Body  string
}

// TutorialSteps is the guided tour, in order.
var TutorialSteps = []TutorialStep{
	{"Welcome to Orbix", "Explore a live model of the solar system right in your terminal."},
	{"Navigation", "Arrow keys swing the camera around, +/- zoom, and v switches between the 3D view and the map. Click a body to select it."},
	{"Body Information", "Press 3 to read facts and a distance chart for the selected body. Press g to fly anywhere."},
	{"Audio", "Press m to toggle the ambient drone. A chime plays when you select a body."},
	{"Playground", "Press 2 to reshape the system: orbit sizes, speeds, rotation, the sun and the time scale all update live."},
	{"Orbit Lines", "Press o to show or hide the orbit paths. Press p to pause time and a to reveal every body at once."},
	{"You're All Set", "Press ? any time to see this tour again. Have fun exploring!"},
}

// TutorialModel pages through TutorialSteps.
type TutorialModel struct {
	open bool
	step int
}

// NewTutorialModel creates a closed tutorial.
func NewTutorialModel() TutorialModel {
	return TutorialModel{}
}

// Open reports whether the tutorial is showing.
func (m TutorialModel) Open() bool { return m.open }

// Start opens the tutorial at the first step.
func (m TutorialModel) Start() TutorialModel {
	m.open = true
	m.step = 0
	return m
}

// Step returns the current step index.
func (m TutorialModel) Step() int { return m.step }

// Update handles input while the tutorial is open.
func (m TutorialModel) Update(msg tea.Msg) (TutorialModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.open {
		return m, nil
	}
	switch key.String() {
	case "right", "l", "enter", " ":
		if m.step < len(TutorialSteps)-1 {
			m.step++
		} else {
			m.open = false
		}
	case "left", "h":
		if m.step > 0 {
			m.step--
		}
	case "esc", "q":
		m.open = false
	}
	return m, nil
}

// View renders the current step.
func (m TutorialModel) View() string {
	s := TutorialSteps[m.step]
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bodyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(52)

	var dots strings.Builder
	for i := range TutorialSteps {
		if i == m.step {
			dots.WriteString("●")
		} else {
			dots.WriteString("○")
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(s.Title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(s.Body))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s  %d/%d", dots.String(), m.step+1, len(TutorialSteps))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("←/→: page | esc: close"))
	return overlayStyle.Render(b.String())
}
