package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/orbix/internal/playground"
	"github.com/litescript/orbix/internal/scene"
)

// SliderWidth is the number of cells in a slider track.
const SliderWidth = 20

// slider is one flattened playground control.
type slider struct {
	section string
	control playground.Control
	limit   playground.Limit
}

// PlaygroundModel edits the live playground values.
type PlaygroundModel struct {
	width    int
	height   int
	composer *scene.Composer
	sliders  []slider
	cursor   int
	scrollY  int
	err      error
}

// NewPlaygroundModel creates the playground panel. It panics without a composer.
func NewPlaygroundModel(composer *scene.Composer) PlaygroundModel {
	if composer == nil {
		panic("ui: playground panel requires a composer")
	}
	var sliders []slider
	for _, sec := range playground.Sections() {
		for _, ctl := range sec.Controls {
			lim, _ := playground.LimitFor(ctl.Key)
			sliders = append(sliders, slider{section: sec.Title, control: ctl, limit: lim})
		}
	}
	return PlaygroundModel{composer: composer, sliders: sliders}
}

// SetSize updates the viewport size.
func (m PlaygroundModel) SetSize(width, height int) PlaygroundModel {
	m.width = width
	m.height = height
	return m
}

// Update handles input messages.
func (m PlaygroundModel) Update(msg tea.Msg) (PlaygroundModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.sliders)-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			m.cursor = len(m.sliders) - 1
		case "right", "l":
			m.nudge(1)
		case "left", "h":
			m.nudge(-1)
		case "shift+right", "L":
			m.nudge(10)
		case "shift+left", "H":
			m.nudge(-10)
		case "R":
			m.composer.ResetParameters()
			m.err = nil
		}
		m.keepCursorVisible()
	}
	return m, nil
}

// nudge moves the selected slider by n steps.
func (m *PlaygroundModel) nudge(n int) {
	if len(m.sliders) == 0 {
		return
	}
	s := m.sliders[m.cursor]
	cur := m.composer.Store().Get(s.control.Key)
	m.err = m.composer.UpdateParameter(s.control.Key, s.limit.Nudge(cur, n))
}

// visibleRows is the number of slider rows that fit.
func (m PlaygroundModel) visibleRows() int {
	rows := m.height - 4
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *PlaygroundModel) keepCursorVisible() {
	rows := m.visibleRows()
	if m.cursor < m.scrollY {
		m.scrollY = m.cursor
	}
	if m.cursor >= m.scrollY+rows {
		m.scrollY = m.cursor - rows + 1
	}
}

// Selected returns the key under the cursor.
func (m PlaygroundModel) Selected() playground.Key {
	if len(m.sliders) == 0 {
		return ""
	}
	return m.sliders[m.cursor].control.Key
}

// View renders the playground panel.
func (m PlaygroundModel) View() string {
	var b strings.Builder

	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(16)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(9).Align(lipgloss.Right)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	b.WriteString(titleStyle.Render("Playground"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.sliders))))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	}
	b.WriteString("\n")

	values := m.composer.Store().Snapshot()
	end := m.scrollY + m.visibleRows()
	if end > len(m.sliders) {
		end = len(m.sliders)
	}
	lastSection := ""
	if m.scrollY > 0 {
		lastSection = m.sliders[m.scrollY-1].section
	}
	for i := m.scrollY; i < end; i++ {
		s := m.sliders[i]
		if s.section != lastSection {
			b.WriteString(sectionStyle.Render(s.section))
			b.WriteString("\n")
			lastSection = s.section
		}

		v := values.Get(s.control.Key)
		line := "  " + labelStyle.Render(s.control.Label) +
			m.renderSlider(s.limit, v, SliderWidth) +
			valueStyle.Render(formatValue(v, s.limit.Decimals()))
		if i == m.cursor {
			line = selectedRowStyle.Render("▶" + line[1:])
		} else {
			line = rowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑↓: select | ←→: adjust | H/L: ×10 | R: reset all"))
	return b.String()
}

// renderSlider draws a track filled to v's position within the limit.
func (m PlaygroundModel) renderSlider(lim playground.Limit, v float64, width int) string {
	frac := 0.0
	if lim.Max > lim.Min {
		frac = (v - lim.Min) / (lim.Max - lim.Min)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(width) + 0.5)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func formatValue(v float64, decimals int) string {
	return fmt.Sprintf("%.*f", decimals, v)
}
