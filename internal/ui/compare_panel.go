package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/orbix/internal/catalog"
)

// compareBarWidth is the width of the per-metric bar chart.
const compareBarWidth = 24

// CompareModel puts up to catalog.MaxCompared bodies side by side.
type CompareModel struct {
	width    int
	height   int
	bodies   []catalog.Body
	cursor   int
	selected []string
	metric   int
	notice   string
}

// NewCompareModel creates the comparison panel.
func NewCompareModel() CompareModel {
	return CompareModel{bodies: catalog.All()}
}

// SetSize updates the viewport size.
func (m CompareModel) SetSize(width, height int) CompareModel {
	m.width = width
	m.height = height
	return m
}

// Update handles input messages.
func (m CompareModel) Update(msg tea.Msg) (CompareModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.bodies)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.toggle(m.bodies[m.cursor].Name)
		case "right", "l":
			m.metric = (m.metric + 1) % len(catalog.Metrics())
		case "left", "h":
			m.metric = (m.metric + len(catalog.Metrics()) - 1) % len(catalog.Metrics())
		case "x":
			m.selected = nil
			m.notice = ""
		}
	}
	return m, nil
}

// toggle adds or removes a body from the comparison.
func (m *CompareModel) toggle(name string) {
	m.notice = ""
	for i, s := range m.selected {
		if s == name {
			m.selected = append(m.selected[:i:i], m.selected[i+1:]...)
			return
		}
	}
	if len(m.selected) >= catalog.MaxCompared {
		m.notice = fmt.Sprintf("At most %d bodies can be compared", catalog.MaxCompared)
		return
	}
	m.selected = append(m.selected, name)
}

// Selected returns the bodies being compared, in selection order.
func (m CompareModel) Selected() []string {
	return append([]string(nil), m.selected...)
}

func (m CompareModel) isSelected(name string) bool {
	for _, s := range m.selected {
		if s == name {
			return true
		}
	}
	return false
}

// View renders the comparison panel.
func (m CompareModel) View() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	list := m.renderList()
	var right string
	if len(m.selected) < 2 {
		right = dimStyle.Render("Select at least two bodies to compare.")
	} else {
		right = m.renderTable() + "\n\n" + m.renderBars()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Compare"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d selected", len(m.selected), catalog.MaxCompared)))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(errorStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "   ", right))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("↑↓: move | enter: add/remove | ←→: metric | x: clear"))
	return b.String()
}

func (m CompareModel) renderList() string {
	var b strings.Builder
	for i, body := range m.bodies {
		mark := "[ ]"
		if m.isSelected(body.Name) {
			mark = "[x]"
		}
		disabled := len(m.selected) >= catalog.MaxCompared && !m.isSelected(body.Name)

		line := fmt.Sprintf("%s %-8s", mark, body.Name)
		switch {
		case i == m.cursor:
			line = selectedRowStyle.Render(line)
		case disabled:
			line = dimRowStyle.Render(line)
		default:
			line = rowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m CompareModel) renderTable() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(26)
	cellStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(14).Align(lipgloss.Right)

	var b strings.Builder
	b.WriteString(labelStyle.Render(""))
	for _, name := range m.selected {
		body, _ := catalog.Lookup(name)
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(body.Color)).
			Width(14).Align(lipgloss.Right).Render(name))
	}
	b.WriteString("\n")

	for i, metric := range catalog.Metrics() {
		label := metric.Label
		if i == m.metric {
			label = "▶ " + label
		}
		b.WriteString(labelStyle.Render(label))
		for _, name := range m.selected {
			body, _ := catalog.Lookup(name)
			b.WriteString(cellStyle.Render(formatMetric(metric.Key, metric.Value(body))))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderBars charts the active metric, scaled to the largest magnitude.
func (m CompareModel) renderBars() string {
	metric := catalog.Metrics()[m.metric]
	maxV := 0.0
	for _, name := range m.selected {
		body, _ := catalog.Lookup(name)
		maxV = math.Max(maxV, math.Abs(metric.Value(body)))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(metric.Label))
	b.WriteString("\n")
	for _, name := range m.selected {
		body, _ := catalog.Lookup(name)
		v := metric.Value(body)
		filled := 0
		if maxV > 0 {
			filled = int(math.Abs(v)/maxV*compareBarWidth + 0.5)
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(body.Color)).
			Render(strings.Repeat("█", filled))
		b.WriteString(fmt.Sprintf("%-8s %s %s\n", name, bar, formatMetric(metric.Key, v)))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func formatMetric(key string, v float64) string {
	switch key {
	case "moons":
		return fmt.Sprintf("%.0f", v)
	case "gravity":
		return fmt.Sprintf("%.2f", v)
	default:
		return catalog.FormatThousands(v, 0)
	}
}
