package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/litescript/orbix/internal/astro"
	"github.com/litescript/orbix/internal/catalog"
	"github.com/litescript/orbix/internal/scene"
)

// chartSamples is the number of points plotted over one orbit.
const chartSamples = 72

// InfoModel shows facts and live orbit data for the selected body.
type InfoModel struct {
	width    int
	height   int
	composer *scene.Composer
	frame    scene.Frame
	showFact bool
}

// NewInfoModel creates the info panel. It panics without a composer.
func NewInfoModel(composer *scene.Composer) InfoModel {
	if composer == nil {
		panic("ui: info panel requires a composer")
	}
	return InfoModel{composer: composer, showFact: true}
}

// SetSize updates the viewport size.
func (m InfoModel) SetSize(width, height int) InfoModel {
	m.width = width
	m.height = height
	return m
}

// UpdateFrame stores the latest composed frame.
func (m InfoModel) UpdateFrame(f scene.Frame) InfoModel {
	m.frame = f
	return m
}

// Update handles input messages.
func (m InfoModel) Update(msg tea.Msg) (InfoModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "f":
			m.showFact = !m.showFact
		case "x":
			m.composer.ClearSelection()
		}
	}
	return m, nil
}

// View renders the info panel.
func (m InfoModel) View() string {
	name := m.frame.Selected
	if name == "" {
		name = m.composer.Selected()
	}
	if name == "" {
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		return dimStyle.Render("  No body selected. Click one in the scene or press g to navigate.")
	}

	body, ok := catalog.Lookup(name)
	if !ok {
		return fmt.Sprintf("  No information for %s.", name)
	}

	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(body.Color))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(16)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	b.WriteString(headerStyle.Render(body.Name))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(body.Kind))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", len(body.Name)+4))
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(body.Description))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Diameter:", catalog.FormatThousands(body.DiameterKm, 0) + " km"},
		{"From Sun:", catalog.FormatThousands(body.DistanceMkm, 1) + " M km"},
		{"Day length:", body.Rotation},
		{"Gravity:", fmt.Sprintf("%.2f m/s²", body.Gravity)},
		{"Temperature:", fmt.Sprintf("%.0f °C", body.TempC)},
		{"Moons:", fmt.Sprintf("%d", body.Moons)},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}

	if p, ok := m.frame.Placement(name); ok {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("In the scene"))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Orbit radius:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", p.Radius)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Phase:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f°", astro.RadToDeg(astro.NormalizeAngle(p.Phase)))))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Axial tilt:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f°", astro.RadToDeg(p.Tilt))))
		b.WriteString("\n")
	}

	if chart := m.renderDistanceChart(name); chart != "" {
		b.WriteString("\n")
		b.WriteString(chart)
		b.WriteString("\n")
	}

	if m.showFact && body.Fact != "" {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Did you know?"))
		b.WriteString("\n")
		b.WriteString(valueStyle.Render(body.Fact))
		b.WriteString("\n")
	}

	return b.String()
}

// renderDistanceChart plots distance from the Sun over one orbit.
// Bodies without a heliocentric orbit line get no chart.
func (m InfoModel) renderDistanceChart(name string) string {
	points, err := m.composer.Path(name, chartSamples)
	if err != nil {
		return ""
	}
	dist := make([]float64, len(points))
	for i, p := range points {
		dist[i] = p.Norm()
	}

	width := 48
	if m.width > 0 && m.width-12 < width {
		width = m.width - 12
	}
	if width < 10 {
		width = 10
	}
	graphStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	return graphStyle.Render(asciigraph.Plot(dist,
		asciigraph.Height(6),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption("distance from the Sun over one orbit")))
}
