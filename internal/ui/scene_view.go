package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/orbix/internal/astro"
	"github.com/litescript/orbix/internal/camera"
	"github.com/litescript/orbix/internal/scene"
)

// BodyClickedMsg reports a body picked with the mouse.
type BodyClickedMsg struct {
	Name string
}

// Discrete zoom levels for the map projection
var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0, 10.0}

const defaultZoomLevel = 3

// orbit step per arrow key, radians
const orbitStep = 0.12

// SceneViewModel draws the live scene and steers the camera.
type SceneViewModel struct {
	width    int
	height   int
	composer *scene.Composer
	frame    scene.Frame

	projection Projection
	zoomLevel  int
	panX       float64
	panY       float64
	scaleMode  astro.ScaleMode
	labelMode  LabelMode
	showStars  bool
}

// NewSceneViewModel creates a scene view over composer.
func NewSceneViewModel(composer *scene.Composer) SceneViewModel {
	if composer == nil {
		panic("ui: scene view requires a composer")
	}
	return SceneViewModel{
		composer:   composer,
		projection: ProjectPerspective,
		zoomLevel:  defaultZoomLevel,
		scaleMode:  astro.ScaleLogR,
		labelMode:  LabelFocused,
		showStars:  true,
	}
}

// SetSize updates the viewport size.
func (m SceneViewModel) SetSize(width, height int) SceneViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateFrame stores the latest composed frame.
func (m SceneViewModel) UpdateFrame(f scene.Frame) SceneViewModel {
	m.frame = f
	return m
}

func (m SceneViewModel) zoom() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(zoomLevels) {
		return 1.0
	}
	return zoomLevels[m.zoomLevel]
}

// canvasHeight leaves room for the two HUD lines.
func (m SceneViewModel) canvasHeight() int {
	h := m.height - 3
	if h < 5 {
		h = 5
	}
	return h
}

func (m SceneViewModel) canvasConfig() CanvasConfig {
	return CanvasConfig{
		Width:      m.width,
		Height:     m.canvasHeight(),
		Projection: m.projection,
		Map:        astro.ProjectionConfig{Scale: m.zoom(), Mode: m.scaleMode},
		PanX:       m.panX,
		PanY:       m.panY,
		Labels:     m.labelMode,
		Stars:      m.showStars,
	}
}

// Update handles input messages.
func (m SceneViewModel) Update(msg tea.Msg) (SceneViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "right", "up", "down":
			m.steer(msg.String())

		case "+", "=":
			if m.projection == ProjectMap {
				if m.zoomLevel < len(zoomLevels)-1 {
					m.zoomLevel++
				}
			} else {
				m.composer.Framing().Zoom(0.8)
			}
		case "-":
			if m.projection == ProjectMap {
				if m.zoomLevel > 0 {
					m.zoomLevel--
				}
			} else {
				m.composer.Framing().Zoom(1.25)
			}
		case "0":
			m.zoomLevel = defaultZoomLevel
			m.panX, m.panY = 0, 0

		case "v":
			m.projection = (m.projection + 1) % 2
		case "z":
			m.scaleMode = (m.scaleMode + 1) % 3
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		case "t":
			m.showStars = !m.showStars
		case "c":
			m.panX, m.panY = 0, 0
			m.composer.FlyTo(camera.Overview)
		}

	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.composer.Framing().Zoom(0.9)
		case msg.Button == tea.MouseButtonWheelDown:
			m.composer.Framing().Zoom(1.1)
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if name, ok := m.Pick(msg.X, msg.Y); ok {
				return m, func() tea.Msg { return BodyClickedMsg{Name: name} }
			}
		}
	}
	return m, nil
}

// steer pans the map or orbits the camera.
func (m *SceneViewModel) steer(key string) {
	if m.projection == ProjectMap {
		step := 0.1 / m.zoom()
		switch key {
		case "left":
			m.panX -= step
		case "right":
			m.panX += step
		case "up":
			m.panY -= step
		case "down":
			m.panY += step
		}
		return
	}

	f := m.composer.Framing()
	switch key {
	case "left":
		f.Orbit(-orbitStep, 0)
	case "right":
		f.Orbit(orbitStep, 0)
	case "up":
		f.Orbit(0, orbitStep/2)
	case "down":
		f.Orbit(0, -orbitStep/2)
	}
}

// Pick returns the body under canvas cell (x, y) in the current frame.
func (m SceneViewModel) Pick(x, y int) (string, bool) {
	c := NewCanvas(m.canvasConfig())
	c.Render(m.frame)
	return c.HitTest(x, y)
}

// View renders the scene view.
func (m SceneViewModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for the scene view"
	}

	c := NewCanvas(m.canvasConfig())
	c.Render(m.frame)
	return lipgloss.JoinVertical(lipgloss.Left, c.String(), m.renderHUD())
}

func (m SceneViewModel) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	f := m.frame
	if p, ok := f.Placement(f.Selected); ok {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%c %s", p.Spec.Glyph, p.Name)))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("r="))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", p.Position.Norm())))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("phase="))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.0f°", astro.RadToDeg(astro.NormalizeAngle(p.Phase)))))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("tilt="))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f°", astro.RadToDeg(p.Tilt))))
	} else {
		b.WriteString(headerStyle.Render("☼ Solar System"))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("(click a body or press g)"))
	}
	b.WriteString("\n")

	cam := f.CameraTarget
	if f.CameraState == camera.Transitioning {
		cam = fmt.Sprintf("→ %s %d%%", cam, int(math.Round(m.composer.Framing().Progress()*100)))
	}
	b.WriteString(dimStyle.Render("View:"))
	b.WriteString(valueStyle.Render(m.projection.String()))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Camera:"))
	b.WriteString(valueStyle.Render(cam))
	b.WriteString("  ")
	if m.projection == ProjectMap {
		b.WriteString(dimStyle.Render("Scale:"))
		b.WriteString(valueStyle.Render(m.scaleMode.String()))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("Zoom:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2gx", m.zoom())))
		b.WriteString("  ")
	}
	b.WriteString(dimStyle.Render("Labels:"))
	b.WriteString(valueStyle.Render(m.labelMode.String()))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Stars:"))
	b.WriteString(valueStyle.Render(onOff(m.showStars)))

	return b.String()
}

// Projection returns the active projection.
func (m SceneViewModel) Projection() Projection {
	return m.projection
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
