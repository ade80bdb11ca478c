package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/orbix/internal/camera"
)

func TestSceneViewDefaults(t *testing.T) {
	m := NewSceneViewModel(newTestComposer(t))

	if m.Projection() != ProjectPerspective {
		t.Errorf("projection = %v, want 3d", m.Projection())
	}
	if m.zoom() != 1.0 {
		t.Errorf("zoom = %v, want 1.0", m.zoom())
	}
	if m.labelMode != LabelFocused {
		t.Errorf("labels = %v, want focus", m.labelMode)
	}
}

func TestSceneViewMapZoomAndPan(t *testing.T) {
	m := NewSceneViewModel(newTestComposer(t)).SetSize(100, 40)

	m, _ = m.Update(runes("v"))
	if m.Projection() != ProjectMap {
		t.Fatalf("projection = %v, want map", m.Projection())
	}

	m, _ = m.Update(runes("+"))
	if m.zoom() != 1.5 {
		t.Errorf("zoom = %v, want 1.5", m.zoom())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.panX >= 0 {
		t.Errorf("panX = %v, want negative after left", m.panX)
	}

	m, _ = m.Update(runes("0"))
	if m.zoom() != 1.0 || m.panX != 0 || m.panY != 0 {
		t.Errorf("reset gave zoom=%v pan=(%v, %v)", m.zoom(), m.panX, m.panY)
	}
}

func TestSceneViewZoomLimits(t *testing.T) {
	m := NewSceneViewModel(newTestComposer(t))
	m, _ = m.Update(runes("v"))

	for i := 0; i < 20; i++ {
		m, _ = m.Update(runes("-"))
	}
	if m.zoom() != zoomLevels[0] {
		t.Errorf("zoom = %v, want %v", m.zoom(), zoomLevels[0])
	}
	for i := 0; i < 20; i++ {
		m, _ = m.Update(runes("+"))
	}
	if m.zoom() != zoomLevels[len(zoomLevels)-1] {
		t.Errorf("zoom = %v, want %v", m.zoom(), zoomLevels[len(zoomLevels)-1])
	}
}

func TestSceneViewCentreFliesToOverview(t *testing.T) {
	c := newTestComposer(t)
	c.FlyTo("Mars")
	m := NewSceneViewModel(c)

	m.Update(runes("c"))
	if got := c.Framing().Target(); got != camera.Overview {
		t.Errorf("camera target = %q, want %q", got, camera.Overview)
	}
}

func TestSceneViewClickPicksBody(t *testing.T) {
	c := newTestComposer(t)
	m := NewSceneViewModel(c).SetSize(80, 43)
	m, _ = m.Update(runes("v"))
	m, _ = m.Update(runes("l")) // labels: all
	m, _ = m.Update(runes("l")) // labels: off
	m = m.UpdateFrame(c.Step(testFrame))

	// canvas is 80x40; the sun sits in the middle of the map
	_, cmd := m.Update(tea.MouseMsg{X: 40, Y: 20, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if cmd == nil {
		t.Fatal("expected a click command")
	}
	if msg, ok := cmd().(BodyClickedMsg); !ok || msg.Name != "Sun" {
		t.Errorf("cmd() = %#v, want BodyClickedMsg{Sun}", cmd())
	}
}

func TestSceneViewTooSmall(t *testing.T) {
	m := NewSceneViewModel(newTestComposer(t)).SetSize(20, 5)
	if !strings.Contains(m.View(), "too small") {
		t.Errorf("view = %q", m.View())
	}
}

func TestSceneViewHUD(t *testing.T) {
	c := newTestComposer(t)
	c.OnBodyClicked("Earth")
	m := NewSceneViewModel(c).SetSize(100, 40).UpdateFrame(c.Step(testFrame))

	hud := m.renderHUD()
	for _, want := range []string{"Earth", "View:", "3d", "Labels:"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD missing %q", want)
		}
	}
}
