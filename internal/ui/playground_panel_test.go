package ui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/orbix/internal/playground"
)

func TestPlaygroundNudge(t *testing.T) {
	c := newTestComposer(t)
	m := NewPlaygroundModel(c).SetSize(100, 40)

	if m.Selected() != playground.TimeScale {
		t.Fatalf("first slider = %q, want %q", m.Selected(), playground.TimeScale)
	}

	tests := []struct {
		key  tea.KeyMsg
		want float64
	}{
		{runes("l"), 1.2},
		{runes("l"), 1.4},
		{runes("h"), 1.2},
		{runes("L"), 3.2},
		{runes("H"), 1.2},
	}
	for _, tt := range tests {
		m, _ = m.Update(tt.key)
		if got := c.Store().Get(playground.TimeScale); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("after %q timeScale = %v, want %v", tt.key.String(), got, tt.want)
		}
	}
}

func TestPlaygroundClampsToLimit(t *testing.T) {
	c := newTestComposer(t)
	m := NewPlaygroundModel(c).SetSize(100, 40)

	for i := 0; i < 5; i++ {
		m, _ = m.Update(runes("H"))
	}
	if got := c.Store().Get(playground.TimeScale); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("timeScale = %v, want clamped to 0.2", got)
	}

	for i := 0; i < 10; i++ {
		m, _ = m.Update(runes("L"))
	}
	if got := c.Store().Get(playground.TimeScale); got != 10 {
		t.Errorf("timeScale = %v, want clamped to 10", got)
	}
}

func TestPlaygroundReset(t *testing.T) {
	c := newTestComposer(t)
	m := NewPlaygroundModel(c).SetSize(100, 40)

	m, _ = m.Update(runes("j"))
	if m.Selected() != playground.AmbientLight {
		t.Fatalf("second slider = %q, want %q", m.Selected(), playground.AmbientLight)
	}
	m, _ = m.Update(runes("L"))
	if got := c.Store().Get(playground.AmbientLight); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("ambientLight = %v, want 1.5", got)
	}

	m, _ = m.Update(runes("R"))
	if got := c.Store().Get(playground.AmbientLight); got != 0.5 {
		t.Errorf("after reset ambientLight = %v, want 0.5", got)
	}
}

func TestPlaygroundCursorBounds(t *testing.T) {
	m := NewPlaygroundModel(newTestComposer(t)).SetSize(100, 40)

	m, _ = m.Update(runes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if m.cursor != len(m.sliders)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.sliders)-1)
	}
	m, _ = m.Update(runes("j"))
	if m.cursor != len(m.sliders)-1 {
		t.Errorf("cursor moved past the last slider")
	}
	if m.scrollY == 0 {
		t.Error("expected the list to scroll to the last slider")
	}
}

func TestPlaygroundView(t *testing.T) {
	m := NewPlaygroundModel(newTestComposer(t)).SetSize(100, 40)
	view := m.View()

	for _, want := range []string{"Playground", "Global Settings", "Time Scale", "1.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRenderSlider(t *testing.T) {
	m := PlaygroundModel{}
	lim := playground.Limit{Min: 0, Max: 10, Step: 1}

	tests := []struct {
		v    float64
		want string
	}{
		{0, "[░░░░░░░░░░]"},
		{5, "[█████░░░░░]"},
		{10, "[██████████]"},
		{20, "[██████████]"},
	}
	for _, tt := range tests {
		if got := m.renderSlider(lim, tt.v, 10); got != tt.want {
			t.Errorf("renderSlider(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
