package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/orbix/internal/camera"
	"github.com/litescript/orbix/internal/playground"
	"github.com/litescript/orbix/internal/prefs"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

// drain runs cmd and flattens any batches into their messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, drain(c)...)
	}
	return out
}

func hasQuit(cmd tea.Cmd) bool {
	for _, msg := range drain(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

// deliver feeds every message cmd produces back into the model.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range drain(cmd) {
		m, _ = update(t, m, msg)
	}
	return m
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(newTestComposer(t), Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	return m
}

func TestNewRequiresComposer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic without a composer")
		}
	}()
	New(nil, Options{})
}

func TestViewSwitching(t *testing.T) {
	m := newTestModel(t)
	if m.ViewMode() != ViewScene {
		t.Fatalf("initial view = %d, want scene", m.ViewMode())
	}

	tests := []struct {
		key  tea.KeyMsg
		want ViewMode
	}{
		{runes("2"), ViewPlayground},
		{runes("3"), ViewInfo},
		{runes("4"), ViewCompare},
		{tea.KeyMsg{Type: tea.KeyTab}, ViewScene},
		{tea.KeyMsg{Type: tea.KeyTab}, ViewPlayground},
		{runes("1"), ViewScene},
	}
	for _, tt := range tests {
		m, _ = update(t, m, tt.key)
		if m.ViewMode() != tt.want {
			t.Errorf("after %q view = %d, want %d", tt.key.String(), m.ViewMode(), tt.want)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t)
		_, cmd := update(t, m, key)
		if !hasQuit(cmd) {
			t.Errorf("%q: expected quit command", key.String())
		}
	}
}

func TestPauseToggle(t *testing.T) {
	m := newTestModel(t)
	store := m.composer.Store()

	m, _ = update(t, m, runes("p"))
	if got := store.Get(playground.TimeScale); got != 0 {
		t.Errorf("paused timeScale = %v, want 0", got)
	}
	m, _ = update(t, m, runes("p"))
	if got := store.Get(playground.TimeScale); got != 1 {
		t.Errorf("resumed timeScale = %v, want 1", got)
	}
}

func TestOrbitsToggle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("o"))
	if m.composer.ShowOrbits() {
		t.Error("orbit lines should be hidden after o")
	}
}

func TestMuteWithoutAudio(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("m"))
	if m.statusMsg != "Audio unavailable" {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestFrameTicksAdvanceTime(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(1000, 0)

	m, cmd := update(t, m, FrameTickMsg(start))
	if cmd == nil {
		t.Error("frame tick should schedule the next tick")
	}
	if m.Frame().SimTime != 0 {
		t.Errorf("first tick SimTime = %v, want 0", m.Frame().SimTime)
	}

	m, _ = update(t, m, FrameTickMsg(start.Add(frameInterval)))
	if m.Frame().SimTime <= 0 {
		t.Errorf("SimTime = %v, want > 0 after a second tick", m.Frame().SimTime)
	}
	if len(m.Frame().Placements) != 10 {
		t.Errorf("placements = %d, want 10", len(m.Frame().Placements))
	}
}

func TestFrameStepIsCapped(t *testing.T) {
	a := newTestModel(t)
	b := newTestModel(t)
	start := time.Unix(1000, 0)

	a, _ = update(t, a, FrameTickMsg(start))
	a, _ = update(t, a, FrameTickMsg(start.Add(maxFrameStep)))
	b, _ = update(t, b, FrameTickMsg(start))
	b, _ = update(t, b, FrameTickMsg(start.Add(time.Hour)))

	if a.Frame().SimTime != b.Frame().SimTime {
		t.Errorf("hour-long stall gave SimTime %v, want capped %v", b.Frame().SimTime, a.Frame().SimTime)
	}
}

func TestNavigateSelectsAndToggles(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runes("g"))
	if !m.nav.Open() {
		t.Fatal("g should open the navigation menu")
	}
	m, _ = update(t, m, runes("mars"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigate command")
	}
	m = deliver(t, m, cmd)

	if got := m.composer.Selected(); got != "Mars" {
		t.Errorf("Selected() = %q, want Mars", got)
	}
	if got := m.composer.Framing().Target(); got != "Mars" {
		t.Errorf("camera target = %q, want Mars", got)
	}

	m, _ = update(t, m, NavigateMsg{Target: "Mars"})
	if got := m.composer.Selected(); got != "" {
		t.Errorf("second visit Selected() = %q, want deselected", got)
	}

	m, _ = update(t, m, NavigateMsg{Target: camera.Overview})
	if got := m.composer.Framing().Target(); got != camera.Overview {
		t.Errorf("camera target = %q, want %q", got, camera.Overview)
	}
}

func TestOverlayCapturesKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("g"))
	m, _ = update(t, m, runes("2"))
	if m.ViewMode() != ViewScene {
		t.Error("keys typed into the menu should not switch views")
	}
	if m.nav.query != "2" {
		t.Errorf("query = %q, want 2", m.nav.query)
	}
}

func TestBodyClickedSelects(t *testing.T) {
	m := newTestModel(t)
	var heard []string
	m.composer.Subscribe(func(name string) { heard = append(heard, name) })

	m, _ = update(t, m, BodyClickedMsg{Name: "Jupiter"})
	if m.composer.Selected() != "Jupiter" {
		t.Errorf("Selected() = %q, want Jupiter", m.composer.Selected())
	}
	if len(heard) != 1 || heard[0] != "Jupiter" {
		t.Errorf("listeners heard %v", heard)
	}
}

func TestWelcomeMarksVisited(t *testing.T) {
	store := prefs.Open(filepath.Join(t.TempDir(), "prefs.json"))
	m := New(newTestComposer(t), Options{Prefs: store})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	if !m.welcome.Open() {
		t.Fatal("first run should show the welcome screen")
	}
	if !strings.Contains(m.View(), "Welcome to Orbix") {
		t.Error("view should show the welcome screen")
	}

	m, cmd := update(t, m, runes("q"))
	if hasQuit(cmd) {
		t.Fatal("q on the welcome screen should not quit")
	}

	m, cmd = update(t, m, runes("?"))
	if cmd == nil {
		t.Fatal("expected a dismissed command")
	}
	m = deliver(t, m, cmd)

	if !store.Visited() {
		t.Error("dismissing the welcome screen should mark the visit")
	}
	if !m.tutorial.Open() {
		t.Error("? should start the tutorial")
	}
}

func TestViewRendersChrome(t *testing.T) {
	m := New(newTestComposer(t), Options{})
	if m.View() != "Initializing..." {
		t.Errorf("View() before size = %q", m.View())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	m, _ = update(t, m, FrameTickMsg(time.Unix(1000, 0)))
	view := m.View()
	for _, want := range []string{"[1] Scene", "[4] Compare", "bodies 10", "q: quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGradientColor(t *testing.T) {
	if got := gradientColor(0, 0, 10, 5); got != gradientStops[0].Hex() {
		t.Errorf("gradientColor(0, 0) = %s, want %s", got, gradientStops[0].Hex())
	}
	if got := gradientColor(9, 0, 10, 5); got != gradientStops[len(gradientStops)-1].Hex() {
		t.Errorf("gradientColor(9, 0) = %s, want %s", got, gradientStops[len(gradientStops)-1].Hex())
	}
}
