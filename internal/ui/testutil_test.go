package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/orbix/internal/playground"
	"github.com/litescript/orbix/internal/scene"
)

// newTestComposer returns a composer with every body already revealed.
func newTestComposer(t *testing.T) *scene.Composer {
	t.Helper()
	cfg := scene.DefaultConfig()
	cfg.StageInterval = 0
	return scene.NewComposer(playground.NewStore(), cfg)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

const testFrame = 16 * time.Millisecond
