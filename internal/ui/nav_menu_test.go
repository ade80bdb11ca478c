package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/orbix/internal/camera"
)

func TestNavSearchAndSelect(t *testing.T) {
	m := NewNavModel().Toggle()
	if !m.Open() {
		t.Fatal("expected menu open")
	}

	for _, r := range "mar" {
		m, _ = m.Update(runes(string(r)))
	}
	items := m.filtered()
	if len(items) != 1 || items[0].target != "Mars" {
		t.Fatalf("filtered = %+v, want only Mars", items)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Open() {
		t.Error("menu should close after choosing")
	}
	if cmd == nil {
		t.Fatal("expected a navigate command")
	}
	if msg, ok := cmd().(NavigateMsg); !ok || msg.Target != "Mars" {
		t.Errorf("cmd() = %#v, want NavigateMsg{Mars}", cmd())
	}
}

func TestNavBackspaceAndNoMatches(t *testing.T) {
	m := NewNavModel().Toggle()
	m, _ = m.Update(runes("zz"))
	if n := len(m.filtered()); n != 0 {
		t.Errorf("filtered = %d items, want 0", n)
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter with no matches should not navigate")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.query != "" {
		t.Errorf("query = %q, want empty", m.query)
	}
	if n := len(m.filtered()); n != 10 {
		t.Errorf("filtered = %d items, want all 10 bodies", n)
	}
}

func TestNavSpecialViews(t *testing.T) {
	m := NewNavModel().Toggle()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigate command")
	}
	if msg := cmd().(NavigateMsg); msg.Target != camera.Overview {
		t.Errorf("target = %q, want %q", msg.Target, camera.Overview)
	}
}

func TestNavEscCloses(t *testing.T) {
	m := NewNavModel().Toggle()
	m, _ = m.Update(runes("ea"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Open() {
		t.Error("esc should close the menu")
	}

	m = m.Toggle()
	if m.query != "" {
		t.Errorf("reopened with query %q, want empty", m.query)
	}
}

func TestNavIgnoresKeysWhenClosed(t *testing.T) {
	m := NewNavModel()
	m, cmd := m.Update(runes("x"))
	if cmd != nil || m.query != "" {
		t.Error("closed menu should ignore input")
	}
}
