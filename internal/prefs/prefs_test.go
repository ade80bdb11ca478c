package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMissingFileIsFirstVisit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "prefs.json")
	s := Open(path)

	if s.Visited() {
		t.Error("Visited() = true for missing file")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Open should not create the file")
	}
}

func TestMarkVisitedPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "prefs.json")

	if err := Open(path).MarkVisited(); err != nil {
		t.Fatalf("MarkVisited() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"orbix-visited": true`) {
		t.Errorf("file = %s", data)
	}
	if !Open(path).Visited() {
		t.Error("flag not read back")
	}
}

func TestResetVisited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := Open(path)
	_ = s.MarkVisited()

	if err := s.ResetVisited(); err != nil {
		t.Fatalf("ResetVisited() error: %v", err)
	}
	if Open(path).Visited() {
		t.Error("flag survived reset")
	}
}

func TestCorruptFileIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if Open(path).Visited() {
		t.Error("corrupt file should read as first visit")
	}
}

func TestMarkVisitedRetriesAfterFailedWrite(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "orbix")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(blocker, "prefs.json")
	s := Open(path)

	if err := s.MarkVisited(); err == nil {
		t.Fatal("expected error when the prefs dir cannot be created")
	}
	if s.Visited() {
		t.Error("Visited() = true after a failed write")
	}

	if err := os.Remove(blocker); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkVisited(); err != nil {
		t.Fatalf("MarkVisited() retry error: %v", err)
	}
	if !Open(path).Visited() {
		t.Error("flag not persisted on retry")
	}
}
