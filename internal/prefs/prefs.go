// Package prefs persists the few per-user UI preferences that survive restarts.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// VisitedKey records that the welcome screen has been dismissed.
const VisitedKey = "orbix-visited"

// DefaultPath returns the prefs file under the user's config directory,
// or a file in the working directory if that is unavailable.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "orbix-prefs.json"
	}
	return filepath.Join(dir, "orbix", "prefs.json")
}

// Store is a small JSON key/value file. It is read once when opened.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]bool
}

// Open reads the prefs file. A missing or unreadable file yields an empty store;
// nothing is written until a value changes.
func Open(path string) *Store {
	s := &Store{path: path, data: make(map[string]bool)}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.data = make(map[string]bool)
	}
	return s
}

// Visited reports whether the welcome screen was dismissed before.
func (s *Store) Visited() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[VisitedKey]
}

// MarkVisited records the dismissal. Writes only until a write succeeds.
func (s *Store) MarkVisited() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[VisitedKey] {
		return nil
	}
	s.data[VisitedKey] = true
	if err := s.save(); err != nil {
		delete(s.data, VisitedKey)
		return err
	}
	return nil
}

// ResetVisited erases the flag so the welcome screen shows again.
func (s *Store) ResetVisited() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.data[VisitedKey] {
		return nil
	}
	delete(s.data, VisitedKey)
	if err := s.save(); err != nil {
		s.data[VisitedKey] = true
		return err
	}
	return nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create prefs dir: %w", err)
	}
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode prefs: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}
