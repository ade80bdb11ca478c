package playground

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jinzhu/copier"
)

// ErrUnknownKey is returned when updating a key that is not a playground parameter.
var ErrUnknownKey = errors.New("unknown playground key")

// Listener is notified after each successful change. key is empty after a reset.
type Listener func(key Key, value float64)

// Store guards the live values. Readers take snapshots; writers go through
// Update and Reset. Values are not range-checked here; controls clamp with
// LimitFor before writing.
type Store struct {
	mu        sync.RWMutex
	values    Values
	defaults  Values
	version   uint64
	listeners []Listener
}

// NewStore creates a store seeded with Defaults().
func NewStore() *Store {
	return NewStoreFrom(Defaults())
}

// NewStoreFrom creates a store whose live values start at initial, such as a
// loaded preset. Reset still restores Defaults().
func NewStoreFrom(initial Values) *Store {
	values := Defaults()
	for k, v := range initial {
		values[k] = v
	}
	return &Store{
		values:   values,
		defaults: Defaults(),
	}
}

// Update sets one value.
func (s *Store) Update(key Key, value float64) error {
	if !Known(key) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	s.mu.Lock()
	s.values[key] = value
	s.version++
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(key, value)
	}
	return nil
}

// Reset restores every value to Defaults(), whatever the store started from.
func (s *Store) Reset() {
	s.mu.Lock()
	s.values = clone(s.defaults)
	s.version++
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l("", 0)
	}
}

// Get returns one value.
func (s *Store) Get(key Key) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Snapshot returns a copy of all values.
func (s *Store) Snapshot() Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.values)
}

// Version increments on every Update and Reset.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Subscribe registers a change listener. Listeners run on the writer's goroutine.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func clone(v Values) Values {
	out := make(Values, len(v))
	if err := copier.CopyWithOption(&out, &v, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched types; fall back to a plain copy.
		for k, x := range v {
			out[k] = x
		}
	}
	return out
}
