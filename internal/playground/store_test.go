package playground

import (
	"errors"
	"sync"
	"testing"
)

func TestDefaultsComplete(t *testing.T) {
	d := Defaults()

	// 5 globals plus 4 tunables for each of 8 planets.
	if len(d) != 37 {
		t.Errorf("len(Defaults()) = %d, want 37", len(d))
	}
	for key := range d {
		if !Known(key) {
			t.Errorf("default key %q has no limit", key)
		}
	}

	tests := []struct {
		key  Key
		want float64
	}{
		{SunSize, 4},
		{SunRotationSpeed, 0.01},
		{TimeScale, 1},
		{AmbientLight, 0.5},
		{StarfieldDensity, 1000},
		{"mercuryOrbit", 8},
		{"earthSpeed", 0.15},
		{"venusRotation", -0.002},
		{"jupiterSize", 2.2},
		{"neptuneOrbit", 88},
	}
	for _, tt := range tests {
		if got := d[tt.key]; got != tt.want {
			t.Errorf("Defaults()[%s] = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestDefaultsWithinLimits(t *testing.T) {
	for key, v := range Defaults() {
		l, _ := LimitFor(key)
		if v < l.Min || v > l.Max {
			t.Errorf("%s default %v outside [%v, %v]", key, v, l.Min, l.Max)
		}
	}
}

func TestUpdateAndSnapshot(t *testing.T) {
	s := NewStore()

	if err := s.Update("earthOrbit", 20); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	snap := s.Snapshot()
	if snap["earthOrbit"] != 20 {
		t.Errorf("earthOrbit = %v, want 20", snap["earthOrbit"])
	}

	// Snapshots are copies.
	snap["earthOrbit"] = 99
	if got := s.Get("earthOrbit"); got != 20 {
		t.Errorf("store mutated through snapshot: %v", got)
	}
}

func TestUpdateUnknownKey(t *testing.T) {
	s := NewStore()
	before := s.Version()

	err := s.Update("plutoOrbit", 40)
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Update(plutoOrbit) error = %v, want ErrUnknownKey", err)
	}
	if s.Version() != before {
		t.Error("rejected update should not bump the version")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewStore()
	updates := map[Key]float64{
		TimeScale:        5,
		"marsOrbit":      30,
		"saturnSize":     10,
		"venusSpeed":     0.01,
		"uranusRotation": 0,
	}
	for k, v := range updates {
		if err := s.Update(k, v); err != nil {
			t.Fatalf("Update(%s) error: %v", k, err)
		}
	}

	s.Reset()

	got := s.Snapshot()
	want := Defaults()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v after reset, want %v", k, got[k], v)
		}
	}
}

func TestResetIgnoresStartingValues(t *testing.T) {
	start := Defaults()
	start[TimeScale] = 4
	start["marsOrbit"] = 30
	s := NewStoreFrom(start)

	if got := s.Get("marsOrbit"); got != 30 {
		t.Fatalf("marsOrbit = %v before reset, want 30", got)
	}
	if err := s.Update("earthOrbit", 20); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	s.Reset()

	got := s.Snapshot()
	for k, v := range Defaults() {
		if got[k] != v {
			t.Errorf("%s = %v after reset, want default %v", k, got[k], v)
		}
	}
}

func TestNewStoreFromFillsMissingKeys(t *testing.T) {
	s := NewStoreFrom(Values{TimeScale: 3})

	if got := s.Get(TimeScale); got != 3 {
		t.Errorf("timeScale = %v, want 3", got)
	}
	if got := s.Get(AmbientLight); got != Defaults()[AmbientLight] {
		t.Errorf("ambientLight = %v, want default", got)
	}
}

func TestSubscribe(t *testing.T) {
	s := NewStore()
	var keys []Key
	s.Subscribe(func(k Key, _ float64) { keys = append(keys, k) })

	_ = s.Update(TimeScale, 2)
	_ = s.Update("bogus", 1)
	s.Reset()

	if len(keys) != 2 || keys[0] != TimeScale || keys[1] != "" {
		t.Errorf("listener saw %v, want [timeScale \"\"]", keys)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Update(TimeScale, float64(i%5+1))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Snapshot()
			}
		}()
	}
	wg.Wait()

	if s.Version() != 800 {
		t.Errorf("Version() = %d, want 800", s.Version())
	}
}
