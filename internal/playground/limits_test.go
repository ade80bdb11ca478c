package playground

import (
	"testing"
)

func TestLimitClamp(t *testing.T) {
	tests := []struct {
		name string
		l    Limit
		in   float64
		want float64
	}{
		{"in range", Limit{0.2, 10, 0.2}, 1.0, 1.0},
		{"snap", Limit{0.2, 10, 0.2}, 1.05, 1.0},
		{"below", Limit{0.2, 10, 0.2}, 0, 0.2},
		{"above", Limit{0.2, 10, 0.2}, 50, 10},
		{"half steps", Limit{5, 15, 0.5}, 8.3, 8.5},
		{"negative range", Limit{-0.01, 0.01, 0.001}, -0.0021, -0.002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.Clamp(tt.in); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLimitNudge(t *testing.T) {
	l, ok := LimitFor(TimeScale)
	if !ok {
		t.Fatal("no limit for timeScale")
	}
	if got := l.Nudge(1, 1); got != 1.2 {
		t.Errorf("Nudge(1, +1) = %v, want 1.2", got)
	}
	if got := l.Nudge(0.2, -1); got != 0.2 {
		t.Errorf("Nudge at floor = %v, want 0.2", got)
	}
	if got := l.Nudge(9.8, 5); got != 10 {
		t.Errorf("Nudge past ceiling = %v, want 10", got)
	}
}

func TestPlaygroundRanges(t *testing.T) {
	tests := []struct {
		key  Key
		want Limit
	}{
		{"mercuryOrbit", Limit{5, 15, 0.5}},
		{"venusRotation", Limit{-0.01, 0.01, 0.001}},
		{"jupiterSize", Limit{1, 15, 0.1}},
		{"neptuneSpeed", Limit{0, 0.08, 0.001}},
		{AmbientLight, Limit{0, 2, 0.1}},
	}
	for _, tt := range tests {
		got, ok := LimitFor(tt.key)
		if !ok || got != tt.want {
			t.Errorf("LimitFor(%s) = %v, %v; want %v", tt.key, got, ok, tt.want)
		}
	}
}

func TestSectionsCoverEveryKey(t *testing.T) {
	seen := make(map[Key]bool)
	for _, sec := range Sections() {
		for _, c := range sec.Controls {
			if seen[c.Key] {
				t.Errorf("key %s listed twice", c.Key)
			}
			seen[c.Key] = true
		}
	}
	for key := range Defaults() {
		if !seen[key] {
			t.Errorf("key %s has no control", key)
		}
	}
}
