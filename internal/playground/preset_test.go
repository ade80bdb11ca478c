package playground

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParsePreset(t *testing.T) {
	data := []byte(`
name: Fast inner system
values:
  timeScale: 4
  mercuryOrbit: 10.2
  earthSize: 99
`)
	p, err := ParsePreset(data)
	if err != nil {
		t.Fatalf("ParsePreset() error: %v", err)
	}
	if p.Name != "Fast inner system" {
		t.Errorf("Name = %q", p.Name)
	}

	v := p.Apply(Defaults())
	if v[TimeScale] != 4 {
		t.Errorf("timeScale = %v, want 4", v[TimeScale])
	}
	if v["mercuryOrbit"] != 10 {
		t.Errorf("mercuryOrbit = %v, want snapped 10", v["mercuryOrbit"])
	}
	if v["earthSize"] != 3 {
		t.Errorf("earthSize = %v, want clamped 3", v["earthSize"])
	}
	if v["marsOrbit"] != 26 {
		t.Errorf("untouched marsOrbit = %v, want 26", v["marsOrbit"])
	}
}

func TestParsePresetUnknownKey(t *testing.T) {
	_, err := ParsePreset([]byte("name: x\nvalues:\n  plutoOrbit: 100\n"))
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("error = %v, want ErrUnknownKey", err)
	}
}

func TestParsePresetMalformed(t *testing.T) {
	if _, err := ParsePreset([]byte("values: [1, 2")); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveAndLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	values := Defaults()
	values[TimeScale] = 2.4
	values["saturnOrbit"] = 70

	if err := SavePreset(path, "mine", values); err != nil {
		t.Fatalf("SavePreset() error: %v", err)
	}

	p, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset() error: %v", err)
	}
	if len(p.Values) != 2 {
		t.Errorf("saved %d overrides, want 2: %v", len(p.Values), p.Values)
	}
	got := p.Apply(Defaults())
	if got[TimeScale] != 2.4 || got["saturnOrbit"] != 70 {
		t.Errorf("round trip = %v / %v", got[TimeScale], got["saturnOrbit"])
	}
}

func TestLoadPresetMissing(t *testing.T) {
	if _, err := LoadPreset(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func writePreset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStoreResetsToDefaults(t *testing.T) {
	path := writePreset(t, "name: fast\nvalues:\n  timeScale: 4\n  marsOrbit: 30\n")

	s, err := LoadStore(path, nil)
	if err != nil {
		t.Fatalf("LoadStore() error: %v", err)
	}
	if s.Get(TimeScale) != 4 || s.Get("marsOrbit") != 30 {
		t.Fatalf("preset not applied: timeScale=%v marsOrbit=%v", s.Get(TimeScale), s.Get("marsOrbit"))
	}

	_ = s.Update("earthOrbit", 20)
	s.Reset()

	got := s.Snapshot()
	for k, v := range Defaults() {
		if got[k] != v {
			t.Errorf("%s = %v after reset, want default %v", k, got[k], v)
		}
	}
}

func TestLoadStoreTimeScale(t *testing.T) {
	path := writePreset(t, "name: fast\nvalues:\n  timeScale: 4\n")

	tests := []struct {
		name   string
		preset string
		scale  float64
		want   float64
	}{
		{"flag wins over preset", path, 2, 2},
		{"zero pauses", "", 0, 0},
		{"clamped high", "", 50, 10},
		{"clamped low", "", 0.05, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale := tt.scale
			s, err := LoadStore(tt.preset, &scale)
			if err != nil {
				t.Fatalf("LoadStore() error: %v", err)
			}
			if got := s.Get(TimeScale); got != tt.want {
				t.Errorf("timeScale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadStoreMissingPreset(t *testing.T) {
	if _, err := LoadStore(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("expected error for missing preset")
	}
}
