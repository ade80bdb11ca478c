package playground

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named set of overrides stored as YAML:
//
//	name: Fast inner system
//	values:
//	  timeScale: 4
//	  mercuryOrbit: 10
type Preset struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description,omitempty"`
	Values      map[string]float64 `yaml:"values"`
}

// LoadPreset reads a preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}
	return ParsePreset(data)
}

// ParsePreset decodes preset YAML and rejects unknown keys.
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}
	for k := range p.Values {
		if !Known(Key(k)) {
			return nil, fmt.Errorf("preset %q: %w: %q", p.Name, ErrUnknownKey, k)
		}
	}
	return &p, nil
}

// Apply writes the preset over the defaults, clamping each value to its limit.
func (p *Preset) Apply(base Values) Values {
	out := clone(base)
	for k, v := range p.Values {
		key := Key(k)
		if l, ok := LimitFor(key); ok {
			v = l.Clamp(v)
		}
		out[key] = v
	}
	return out
}

// LoadStore builds the store a frontend starts with: Defaults(), then the
// preset at presetPath if one is given, then timeScale if non-nil. A non-zero
// time scale is clamped to its limit; 0 starts paused. Reset on the returned
// store still restores Defaults().
func LoadStore(presetPath string, timeScale *float64) (*Store, error) {
	values := Defaults()
	if presetPath != "" {
		preset, err := LoadPreset(presetPath)
		if err != nil {
			return nil, err
		}
		values = preset.Apply(values)
	}

	if timeScale != nil {
		s := *timeScale
		if s != 0 {
			l := limits[TimeScale]
			s = math.Max(l.Min, math.Min(l.Max, s))
		}
		values[TimeScale] = s
	}
	return NewStoreFrom(values), nil
}

// SavePreset writes the values that differ from Defaults() as a preset file.
func SavePreset(path, name string, values Values) error {
	defaults := Defaults()
	p := Preset{Name: name, Values: make(map[string]float64)}

	for k, v := range values {
		if v != defaults[k] {
			p.Values[string(k)] = v
		}
	}

	data, err := yaml.Marshal(&p)
	if err != nil {
		return fmt.Errorf("failed to encode preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preset: %w", err)
	}
	return nil
}
