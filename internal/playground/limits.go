package playground

import (
	"math"
)

// Limit is the slider range for one key.
type Limit struct {
	Min, Max, Step float64
}

// Clamp snaps v to the nearest step from Min and clamps it into [Min, Max].
func (l Limit) Clamp(v float64) float64 {
	if l.Step > 0 {
		v = l.Min + math.Round((v-l.Min)/l.Step)*l.Step
		// Trim float noise from the step multiplication.
		v = math.Round(v*1e6) / 1e6
	}
	return math.Max(l.Min, math.Min(l.Max, v))
}

// Nudge moves v by n steps and clamps the result.
func (l Limit) Nudge(v float64, n int) float64 {
	return l.Clamp(v + float64(n)*l.Step)
}

// Decimals is the display precision implied by the step.
func (l Limit) Decimals() int {
	if l.Step < 0.01 {
		return 3
	}
	return 2
}

type planetLimits struct {
	orbit, size, speed, rotation Limit
}

var planetRanges = map[string]planetLimits{
	"Mercury": {Limit{5, 15, 0.5}, Limit{0.1, 2, 0.01}, Limit{0, 0.5, 0.001}, Limit{0, 0.02, 0.001}},
	"Venus":   {Limit{8, 20, 0.5}, Limit{0.1, 2, 0.01}, Limit{0, 0.4, 0.001}, Limit{-0.01, 0.01, 0.001}},
	"Earth":   {Limit{12, 25, 0.5}, Limit{0.1, 3, 0.01}, Limit{0, 0.3, 0.001}, Limit{0, 0.05, 0.001}},
	"Mars":    {Limit{20, 35, 0.5}, Limit{0.1, 2, 0.01}, Limit{0, 0.25, 0.001}, Limit{0, 0.02, 0.001}},
	"Jupiter": {Limit{40, 70, 1}, Limit{1, 15, 0.1}, Limit{0, 0.15, 0.001}, Limit{0, 0.05, 0.001}},
	"Saturn":  {Limit{50, 80, 1}, Limit{1, 12, 0.1}, Limit{0, 0.12, 0.001}, Limit{0, 0.05, 0.001}},
	"Uranus":  {Limit{60, 90, 1}, Limit{1, 8, 0.1}, Limit{0, 0.1, 0.001}, Limit{0, 0.03, 0.001}},
	"Neptune": {Limit{70, 100, 1}, Limit{1, 8, 0.1}, Limit{0, 0.08, 0.001}, Limit{0, 0.03, 0.001}},
}

var limits = buildLimits()

func buildLimits() map[Key]Limit {
	m := map[Key]Limit{
		TimeScale:        {0.2, 10, 0.2},
		AmbientLight:     {0, 2, 0.1},
		SunSize:          {1, 10, 0.1},
		SunRotationSpeed: {0, 0.05, 0.001},
		StarfieldDensity: {0, 5000, 100},
	}
	for name, p := range planetRanges {
		m[OrbitKey(name)] = p.orbit
		m[SizeKey(name)] = p.size
		m[SpeedKey(name)] = p.speed
		m[RotationKey(name)] = p.rotation
	}
	return m
}

// LimitFor returns the slider range for key.
func LimitFor(key Key) (Limit, bool) {
	l, ok := limits[key]
	return l, ok
}

// Control is one labelled slider.
type Control struct {
	Key   Key
	Label string
}

// Section groups controls under a heading, in display order.
type Section struct {
	Title    string
	Controls []Control
}

// Sections returns the playground layout: global settings, the sun, then each planet.
func Sections() []Section {
	out := []Section{
		{Title: "Global Settings", Controls: []Control{
			{TimeScale, "Time Scale"},
			{AmbientLight, "Ambient Light"},
			{StarfieldDensity, "Starfield Density"},
		}},
		{Title: "Sun", Controls: []Control{
			{SunSize, "Size"},
			{SunRotationSpeed, "Rotation Speed"},
		}},
	}
	for _, name := range Planets {
		out = append(out, Section{Title: name, Controls: []Control{
			{OrbitKey(name), "Orbit Distance"},
			{SizeKey(name), "Size"},
			{SpeedKey(name), "Orbit Speed"},
			{RotationKey(name), "Rotation Speed"},
		}})
	}
	return out
}
