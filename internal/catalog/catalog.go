// Package catalog holds reference facts shown in the info and comparison panels.
package catalog

import (
	"fmt"
	"strconv"
)

// Body describes one body's real-world facts.
type Body struct {
	Name        string
	Kind        string  // "Star", "Terrestrial", "Gas giant", "Ice giant", "Moon"
	Color       string  // accent colour, #rrggbb
	DistanceMkm float64 // mean distance from the Sun, millions of km
	DiameterKm  float64
	Rotation    string  // sidereal day, human readable
	Gravity     float64 // surface gravity, m/s²
	TempC       float64 // mean temperature, °C
	Moons       int
	Description string
	Fact        string
}

var bodies = []Body{
	{
		Name: "Sun", Kind: "Star", Color: "#FDB813",
		DistanceMkm: 0, DiameterKm: 1392700, Rotation: "25 days (equator)",
		Gravity: 274, TempC: 5505, Moons: 0,
		Description: "A G-type main-sequence star holding 99.8% of the system's mass.",
		Fact:        "Light leaving the Sun's surface reaches Earth in about 8 minutes 20 seconds.",
	},
	{
		Name: "Mercury", Kind: "Terrestrial", Color: "#6A6A92",
		DistanceMkm: 57.9, DiameterKm: 4879, Rotation: "58.6 days",
		Gravity: 3.7, TempC: 167, Moons: 0,
		Description: "The smallest planet and the closest to the Sun.",
		Fact:        "A year on Mercury is shorter than two of its solar days.",
	},
	{
		Name: "Venus", Kind: "Terrestrial", Color: "#E89D65",
		DistanceMkm: 108.2, DiameterKm: 12104, Rotation: "243 days (retrograde)",
		Gravity: 8.87, TempC: 464, Moons: 0,
		Description: "Wrapped in thick carbon dioxide clouds, the hottest planet.",
		Fact:        "Venus spins backwards, so the Sun rises in the west.",
	},
	{
		Name: "Earth", Kind: "Terrestrial", Color: "#4A99E9",
		DistanceMkm: 149.6, DiameterKm: 12756, Rotation: "23.9 hours",
		Gravity: 9.81, TempC: 15, Moons: 1,
		Description: "The only known world with liquid surface water and life.",
		Fact:        "Earth's rotation is slowing by about 1.7 milliseconds per century.",
	},
	{
		Name: "Moon", Kind: "Moon", Color: "#C8C8C8",
		DistanceMkm: 149.6, DiameterKm: 3475, Rotation: "27.3 days (tidally locked)",
		Gravity: 1.62, TempC: -20, Moons: 0,
		Description: "Earth's only natural satellite, always showing the same face.",
		Fact:        "The Moon drifts about 3.8 cm farther from Earth every year.",
	},
	{
		Name: "Mars", Kind: "Terrestrial", Color: "#E27B58",
		DistanceMkm: 227.9, DiameterKm: 6792, Rotation: "24.6 hours",
		Gravity: 3.71, TempC: -65, Moons: 2,
		Description: "A cold desert world coloured by iron oxide dust.",
		Fact:        "Olympus Mons is nearly three times the height of Everest.",
	},
	{
		Name: "Jupiter", Kind: "Gas giant", Color: "#E8C275",
		DistanceMkm: 778.5, DiameterKm: 142984, Rotation: "9.9 hours",
		Gravity: 24.79, TempC: -110, Moons: 95,
		Description: "The largest planet, a banded ball of hydrogen and helium.",
		Fact:        "The Great Red Spot is a storm wider than Earth.",
	},
	{
		Name: "Saturn", Kind: "Gas giant", Color: "#E8B465",
		DistanceMkm: 1432, DiameterKm: 120536, Rotation: "10.7 hours",
		Gravity: 10.44, TempC: -140, Moons: 146,
		Description: "Famous for its bright ring system of ice and rock.",
		Fact:        "Saturn's mean density is lower than water's.",
	},
	{
		Name: "Uranus", Kind: "Ice giant", Color: "#4FC3C3",
		DistanceMkm: 2867, DiameterKm: 51118, Rotation: "17.2 hours (retrograde)",
		Gravity: 8.69, TempC: -195, Moons: 28,
		Description: "An ice giant tipped on its side.",
		Fact:        "Each pole gets about 42 years of continuous sunlight.",
	},
	{
		Name: "Neptune", Kind: "Ice giant", Color: "#3066BE",
		DistanceMkm: 4515, DiameterKm: 49528, Rotation: "16.1 hours",
		Gravity: 11.15, TempC: -200, Moons: 16,
		Description: "The windiest planet, found by mathematical prediction.",
		Fact:        "Its winds reach over 2,000 km/h.",
	},
}

// All returns every body in display order.
func All() []Body {
	out := make([]Body, len(bodies))
	copy(out, bodies)
	return out
}

// Lookup finds a body by name.
func Lookup(name string) (Body, bool) {
	for _, b := range bodies {
		if b.Name == name {
			return b, true
		}
	}
	return Body{}, false
}

// Metric is one comparable numeric field.
type Metric struct {
	Key   string
	Label string
	Value func(Body) float64
}

// Metrics lists the fields offered by the comparison panel.
func Metrics() []Metric {
	return []Metric{
		{"diameter", "Diameter (km)", func(b Body) float64 { return b.DiameterKm }},
		{"distance", "Distance from Sun (M km)", func(b Body) float64 { return b.DistanceMkm }},
		{"gravity", "Surface Gravity (m/s²)", func(b Body) float64 { return b.Gravity }},
		{"temperature", "Avg Temperature (°C)", func(b Body) float64 { return b.TempC }},
		{"moons", "Number of Moons", func(b Body) float64 { return float64(b.Moons) }},
	}
}

// MaxCompared is how many bodies the comparison panel holds at once.
const MaxCompared = 4

// FormatThousands renders v with comma separators and the given decimals.
func FormatThousands(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	neg := len(s) > 0 && s[0] == '-'
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	for i := range s {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}
	var out []byte
	for i := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}
	if neg {
		return "-" + string(out) + frac
	}
	return string(out) + frac
}

// Summary is a one-line description for lists.
func (b Body) Summary() string {
	if b.DistanceMkm == 0 {
		return fmt.Sprintf("%s · %s km across", b.Kind, FormatThousands(b.DiameterKm, 0))
	}
	return fmt.Sprintf("%s · %s M km from the Sun", b.Kind, FormatThousands(b.DistanceMkm, 1))
}
