// Package playground holds the live, user-tunable scene parameters.
package playground

import (
	"strings"
)

// Key names one tunable parameter.
type Key string

// Global keys.
const (
	SunSize          Key = "sunSize"
	SunRotationSpeed Key = "sunRotationSpeed"
	TimeScale        Key = "timeScale"
	AmbientLight     Key = "ambientLight"
	StarfieldDensity Key = "starfieldDensity"
)

// Planets lists the tunable bodies in orbit order.
var Planets = []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}

// SizeKey returns the size key for a planet, e.g. "earthSize".
func SizeKey(planet string) Key { return bodyKey(planet, "Size") }

// OrbitKey returns the orbit-distance key for a planet, e.g. "earthOrbit".
func OrbitKey(planet string) Key { return bodyKey(planet, "Orbit") }

// SpeedKey returns the orbit-speed key for a planet, e.g. "earthSpeed".
func SpeedKey(planet string) Key { return bodyKey(planet, "Speed") }

// RotationKey returns the self-rotation key for a planet, e.g. "earthRotation".
func RotationKey(planet string) Key { return bodyKey(planet, "Rotation") }

func bodyKey(planet, suffix string) Key {
	return Key(strings.ToLower(planet) + suffix)
}

// Values maps every key to its current value.
type Values map[Key]float64

// Get returns the value for key, or 0 if absent.
func (v Values) Get(key Key) float64 {
	return v[key]
}

type planetDefaults struct {
	size, orbit, speed, rotation float64
}

var defaultPlanets = map[string]planetDefaults{
	"Mercury": {0.38, 8, 0.30, 0.004},
	"Venus":   {0.95, 13, 0.225, -0.002},
	"Earth":   {1, 18, 0.15, 0.01},
	"Mars":    {0.53, 26, 0.12, 0.009},
	"Jupiter": {2.2, 52, 0.075, 0.02},
	"Saturn":  {1.8, 64, 0.06, 0.018},
	"Uranus":  {1.6, 76, 0.045, 0.012},
	"Neptune": {1.5, 88, 0.03, 0.011},
}

// Defaults returns a fresh copy of the default values.
func Defaults() Values {
	v := Values{
		SunSize:          4,
		SunRotationSpeed: 0.01,
		TimeScale:        1,
		AmbientLight:     0.5,
		StarfieldDensity: 1000,
	}
	for name, p := range defaultPlanets {
		v[SizeKey(name)] = p.size
		v[OrbitKey(name)] = p.orbit
		v[SpeedKey(name)] = p.speed
		v[RotationKey(name)] = p.rotation
	}
	return v
}

// Known reports whether key is a recognised parameter.
func Known(key Key) bool {
	_, ok := limits[key]
	return ok
}
