package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/orbix/internal/astro"
	"github.com/litescript/orbix/internal/orbit"
	"github.com/litescript/orbix/internal/playground"
	"github.com/litescript/orbix/internal/shading"
)

// BodyKind categorizes bodies for rendering.
type BodyKind int

const (
	KindStar BodyKind = iota
	KindPlanet
	KindMoon
)

// String returns the kind name.
func (k BodyKind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindPlanet:
		return "planet"
	case KindMoon:
		return "moon"
	default:
		return "unknown"
	}
}

// Ring is a flat ring in the body's equatorial plane, as multiples of the body size.
type Ring struct {
	Inner, Outer float64
}

// BodySpec is one row of the data-driven body table.
type BodySpec struct {
	Name         string
	Kind         BodyKind
	Parent       string // empty for bodies orbiting the origin
	Stage        int    // reveal stage at which the body appears
	Eccentricity float64
	TiltDeg      float64
	OrbitColor   string // orbit line colour
	BaseColor    string // fallback surface colour while the texture is missing
	Glyph        rune   // terminal marker
	Terrain      shading.Terrain
	Ring         *Ring

	// Bodies without playground keys use these fixed values.
	FixedOrbit    float64
	FixedSpeed    float64
	FixedSize     float64
	TidallyLocked bool
}

// Bodies returns the body table in draw order. Parents precede their children.
func Bodies() []BodySpec {
	black := shading.MustHex("#000000")
	return []BodySpec{
		{
			Name: "Sun", Kind: KindStar, Stage: 0,
			BaseColor: "#FDB813", Glyph: '☼',
			Terrain: shading.Terrain{DayTexture: "sun.jpg", NightColor: shading.MustHex("#FDB813"), BlendLow: 0, BlendHigh: 0},
		},
		{
			Name: "Mercury", Kind: KindPlanet, Stage: 1,
			Eccentricity: 0.2, OrbitColor: "#6A6A92", BaseColor: "#8C8C94", Glyph: '☿',
			Terrain: shading.Terrain{DayTexture: "mercury.jpg", NightColor: black, BlendLow: 0, BlendHigh: 0.75},
		},
		{
			Name: "Venus", Kind: KindPlanet, Stage: 1,
			Eccentricity: 0.1, OrbitColor: "#E89D65", BaseColor: "#E3BB76", Glyph: '♀',
			Terrain: shading.Terrain{DayTexture: "venus.jpg", NightColor: black, BlendLow: 0, BlendHigh: 0.75},
		},
		{
			Name: "Earth", Kind: KindPlanet, Stage: 2,
			Eccentricity: 0.017, TiltDeg: 23.5, OrbitColor: "#4A99E9", BaseColor: "#2F6FB5", Glyph: '⊕',
			Terrain: shading.Terrain{
				DayTexture: "earth-day.jpg", NightTexture: "earth-night.jpg",
				NightColor: shading.MustHex("#05070f"), NightBoost: 2, BlendLow: 0, BlendHigh: 0.3,
			},
		},
		{
			Name: "Moon", Kind: KindMoon, Parent: "Earth", Stage: 2,
			BaseColor: "#BDBDBD", Glyph: '☾',
			Terrain:    shading.Terrain{DayTexture: "moon.jpg", NightColor: black, BlendLow: 0, BlendHigh: 0.5},
			FixedOrbit: 2.5, FixedSpeed: 0.23, FixedSize: 0.27, TidallyLocked: true,
		},
		{
			Name: "Mars", Kind: KindPlanet, Stage: 2,
			Eccentricity: 0.09, TiltDeg: 25.2, OrbitColor: "#E27B58", BaseColor: "#C1440E", Glyph: '♂',
			Terrain: shading.Terrain{DayTexture: "mars.jpg", NightColor: shading.MustHex("#1a1005"), BlendLow: 0, BlendHigh: 0.6},
		},
		{
			Name: "Jupiter", Kind: KindPlanet, Stage: 4,
			Eccentricity: 0.049, TiltDeg: 3.13, OrbitColor: "#E8C275", BaseColor: "#D8CA9D", Glyph: '♃',
			Terrain: shading.Terrain{DayTexture: "jupiter.jpg", NightColor: shading.MustHex("#1a1005"), BlendLow: 0.1, BlendHigh: 0.7},
		},
		{
			Name: "Saturn", Kind: KindPlanet, Stage: 4,
			Eccentricity: 0.057, TiltDeg: 26.73, OrbitColor: "#E8B465", BaseColor: "#EAD6B8", Glyph: '♄',
			Terrain: shading.Terrain{
				DayTexture: "saturn.jpg", NightColor: shading.MustHex("#1a140b"), BlendLow: 0.1, BlendHigh: 0.6,
				Tint: colorful.Color{R: 1.15, G: 1.05, B: 0.85}, Ambient: 0.25,
			},
			Ring: &Ring{Inner: 1.2, Outer: 2.5},
		},
		{
			Name: "Uranus", Kind: KindPlanet, Stage: 5,
			Eccentricity: 0.046, TiltDeg: 97.77, OrbitColor: "#4FC3C3", BaseColor: "#A6E1E1", Glyph: '⛢',
			Terrain: shading.Terrain{DayTexture: "uranus.jpg", NightColor: shading.MustHex("#001122"), BlendLow: 0.1, BlendHigh: 0.6},
		},
		{
			Name: "Neptune", Kind: KindPlanet, Stage: 5,
			Eccentricity: 0.009, TiltDeg: 28.32, OrbitColor: "#3066BE", BaseColor: "#4B70DD", Glyph: '♆',
			Terrain: shading.Terrain{DayTexture: "neptune.jpg", NightColor: shading.MustHex("#00152A"), BlendLow: 0.1, BlendHigh: 0.6},
			Ring:    &Ring{Inner: 1.5, Outer: 1.8},
		},
	}
}

// Params resolves a body's orbital parameters from the current playground values.
func (b BodySpec) Params(v playground.Values) orbit.Params {
	tilt := astro.DegToRad(b.TiltDeg)
	switch b.Kind {
	case KindStar:
		return orbit.Params{
			RotationSpeed: v.Get(playground.SunRotationSpeed),
			Size:          v.Get(playground.SunSize),
		}
	case KindMoon:
		return orbit.Params{
			OrbitRadius:  b.FixedOrbit,
			AngularSpeed: b.FixedSpeed,
			Size:         b.FixedSize,
		}
	default:
		return orbit.Params{
			OrbitRadius:   v.Get(playground.OrbitKey(b.Name)),
			Eccentricity:  b.Eccentricity,
			AngularSpeed:  v.Get(playground.SpeedKey(b.Name)),
			RotationSpeed: v.Get(playground.RotationKey(b.Name)),
			AxialTilt:     tilt,
			Size:          v.Get(playground.SizeKey(b.Name)),
		}
	}
}

// HasOrbitLine reports whether the body gets an orbit polyline around the origin.
func (b BodySpec) HasOrbitLine() bool {
	return b.Kind == KindPlanet
}

// Lookup finds a body spec by name.
func Lookup(name string) (BodySpec, bool) {
	for _, b := range Bodies() {
		if b.Name == name {
			return b, true
		}
	}
	return BodySpec{}, false
}
