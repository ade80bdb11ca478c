package scene

import (
	"math"
	"math/rand"

	"github.com/litescript/orbix/internal/astro"
)

// DefaultBeltCount is the number of rocks in the asteroid belt.
const DefaultBeltCount = 800

// beltAngleStep scales each rock's orbit speed into radians per frame.
const beltAngleStep = 0.01

// Rock is one asteroid.
type Rock struct {
	Radius        float64
	Angle         float64
	Height        float64
	Size          float64
	OrbitSpeed    float64
	RotationSpeed float64
	Spin          float64
}

// Position returns the rock's current position.
func (r Rock) Position() astro.Vec3 {
	return astro.Vec3{
		X: r.Radius * math.Cos(r.Angle),
		Y: r.Height,
		Z: r.Radius * math.Sin(r.Angle),
	}
}

// Belt is the asteroid belt between Mars and Jupiter.
type Belt struct {
	Inner, Outer float64
	Rocks        []Rock
	seed         int64
	count        int
}

// NewBelt scatters count rocks between inner and outer from a fixed seed.
// The belt is thickest midway between the bounds; outer rocks orbit slower.
func NewBelt(inner, outer float64, count int, seed int64) *Belt {
	b := &Belt{seed: seed, count: count}
	b.generate(inner, outer)
	return b
}

func (b *Belt) generate(inner, outer float64) {
	b.Inner, b.Outer = inner, outer
	b.Rocks = make([]Rock, b.count)
	if outer <= inner {
		b.Rocks = b.Rocks[:0]
		return
	}

	rng := rand.New(rand.NewSource(b.seed))
	width := outer - inner
	for i := range b.Rocks {
		radius := inner + rng.Float64()*width
		angle := rng.Float64() * 2 * math.Pi
		thickness := 0.5 + 1.5*(1-math.Abs(2*(radius-inner)/width-1))
		b.Rocks[i] = Rock{
			Radius:        radius,
			Angle:         angle,
			Height:        (rng.Float64() - 0.5) * thickness,
			Size:          rng.Float64()*0.05 + 0.02,
			RotationSpeed: (rng.Float64() - 0.5) * 0.01,
			OrbitSpeed:    0.01 + 0.05*inner/radius,
		}
	}
}

// Resize regenerates the belt when its bounds change. Returns true if regenerated.
func (b *Belt) Resize(inner, outer float64) bool {
	if inner == b.Inner && outer == b.Outer {
		return false
	}
	b.generate(inner, outer)
	return true
}

// Advance moves every rock one frame along its orbit. A time scale of 0 holds the belt still.
func (b *Belt) Advance(timeScale float64) {
	for i := range b.Rocks {
		r := &b.Rocks[i]
		r.Angle += r.OrbitSpeed * beltAngleStep * timeScale
		r.Spin += r.RotationSpeed * timeScale
	}
}

// Positions returns the current rock positions.
func (b *Belt) Positions() []astro.Vec3 {
	out := make([]astro.Vec3, len(b.Rocks))
	for i, r := range b.Rocks {
		out[i] = r.Position()
	}
	return out
}

// BeltBounds derives the belt's radial bounds from the Mars and Jupiter orbits.
func BeltBounds(marsOrbit, jupiterOrbit float64) (inner, outer float64) {
	return marsOrbit + 6, jupiterOrbit - 10
}
