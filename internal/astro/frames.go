// Package astro provides the vector math and projections shared by the scene and its renderers.
package astro

import (
	"math"
)

// Vec3 represents a 3D vector in scene units.
// The orbital plane is X/Z; Y points "up" out of the plane.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product v × u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Lerp interpolates from v toward u by t (0 = v, 1 = u).
func (v Vec3) Lerp(u Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (u.X-v.X)*t,
		Y: v.Y + (u.Y-v.Y)*t,
		Z: v.Z + (u.Z-v.Z)*t,
	}
}

// RotateX rotates the vector about the X axis by angle radians.
func (v Vec3) RotateX(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{X: v.X, Y: v.Y*c - v.Z*s, Z: v.Y*s + v.Z*c}
}

// RotateY rotates the vector about the Y axis by angle radians.
func (v Vec3) RotateY(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{X: v.X*c + v.Z*s, Y: v.Y, Z: -v.X*s + v.Z*c}
}

// ProjectedPoint represents a 2D projected position with metadata.
type ProjectedPoint struct {
	X float64 // Screen X coordinate (normalized)
	Y float64 // Screen Y coordinate (normalized)
	R float64 // Original distance from the origin
	Z float64 // Original height above the orbital plane
}

// ScaleMode defines how radial distances are mapped to screen space in the map view.
type ScaleMode int

const (
	// ScaleLogR uses logarithmic scaling: r_display = log10(r/10 + 1)
	ScaleLogR ScaleMode = iota

	// ScaleInner uses linear scaling optimized for the inner planets (0-30 units)
	ScaleInner

	// ScaleOuter uses linear scaling out to Neptune
	ScaleOuter
)

// String returns a short label for the mode.
func (m ScaleMode) String() string {
	switch m {
	case ScaleLogR:
		return "Log"
	case ScaleInner:
		return "Inner"
	case ScaleOuter:
		return "Outer"
	default:
		return "?"
	}
}

// ProjectionConfig configures the top-down map projection.
type ProjectionConfig struct {
	Scale float64   // Zoom factor
	Mode  ScaleMode // Radial scaling mode
}

// DefaultProjectionConfig returns a reasonable default configuration.
func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{
		Scale: 1.0,
		Mode:  ScaleLogR,
	}
}

// ProjectTopDown projects a scene position onto the orbital plane seen from above.
// X points right, screen Y follows scene -Z so prograde orbits run counter-clockwise.
func ProjectTopDown(v Vec3, cfg ProjectionConfig) ProjectedPoint {
	r := math.Sqrt(v.X*v.X + v.Z*v.Z)
	rDisplay := scaleRadius(r, cfg)
	angle := math.Atan2(-v.Z, v.X)

	return ProjectedPoint{
		X: rDisplay * math.Cos(angle) * cfg.Scale,
		Y: rDisplay * math.Sin(angle) * cfg.Scale,
		R: v.Norm(),
		Z: v.Y,
	}
}

// scaleRadius applies the configured scaling mode to a radial distance.
func scaleRadius(r float64, cfg ProjectionConfig) float64 {
	switch cfg.Mode {
	case ScaleLogR:
		// 0 at the origin, ~0.45 at Earth (18), ~0.99 at Neptune (88)
		return math.Log10(r/10 + 1)

	case ScaleInner:
		// Everything past Mars is pinned to the edge
		if r > 30 {
			return 1
		}
		return r / 30

	case ScaleOuter:
		return r / 90

	default:
		return math.Log10(r/10 + 1)
	}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle wraps an angle in radians into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Obliquity of the ecliptic (J2000) in radians.
const obliquityRad = 23.439291 * math.Pi / 180

// EquatorialToEcliptic converts equatorial XYZ to ecliptic XYZ.
func EquatorialToEcliptic(eq Vec3) Vec3 {
	cosE := math.Cos(obliquityRad)
	sinE := math.Sin(obliquityRad)

	return Vec3{
		X: eq.X,
		Y: eq.Y*cosE + eq.Z*sinE,
		Z: -eq.Y*sinE + eq.Z*cosE,
	}
}

// EclipticToScene maps an ecliptic vector (Z = north) into scene axes (Y = up).
func EclipticToScene(ecl Vec3) Vec3 {
	return Vec3{X: ecl.X, Y: ecl.Z, Z: -ecl.Y}
}
