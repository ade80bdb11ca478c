// Package orbit computes body poses from orbital parameters and simulated time.
//
// Positions are a pure function of (Params, simTime): the orbit lies in the
// X/Z plane, Y is always zero, and axial tilt only affects the orientation of
// the body frame, never its phase or radius.
package orbit

import (
	"math"

	"github.com/litescript/orbix/internal/astro"
)

// ReferenceFPS is the frame rate the per-frame rotation speeds were tuned at.
const ReferenceFPS = 60.0

// Params describes one body's orbit and spin.
type Params struct {
	OrbitRadius   float64 // mean distance from the parent, scene units
	Eccentricity  float64 // 0 <= e < 1
	AngularSpeed  float64 // radians per unit of sim time
	RotationSpeed float64 // radians per frame at time scale 1
	AxialTilt     float64 // radians, rotation of the body frame about X
	Size          float64 // radius multiplier
}

// Pose is a body's placement relative to its parent at one instant.
type Pose struct {
	Phase    float64 // orbital angle theta, radians (not wrapped)
	Radius   float64 // distance from the parent
	Position astro.Vec3
}

// ComputePose returns the position of a body at simTime.
//
// theta = simTime * AngularSpeed; r = R(1 - e cos theta).
func ComputePose(simTime float64, p Params) Pose {
	theta := simTime * p.AngularSpeed
	r := radiusAt(p.OrbitRadius, p.Eccentricity, theta)
	return Pose{
		Phase:  theta,
		Radius: r,
		Position: astro.Vec3{
			X: r * math.Cos(theta),
			Y: 0,
			Z: r * math.Sin(theta),
		},
	}
}

func radiusAt(radius, e, theta float64) float64 {
	return radius * (1 - e*math.Cos(theta))
}

// Orient maps a point from the body's local frame into its parent's frame:
// first the axial tilt about X, then the translation to the orbital position.
func (p Pose) Orient(local astro.Vec3, tilt float64) astro.Vec3 {
	return local.RotateX(tilt).Add(p.Position)
}

// RotationMode selects how self-rotation accumulates.
type RotationMode int

const (
	// RotationPerFrame adds RotationSpeed*timeScale once per rendered frame.
	// Spin rate therefore depends on the display frame rate.
	RotationPerFrame RotationMode = iota

	// RotationSimTime derives the spin angle from sim time at ReferenceFPS.
	RotationSimTime
)

// String returns the flag spelling of the mode.
func (m RotationMode) String() string {
	switch m {
	case RotationPerFrame:
		return "frame"
	case RotationSimTime:
		return "time"
	default:
		return "unknown"
	}
}

// ParseRotationMode parses "frame" or "time". Anything else yields RotationPerFrame.
func ParseRotationMode(s string) RotationMode {
	switch s {
	case "time", "sim", "simtime":
		return RotationSimTime
	default:
		return RotationPerFrame
	}
}

// Spinner accumulates a body's self-rotation angle.
// The zero value starts at angle 0; construct a new one to reset.
type Spinner struct {
	Angle float64
}

// Advance adds rotationSpeed*timeScale to the angle and returns the delta.
// Negative speeds spin retrograde.
func (s *Spinner) Advance(rotationSpeed, timeScale float64) float64 {
	delta := rotationSpeed * timeScale
	s.Angle += delta
	return delta
}

// Sync sets the angle from sim time (RotationSimTime mode) and returns the delta.
func (s *Spinner) Sync(rotationSpeed, simTime float64) float64 {
	next := rotationSpeed * simTime * ReferenceFPS
	delta := next - s.Angle
	s.Angle = next
	return delta
}

// Step advances the spinner according to mode.
func (s *Spinner) Step(mode RotationMode, rotationSpeed, timeScale, simTime float64) float64 {
	if mode == RotationSimTime {
		return s.Sync(rotationSpeed, simTime)
	}
	return s.Advance(rotationSpeed, timeScale)
}
