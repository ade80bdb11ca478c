// Package camera moves the viewpoint between named framings and projects
// world points onto a screen.
package camera

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/litescript/orbix/internal/astro"
)

// Overview is the target name for the whole-system framing.
const Overview = "Overview"

// State is the framing state.
type State int

const (
	Idle State = iota
	Transitioning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Transitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// Pose is a camera position and the point it looks at.
type Pose struct {
	Position astro.Vec3
	LookAt   astro.Vec3
}

// DefaultTargets returns the fixed camera positions for each named framing.
// Positions frame the default orbits; they do not follow the bodies.
func DefaultTargets() map[string]astro.Vec3 {
	return map[string]astro.Vec3{
		Overview:  {X: 200, Y: 50, Z: 120},
		"Sun":     {X: 0, Y: 12, Z: 30},
		"Mercury": {X: 14, Y: 4, Z: 10},
		"Venus":   {X: 20, Y: 5, Z: 14},
		"Earth":   {X: 26, Y: 6, Z: 18},
		"Moon":    {X: 24, Y: 4, Z: 12},
		"Mars":    {X: 36, Y: 7, Z: 22},
		"Jupiter": {X: 70, Y: 14, Z: 40},
		"Saturn":  {X: 86, Y: 16, Z: 48},
		"Uranus":  {X: 98, Y: 16, Z: 52},
		"Neptune": {X: 112, Y: 18, Z: 58},
	}
}

// Transition duration bounds accepted from the command line.
const (
	MinDuration = 100 * time.Millisecond
	MaxDuration = 10 * time.Second
)

// ClampDuration limits a requested transition duration to [MinDuration, MaxDuration].
func ClampDuration(d time.Duration) time.Duration {
	if d < MinDuration {
		return MinDuration
	}
	if d > MaxDuration {
		return MaxDuration
	}
	return d
}

// Config holds framing configuration.
type Config struct {
	Duration    time.Duration
	Ease        Ease
	Targets     map[string]astro.Vec3
	MinDistance float64 // user zoom limits, distance from LookAt
	MaxDistance float64
}

// DefaultConfig returns the default framing configuration.
func DefaultConfig() Config {
	return Config{
		Duration:    2 * time.Second,
		Ease:        OutQuad,
		Targets:     DefaultTargets(),
		MinDistance: 5,
		MaxDistance: 400,
	}
}

// Framing owns the live camera pose and any in-flight transition.
// Safe for concurrent use.
type Framing struct {
	mu      sync.Mutex
	cfg     Config
	state   State
	pose    Pose
	from    Pose
	to      astro.Vec3
	target  string
	elapsed time.Duration
}

// NewFraming creates a framing at the Overview position, idle and aimed at the origin.
func NewFraming(cfg Config) *Framing {
	if cfg.Ease == nil {
		cfg.Ease = OutQuad
	}
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultConfig().Duration
	}
	if cfg.Targets == nil {
		cfg.Targets = DefaultTargets()
	}
	if cfg.MaxDistance <= 0 {
		cfg.MinDistance = DefaultConfig().MinDistance
		cfg.MaxDistance = DefaultConfig().MaxDistance
	}
	if _, ok := cfg.Targets[Overview]; !ok {
		panic(fmt.Sprintf("camera: targets must include %q", Overview))
	}
	return &Framing{
		cfg:    cfg,
		state:  Idle,
		pose:   Pose{Position: cfg.Targets[Overview]},
		target: Overview,
	}
}

// Request starts a transition to the named target from the live pose, replacing
// any transition in flight. Unknown names fall back to Overview. The resolved
// name is returned.
func (f *Framing) Request(target string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	to, ok := f.cfg.Targets[target]
	if !ok {
		target = Overview
		to = f.cfg.Targets[Overview]
	}
	f.from = f.pose
	f.to = to
	f.target = target
	f.elapsed = 0
	f.state = Transitioning
	return target
}

// Step advances an in-flight transition by wall-clock dt and returns the live pose.
func (f *Framing) Step(dt time.Duration) Pose {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != Transitioning {
		return f.pose
	}

	f.elapsed += dt
	progress := float64(f.elapsed) / float64(f.cfg.Duration)
	if progress >= 1 {
		f.pose = Pose{Position: f.to}
		f.state = Idle
		return f.pose
	}

	k := f.cfg.Ease(progress)
	f.pose.Position = f.from.Position.Lerp(f.to, k)
	if f.target == Overview {
		f.pose.LookAt = astro.Vec3{}
	} else {
		f.pose.LookAt = f.from.LookAt.Lerp(astro.Vec3{}, k)
	}
	return f.pose
}

// FreeControl reports whether user orbit/zoom input is accepted.
func (f *Framing) FreeControl() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == Idle
}

// State returns the current framing state.
func (f *Framing) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Target returns the most recently requested target name.
func (f *Framing) Target() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.target
}

// Pose returns the live pose.
func (f *Framing) Pose() Pose {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pose
}

// Progress returns linear transition progress in [0,1]; 1 when idle.
func (f *Framing) Progress() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Transitioning {
		return 1
	}
	return math.Min(1, float64(f.elapsed)/float64(f.cfg.Duration))
}

// Orbit swings the camera around its look-at point by yaw (about Y) and pitch
// (toward the poles), both in radians. Ignored while transitioning.
func (f *Framing) Orbit(yaw, pitch float64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Idle {
		return false
	}

	rel := f.pose.Position.Sub(f.pose.LookAt)
	dist := rel.Norm()
	if dist == 0 {
		return false
	}
	az := math.Atan2(rel.X, rel.Z) + yaw
	el := math.Asin(rel.Y/dist) + pitch
	// Keep clear of the poles so the up vector stays defined.
	const limit = 85 * math.Pi / 180
	el = math.Max(-limit, math.Min(limit, el))

	f.pose.Position = f.pose.LookAt.Add(astro.Vec3{
		X: dist * math.Cos(el) * math.Sin(az),
		Y: dist * math.Sin(el),
		Z: dist * math.Cos(el) * math.Cos(az),
	})
	return true
}

// Zoom scales the distance to the look-at point by factor (<1 moves closer).
// Ignored while transitioning.
func (f *Framing) Zoom(factor float64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Idle || factor <= 0 {
		return false
	}

	rel := f.pose.Position.Sub(f.pose.LookAt)
	dist := rel.Norm() * factor
	dist = math.Max(f.cfg.MinDistance, math.Min(f.cfg.MaxDistance, dist))
	f.pose.Position = f.pose.LookAt.Add(rel.Normalized().Scale(dist))
	return true
}
