// Package simclock tracks simulated time and the user-controlled time scale.
package simclock

import (
	"sync"
	"time"
)

// Default scale bounds for non-zero scales.
const (
	DefaultMinScale = 0.2
	DefaultMaxScale = 10.0
)

// Config holds clock configuration.
type Config struct {
	InitialScale float64
	MinScale     float64
	MaxScale     float64
}

// DefaultConfig returns the default clock configuration.
func DefaultConfig() Config {
	return Config{
		InitialScale: 1.0,
		MinScale:     DefaultMinScale,
		MaxScale:     DefaultMaxScale,
	}
}

// Clock accumulates scaled sim time. A scale of exactly 0 is the paused state;
// there is no separate paused flag.
// Safe for concurrent use.
type Clock struct {
	mu      sync.RWMutex
	elapsed float64
	scale   float64
	min     float64
	max     float64
}

// New creates a clock at sim time 0.
func New(cfg Config) *Clock {
	if cfg.MinScale <= 0 {
		cfg.MinScale = DefaultMinScale
	}
	if cfg.MaxScale < cfg.MinScale {
		cfg.MaxScale = DefaultMaxScale
	}
	c := &Clock{min: cfg.MinScale, max: cfg.MaxScale}
	c.scale = c.clamp(cfg.InitialScale)
	return c
}

// Advance adds dt scaled by the current scale and returns the new elapsed sim time.
func (c *Clock) Advance(dt time.Duration) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed += dt.Seconds() * c.scale
	return c.elapsed
}

// SetScale sets the time scale. 0 pauses; any other value is clamped to [min, max].
// Negative values clamp to min.
func (c *Clock) SetScale(s float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scale = c.clamp(s)
}

func (c *Clock) clamp(s float64) float64 {
	switch {
	case s == 0:
		return 0
	case s < c.min:
		return c.min
	case s > c.max:
		return c.max
	default:
		return s
	}
}

// Scale returns the current time scale.
func (c *Clock) Scale() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scale
}

// Elapsed returns the accumulated sim time.
func (c *Clock) Elapsed() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.elapsed
}

// Paused reports whether the scale is 0.
func (c *Clock) Paused() bool {
	return c.Scale() == 0
}

// Bounds returns the non-zero scale limits.
func (c *Clock) Bounds() (lo, hi float64) {
	return c.min, c.max
}

// Seek jumps to an absolute sim time, used by headless rendering at a fixed instant.
func (c *Clock) Seek(simTime float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed = simTime
}
