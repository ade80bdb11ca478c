package orbit

import (
	"math"

	"github.com/litescript/orbix/internal/astro"
)

// DefaultSegments is the polyline resolution used for orbit lines.
const DefaultSegments = 128

// SamplePath returns segments+1 points tracing a closed orbit in the X/Z plane.
// The final point repeats the first exactly. segments below 1 is raised to 1.
func SamplePath(radius, eccentricity float64, segments int) []astro.Vec3 {
	if segments < 1 {
		segments = 1
	}

	points := make([]astro.Vec3, segments+1)
	for i := 0; i < segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		r := radiusAt(radius, eccentricity, theta)
		points[i] = astro.Vec3{
			X: r * math.Cos(theta),
			Y: 0,
			Z: r * math.Sin(theta),
		}
	}
	// 2π snaps to 0 so the loop closes without rounding drift.
	points[segments] = points[0]
	return points
}

// PathKey identifies a cached orbit polyline.
type PathKey struct {
	Radius       float64
	Eccentricity float64
	Segments     int
}

// PathCache memoizes SamplePath results; a changed radius simply misses.
// Not safe for concurrent use.
type PathCache struct {
	entries map[PathKey][]astro.Vec3
}

// NewPathCache creates an empty cache.
func NewPathCache() *PathCache {
	return &PathCache{entries: make(map[PathKey][]astro.Vec3)}
}

// Get returns the cached path for the key, sampling it on a miss.
func (c *PathCache) Get(radius, eccentricity float64, segments int) []astro.Vec3 {
	key := PathKey{Radius: radius, Eccentricity: eccentricity, Segments: segments}
	if pts, ok := c.entries[key]; ok {
		return pts
	}
	pts := SamplePath(radius, eccentricity, segments)
	c.entries[key] = pts
	return pts
}

// Len returns the number of cached paths.
func (c *PathCache) Len() int {
	return len(c.entries)
}

// Prune drops every entry whose key is not in keep.
func (c *PathCache) Prune(keep map[PathKey]bool) {
	for k := range c.entries {
		if !keep[k] {
			delete(c.entries, k)
		}
	}
}
