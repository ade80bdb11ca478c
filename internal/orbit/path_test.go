package orbit

import (
	"math"
	"testing"

	"github.com/litescript/orbix/internal/astro"
)

func TestSamplePathClosure(t *testing.T) {
	tests := []struct {
		name     string
		radius   float64
		e        float64
		segments int
	}{
		{"mercury", 8, 0.2, 128},
		{"earth", 18, 0.017, 64},
		{"neptune", 88, 0.009, 7},
		{"circle", 10, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := SamplePath(tt.radius, tt.e, tt.segments)
			if len(pts) != tt.segments+1 {
				t.Fatalf("len = %d, want %d", len(pts), tt.segments+1)
			}
			if pts[0] != pts[tt.segments] {
				t.Errorf("path not closed: %v vs %v", pts[0], pts[tt.segments])
			}
			want := tt.radius * (1 - tt.e)
			if math.Abs(pts[0].X-want) > 1e-12 || pts[0].Z != 0 {
				t.Errorf("first point = %v, want (%v,0,0)", pts[0], want)
			}
		})
	}
}

func TestSamplePathMatchesPose(t *testing.T) {
	const segments = 16
	p := Params{OrbitRadius: 26, Eccentricity: 0.09, AngularSpeed: 1}
	pts := SamplePath(p.OrbitRadius, p.Eccentricity, segments)

	for i := 0; i < segments; i++ {
		theta := float64(i) / segments * 2 * math.Pi
		pose := ComputePose(theta, p).Position
		if math.Abs(pose.X-pts[i].X) > 1e-9 || math.Abs(pose.Z-pts[i].Z) > 1e-9 {
			t.Errorf("point %d = %v, pose = %v", i, pts[i], pose)
		}
	}
}

func TestSamplePathFewSegments(t *testing.T) {
	tests := []struct {
		segments int
		want     []astro.Vec3
	}{
		{1, []astro.Vec3{{X: 8}, {X: 8}}},
		{2, []astro.Vec3{{X: 8}, {X: -12}, {X: 8}}},
	}
	for _, tt := range tests {
		pts := SamplePath(10, 0.2, tt.segments)
		if len(pts) != tt.segments+1 {
			t.Fatalf("segments=%d: len = %d, want %d", tt.segments, len(pts), tt.segments+1)
		}
		if pts[0] != pts[tt.segments] {
			t.Errorf("segments=%d: first %v != last %v", tt.segments, pts[0], pts[tt.segments])
		}
		for i, w := range tt.want {
			if math.Abs(pts[i].X-w.X) > 1e-6 || math.Abs(pts[i].Y) > 1e-6 || math.Abs(pts[i].Z) > 1e-6 {
				t.Errorf("segments=%d: point %d = %v, want %v", tt.segments, i, pts[i], w)
			}
		}
	}
}

func TestSamplePathNonPositiveSegments(t *testing.T) {
	for _, n := range []int{-5, 0} {
		if got := len(SamplePath(10, 0, n)); got != 2 {
			t.Errorf("SamplePath(segments=%d) len = %d, want 2", n, got)
		}
	}
}

func TestPathCache(t *testing.T) {
	c := NewPathCache()

	a := c.Get(18, 0.017, DefaultSegments)
	b := c.Get(18, 0.017, DefaultSegments)
	if &a[0] != &b[0] {
		t.Error("expected cached slice on second Get")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	c.Get(20, 0.017, DefaultSegments)
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	c.Prune(map[PathKey]bool{{Radius: 20, Eccentricity: 0.017, Segments: DefaultSegments}: true})
	if c.Len() != 1 {
		t.Errorf("Len after prune = %d, want 1", c.Len())
	}
}
