package camera

import (
	"math"

	"github.com/litescript/orbix/internal/astro"
)

// nearPlane is the closest depth that still projects.
const nearPlane = 0.1

// Viewport describes the screen a Pose is projected onto.
type Viewport struct {
	Width, Height int
	FovY          float64 // vertical field of view, radians
	CellAspect    float64 // width/height of one screen cell (0.5 for terminal glyphs)
}

// DefaultFovY matches a 50° perspective camera.
var DefaultFovY = astro.DegToRad(50)

// NewViewport returns a viewport with the default field of view and square cells.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height, FovY: DefaultFovY, CellAspect: 1}
}

// ScreenPoint is a projected world point.
type ScreenPoint struct {
	X, Y    float64 // screen coordinates, origin top-left
	Depth   float64 // distance along the view axis
	Visible bool    // in front of the camera and inside the viewport
}

// Basis is the camera's orthonormal frame.
type Basis struct {
	Forward, Right, Up astro.Vec3
}

// BasisOf builds the view basis for a pose with world up = +Y.
func BasisOf(p Pose) Basis {
	forward := p.LookAt.Sub(p.Position).Normalized()
	if forward == (astro.Vec3{}) {
		forward = astro.Vec3{Z: -1}
	}
	worldUp := astro.Vec3{Y: 1}
	right := forward.Cross(worldUp).Normalized()
	if right == (astro.Vec3{}) {
		// Looking straight up or down.
		right = forward.Cross(astro.Vec3{Z: -1}).Normalized()
	}
	return Basis{
		Forward: forward,
		Right:   right,
		Up:      right.Cross(forward),
	}
}

// Project maps a world point onto the viewport.
func Project(p Pose, v Viewport, world astro.Vec3) ScreenPoint {
	return ProjectWith(BasisOf(p), p.Position, v, world)
}

// ProjectWith is Project with a precomputed basis, for projecting many points per frame.
func ProjectWith(b Basis, eye astro.Vec3, v Viewport, world astro.Vec3) ScreenPoint {
	rel := world.Sub(eye)
	depth := rel.Dot(b.Forward)
	if depth <= nearPlane || v.Width <= 0 || v.Height <= 0 {
		return ScreenPoint{Depth: depth}
	}

	f := 1 / math.Tan(v.FovY/2)
	aspect := v.aspect()

	ndcX := rel.Dot(b.Right) / depth * f / aspect
	ndcY := rel.Dot(b.Up) / depth * f

	x := (ndcX + 1) / 2 * float64(v.Width)
	y := (1 - ndcY) / 2 * float64(v.Height)
	return ScreenPoint{
		X:       x,
		Y:       y,
		Depth:   depth,
		Visible: x >= 0 && x < float64(v.Width) && y >= 0 && y < float64(v.Height),
	}
}

// ProjectedRadius returns the on-screen radius, in rows, of a sphere at depth.
func ProjectedRadius(radius, depth float64, v Viewport) float64 {
	if depth <= nearPlane {
		return 0
	}
	f := 1 / math.Tan(v.FovY/2)
	return radius / depth * f * float64(v.Height) / 2
}

func (v Viewport) aspect() float64 {
	cell := v.CellAspect
	if cell <= 0 {
		cell = 1
	}
	return float64(v.Width) * cell / float64(v.Height)
}
