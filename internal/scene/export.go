package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/litescript/orbix/internal/astro"
	"github.com/litescript/orbix/internal/playground"
)

// SnapshotExport is the JSON-serializable form of one frame.
type SnapshotExport struct {
	SimTime    float64            `json:"sim_time"`
	TimeScale  float64            `json:"time_scale"`
	Stage      int                `json:"stage"`
	Camera     CameraExport       `json:"camera"`
	Bodies     []BodyExport       `json:"bodies"`
	Parameters map[string]float64 `json:"parameters"`
	BeltRocks  int                `json:"belt_rocks"`
}

// CameraExport is a JSON-friendly camera pose.
type CameraExport struct {
	Target   string     `json:"target"`
	State    string     `json:"state"`
	Position astro.Vec3 `json:"position"`
	LookAt   astro.Vec3 `json:"look_at"`
}

// BodyExport is a JSON-friendly placement.
type BodyExport struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	Parent   string     `json:"parent,omitempty"`
	Position astro.Vec3 `json:"position"`
	Phase    float64    `json:"phase_rad"`
	Radius   float64    `json:"radius"`
	TiltDeg  float64    `json:"tilt_deg"`
	Spin     float64    `json:"spin_rad"`
	Size     float64    `json:"size"`
	Texture  string     `json:"texture"`
}

// ExportSnapshot converts a frame and the values it was built from.
func ExportSnapshot(f Frame, values playground.Values) *SnapshotExport {
	export := &SnapshotExport{
		SimTime:   f.SimTime,
		TimeScale: f.TimeScale,
		Stage:     f.Stage,
		Camera: CameraExport{
			Target:   f.CameraTarget,
			State:    f.CameraState.String(),
			Position: f.Camera.Position,
			LookAt:   f.Camera.LookAt,
		},
		Parameters: make(map[string]float64, len(values)),
		BeltRocks:  len(f.Belt),
	}

	for _, p := range f.Placements {
		export.Bodies = append(export.Bodies, BodyExport{
			Name:     p.Name,
			Kind:     p.Spec.Kind.String(),
			Parent:   p.Spec.Parent,
			Position: p.Position,
			Phase:    p.Phase,
			Radius:   p.Radius,
			TiltDeg:  astro.RadToDeg(p.Tilt),
			Spin:     p.Spin,
			Size:     p.Scale,
			Texture:  p.Asset.State().String(),
		})
	}
	for k, v := range values {
		export.Parameters[string(k)] = v
	}
	return export
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSummaryTable writes a text table of body positions.
func WriteSummaryTable(w io.Writer, f Frame) {
	fmt.Fprintf(w, "Solar system @ t=%.3f (scale %.1fx)\n", f.SimTime, f.TimeScale)
	fmt.Fprintln(w, strings.Repeat("─", 78))

	if len(f.Placements) == 0 {
		fmt.Fprintln(w, "No bodies revealed")
		return
	}

	fmt.Fprintf(w, "%-8s %-7s %9s %9s %9s %8s %8s %7s\n",
		"Body", "Kind", "X", "Y", "Z", "Radius", "Phase°", "Tilt°")
	fmt.Fprintln(w, strings.Repeat("─", 78))

	for _, p := range f.Placements {
		fmt.Fprintf(w, "%-8s %-7s %9.3f %9.3f %9.3f %8.3f %8.2f %7.2f\n",
			p.Name,
			p.Spec.Kind,
			p.Position.X, p.Position.Y, p.Position.Z,
			p.Radius,
			astro.RadToDeg(astro.NormalizeAngle(p.Phase)),
			astro.RadToDeg(p.Tilt),
		)
	}

	fmt.Fprintf(w, "\nTotal: %d bodies, %d asteroids\n", len(f.Placements), len(f.Belt))
}

// WritePath writes an orbit polyline as "x y z" lines.
func WritePath(w io.Writer, points []astro.Vec3) {
	for _, p := range points {
		fmt.Fprintf(w, "%.6f %.6f %.6f\n", p.X, p.Y, p.Z)
	}
}
