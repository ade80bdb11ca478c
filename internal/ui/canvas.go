package ui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/orbix/internal/astro"
	"github.com/litescript/orbix/internal/camera"
	"github.com/litescript/orbix/internal/scene"
	"github.com/litescript/orbix/internal/shading"
)

// Projection selects how the canvas maps the scene onto the terminal.
type Projection int

const (
	// ProjectPerspective looks through the scene camera.
	ProjectPerspective Projection = iota
	// ProjectMap is a top-down chart of the orbital plane.
	ProjectMap
)

// String returns the projection name shown in the HUD.
func (p Projection) String() string {
	if p == ProjectMap {
		return "map"
	}
	return "3d"
}

// LabelMode controls which bodies get text labels.
type LabelMode int

const (
	LabelNone LabelMode = iota
	LabelFocused
	LabelAll
)

// String returns the label mode name shown in the HUD.
func (l LabelMode) String() string {
	switch l {
	case LabelNone:
		return "off"
	case LabelFocused:
		return "focus"
	default:
		return "all"
	}
}

// terminal cells are roughly twice as tall as they are wide
const cellAspect = 0.5

// CanvasConfig holds the view settings a Canvas renders with.
type CanvasConfig struct {
	Width, Height int
	Projection    Projection
	Map           astro.ProjectionConfig
	PanX, PanY    float64
	Labels        LabelMode
	Stars         bool
}

type cell struct {
	ch    rune
	color string
	bold  bool
	depth float64
}

type hit struct {
	name   string
	x, y   float64
	radius float64 // in columns
}

// Canvas rasterizes scene frames into coloured terminal cells.
// It implements scene.Renderer.
type Canvas struct {
	cfg   CanvasConfig
	cells [][]cell
	hits  []hit
}

var _ scene.Renderer = (*Canvas)(nil)

// NewCanvas creates a canvas of the configured size.
func NewCanvas(cfg CanvasConfig) *Canvas {
	if cfg.Width < 1 {
		cfg.Width = 1
	}
	if cfg.Height < 1 {
		cfg.Height = 1
	}
	if cfg.Map.Scale == 0 {
		cfg.Map = astro.DefaultProjectionConfig()
	}
	c := &Canvas{cfg: cfg}
	c.cells = make([][]cell, cfg.Height)
	for y := range c.cells {
		c.cells[y] = make([]cell, cfg.Width)
	}
	c.clear()
	return c
}

func (c *Canvas) clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{ch: ' ', depth: math.Inf(1)}
		}
	}
	c.hits = c.hits[:0]
}

// Render draws one frame.
func (c *Canvas) Render(f scene.Frame) {
	c.clear()
	if c.cfg.Projection == ProjectMap {
		c.renderMap(f)
	} else {
		c.renderPerspective(f)
	}
	c.renderLabels(f.Selected)
}

// plot writes a glyph if nothing nearer already occupies the cell.
func (c *Canvas) plot(x, y int, ch rune, color string, depth float64) bool {
	if ch == ' ' || y < 0 || y >= len(c.cells) || x < 0 || x >= len(c.cells[y]) {
		return false
	}
	if depth >= c.cells[y][x].depth {
		return false
	}
	c.cells[y][x] = cell{ch: ch, color: color, depth: depth}
	return true
}

func (c *Canvas) viewport() camera.Viewport {
	vp := camera.NewViewport(c.cfg.Width, c.cfg.Height)
	vp.CellAspect = cellAspect
	return vp
}

func (c *Canvas) renderPerspective(f scene.Frame) {
	vp := c.viewport()
	basis := camera.BasisOf(f.Camera)
	eye := f.Camera.Position
	project := func(v astro.Vec3) camera.ScreenPoint {
		return camera.ProjectWith(basis, eye, vp, v)
	}

	if c.cfg.Stars {
		for _, s := range f.Stars {
			sp := project(s.Position)
			if sp.Visible {
				c.plot(int(sp.X), int(sp.Y), starGlyph(s.Brightness), "236", math.MaxFloat64)
			}
		}
	}

	for _, line := range f.Orbits {
		for i := 1; i < len(line.Points); i++ {
			c.segment(project(line.Points[i-1]), project(line.Points[i]), '·', line.Color)
		}
	}

	for _, rock := range f.Belt {
		if sp := project(rock); sp.Visible {
			c.plot(int(sp.X), int(sp.Y), '.', "240", sp.Depth)
		}
	}

	light := shading.LightLevel(f.Ambient)
	for _, p := range f.Placements {
		if p.Spec.Ring != nil {
			c.ring(p, project)
		}
		sp := project(p.Position)
		if sp.Depth <= 0 {
			continue
		}
		rows := camera.ProjectedRadius(p.Scale, sp.Depth, vp)
		c.hits = append(c.hits, hit{name: p.Name, x: sp.X, y: sp.Y, radius: math.Max(rows/cellAspect, 1)})
		if rows < 0.75 {
			if sp.Visible {
				day, _ := p.Surface()
				c.plot(int(sp.X), int(sp.Y), p.Spec.Glyph, day.Hex(), sp.Depth)
			}
			continue
		}
		c.disc(p, sp, rows, basis, light, f.SunPulse)
	}
}

// disc shades a body as a lit sphere of the given on-screen radius in rows.
func (c *Canvas) disc(p scene.Placement, sp camera.ScreenPoint, rows float64, b camera.Basis, light, pulse float64) {
	day, night := p.Surface()
	cols := rows / cellAspect
	toSun := p.Position.Scale(-1)

	x0, x1 := int(math.Floor(sp.X-cols)), int(math.Ceil(sp.X+cols))
	y0, y1 := int(math.Floor(sp.Y-rows)), int(math.Ceil(sp.Y+rows))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			nx := (float64(x) + 0.5 - sp.X) / cols
			ny := -(float64(y) + 0.5 - sp.Y) / rows
			d2 := nx*nx + ny*ny
			if d2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - d2)
			depth := sp.Depth - nz*p.Scale

			var col colorful.Color
			var brightness float64
			if p.Spec.Kind == scene.KindStar {
				col = colorful.Color{R: day.R * pulse, G: day.G * pulse, B: day.B * pulse}.Clamped()
				brightness = 1 - 0.4*d2
			} else {
				normal := b.Right.Scale(nx).Add(b.Up.Scale(ny)).Sub(b.Forward.Scale(nz))
				factor := p.Spec.Terrain.DayFactor(normal, toSun)
				col = p.Spec.Terrain.Shade(day, night, factor, light)
				brightness = math.Max(shading.Luminance(col), 0.12)
			}
			c.plot(x, y, rune(shading.Glyph(brightness)), col.Hex(), depth)
		}
	}
}

// ring draws a flat ring in the body's tilted equatorial plane.
func (c *Canvas) ring(p scene.Placement, project func(astro.Vec3) camera.ScreenPoint) {
	day, _ := p.Surface()
	color := day.BlendRgb(colorful.Color{R: 0.5, G: 0.5, B: 0.5}, 0.4).Hex()
	const steps = 96
	for _, k := range []float64{p.Spec.Ring.Inner, (p.Spec.Ring.Inner + p.Spec.Ring.Outer) / 2, p.Spec.Ring.Outer} {
		r := k * p.Scale
		for i := 0; i < steps; i++ {
			a := float64(i) / steps * 2 * math.Pi
			local := astro.Vec3{X: r * math.Cos(a), Z: r * math.Sin(a)}.RotateY(p.Spin)
			sp := project(p.Position.Add(local.RotateX(p.Tilt)))
			if sp.Visible {
				c.plot(int(sp.X), int(sp.Y), '-', color, sp.Depth)
			}
		}
	}
}

// segment draws a straight run of glyphs between two projected points.
func (c *Canvas) segment(a, b camera.ScreenPoint, ch rune, color string) {
	if a.Depth <= 0 || b.Depth <= 0 || (!a.Visible && !b.Visible) {
		return
	}
	steps := int(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)))
	if steps < 1 {
		steps = 1
	}
	if steps > 400 {
		steps = 400
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(int(a.X+(b.X-a.X)*t), int(a.Y+(b.Y-a.Y)*t), ch, color, a.Depth+(b.Depth-a.Depth)*t)
	}
}

// mapPoint converts a scene position to map cell coordinates.
func (c *Canvas) mapPoint(v astro.Vec3) (float64, float64) {
	cx := float64(c.cfg.Width) / 2
	cy := float64(c.cfg.Height) / 2
	maxR := math.Min(cx, cy/cellAspect) * 0.9

	proj := astro.ProjectTopDown(v, c.cfg.Map)
	return cx + (proj.X+c.cfg.PanX)*maxR, cy - (proj.Y+c.cfg.PanY)*maxR*cellAspect
}

func (c *Canvas) renderMap(f scene.Frame) {
	if c.cfg.Stars {
		// Orthographic view of the celestial sphere from above.
		hw, hh := float64(c.cfg.Width)/2, float64(c.cfg.Height)/2
		for _, s := range f.Stars {
			u := s.Position.Normalized()
			c.plot(int(hw+u.X*hw), int(hh+u.Z*hh), starGlyph(s.Brightness), "236", math.MaxFloat64)
		}
	}

	for _, line := range f.Orbits {
		for i := 1; i < len(line.Points); i++ {
			ax, ay := c.mapPoint(line.Points[i-1])
			bx, by := c.mapPoint(line.Points[i])
			c.segment(
				camera.ScreenPoint{X: ax, Y: ay, Depth: 1e6, Visible: true},
				camera.ScreenPoint{X: bx, Y: by, Depth: 1e6, Visible: true},
				'·', line.Color)
		}
	}

	for _, rock := range f.Belt {
		x, y := c.mapPoint(rock)
		c.plot(int(x), int(y), '.', "240", 1e5)
	}

	// Draw the sun last so it is never hidden.
	placements := append([]scene.Placement(nil), f.Placements...)
	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].Spec.Kind != scene.KindStar && placements[j].Spec.Kind == scene.KindStar
	})
	for i, p := range placements {
		x, y := c.mapPoint(p.Position)
		day, _ := p.Surface()
		c.plot(int(x), int(y), p.Spec.Glyph, day.Hex(), float64(-i))
		c.hits = append(c.hits, hit{name: p.Name, x: x, y: y, radius: 1})
	}
}

func (c *Canvas) renderLabels(selected string) {
	if c.cfg.Labels == LabelNone {
		return
	}
	for _, h := range c.hits {
		focused := h.name == selected
		if c.cfg.Labels == LabelFocused && !focused {
			continue
		}
		text := h.name
		if focused {
			text = "◄ " + h.name
		}
		y := int(h.y)
		x := int(h.x+h.radius) + 2
		if y < 0 || y >= len(c.cells) {
			continue
		}
		for i, r := range []rune(text) {
			xx := x + i
			if xx >= len(c.cells[y]) {
				break
			}
			if xx < 0 {
				continue
			}
			if cur := c.cells[y][xx].ch; cur == ' ' || cur == '·' || cur == '.' {
				c.cells[y][xx] = cell{ch: r, color: "249", bold: focused, depth: 0}
			}
		}
	}
}

// HitTest returns the nearest body drawn at or around cell (x, y).
func (c *Canvas) HitTest(x, y int) (string, bool) {
	best, bestD := "", math.Inf(1)
	px, py := float64(x)+0.5, float64(y)+0.5
	for _, h := range c.hits {
		dx := (px - h.x) / (h.radius + 1)
		dy := (py - h.y) / ((h.radius+1)*cellAspect + 0.5)
		d := dx*dx + dy*dy
		if d <= 1 && d < bestD {
			best, bestD = h.name, d
		}
	}
	return best, best != ""
}

// At returns the glyph at a cell, for tests and the headless dump.
func (c *Canvas) At(x, y int) rune {
	if y < 0 || y >= len(c.cells) || x < 0 || x >= len(c.cells[y]) {
		return 0
	}
	return c.cells[y][x].ch
}

// Plain returns the canvas without colour codes.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for _, row := range c.cells {
		for _, cl := range row {
			b.WriteRune(cl.ch)
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// String renders the canvas with colours, batching runs of equal style.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		var run []rune
		var runColor string
		var runBold bool
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(string(run))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Bold(runBold).Render(string(run)))
			}
			run = run[:0]
		}
		for _, cl := range row {
			color := cl.color
			if cl.ch == ' ' {
				color = ""
			}
			if color != runColor || cl.bold != runBold {
				flush()
				runColor, runBold = color, cl.bold
			}
			run = append(run, cl.ch)
		}
		flush()
		b.WriteRune('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// starGlyph picks a subtle glyph by brightness; faint stars are skipped.
func starGlyph(brightness float64) rune {
	switch {
	case brightness >= 0.8:
		return '∗'
	case brightness >= 0.45:
		return '·'
	case brightness >= 0.2:
		return '˙'
	default:
		return ' '
	}
}
