// Package render3d draws composed scene frames in a raylib desktop window.
package render3d

import (
	"context"
	"errors"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/orbix/internal/assets"
	"github.com/litescript/orbix/internal/astro"
	"github.com/litescript/orbix/internal/camera"
	"github.com/litescript/orbix/internal/logging"
	"github.com/litescript/orbix/internal/scene"
	"github.com/litescript/orbix/internal/shading"
)

const (
	sphereRings  = 24
	sphereSlices = 32
	fovy         = 45
	orbitStep    = 0.03
	hudFontSize  = 18
)

// Config holds window configuration.
type Config struct {
	Width, Height int
	Title         string
	FPS           int
}

// DefaultConfig returns a 1280x720 window at 60 fps.
func DefaultConfig() Config {
	return Config{Width: 1280, Height: 720, Title: "Orbix", FPS: 60}
}

// Window owns the raylib window and the GPU resources for one scene.
// All methods must run on the goroutine that called Run.
type Window struct {
	cfg      Config
	composer *scene.Composer
	log      *logging.Logger

	cam      rl.Camera3D
	frame    scene.Frame
	sphere   rl.Mesh
	plain    rl.Material
	textured rl.Material
	meshDone bool
	textures map[*assets.Asset]rl.Texture2D
	showHUD  bool
}

var _ scene.Renderer = (*Window)(nil)

// New creates a window renderer for composer. It panics without a composer.
func New(composer *scene.Composer, cfg Config, log *logging.Logger) *Window {
	if composer == nil {
		panic("render3d: New requires a composer")
	}
	if log == nil {
		log = logging.Discard()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		d := DefaultConfig()
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultConfig().FPS
	}
	w := &Window{
		cfg:      cfg,
		composer: composer,
		log:      log,
		textures: make(map[*assets.Asset]rl.Texture2D),
		showHUD:  true,
	}
	w.cam.Up = rl.NewVector3(0, 1, 0)
	w.cam.Fovy = fovy
	w.cam.Projection = rl.CameraPerspective
	return w
}

// Run opens the window and drives the composer until the window closes or ctx is done.
func (w *Window) Run(ctx context.Context) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.cfg.Width), int32(w.cfg.Height), w.cfg.Title)
	defer rl.CloseWindow()
	defer w.release()

	if !rl.IsWindowReady() {
		return errors.New("render3d: window did not open")
	}
	rl.SetTargetFPS(int32(w.cfg.FPS))
	w.log.Info("window open (%dx%d)", w.cfg.Width, w.cfg.Height)

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		w.handleInput()
		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		w.composer.Tick(dt, w)
	}
	return nil
}

// handleInput maps keys and the mouse onto composer operations.
func (w *Window) handleInput() {
	f := w.composer.Framing()
	switch {
	case rl.IsKeyDown(rl.KeyLeft):
		f.Orbit(-orbitStep, 0)
	case rl.IsKeyDown(rl.KeyRight):
		f.Orbit(orbitStep, 0)
	case rl.IsKeyDown(rl.KeyUp):
		f.Orbit(0, orbitStep/2)
	case rl.IsKeyDown(rl.KeyDown):
		f.Orbit(0, -orbitStep/2)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		f.Zoom(1 - float64(wheel)*0.1)
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace), rl.IsKeyPressed(rl.KeyP):
		w.composer.TogglePause()
	case rl.IsKeyPressed(rl.KeyO):
		w.composer.ToggleOrbits()
	case rl.IsKeyPressed(rl.KeyA):
		w.composer.RevealAll()
	case rl.IsKeyPressed(rl.KeyC):
		w.composer.Navigate(camera.Overview)
	case rl.IsKeyPressed(rl.KeyTab):
		w.composer.Navigate(nextBody(w.composer.Selected()))
	case rl.IsKeyPressed(rl.KeyH):
		w.showHUD = !w.showHUD
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if name, ok := w.pick(rl.GetMousePosition()); ok {
			w.composer.OnBodyClicked(name)
		}
	}
}

// nextBody cycles through the body table after current.
func nextBody(current string) string {
	bodies := scene.Bodies()
	for i, b := range bodies {
		if b.Name == current {
			return bodies[(i+1)%len(bodies)].Name
		}
	}
	return bodies[0].Name
}

// pick returns the nearest body under a screen point in the last drawn frame.
func (w *Window) pick(at rl.Vector2) (string, bool) {
	ray := rl.GetScreenToWorldRay(at, w.cam)
	best, bestD := "", float32(0)
	for _, p := range w.frame.Placements {
		hit := rl.GetRayCollisionSphere(ray, vec(p.Position), float32(p.Scale))
		if hit.Hit && (best == "" || hit.Distance < bestD) {
			best, bestD = p.Name, hit.Distance
		}
	}
	return best, best != ""
}

// Render draws one frame. It implements scene.Renderer.
func (w *Window) Render(f scene.Frame) {
	w.frame = f
	w.ensureMeshes()
	w.cam.Position = vec(f.Camera.Position)
	w.cam.Target = vec(f.Camera.LookAt)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.BeginMode3D(w.cam)
	for _, s := range f.Stars {
		v := uint8(80 + s.Brightness*175)
		rl.DrawPoint3D(vec(s.Position), rl.NewColor(v, v, v, 255))
	}
	for _, line := range f.Orbits {
		c := rl.Fade(color(shading.MustHex(line.Color)), 0.6)
		for i := 1; i < len(line.Points); i++ {
			rl.DrawLine3D(vec(line.Points[i-1]), vec(line.Points[i]), c)
		}
	}
	rockColor := rl.NewColor(136, 136, 136, 255)
	for _, rock := range f.Belt {
		rl.DrawCube(vec(rock), 0.08, 0.08, 0.08, rockColor)
	}

	light := shading.LightLevel(f.Ambient)
	for _, p := range f.Placements {
		w.drawBody(p, light, f.SunPulse)
	}
	rl.EndMode3D()

	if w.showHUD {
		w.drawHUD(f)
	}
	rl.EndDrawing()
}

// drawBody draws a textured or flat-coloured sphere, plus its ring.
func (w *Window) drawBody(p scene.Placement, light, pulse float64) {
	r := float32(p.Scale)
	transform := rl.MatrixMultiply(
		rl.MatrixMultiply(
			rl.MatrixMultiply(rl.MatrixScale(r, r, r), rl.MatrixRotateY(float32(p.Spin))),
			rl.MatrixRotateX(float32(p.Tilt))),
		rl.MatrixTranslate(float32(p.Position.X), float32(p.Position.Y), float32(p.Position.Z)))

	tint := light
	if p.Spec.Kind == scene.KindStar {
		tint = 1 + 0.1*pulse
	}

	if tex, ok := w.texture(p.Asset); ok {
		rl.SetMaterialTexture(&w.textured, rl.MapAlbedo, tex)
		if albedo := w.textured.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = color(colorful.Color{R: tint, G: tint, B: tint})
		}
		rl.DrawMesh(w.sphere, w.textured, transform)
	} else {
		day, _ := p.Surface()
		if albedo := w.plain.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = color(colorful.Color{R: day.R * tint, G: day.G * tint, B: day.B * tint})
		}
		rl.DrawMesh(w.sphere, w.plain, transform)
	}

	if p.Spec.Ring != nil {
		ringColor := rl.Fade(color(shading.MustHex(p.Spec.BaseColor)), 0.7)
		for s := p.Spec.Ring.Inner; s <= p.Spec.Ring.Outer; s += 0.1 {
			// DrawCircle3D draws in the XY plane; tip it onto the tilted equator.
			rl.DrawCircle3D(vec(p.Position), float32(p.Scale*s), rl.NewVector3(1, 0, 0),
				float32(90+astro.RadToDeg(p.Tilt)), ringColor)
		}
	}
}

func (w *Window) drawHUD(f scene.Frame) {
	lines := []string{
		fmt.Sprintf("t=%.1f  x%.1f", f.SimTime, f.TimeScale),
		fmt.Sprintf("camera: %s (%s)", f.CameraTarget, f.CameraState),
	}
	if f.Paused {
		lines[0] = fmt.Sprintf("t=%.1f  paused", f.SimTime)
	}
	if f.Selected != "" {
		lines = append(lines, "selected: "+f.Selected)
	}
	lines = append(lines, "arrows orbit | wheel zoom | click select | tab next | c overview | o orbits | space pause")
	for i, l := range lines {
		rl.DrawText(l, 10, int32(10+i*(hudFontSize+4)), hudFontSize, rl.LightGray)
	}
}

// ensureMeshes creates the shared sphere mesh and materials once the GL context exists.
func (w *Window) ensureMeshes() {
	if w.meshDone {
		return
	}
	w.sphere = rl.GenMeshSphere(1, sphereRings, sphereSlices)
	w.plain = rl.LoadMaterialDefault()
	w.textured = rl.LoadMaterialDefault()
	w.meshDone = true
}

// texture returns the GPU texture for a ready asset, uploading it on first use.
func (w *Window) texture(a *assets.Asset) (rl.Texture2D, bool) {
	if a == nil {
		return rl.Texture2D{}, false
	}
	if tex, ok := w.textures[a]; ok {
		return tex, rl.IsTextureValid(tex)
	}
	h, ok := a.Handle()
	if !ok {
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(h.Path)
	w.textures[a] = tex
	if !rl.IsTextureValid(tex) {
		w.log.Warn("texture %s could not be uploaded", h.Path)
		return tex, false
	}
	return tex, true
}

func (w *Window) release() {
	for _, tex := range w.textures {
		if rl.IsTextureValid(tex) {
			rl.UnloadTexture(tex)
		}
	}
	if w.meshDone {
		rl.UnloadMesh(&w.sphere)
	}
}

func vec(v astro.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func color(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, 255)
}
