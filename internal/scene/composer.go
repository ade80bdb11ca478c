// Package scene composes the solar system each frame: it advances the clock,
// poses every revealed body, and hands the result to a renderer.
package scene

import (
	"fmt"
	"sync"
	"time"

	"github.com/litescript/orbix/internal/assets"
	"github.com/litescript/orbix/internal/astro"
	"github.com/litescript/orbix/internal/camera"
	"github.com/litescript/orbix/internal/logging"
	"github.com/litescript/orbix/internal/orbit"
	"github.com/litescript/orbix/internal/playground"
	"github.com/litescript/orbix/internal/shading"
	"github.com/litescript/orbix/internal/simclock"
)

// Placement is the per-frame render instruction for one body.
type Placement struct {
	Spec     BodySpec
	Name     string
	Position astro.Vec3 // world position
	Phase    float64    // orbital angle
	Radius   float64    // distance from the parent
	Tilt     float64    // body-frame rotation about X, radians
	Spin     float64    // self-rotation about the tilted Y axis, radians
	Scale    float64    // sphere radius
	Asset    *assets.Asset
	Night    *assets.Asset
}

// OrbitLine is a closed polyline for one planet.
type OrbitLine struct {
	Name   string
	Color  string
	Points []astro.Vec3
}

// Frame is everything a renderer needs for one frame.
type Frame struct {
	SimTime      float64
	TimeScale    float64
	Paused       bool
	Stage        int
	Placements   []Placement
	Orbits       []OrbitLine
	Belt         []astro.Vec3
	Stars        []astro.BackdropStar
	Camera       camera.Pose
	CameraState  camera.State
	CameraTarget string
	Selected     string
	Ambient      float64
	SunPulse     float64
}

// Placement returns the named placement if that body is visible this frame.
func (f Frame) Placement(name string) (Placement, bool) {
	for _, p := range f.Placements {
		if p.Name == name {
			return p, true
		}
	}
	return Placement{}, false
}

// PlanetsVisible counts revealed planets.
func (f Frame) PlanetsVisible() int {
	n := 0
	for _, p := range f.Placements {
		if p.Spec.Kind == KindPlanet {
			n++
		}
	}
	return n
}

// Renderer draws a frame.
type Renderer interface {
	Render(Frame)
}

// Config holds composer configuration.
type Config struct {
	Rotation      orbit.RotationMode
	StageInterval time.Duration
	BeltCount     int
	BeltSeed      int64
	StarSeed      int64
	Segments      int
	ShowOrbits    bool
	Clock         simclock.Config
	Camera        camera.Config
}

// DefaultConfig returns the default composer configuration.
func DefaultConfig() Config {
	return Config{
		Rotation:      orbit.RotationPerFrame,
		StageInterval: DefaultStageInterval,
		BeltCount:     DefaultBeltCount,
		BeltSeed:      1,
		StarSeed:      7,
		Segments:      orbit.DefaultSegments,
		ShowOrbits:    true,
		Clock:         simclock.DefaultConfig(),
		Camera:        camera.DefaultConfig(),
	}
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Composer) { c.log = l }
}

// WithLoader enables texture loading.
func WithLoader(l *assets.Loader) Option {
	return func(c *Composer) { c.loader = l }
}

// Composer owns the bodies, the clock and the camera framing.
// Step must be called from a single goroutine; the other methods are safe
// from any goroutine.
type Composer struct {
	cfg     Config
	store   *playground.Store
	clock   *simclock.Clock
	framing *camera.Framing
	reveal  *Reveal
	loader  *assets.Loader
	log     *logging.Logger

	specs    []BodySpec
	spinners map[string]*orbit.Spinner
	textures map[string][2]*assets.Asset
	paths    *orbit.PathCache
	belt     *Belt
	stars    []astro.BackdropStar
	starN    int
	stage    int

	mu          sync.Mutex
	selected    string
	listeners   []func(string)
	showOrbits  bool
	resumeScale float64
}

// NewComposer creates a composer over store. It panics if store is nil.
func NewComposer(store *playground.Store, cfg Config, opts ...Option) *Composer {
	if store == nil {
		panic("scene: NewComposer requires a playground store")
	}
	if cfg.Segments <= 0 {
		cfg.Segments = orbit.DefaultSegments
	}

	c := &Composer{
		cfg:        cfg,
		store:      store,
		clock:      simclock.New(cfg.Clock),
		framing:    camera.NewFraming(cfg.Camera),
		reveal:     NewReveal(cfg.StageInterval),
		log:        logging.Discard(),
		specs:      Bodies(),
		spinners:   make(map[string]*orbit.Spinner),
		textures:   make(map[string][2]*assets.Asset),
		paths:      orbit.NewPathCache(),
		showOrbits: cfg.ShowOrbits,
		stage:      -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, s := range c.specs {
		c.spinners[s.Name] = &orbit.Spinner{}
	}

	v := store.Snapshot()
	c.clock.SetScale(v.Get(playground.TimeScale))
	inner, outer := BeltBounds(v.Get(playground.OrbitKey("Mars")), v.Get(playground.OrbitKey("Jupiter")))
	c.belt = NewBelt(inner, outer, cfg.BeltCount, cfg.BeltSeed)
	return c
}

// Step advances one frame by wall-clock dt and returns the composed frame.
func (c *Composer) Step(dt time.Duration) Frame {
	values := c.store.Snapshot()

	c.clock.SetScale(values.Get(playground.TimeScale))
	simTime := c.clock.Advance(dt)
	scale := c.clock.Scale()

	stage := c.reveal.Advance(dt)
	if stage != c.stage {
		c.log.Debug("reveal stage %d: %s", stage, Stages[stage].Label)
		c.stage = stage
	}

	frame := Frame{
		SimTime:   simTime,
		TimeScale: scale,
		Paused:    c.clock.Paused(),
		Stage:     stage,
		Ambient:   values.Get(playground.AmbientLight),
		SunPulse:  shading.SunPulse(simTime),
	}

	world := make(map[string]Placement, len(c.specs))
	for _, spec := range c.specs {
		if spec.Stage > stage {
			continue
		}
		p := c.place(spec, values, simTime, scale, world)
		world[spec.Name] = p
		frame.Placements = append(frame.Placements, p)
	}

	c.mu.Lock()
	showOrbits := c.showOrbits
	frame.Selected = c.selected
	c.mu.Unlock()

	if showOrbits {
		keep := make(map[orbit.PathKey]bool)
		for _, p := range frame.Placements {
			if !p.Spec.HasOrbitLine() {
				continue
			}
			radius := p.Spec.Params(values).OrbitRadius
			keep[orbit.PathKey{Radius: radius, Eccentricity: p.Spec.Eccentricity, Segments: c.cfg.Segments}] = true
			frame.Orbits = append(frame.Orbits, OrbitLine{
				Name:   p.Name,
				Color:  p.Spec.OrbitColor,
				Points: c.paths.Get(radius, p.Spec.Eccentricity, c.cfg.Segments),
			})
		}
		// Slider drags leave stale radii behind.
		if c.paths.Len() > 4*len(keep) {
			c.paths.Prune(keep)
		}
	}

	if stage >= BeltStage {
		inner, outer := BeltBounds(values.Get(playground.OrbitKey("Mars")), values.Get(playground.OrbitKey("Jupiter")))
		if c.belt.Resize(inner, outer) {
			c.log.Debug("asteroid belt regenerated: %.1f..%.1f", inner, outer)
		}
		c.belt.Advance(scale)
		frame.Belt = c.belt.Positions()
	}

	if n := int(values.Get(playground.StarfieldDensity)); n != c.starN || c.stars == nil {
		c.stars = astro.Starfield(astro.DefaultStarCatalog(), n, astro.CelestialSphereRadius, c.cfg.StarSeed)
		c.starN = n
	}
	frame.Stars = c.stars

	frame.Camera = c.framing.Step(dt)
	frame.CameraState = c.framing.State()
	frame.CameraTarget = c.framing.Target()
	return frame
}

func (c *Composer) place(spec BodySpec, values playground.Values, simTime, scale float64, world map[string]Placement) Placement {
	params := spec.Params(values)
	pose := orbit.ComputePose(simTime, params)
	spinner := c.spinners[spec.Name]

	p := Placement{
		Spec:     spec,
		Name:     spec.Name,
		Position: pose.Position,
		Phase:    pose.Phase,
		Radius:   pose.Radius,
		Tilt:     params.AxialTilt,
		Scale:    params.Size,
	}

	if spec.TidallyLocked {
		spinner.Angle = pose.Phase
	} else {
		spinner.Step(c.cfg.Rotation, params.RotationSpeed, scale, simTime)
	}
	p.Spin = spinner.Angle

	if parent, ok := world[spec.Parent]; ok {
		// Children ride in the parent's tilted frame.
		p.Position = parent.Position.Add(pose.Position.RotateX(parent.Tilt))
		p.Tilt = parent.Tilt
	}

	p.Asset, p.Night = c.texturesFor(spec)
	return p
}

func (c *Composer) texturesFor(spec BodySpec) (*assets.Asset, *assets.Asset) {
	if c.loader == nil {
		return nil, nil
	}
	if t, ok := c.textures[spec.Name]; ok {
		return t[0], t[1]
	}
	t := [2]*assets.Asset{
		c.loader.Load(spec.Terrain.DayTexture),
		c.loader.Load(spec.Terrain.NightTexture),
	}
	c.textures[spec.Name] = t
	return t[0], t[1]
}

// Tick steps the scene and hands the frame to r.
func (c *Composer) Tick(dt time.Duration, r Renderer) Frame {
	f := c.Step(dt)
	r.Render(f)
	return f
}

// OnBodyClicked records the selection and notifies subscribers.
func (c *Composer) OnBodyClicked(name string) {
	c.mu.Lock()
	c.selected = name
	listeners := c.listeners
	c.mu.Unlock()

	for _, l := range listeners {
		l(name)
	}
}

// ClearSelection deselects without notifying.
func (c *Composer) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = ""
}

// Selected returns the selected body name, or "".
func (c *Composer) Selected() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Subscribe registers a body-click listener.
func (c *Composer) Subscribe(fn func(name string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// FlyTo starts a camera transition. Returns the resolved target.
func (c *Composer) FlyTo(target string) string {
	resolved := c.framing.Request(target)
	c.log.Debug("camera -> %s", resolved)
	return resolved
}

// Navigate flies to target and toggles the selection: choosing the selected
// body again deselects it, and Overview always deselects.
// Returns the selection afterwards.
func (c *Composer) Navigate(target string) string {
	resolved := c.FlyTo(target)
	if resolved == camera.Overview || c.Selected() == resolved {
		c.ClearSelection()
		return ""
	}
	c.OnBodyClicked(resolved)
	return resolved
}

// UpdateParameter writes one playground value.
func (c *Composer) UpdateParameter(key playground.Key, value float64) error {
	if err := c.store.Update(key, value); err != nil {
		return fmt.Errorf("update %s: %w", key, err)
	}
	return nil
}

// ResetParameters restores every playground value to playground.Defaults(),
// including any values seeded from a preset at launch.
func (c *Composer) ResetParameters() {
	c.store.Reset()
	c.mu.Lock()
	c.resumeScale = 0
	c.mu.Unlock()
}

// TogglePause sets the time scale to 0, or restores the scale in use before the pause.
// Returns true if now paused.
func (c *Composer) TogglePause() bool {
	current := c.store.Get(playground.TimeScale)
	if current != 0 {
		c.mu.Lock()
		c.resumeScale = current
		c.mu.Unlock()
		if err := c.store.Update(playground.TimeScale, 0); err != nil {
			c.log.Debug("pause: %v", err)
		}
		return true
	}

	c.mu.Lock()
	resume := c.resumeScale
	c.mu.Unlock()
	if resume == 0 {
		resume = playground.Defaults()[playground.TimeScale]
	}
	if err := c.store.Update(playground.TimeScale, resume); err != nil {
		c.log.Debug("resume: %v", err)
	}
	return false
}

// ToggleOrbits shows or hides orbit lines. Returns the new visibility.
func (c *Composer) ToggleOrbits() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showOrbits = !c.showOrbits
	return c.showOrbits
}

// ShowOrbits reports orbit line visibility.
func (c *Composer) ShowOrbits() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showOrbits
}

// Seek jumps sim time, used for rendering a fixed instant.
func (c *Composer) Seek(simTime float64) {
	c.clock.Seek(simTime)
}

// RevealAll skips the progressive reveal.
func (c *Composer) RevealAll() {
	c.reveal.SkipToEnd()
}

// Store returns the playground store.
func (c *Composer) Store() *playground.Store { return c.store }

// Framing returns the camera framing.
func (c *Composer) Framing() *camera.Framing { return c.framing }

// Clock returns the sim clock.
func (c *Composer) Clock() *simclock.Clock { return c.clock }

// Loader returns the texture loader, or nil when textures are disabled.
func (c *Composer) Loader() *assets.Loader { return c.loader }

// Path returns the orbit polyline for a planet at the current settings.
func (c *Composer) Path(name string, segments int) ([]astro.Vec3, error) {
	spec, ok := Lookup(name)
	if !ok || !spec.HasOrbitLine() {
		return nil, fmt.Errorf("no orbit for %q", name)
	}
	p := spec.Params(c.store.Snapshot())
	return orbit.SamplePath(p.OrbitRadius, spec.Eccentricity, segments), nil
}
