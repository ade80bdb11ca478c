// Package assets loads textures in the background. Each path is loaded at
// most once; a failed load is never retried and the body keeps its fallback look.
package assets

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/orbix/internal/logging"
)

// State is the load state of one asset.
type State int

const (
	Pending State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Handle is a decoded texture reduced to what the renderers use.
type Handle struct {
	Path   string
	Width  int
	Height int
	Mean   colorful.Color // average colour, used by the terminal renderer
}

// Asset tracks one load.
type Asset struct {
	path   string
	mu     sync.RWMutex
	state  State
	handle Handle
	err    error
}

// Path returns the requested path.
func (a *Asset) Path() string {
	if a == nil {
		return ""
	}
	return a.path
}

// State returns the current load state.
func (a *Asset) State() State {
	if a == nil {
		return Failed
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// Handle returns the decoded texture once Ready.
func (a *Asset) Handle() (Handle, bool) {
	if a == nil {
		return Handle{}, false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.handle, a.state == Ready
}

// Err returns the load error once Failed.
func (a *Asset) Err() error {
	if a == nil {
		return nil
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.err
}

func (a *Asset) finish(h Handle, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.state = Failed
		a.err = err
		return
	}
	a.state = Ready
	a.handle = h
}

// Decoder turns a file into a Handle.
type Decoder func(path string) (Handle, error)

// DecodeImage opens an image and averages it down to one pixel.
func DecodeImage(path string) (Handle, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return Handle{}, fmt.Errorf("failed to open texture: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return Handle{}, fmt.Errorf("texture %s is empty", path)
	}
	px := transform.Resize(img, 1, 1, transform.Linear)
	mean, _ := colorful.MakeColor(px.At(0, 0))
	return Handle{
		Path:   path,
		Width:  b.Dx(),
		Height: b.Dy(),
		Mean:   mean,
	}, nil
}

// Option configures a Loader.
type Option func(*Loader)

// WithDecoder replaces the image decoder.
func WithDecoder(d Decoder) Option {
	return func(l *Loader) { l.decode = d }
}

// Loader starts one goroutine per distinct path.
type Loader struct {
	root   string
	decode Decoder
	log    *logging.Logger

	mu     sync.Mutex
	assets map[string]*Asset
	wg     sync.WaitGroup
}

// NewLoader creates a loader resolving relative paths against root.
func NewLoader(root string, log *logging.Logger, opts ...Option) *Loader {
	if log == nil {
		log = logging.Discard()
	}
	l := &Loader{
		root:   root,
		decode: DecodeImage,
		log:    log,
		assets: make(map[string]*Asset),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the asset for path, starting the load on first request.
// Empty paths yield nil, which reports Failed.
func (l *Loader) Load(path string) *Asset {
	if path == "" {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if a, ok := l.assets[path]; ok {
		return a
	}

	a := &Asset{path: path}
	l.assets[path] = a
	full := path
	if l.root != "" && !filepath.IsAbs(path) {
		full = filepath.Join(l.root, path)
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		h, err := l.decode(full)
		if err != nil {
			l.log.Debug("texture %s unavailable: %v", path, err)
		} else {
			l.log.Debug("texture %s ready (%dx%d)", path, h.Width, h.Height)
		}
		a.finish(h, err)
	}()
	return a
}

// Wait blocks until every started load has finished.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Counts reports how many requested assets are in each state.
func (l *Loader) Counts() (pending, ready, failed int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, a := range l.assets {
		switch a.State() {
		case Pending:
			pending++
		case Ready:
			ready++
		case Failed:
			failed++
		}
	}
	return pending, ready, failed
}
