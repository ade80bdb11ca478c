package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mars.png")
	writePNG(t, path, color.RGBA{R: 226, G: 123, B: 88, A: 255})

	h, err := DecodeImage(path)
	if err != nil {
		t.Fatalf("DecodeImage() error: %v", err)
	}
	if h.Width != 4 || h.Height != 2 {
		t.Errorf("size = %dx%d, want 4x2", h.Width, h.Height)
	}
	want, _ := colorful.Hex("#E27B58")
	if d := h.Mean.DistanceRgb(want); d > 0.02 {
		t.Errorf("mean = %s, want ~%s", h.Mean.Hex(), want.Hex())
	}
}

func TestLoaderReadyAndFailed(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "earth.png"), color.RGBA{B: 255, A: 255})

	l := NewLoader(dir, nil)
	good := l.Load("earth.png")
	bad := l.Load("missing.png")
	l.Wait()

	if good.State() != Ready {
		t.Errorf("good.State() = %v, want ready", good.State())
	}
	if _, ok := good.Handle(); !ok {
		t.Error("Handle() not available after ready")
	}
	if bad.State() != Failed {
		t.Errorf("bad.State() = %v, want failed", bad.State())
	}
	if bad.Err() == nil {
		t.Error("failed asset should carry its error")
	}

	pending, ready, failed := l.Counts()
	if pending != 0 || ready != 1 || failed != 1 {
		t.Errorf("Counts() = %d/%d/%d", pending, ready, failed)
	}
}

func TestLoaderOneShot(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	decode := func(path string) (Handle, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return Handle{}, errors.New("broken")
	}

	l := NewLoader("", nil, WithDecoder(decode))
	a := l.Load("sun.jpg")
	if a.State() != Pending {
		t.Errorf("State() = %v before decode finished, want pending", a.State())
	}
	close(release)
	l.Wait()

	// A failed path is never retried.
	if again := l.Load("sun.jpg"); again != a {
		t.Error("second Load returned a different asset")
	}
	l.Wait()
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("decoder called %d times, want 1", n)
	}
}

func TestNilAsset(t *testing.T) {
	l := NewLoader("", nil)
	a := l.Load("")
	if a != nil {
		t.Fatal("empty path should yield nil")
	}
	if a.State() != Failed {
		t.Errorf("nil asset State() = %v, want failed", a.State())
	}
	if _, ok := a.Handle(); ok {
		t.Error("nil asset should have no handle")
	}
	if err := a.Err(); err != nil {
		t.Errorf("nil asset Err() = %v, want nil", err)
	}
	if p := a.Path(); p != "" {
		t.Errorf("nil asset Path() = %q, want empty", p)
	}
}
