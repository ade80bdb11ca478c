package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

func TestDroneBounded(t *testing.T) {
	d := NewDrone(beep.SampleRate(8000))
	buf := make([][2]float64, 8000)

	n, ok := d.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	var energy float64
	for _, s := range buf {
		if math.Abs(s[0]) > 1 || math.Abs(s[1]) > 1 {
			t.Fatalf("sample out of range: %v", s)
		}
		energy += s[0] * s[0]
	}
	if energy == 0 {
		t.Error("drone is silent")
	}
}

func TestDroneDeterministic(t *testing.T) {
	a := NewDrone(beep.SampleRate(8000))
	b := NewDrone(beep.SampleRate(8000))
	bufA := make([][2]float64, 512)
	bufB := make([][2]float64, 512)
	a.Stream(bufA)
	b.Stream(bufB)
	for i := range bufA {
		if bufA[i] != bufB[i] {
			t.Fatalf("sample %d differs", i)
		}
	}
}

func TestChimeEnds(t *testing.T) {
	c := &chime{rate: beep.SampleRate(8000), freq: 440, duration: 100}
	buf := make([][2]float64, 64)

	total := 0
	for i := 0; i < 10; i++ {
		n, ok := c.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != 100 {
		t.Errorf("chime produced %d samples, want 100", total)
	}
}

func TestPlayerMuteWithoutDevice(t *testing.T) {
	p := NewPlayer(nil, false)

	if p.Muted() {
		t.Fatal("player should start unmuted")
	}
	if !p.ToggleMute() || !p.Muted() {
		t.Error("ToggleMute should mute")
	}
	if p.ToggleMute() {
		t.Error("second toggle should unmute")
	}

	// Not started: these are no-ops.
	p.Chime(3)
	p.Close()
}
