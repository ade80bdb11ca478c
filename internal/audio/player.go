package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/litescript/orbix/internal/logging"
)

const sampleRate = beep.SampleRate(44100)

// DefaultVolume is the linear loudness of the drone.
const DefaultVolume = 0.3

// Player owns the speaker. When the audio device cannot be opened it stays
// silent but still tracks the mute state so the UI behaves the same.
type Player struct {
	mu          sync.Mutex
	log         *logging.Logger
	mixer       *beep.Mixer
	drone       *beep.Ctrl
	muted       bool
	initialized bool
}

// NewPlayer creates a player. Nothing plays until Start.
func NewPlayer(log *logging.Logger, muted bool) *Player {
	if log == nil {
		log = logging.Discard()
	}
	return &Player{
		log:   log,
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Start opens the speaker and begins the drone loop.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.log.Warn("audio unavailable: %v", err)
		return err
	}

	p.drone = &beep.Ctrl{Streamer: withVolume(NewDrone(sampleRate), DefaultVolume), Paused: p.muted}
	p.mixer.Add(p.drone)
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Debug("audio started (muted=%v)", p.muted)
	return nil
}

// SetMuted pauses or resumes the drone.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if p.drone != nil {
		speaker.Lock()
		p.drone.Paused = muted
		speaker.Unlock()
	}
}

// ToggleMute flips the mute state and returns the new state.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	muted := !p.muted
	p.mu.Unlock()
	p.SetMuted(muted)
	return muted
}

// Muted reports the mute state.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Chime plays a short tone, pitched by the body index, unless muted.
func (p *Player) Chime(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted {
		return
	}
	freq := 440 * math.Pow(2, float64(index%12)/12)
	speaker.Lock()
	p.mixer.Add(&chime{rate: sampleRate, freq: freq, duration: sampleRate.N(400 * time.Millisecond)})
	speaker.Unlock()
}

// Close silences everything.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
