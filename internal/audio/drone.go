// Package audio plays the looping ambient space drone with a mute toggle.
package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// droneVoice is one partial of the pad: a base frequency with a slow tremolo.
type droneVoice struct {
	freq  float64
	amp   float64
	lfoHz float64
}

var droneVoices = []droneVoice{
	{freq: 55.0, amp: 0.35, lfoHz: 0.05},
	{freq: 82.4, amp: 0.20, lfoHz: 0.07},
	{freq: 110.0, amp: 0.15, lfoHz: 0.11},
	{freq: 164.8, amp: 0.08, lfoHz: 0.13},
}

// Drone is an endless, deterministic ambient pad.
type Drone struct {
	rate   beep.SampleRate
	pos    int
	phases []float64
}

// NewDrone creates a drone at the given sample rate.
func NewDrone(rate beep.SampleRate) *Drone {
	return &Drone{rate: rate, phases: make([]float64, len(droneVoices))}
}

// Stream fills samples; it never ends.
func (d *Drone) Stream(samples [][2]float64) (n int, ok bool) {
	sr := float64(d.rate)
	for i := range samples {
		t := float64(d.pos) / sr
		var left, right float64
		for v, voice := range droneVoices {
			tremolo := 0.6 + 0.4*math.Sin(2*math.Pi*voice.lfoHz*t)
			s := math.Sin(2*math.Pi*d.phases[v]) * voice.amp * tremolo
			// Alternate voices lean left and right for width.
			if v%2 == 0 {
				left += s
				right += s * 0.8
			} else {
				left += s * 0.8
				right += s
			}
			d.phases[v] += voice.freq / sr
			d.phases[v] -= math.Floor(d.phases[v])
		}
		samples[i][0] = left
		samples[i][1] = right
		d.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (d *Drone) Err() error { return nil }

// chime is a short decaying tone played on selection.
type chime struct {
	rate     beep.SampleRate
	freq     float64
	pos      int
	duration int
}

func (c *chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.pos >= c.duration {
			return i, i > 0
		}
		t := float64(c.pos) / float64(c.rate)
		env := math.Exp(-6 * float64(c.pos) / float64(c.duration))
		v := math.Sin(2*math.Pi*c.freq*t) * 0.25 * env
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *chime) Err() error { return nil }
