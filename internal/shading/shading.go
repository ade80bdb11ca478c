// Package shading computes day/night terrain colours from the sun direction.
package shading

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/orbix/internal/astro"
)

// Terrain is the shading record shared by every body.
// The day side shows the day texture (or base colour); the night side shows
// either a night texture scaled by NightBoost or the flat NightColor.
type Terrain struct {
	DayTexture   string
	NightTexture string
	NightColor   colorful.Color
	BlendLow     float64 // terminator start, in units of max(n·sun, 0)
	BlendHigh    float64 // terminator end
	NightBoost   float64
	Tint         colorful.Color // multiplied into the day colour; zero value means none
	Ambient      float64        // day colour leaked onto the night side, 0..1
}

// MustHex parses a #rrggbb colour, panicking on malformed literals.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Smoothstep is the Hermite step between lo and hi.
func Smoothstep(lo, hi, x float64) float64 {
	if hi == lo {
		if x < lo {
			return 0
		}
		return 1
	}
	t := math.Max(0, math.Min(1, (x-lo)/(hi-lo)))
	return t * t * (3 - 2*t)
}

// DayFactor is the day-side weight for a surface normal and a direction toward the sun.
func (t Terrain) DayFactor(normal, toSun astro.Vec3) float64 {
	d := math.Max(normal.Normalized().Dot(toSun.Normalized()), 0)
	return Smoothstep(t.BlendLow, t.BlendHigh, d)
}

// Night returns the night-side colour given the night texture's colour, if any.
func (t Terrain) Night(nightTex colorful.Color, haveTex bool) colorful.Color {
	if haveTex && t.NightTexture != "" {
		boost := t.NightBoost
		if boost == 0 {
			boost = 1
		}
		return colorful.Color{R: nightTex.R * boost, G: nightTex.G * boost, B: nightTex.B * boost}.Clamped()
	}
	return t.NightColor
}

// Day returns the day colour with the tint applied.
func (t Terrain) Day(base colorful.Color) colorful.Color {
	if t.Tint == (colorful.Color{}) {
		return base
	}
	return colorful.Color{R: base.R * t.Tint.R, G: base.G * t.Tint.G, B: base.B * t.Tint.B}.Clamped()
}

// Shade blends night into day by the day factor. light scales the result and
// comes from the scene's ambient light setting.
func (t Terrain) Shade(day, night colorful.Color, factor, light float64) colorful.Color {
	f := factor + t.Ambient*(1-factor)
	c := night.BlendRgb(t.Day(day), f)
	return colorful.Color{R: c.R * light, G: c.G * light, B: c.B * light}.Clamped()
}

// LightLevel maps the ambient light setting (0..2, default 0.5) onto a brightness multiplier.
func LightLevel(ambient float64) float64 {
	return math.Max(0.25, math.Min(1.5, 0.5+ambient))
}

// Luminance returns perceived brightness in 0..1.
func Luminance(c colorful.Color) float64 {
	l, _, _ := c.Clamped().Lab()
	return math.Max(0, math.Min(1, l))
}

// ramp orders glyphs from dark to bright.
const ramp = " .:-=+*#%@"

// Glyph picks a character whose ink density matches brightness in 0..1.
func Glyph(brightness float64) byte {
	b := math.Max(0, math.Min(1, brightness))
	return ramp[int(math.Round(b*float64(len(ramp)-1)))]
}

// SunPulse is the emissive intensity of the sun's glow at sim time t.
func SunPulse(t float64) float64 {
	return math.Sin(t*0.5)*0.2 + 1.3
}
