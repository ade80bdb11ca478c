package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/orbix/internal/shading"
)

// Surface returns the day and night colours for a placement: the decoded
// texture colours once ready, the body's fallback colours until then.
func (p Placement) Surface() (day, night colorful.Color) {
	day = shading.MustHex(p.Spec.BaseColor)
	if h, ok := p.Asset.Handle(); ok {
		day = h.Mean
	}
	nightTex, ok := p.Night.Handle()
	return day, p.Spec.Terrain.Night(nightTex.Mean, ok)
}
