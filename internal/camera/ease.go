package camera

import (
	"math"
	"sort"
)

// Ease maps linear progress in [0,1] onto eased progress in [0,1].
type Ease func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// OutQuad decelerates into the target.
func OutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// OutCubic decelerates harder than OutQuad.
func OutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// InOutSine accelerates then decelerates.
func InOutSine(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

var easings = map[string]Ease{
	"linear":      Linear,
	"out-quad":    OutQuad,
	"out-cubic":   OutCubic,
	"in-out-sine": InOutSine,
}

// ParseEase looks up an easing curve by flag name.
// Unknown names return OutQuad and false.
func ParseEase(name string) (Ease, bool) {
	if e, ok := easings[name]; ok {
		return e, true
	}
	return OutQuad, false
}

// EaseNames lists the accepted easing names, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
