package scene

import (
	"time"
)

// DefaultStageInterval is the wall-clock delay between reveal stages.
const DefaultStageInterval = 600 * time.Millisecond

// Stage names what each reveal stage adds.
type Stage struct {
	Index  int
	Label  string
	Bodies []string
	Belt   bool
}

// Stages lists the progressive reveal order.
var Stages = []Stage{
	{Index: 0, Label: "Sun", Bodies: []string{"Sun"}},
	{Index: 1, Label: "Inner planets", Bodies: []string{"Mercury", "Venus"}},
	{Index: 2, Label: "Earth and Mars", Bodies: []string{"Earth", "Moon", "Mars"}},
	{Index: 3, Label: "Asteroid belt", Belt: true},
	{Index: 4, Label: "Gas giants", Bodies: []string{"Jupiter", "Saturn"}},
	{Index: 5, Label: "Ice giants", Bodies: []string{"Uranus", "Neptune"}},
}

// FinalStage is the index at which everything is visible.
var FinalStage = Stages[len(Stages)-1].Index

// BeltStage is the stage that reveals the asteroid belt.
const BeltStage = 3

// Reveal tracks the progressive reveal against wall-clock time.
type Reveal struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewReveal creates a reveal at stage 0. A non-positive interval shows everything at once.
func NewReveal(interval time.Duration) *Reveal {
	return &Reveal{interval: interval}
}

// Advance adds wall-clock time and returns the current stage.
func (r *Reveal) Advance(dt time.Duration) int {
	r.elapsed += dt
	return r.Stage()
}

// Stage returns the current stage index.
func (r *Reveal) Stage() int {
	if r.interval <= 0 {
		return FinalStage
	}
	s := int(r.elapsed / r.interval)
	if s > FinalStage {
		return FinalStage
	}
	return s
}

// Complete reports whether every stage is revealed.
func (r *Reveal) Complete() bool {
	return r.Stage() == FinalStage
}

// SkipToEnd reveals everything immediately.
func (r *Reveal) SkipToEnd() {
	r.interval = 0
}
