// Package ebitenview adapts an Ebitengine window to scrollkit's Viewport
// interface: the mouse wheel scrolls a virtual page, and the window's inner
// height is the viewport height.
//
// Usage:
//
//	viewport := &ebitenview.Viewport{Max: contentHeight - screenHeight}
//	sched := scrollkit.NewScheduler(registry, viewport, writer)
//
//	func (g *game) Update() error {
//		g.viewport.Update()
//		g.sched.Tick()
//		return nil
//	}
package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/scrollkit"
)

// DefaultWheelStep is the scroll distance per wheel notch, in pixels.
const DefaultWheelStep = 60

// glideDuration is how long, in seconds, the offset takes to glide to the
// wheel target.
const glideDuration = 0.25

// Viewport is a scrollkit.Viewport fed by the mouse wheel. Wheel motion is
// smoothed with a short tween so published property values ramp instead of
// stepping. Call Update once per ebiten Update, before Scheduler.Tick.
type Viewport struct {
	// WheelStep is the scroll distance per wheel notch in pixels.
	// Zero selects DefaultWheelStep.
	WheelStep float64
	// Max clamps the scroll offset to [0, Max]: typically content height
	// minus window height. Zero disables the upper clamp.
	Max float64

	offset float64
	target float64
	glide  *gween.Tween
	height float64
}

// Update consumes this frame's wheel delta, advances the glide tween, and
// refreshes the cached window height.
func (v *Viewport) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		step := v.WheelStep
		if step == 0 {
			step = DefaultWheelStep
		}
		v.target = clampOffset(v.target-dy*step, v.Max)
		v.glide = gween.New(float32(v.offset), float32(v.target), glideDuration, ease.OutQuad)
	}
	if v.glide != nil {
		val, finished := v.glide.Update(1.0 / float32(ebiten.TPS()))
		v.offset = float64(val)
		if finished {
			v.glide = nil
		}
	}
	_, h := ebiten.WindowSize()
	v.height = float64(h)
}

// ScrollTop returns the smoothed scroll offset in pixels.
func (v *Viewport) ScrollTop() float64 { return v.offset }

// Height returns the window's inner height in pixels, as of the last Update.
func (v *Viewport) Height() float64 { return v.height }

// clampOffset clamps a scroll offset to [0, max]; max 0 means unclamped
// above.
func clampOffset(offset, max float64) float64 {
	if offset < 0 {
		return 0
	}
	if max > 0 && offset > max {
		return max
	}
	return offset
}

var _ scrollkit.Viewport = (*Viewport)(nil)
