package deform

import (
	smath "github.com/Faultbox/seaswell/pkg/math"
)

// AnimWindow holds the two scrolling animation phases. Each advances at
// its own rate and wraps modulo 1; the sampler crossfades between texture
// lookups offset by the two phases to hide the looping seam.
type AnimWindow struct {
	Start float32
	End   float32
}

// Advance moves both phases forward by their rate over dt, wrapping into
// [0, 1).
func (a *AnimWindow) Advance(dt, rateStart, rateEnd float32) {
	a.Start = smath.Fract(a.Start + rateStart*dt)
	a.End = smath.Fract(a.End + rateEnd*dt)
}

// Scaled returns the window with both phases scaled by (1 - texelSize),
// keeping samples off the texture's wraparound seam.
func (a AnimWindow) Scaled(texelSize float32) AnimWindow {
	s := 1 - texelSize
	return AnimWindow{Start: a.Start * s, End: a.End * s}
}

// BlendPhase maps elapsed time into the [0, 1) animation period.
func BlendPhase(elapsed, period float32) float32 {
	if period <= 0 {
		return 0
	}
	return smath.Fract(elapsed / period)
}

// CrossfadeWeight converts a blend phase into the crossfade weight between
// the two animation samples. A triangular blend: weight 0 (pure first
// sample) at phase 0, 1 (pure second sample) at phase 0.5, back to 0 as
// the phase wraps. Continuous across the wrap point.
func CrossfadeWeight(phase float32) float32 {
	return 1 - smath.Abs(2*phase-1)
}

// ZScale is the one-shot shrink ease applied to the grid's Z axis around
// a fixed pivot.
type ZScale struct {
	Start float32
	End   float32
	Speed float32
	Pivot float32
}

// At returns the current scale factor at elapsed time t: a linear ease
// from Start to End, clamped once t*Speed passes 1.
func (z ZScale) At(t float32) float32 {
	return smath.Lerp(z.Start, z.End, smath.Clamp01(t*z.Speed))
}

// Apply repositions a Z coordinate about the pivot by the current factor.
func (z ZScale) Apply(zCoord, factor float32) float32 {
	return z.Pivot + (zCoord-z.Pivot)*factor
}
