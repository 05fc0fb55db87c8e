package deform

import (
	"testing"

	smath "github.com/Faultbox/seaswell/pkg/math"
)

func TestAnimAdvanceWraps(t *testing.T) {
	a := AnimWindow{Start: 0.25, End: 0.5}
	a.Advance(1, 0.9, 0.75)

	if !smath.ApproxEqual(a.Start, 0.15, 1e-5) {
		t.Errorf("Start = %v, want 0.15", a.Start)
	}
	if !smath.ApproxEqual(a.End, 0.25, 1e-5) {
		t.Errorf("End = %v, want 0.25", a.End)
	}
}

func TestAnimFullCycleReturns(t *testing.T) {
	// Advancing by exactly 1/rate seconds returns the phase to its
	// starting value, stepwise as a frame loop would.
	const rate = 0.25
	a := AnimWindow{Start: 0.1, End: 0.6}

	steps := 16
	dt := (1 / rate) / float32(steps)
	for i := 0; i < steps; i++ {
		a.Advance(dt, rate, rate)
	}

	if !smath.ApproxEqual(a.Start, 0.1, 1e-4) {
		t.Errorf("Start after full cycle = %v, want 0.1", a.Start)
	}
	if !smath.ApproxEqual(a.End, 0.6, 1e-4) {
		t.Errorf("End after full cycle = %v, want 0.6", a.End)
	}
}

func TestAnimScaledAvoidsSeam(t *testing.T) {
	a := AnimWindow{Start: 1, End: 0.999}
	s := a.Scaled(1.0 / 256.0)
	if s.Start >= 1 || s.End >= 1 {
		t.Errorf("scaled window (%v, %v) reaches the seam", s.Start, s.End)
	}
	if s.Start != 1-1.0/256.0 {
		t.Errorf("scaled Start = %v, want %v", s.Start, 1-1.0/256.0)
	}
}

func TestBlendPhase(t *testing.T) {
	if got := BlendPhase(2, 4); got != 0.5 {
		t.Errorf("BlendPhase(2, 4) = %v, want 0.5", got)
	}
	if got := BlendPhase(6, 4); got != 0.5 {
		t.Errorf("BlendPhase wraps: got %v, want 0.5", got)
	}
	if got := BlendPhase(1, 0); got != 0 {
		t.Errorf("zero period phase = %v, want 0", got)
	}
}

func TestCrossfadeWeightTriangle(t *testing.T) {
	tests := []struct {
		phase float32
		want  float32
	}{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
	}
	for _, tt := range tests {
		if got := CrossfadeWeight(tt.phase); !smath.ApproxEqual(got, tt.want, 1e-6) {
			t.Errorf("CrossfadeWeight(%v) = %v, want %v", tt.phase, got, tt.want)
		}
	}
}

func TestCrossfadeContinuousAcrossWrap(t *testing.T) {
	// Just before and just after the wrap point the weight is nearly
	// identical, hiding the loop seam.
	before := CrossfadeWeight(0.999)
	after := CrossfadeWeight(0.001)
	if !smath.ApproxEqual(before, after, 1e-2) {
		t.Errorf("crossfade jumps across wrap: %v vs %v", before, after)
	}
}

func TestZScaleEase(t *testing.T) {
	z := ZScale{Start: 1.0, End: 0.5, Speed: 0.2}

	if got := z.At(0); got != 1.0 {
		t.Errorf("At(0) = %v, want 1.0", got)
	}

	// Monotonically non-increasing toward End.
	prev := z.At(0)
	for _, elapsed := range []float32{1, 2, 3, 4, 5} {
		cur := z.At(elapsed)
		if cur > prev {
			t.Errorf("t=%v: scale increased from %v to %v", elapsed, prev, cur)
		}
		prev = cur
	}

	// Clamped once elapsed*speed >= 1.
	if got := z.At(5); got != 0.5 {
		t.Errorf("At(5) = %v, want 0.5", got)
	}
	if got := z.At(50); got != 0.5 {
		t.Errorf("At(50) = %v, want 0.5 (clamped)", got)
	}
}

func TestZScaleApplyPivot(t *testing.T) {
	z := ZScale{Pivot: 2}
	if got := z.Apply(4, 0.5); got != 3 {
		t.Errorf("Apply(4, 0.5) about pivot 2 = %v, want 3", got)
	}
	// The pivot itself never moves.
	if got := z.Apply(2, 0.25); got != 2 {
		t.Errorf("pivot moved to %v", got)
	}
}
