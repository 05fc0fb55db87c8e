package deform

import (
	"testing"

	smath "github.com/Faultbox/seaswell/pkg/math"
)

func TestRegionWidthInvariant(t *testing.T) {
	const width, speed = 0.25, 0.1
	for _, elapsed := range []float32{0, 0.5, 1, 3, 7.5, 10, 100} {
		w := RegionAt(elapsed, width, speed)
		if !smath.ApproxEqual(w.End-w.Start, width, 1e-6) {
			t.Errorf("t=%v: End-Start = %v, want %v", elapsed, w.End-w.Start, width)
		}
	}
}

func TestRegionSlidesAndClamps(t *testing.T) {
	const width, speed = 0.25, 0.1

	prev := RegionAt(0, width, speed).Start
	if prev != 1-width {
		t.Errorf("initial Start = %v, want %v", prev, 1-width)
	}
	for _, elapsed := range []float32{0.5, 1, 2, 4, 7, 7.5, 8, 100} {
		s := RegionAt(elapsed, width, speed).Start
		if s > prev {
			t.Errorf("t=%v: Start increased from %v to %v", elapsed, prev, s)
		}
		if s < 0 {
			t.Errorf("t=%v: Start = %v went negative", elapsed, s)
		}
		prev = s
	}

	// 0.75 / 0.1 = 7.5 seconds to reach the origin; it stays there.
	if s := RegionAt(8, width, speed).Start; s != 0 {
		t.Errorf("Start after clamp = %v, want 0", s)
	}
}

func TestFeatherContinuity(t *testing.T) {
	w := Window{Start: 0.3, End: 0.7}
	const feather = 0.1

	if got := w.Feather(0.3, feather); got != 0 {
		t.Errorf("weight at Start = %v, want 0", got)
	}
	if got := w.Feather(0.4, feather); got != 1 {
		t.Errorf("weight at Start+feather = %v, want 1", got)
	}
	if got := w.Feather(0.35, feather); !smath.ApproxEqual(got, 0.5, 1e-6) {
		t.Errorf("weight at ramp midpoint = %v, want 0.5", got)
	}
	if got := w.Feather(0.7, feather); got != 0 {
		t.Errorf("weight at End = %v, want 0", got)
	}
	if got := w.Feather(0.65, feather); !smath.ApproxEqual(got, 0.5, 1e-6) {
		t.Errorf("weight on trailing ramp = %v, want 0.5", got)
	}
	if got := w.Feather(0.5, feather); got != 1 {
		t.Errorf("weight in interior = %v, want 1", got)
	}
}

func TestFeatherOutsideWindow(t *testing.T) {
	w := Window{Start: 0.3, End: 0.7}
	for _, x := range []float32{0, 0.29, 0.71, 1} {
		if got := w.Feather(x, 0.1); got != 0 {
			t.Errorf("weight at %v = %v, want 0", x, got)
		}
	}
}

func TestFeatherHardStep(t *testing.T) {
	w := Window{Start: 0.2, End: 0.8}
	if got := w.Feather(0.5, 0); got != 1 {
		t.Errorf("zero feather inside = %v, want 1", got)
	}
	if got := w.Feather(0.1, 0); got != 0 {
		t.Errorf("zero feather outside = %v, want 0", got)
	}
}

func TestFeatherWeightCombinesAxes(t *testing.T) {
	region := Window{Start: 0.0, End: 1.0}

	// Center of both axes: full weight.
	if got := FeatherWeight(0.5, 0.5, region, 0.1, 0.1); got != 1 {
		t.Errorf("center weight = %v, want 1", got)
	}
	// On the Z edge the weight drops to zero regardless of X.
	if got := FeatherWeight(0.5, 0, region, 0.1, 0.1); got != 0 {
		t.Errorf("z-edge weight = %v, want 0", got)
	}
	// Both axes mid-ramp multiply.
	got := FeatherWeight(0.05, 0.05, region, 0.1, 0.1)
	if !smath.ApproxEqual(got, 0.25, 1e-6) {
		t.Errorf("combined ramp weight = %v, want 0.25", got)
	}
}
