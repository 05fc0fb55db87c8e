package deform

import (
	smath "github.com/Faultbox/seaswell/pkg/math"
)

// Window is a normalized sub-range of one grid axis.
type Window struct {
	Start float32
	End   float32
}

// RegionAt computes the active deformation window at elapsed time t. The
// window slides leftward from (1-width) toward 0 at the given speed and
// stops there, modelling a wave front sweeping the grid and settling at
// the origin. End - Start == width for all t.
func RegionAt(t, width, speed float32) Window {
	start := (1 - width) - t*speed
	if start < 0 {
		start = 0
	}
	return Window{Start: start, End: start + width}
}

// Feather returns the blend weight for coordinate x against the window:
// 0 outside [Start, End], 1 inside [Start+feather, End-feather], linear
// ramps over feather at each edge. A non-positive feather makes the
// window a hard step.
func (w Window) Feather(x, feather float32) float32 {
	if x < w.Start || x > w.End {
		return 0
	}
	if feather <= 0 {
		return 1
	}
	d := x - w.Start
	if e := w.End - x; e < d {
		d = e
	}
	return smath.Clamp01(d / feather)
}

// FullExtent is the whole normalized axis, used for Z feathering.
var FullExtent = Window{Start: 0, End: 1}

// FeatherWeight combines the X region feather with the symmetric Z edge
// feather into the single weight gating deformation for one vertex.
func FeatherWeight(lx, lz float32, region Window, featherX, featherZ float32) float32 {
	return region.Feather(lx, featherX) * FullExtent.Feather(lz, featherZ)
}
