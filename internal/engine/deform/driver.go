package deform

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/seaswell/internal/engine/mesh"
	"github.com/Faultbox/seaswell/internal/engine/texture"
	"github.com/Faultbox/seaswell/internal/logger"
)

// retrieval is one completed readback from the evaluation stage.
type retrieval struct {
	out []Output
	err error
}

// Driver owns one deformation session: the vertex snapshot, detected grid,
// sampler, per-frame animation state, and the retrieved output buffer the
// host mesh reads from. Single-writer: Advance must be called from one
// goroutine.
type Driver struct {
	cfg     Config
	snap    *mesh.Snapshot
	grid    Grid
	sampler *Sampler
	backend Backend

	elapsed float32
	anim    AnimWindow
	frame   int

	// front holds the last retrieved results; it is what consumers see
	// and may be one or more frames stale under throttled readback.
	front []Output
	// back is the sync-mode scratch buffer.
	back []Output

	pending  chan retrieval
	inFlight bool
}

// New initializes a deformation session over a mesh snapshot and a baked
// texture set. The snapshot is owned by the driver for the session.
func New(snap *mesh.Snapshot, set *texture.Set, cfg Config) (*Driver, error) {
	if snap == nil || snap.Count() == 0 {
		return nil, fmt.Errorf("deform: empty mesh snapshot")
	}
	if set == nil || set.Displacement == nil {
		return nil, fmt.Errorf("deform: texture set missing displacement map")
	}

	grid := Detect(snap)
	if cfg.GridSizeX > 0 && cfg.GridSizeZ > 0 {
		grid.SizeX = cfg.GridSizeX
		grid.SizeZ = cfg.GridSizeZ
	}
	if !grid.Matches(snap.Count()) {
		logger.Warn("grid dimensions do not match vertex count, indexing is best-effort",
			zap.Int("sizeX", grid.SizeX),
			zap.Int("sizeZ", grid.SizeZ),
			zap.Int("vertices", snap.Count()))
	}

	d := &Driver{
		cfg:     cfg,
		snap:    snap,
		grid:    grid,
		sampler: NewSampler(set),
		backend: &CPUBackend{Workers: cfg.Workers},
		// Offset phases so the crossfade always has two distinct
		// copies of the pattern to blend between.
		anim:    AnimWindow{Start: 0, End: 0.5},
		front:   make([]Output, snap.Count()),
		back:    make([]Output, snap.Count()),
		pending: make(chan retrieval, 1),
	}

	// Seed the front buffer with pass-through outputs so consumers see
	// valid data before the first retrieval lands.
	for i := range d.front {
		v := &snap.Vertices[i]
		d.front[i] = Output{
			Position: v.Position,
			Color:    cfg.FoamColor.Mul(0),
			Normal:   v.Normal,
			UV2:      v.UV,
		}
	}

	logger.Info("deformation session initialized",
		zap.Int("vertices", snap.Count()),
		zap.Int("gridX", grid.SizeX),
		zap.Int("gridZ", grid.SizeZ),
		zap.Int("variant", int(cfg.Variant)))

	return d, nil
}

// Grid returns the detected (or overridden) grid descriptor.
func (d *Driver) Grid() Grid {
	return d.grid
}

// Elapsed returns the session's accumulated time in seconds.
func (d *Driver) Elapsed() float32 {
	return d.elapsed
}

// frameParams snapshots the per-frame scalar parameter set for the
// current elapsed time and animation state.
func (d *Driver) frameParams() Params {
	return Params{
		VertexCount:   d.snap.Count(),
		Grid:          d.grid,
		Variant:       d.cfg.Variant,
		Displacement:  d.cfg.Displacement,
		NormalScale:   d.cfg.NormalScale,
		SubDivisions:  d.cfg.SubDivisions,
		Region:        RegionAt(d.elapsed, d.cfg.RegionWidth, d.cfg.RegionSpeed),
		FeatherX:      d.cfg.FeatherX,
		FeatherZ:      d.cfg.FeatherZ,
		Anim:          d.anim.Scaled(d.sampler.TexelSize()),
		Blend:         CrossfadeWeight(BlendPhase(d.elapsed, d.cfg.AnimPeriod)),
		ZScaleCurrent: d.cfg.ZScale.At(d.elapsed),
		ZScalePivot:   d.cfg.ZScale.Pivot,
		OffsetScale:   d.cfg.OffsetScale,
		OffsetBias:    d.cfg.OffsetBias,
		FoamColor:     d.cfg.FoamColor,
		LogicalFromUV: d.cfg.LogicalFromUV && d.snap.HasUV,
	}
}

// retrievalFrame reports whether the current frame retrieves results.
// With ThrottleN > 0, retrieval happens on 1 of every N+1 frames.
func (d *Driver) retrievalFrame() bool {
	if d.cfg.ThrottleN <= 0 {
		return true
	}
	return d.frame%(d.cfg.ThrottleN+1) == 0
}

// Advance moves the session forward by dt seconds: advances the animation
// window, dispatches evaluation over all vertices, and retrieves results
// according to the readback policy. A backend failure leaves the previous
// frame's data in place; the next frame retries naturally.
func (d *Driver) Advance(dt float32) error {
	d.elapsed += dt
	d.anim.Advance(dt, d.cfg.AnimRateStart, d.cfg.AnimRateEnd)
	d.frame++

	p := d.frameParams()

	if d.cfg.Readback == ReadbackSync {
		return d.advanceSync(&p)
	}
	return d.advanceAsync(p)
}

func (d *Driver) advanceSync(p *Params) error {
	if err := d.backend.Dispatch(p, d.sampler, d.snap, d.back); err != nil {
		logger.Error("evaluation dispatch failed, keeping previous frame", zap.Error(err))
		return err
	}
	if d.retrievalFrame() {
		copy(d.front, d.back)
	}
	return nil
}

func (d *Driver) advanceAsync(p Params) error {
	// Consume a completed retrieval as soon as it is observed. A failed
	// one is discarded; the mesh keeps the previous frame's data.
	select {
	case r := <-d.pending:
		d.inFlight = false
		if r.err != nil {
			logger.Error("async readback failed, keeping previous frame", zap.Error(r.err))
		} else {
			d.front = r.out
		}
	default:
	}

	if d.retrievalFrame() && !d.inFlight {
		// Issue the single outstanding retrieval request.
		d.inFlight = true
		out := make([]Output, d.snap.Count())
		go func() {
			err := d.backend.Dispatch(&p, d.sampler, d.snap, out)
			d.pending <- retrieval{out: out, err: err}
		}()
		return nil
	}

	// Throttled or still pending: evaluation is still dispatched every
	// frame, its results simply never reach the mesh.
	if err := d.backend.Dispatch(&p, d.sampler, d.snap, d.back); err != nil {
		logger.Error("evaluation dispatch failed", zap.Error(err))
		return err
	}
	return nil
}

// Outputs returns the most recently retrieved output records. Under
// throttled or pending readback these may be one or more frames old.
func (d *Driver) Outputs() []Output {
	return d.front
}

// WriteMesh copies the retrieved outputs into the host mesh buffers.
func (d *Driver) WriteMesh(buf *mesh.Buffers) {
	for i := range d.front {
		o := &d.front[i]
		buf.SetVertex(i, o.Position, o.Color, o.Normal, o.UV2)
	}
}

// Release tears the session down, waiting out any in-flight retrieval.
func (d *Driver) Release() {
	if d.inFlight {
		<-d.pending
		d.inFlight = false
	}
}
