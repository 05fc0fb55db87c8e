// Package deform implements the procedural ocean wave deformation core:
// grid indexing, the sliding region window, texture-driven displacement
// sampling, normal reconstruction, per-vertex evaluation, and the frame
// driver that dispatches evaluation and retrieves results.
package deform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Variant selects the pipeline outputs.
type Variant int

const (
	// VariantBasic produces displaced positions and foam colors.
	VariantBasic Variant = iota
	// VariantExtended additionally produces perturbed normals and a
	// UV2 correction channel.
	VariantExtended
)

// Params is the complete per-frame scalar parameter set pushed by the
// frame driver into the evaluation stage. Single writer (the driver),
// read-only during evaluation; a vertex's output depends only on its
// static data and these values.
type Params struct {
	VertexCount int
	Grid        Grid
	Variant     Variant

	// Displacement is the global displacement magnitude.
	Displacement float32
	// NormalScale scales the sampled derivatives during normal
	// reconstruction.
	NormalScale float32
	// SubDivisions tiles the deformation texture across the grid.
	SubDivisions int

	Region   Window
	FeatherX float32
	FeatherZ float32

	// Anim holds the post-wrap, post-epsilon-scale animation phases.
	Anim AnimWindow
	// Blend is this frame's crossfade weight between the two
	// animation samples.
	Blend float32

	ZScaleCurrent float32
	ZScalePivot   float32

	// OffsetScale and OffsetBias decode the UV-offset texture:
	// delta = (sampled - OffsetBias/255) * OffsetScale.
	OffsetScale float32
	OffsetBias  float32

	FoamColor mgl32.Vec4

	// LogicalFromUV uses the vertex's authored UV0 as its logical
	// coordinates instead of deriving them from world position. The
	// fallback when mesh authoring order is unknown.
	LogicalFromUV bool
}

// Output is one vertex's evaluation result for the current frame.
// Recomputed every frame, no history retained.
type Output struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
	Normal   mgl32.Vec3
	UV2      mgl32.Vec2
}

// ReadbackMode selects how evaluation results reach the host mesh.
type ReadbackMode int

const (
	// ReadbackSync retrieves results before Advance returns.
	ReadbackSync ReadbackMode = iota
	// ReadbackAsync issues a retrieval request and consumes it on a
	// later frame, at most one outstanding at a time.
	ReadbackAsync
)

// Config is the author-time configuration for one deformation instance.
type Config struct {
	Variant Variant

	Displacement float32
	NormalScale  float32
	SubDivisions int

	// AnimRateStart and AnimRateEnd advance the two animation phases,
	// in cycles per second. AnimPeriod is the crossfade period in
	// seconds.
	AnimRateStart float32
	AnimRateEnd   float32
	AnimPeriod    float32

	RegionWidth float32
	RegionSpeed float32
	FeatherX    float32
	FeatherZ    float32

	ZScale ZScale

	OffsetScale float32
	OffsetBias  float32

	FoamColor mgl32.Vec4

	LogicalFromUV bool

	Readback ReadbackMode
	// ThrottleN skips retrieval on N out of every N+1 frames.
	// Evaluation still dispatches every frame.
	ThrottleN int

	// Workers bounds the evaluation goroutines; 0 means GOMAXPROCS.
	Workers int

	// GridSizeX and GridSizeZ override detection when set. Detection
	// is a heuristic; irregular meshes should set these explicitly.
	GridSizeX int
	GridSizeZ int
}

// DefaultConfig returns the standard deformation settings.
func DefaultConfig() Config {
	return Config{
		Variant:       VariantExtended,
		Displacement:  1.0,
		NormalScale:   1.0,
		SubDivisions:  1,
		AnimRateStart: 0.05,
		AnimRateEnd:   0.08,
		AnimPeriod:    4.0,
		RegionWidth:   0.25,
		RegionSpeed:   0.02,
		FeatherX:      0.05,
		FeatherZ:      0.05,
		ZScale:        ZScale{Start: 1.0, End: 1.0, Speed: 0.1, Pivot: 0},
		OffsetScale:   0.1,
		OffsetBias:    188,
		FoamColor:     mgl32.Vec4{1, 1, 1, 1},
	}
}
