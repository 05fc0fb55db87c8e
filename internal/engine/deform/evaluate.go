package deform

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/seaswell/internal/engine/mesh"
	smath "github.com/Faultbox/seaswell/pkg/math"
)

// EvaluateVertex computes one vertex's output for the current frame. Pure
// function of the vertex record and the frame parameters: no cross-vertex
// dependencies, deterministic, safe to run in any order in parallel.
func EvaluateVertex(v *mesh.Vertex, p *Params, s *Sampler) Output {
	var lx, lz float32
	if p.LogicalFromUV {
		lx = smath.Clamp01(v.UV.X())
		lz = smath.Clamp01(v.UV.Y())
	} else {
		lx, lz = p.Grid.Logical(v.Position)
	}

	w := FeatherWeight(lx, lz, p.Region, p.FeatherX, p.FeatherZ)

	pos := v.Position
	z := ZScale{Pivot: p.ZScalePivot}
	pos[2] = z.Apply(pos.Z(), p.ZScaleCurrent)

	// Outside the active region the vertex passes through untouched
	// (modulo the global Z shrink). Skipping the sample keeps outputs
	// bit-exact against the inputs.
	if w == 0 {
		out := Output{
			Position: pos,
			Color:    mgl32.Vec4{p.FoamColor.X(), p.FoamColor.Y(), p.FoamColor.Z(), 0},
			Normal:   v.Normal,
			UV2:      v.UV,
		}
		return out
	}

	samp := s.Sample(lx, lz, p)

	pos[1] += samp.Height * p.Displacement * w

	out := Output{
		Position: pos,
		Color: mgl32.Vec4{
			p.FoamColor.X(),
			p.FoamColor.Y(),
			p.FoamColor.Z(),
			p.FoamColor.W() * samp.Foam * w,
		},
		Normal: v.Normal,
		UV2:    v.UV,
	}

	if p.Variant == VariantExtended {
		perturbed := PerturbNormal(v.Normal, samp.Du, samp.Dv, p.NormalScale*p.Displacement)
		out.Normal = blendNormal(v.Normal, perturbed, w)
		out.UV2 = v.UV.Add(samp.UVOffset.Mul(w))
	}

	return out
}
