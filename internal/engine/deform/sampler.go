package deform

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/seaswell/internal/engine/texture"
	smath "github.com/Faultbox/seaswell/pkg/math"
)

// Sampler reads the baked deformation maps at animation-blended,
// window-corrected coordinates. Read-only during evaluation and safe for
// concurrent use.
type Sampler struct {
	set   *texture.Set
	texel float32
}

// NewSampler wraps a deformation texture set. The set must carry at least
// the displacement map; derivative and offset maps are optional.
func NewSampler(set *texture.Set) *Sampler {
	return &Sampler{
		set:   set,
		texel: set.Displacement.TexelSize(),
	}
}

// TexelSize returns the displacement map's normalized texel width.
func (s *Sampler) TexelSize() float32 {
	return s.texel
}

// Sample is the result of one deformation lookup.
type Sample struct {
	// Height is the displacement magnitude in [0, 1].
	Height float32
	// Foam is the foam intensity in [0, 1].
	Foam float32
	// Du and Dv are the signed height partial derivatives.
	Du float32
	Dv float32
	// UVOffset is the decoded horizontal advection delta.
	UVOffset mgl32.Vec2
}

// wrapSafe wraps a coordinate into [0, 1) and pulls it off the texture
// border so filtering never crosses the wraparound seam.
func (s *Sampler) wrapSafe(x float32) float32 {
	return smath.Fract(x) * (1 - s.texel)
}

// Sample looks up the deformation field at logical grid coordinates
// (lx, lz). Two samples offset by the animation phases are crossfaded by
// the frame's blend weight; when an offset map is present the sampled UV
// delta displaces the lookup coordinate first.
func (s *Sampler) Sample(lx, lz float32, p *Params) Sample {
	tiles := float32(p.SubDivisions)
	if tiles < 1 {
		tiles = 1
	}

	// Aspect correction keeps the pattern square in world space on
	// non-square grids.
	aspect := float32(1)
	if p.Grid.HalfWidth > 0 {
		aspect = p.Grid.HalfLength / p.Grid.HalfWidth
	}

	tu := lx * tiles
	tv := lz * tiles * aspect

	uA := s.wrapSafe(tu + p.Anim.Start)
	uB := s.wrapSafe(tu + p.Anim.End)
	v := s.wrapSafe(tv)

	var out Sample

	// Horizontal advection: decode the offset map and shift the sample
	// coordinate before the main lookups. A missing map contributes
	// zero offset.
	if s.set.Offset != nil && p.OffsetScale != 0 {
		o := s.set.Offset.Sample(uA, v)
		bias := p.OffsetBias / 255.0
		out.UVOffset = mgl32.Vec2{
			(o.X() - bias) * p.OffsetScale,
			(o.Y() - bias) * p.OffsetScale,
		}
		uA = s.wrapSafe(uA + out.UVOffset.X())
		uB = s.wrapSafe(uB + out.UVOffset.X())
		v = s.wrapSafe(v + out.UVOffset.Y())
	}

	a := s.set.Displacement.Sample(uA, v)
	b := s.set.Displacement.Sample(uB, v)
	out.Height = smath.Lerp(a.X(), b.X(), p.Blend)
	out.Foam = smath.Lerp(a.Y(), b.Y(), p.Blend)

	if s.set.DerivU != nil {
		da := decodeSigned(s.set.DerivU.Sample(uA, v).X())
		db := decodeSigned(s.set.DerivU.Sample(uB, v).X())
		out.Du = smath.Lerp(da, db, p.Blend)
	}
	if s.set.DerivV != nil {
		da := decodeSigned(s.set.DerivV.Sample(uA, v).X())
		db := decodeSigned(s.set.DerivV.Sample(uB, v).X())
		out.Dv = smath.Lerp(da, db, p.Blend)
	}

	return out
}

// decodeSigned maps the [0, 1] texture encoding back to a signed value
// centered on zero.
func decodeSigned(v float32) float32 {
	return v*2 - 1
}
