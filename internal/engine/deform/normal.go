package deform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Grid-local U/V basis directions. The deformation textures are authored
// in grid space, so the tangents are the world X and Z axes.
var (
	tangentU = mgl32.Vec3{1, 0, 0}
	tangentV = mgl32.Vec3{0, 0, 1}
)

// PerturbNormal reconstructs a bumped normal from the sampled partial
// derivatives: normalize(N - du*scale*tU - dv*scale*tV). Degenerate
// results fall back to the base normal.
func PerturbNormal(n mgl32.Vec3, du, dv, scale float32) mgl32.Vec3 {
	r := n.Sub(tangentU.Mul(du * scale)).Sub(tangentV.Mul(dv * scale))
	if r.Len() < 1e-8 {
		return n
	}
	return r.Normalize()
}

// blendNormal interpolates between the base and perturbed normals by the
// feather weight, renormalizing the result.
func blendNormal(base, perturbed mgl32.Vec3, w float32) mgl32.Vec3 {
	r := base.Mul(1 - w).Add(perturbed.Mul(w))
	if r.Len() < 1e-8 {
		return base
	}
	return r.Normalize()
}
