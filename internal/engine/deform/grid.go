package deform

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/seaswell/internal/engine/mesh"
	smath "github.com/Faultbox/seaswell/pkg/math"
)

// Grid describes the 2D layout of a grid mesh: row and column counts plus
// bounding half-extents. Immutable once detected.
type Grid struct {
	SizeX      int
	SizeZ      int
	HalfWidth  float32
	HalfLength float32
}

// Detect derives grid dimensions from a vertex snapshot by counting
// distinct X and Z coordinates rounded to three decimal places. This is a
// best-effort heuristic: irregular or non-grid meshes produce dimensions
// whose product disagrees with the vertex count, which Matches surfaces.
func Detect(s *mesh.Snapshot) Grid {
	xs := make(map[int64]struct{})
	zs := make(map[int64]struct{})

	minX, maxX := float32(gomath.Inf(1)), float32(gomath.Inf(-1))
	minZ, maxZ := float32(gomath.Inf(1)), float32(gomath.Inf(-1))

	for i := range s.Vertices {
		p := s.Vertices[i].Position
		xs[roundKey(p.X())] = struct{}{}
		zs[roundKey(p.Z())] = struct{}{}

		if p.X() < minX {
			minX = p.X()
		}
		if p.X() > maxX {
			maxX = p.X()
		}
		if p.Z() < minZ {
			minZ = p.Z()
		}
		if p.Z() > maxZ {
			maxZ = p.Z()
		}
	}

	g := Grid{
		SizeX: len(xs),
		SizeZ: len(zs),
	}
	if len(s.Vertices) > 0 {
		g.HalfWidth = (maxX - minX) * 0.5
		g.HalfLength = (maxZ - minZ) * 0.5
	}
	return g
}

// roundKey merges near-duplicate float positions by rounding to 1e-3.
func roundKey(v float32) int64 {
	return int64(gomath.Round(float64(v) * 1000))
}

// Matches reports whether the detected dimensions account for every
// vertex. A false result is a configuration anomaly, not an error:
// indexing proceeds best-effort.
func (g Grid) Matches(vertexCount int) bool {
	return g.SizeX*g.SizeZ == vertexCount
}

// Coords maps a flat vertex index to grid coordinates, row-major X then Z.
func (g Grid) Coords(i int) (gx, gz int) {
	if g.SizeZ == 0 {
		return 0, 0
	}
	return i / g.SizeZ, i % g.SizeZ
}

// Index maps grid coordinates back to a flat vertex index.
func (g Grid) Index(gx, gz int) int {
	return gx*g.SizeZ + gz
}

// Logical remaps a world position to normalized [0, 1] coordinates across
// the grid's bounding extent.
func (g Grid) Logical(p mgl32.Vec3) (lx, lz float32) {
	if g.HalfWidth > 0 {
		lx = smath.Clamp01((p.X() + g.HalfWidth) / (2 * g.HalfWidth))
	}
	if g.HalfLength > 0 {
		lz = smath.Clamp01((p.Z() + g.HalfLength) / (2 * g.HalfLength))
	}
	return lx, lz
}
