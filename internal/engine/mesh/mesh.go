// Package mesh provides the vertex snapshot and renderable buffers the
// wave deformation pipeline reads from and writes to.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one immutable source vertex.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Snapshot is an immutable copy of a source mesh taken once at
// initialization. The deformation system owns it for the session; the
// live mesh is only ever written to, never re-read.
type Snapshot struct {
	Vertices []Vertex
	// HasUV reports whether the source mesh carried authored texture
	// coordinates. When true, UV0 is the ground truth for logical
	// coordinates instead of index-derived grid position.
	HasUV bool
}

// Snap copies mesh attribute arrays into a Snapshot. normals and uvs may be
// nil; missing normals default to +Y.
func Snap(positions []mgl32.Vec3, normals []mgl32.Vec3, uvs []mgl32.Vec2) *Snapshot {
	s := &Snapshot{
		Vertices: make([]Vertex, len(positions)),
		HasUV:    uvs != nil,
	}
	for i, p := range positions {
		v := Vertex{Position: p, Normal: mgl32.Vec3{0, 1, 0}}
		if normals != nil {
			v.Normal = normals[i]
		}
		if uvs != nil {
			v.UV = uvs[i]
		}
		s.Vertices[i] = v
	}
	return s
}

// Count returns the number of vertices in the snapshot.
func (s *Snapshot) Count() int {
	return len(s.Vertices)
}

// Buffers holds the renderable per-vertex arrays a host mesh exposes.
// The frame driver overwrites them on retrieval frames; between
// retrievals they keep the previous frame's data.
type Buffers struct {
	Positions []float32 // xyz per vertex
	Colors    []float32 // rgba per vertex
	Normals   []float32 // xyz per vertex
	UV2       []float32 // uv per vertex
}

// NewBuffers allocates buffers for count vertices. When extended is false
// the normal and UV2 arrays stay nil.
func NewBuffers(count int, extended bool) *Buffers {
	b := &Buffers{
		Positions: make([]float32, count*3),
		Colors:    make([]float32, count*4),
	}
	if extended {
		b.Normals = make([]float32, count*3)
		b.UV2 = make([]float32, count*2)
	}
	return b
}

// SetVertex writes one vertex worth of output data. Normal and UV2 writes
// are skipped when the buffers were allocated without them.
func (b *Buffers) SetVertex(i int, pos mgl32.Vec3, color mgl32.Vec4, normal mgl32.Vec3, uv2 mgl32.Vec2) {
	b.Positions[i*3] = pos.X()
	b.Positions[i*3+1] = pos.Y()
	b.Positions[i*3+2] = pos.Z()

	b.Colors[i*4] = color.X()
	b.Colors[i*4+1] = color.Y()
	b.Colors[i*4+2] = color.Z()
	b.Colors[i*4+3] = color.W()

	if b.Normals != nil {
		b.Normals[i*3] = normal.X()
		b.Normals[i*3+1] = normal.Y()
		b.Normals[i*3+2] = normal.Z()
	}
	if b.UV2 != nil {
		b.UV2[i*2] = uv2.X()
		b.UV2[i*2+1] = uv2.Y()
	}
}

// Position returns the position of vertex i as a vector.
func (b *Buffers) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{b.Positions[i*3], b.Positions[i*3+1], b.Positions[i*3+2]}
}
