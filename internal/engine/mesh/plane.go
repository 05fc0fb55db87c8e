package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane builds a flat grid snapshot centered on the origin: width along X,
// length along Z, resX by resZ vertices. Vertices are laid out row-major,
// X rows then Z columns, the order grid detection expects. UVs span [0, 1]
// across the plane, normals point up.
func Plane(width, length float32, resX, resZ int) (*Snapshot, error) {
	if resX < 2 || resZ < 2 {
		return nil, fmt.Errorf("plane resolution must be at least 2x2, got %dx%d", resX, resZ)
	}

	count := resX * resZ
	positions := make([]mgl32.Vec3, 0, count)
	normals := make([]mgl32.Vec3, 0, count)
	uvs := make([]mgl32.Vec2, 0, count)

	stepX := width / float32(resX-1)
	stepZ := length / float32(resZ-1)
	startX := -width * 0.5
	startZ := -length * 0.5

	for x := 0; x < resX; x++ {
		for z := 0; z < resZ; z++ {
			positions = append(positions, mgl32.Vec3{
				startX + float32(x)*stepX,
				0,
				startZ + float32(z)*stepZ,
			})
			normals = append(normals, mgl32.Vec3{0, 1, 0})
			uvs = append(uvs, mgl32.Vec2{
				float32(x) / float32(resX-1),
				float32(z) / float32(resZ-1),
			})
		}
	}

	return Snap(positions, normals, uvs), nil
}

// Indices builds triangle indices for a plane snapshot with the given
// resolution, two triangles per quad.
func Indices(resX, resZ int) []uint32 {
	indices := make([]uint32, 0, (resX-1)*(resZ-1)*6)
	for x := 0; x < resX-1; x++ {
		for z := 0; z < resZ-1; z++ {
			topLeft := uint32(x*resZ + z)
			topRight := topLeft + 1
			bottomLeft := uint32((x+1)*resZ + z)
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, bottomRight,
				topLeft, bottomRight, topRight,
			)
		}
	}
	return indices
}
