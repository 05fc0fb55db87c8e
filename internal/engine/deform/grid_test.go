package deform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/seaswell/internal/engine/mesh"
)

func TestDetectGrid(t *testing.T) {
	snap, err := mesh.Plane(10, 20, 10, 10)
	if err != nil {
		t.Fatalf("Plane failed: %v", err)
	}

	g := Detect(snap)
	if g.SizeX != 10 || g.SizeZ != 10 {
		t.Errorf("detected %dx%d, want 10x10", g.SizeX, g.SizeZ)
	}
	if g.HalfWidth != 5 || g.HalfLength != 10 {
		t.Errorf("half extents (%v, %v), want (5, 10)", g.HalfWidth, g.HalfLength)
	}
	if !g.Matches(snap.Count()) {
		t.Error("detected grid should match 100 vertices")
	}
}

func TestDetectMergesNearDuplicates(t *testing.T) {
	// Two vertices whose X differs by less than the 1e-3 rounding are
	// the same grid column.
	positions := []mgl32.Vec3{
		{0, 0, 0}, {0.0001, 0, 1},
		{1, 0, 0}, {1.0002, 0, 1},
	}
	g := Detect(mesh.Snap(positions, nil, nil))
	if g.SizeX != 2 || g.SizeZ != 2 {
		t.Errorf("detected %dx%d, want 2x2", g.SizeX, g.SizeZ)
	}
}

func TestDetectMismatchIsNotFatal(t *testing.T) {
	// A degenerate point cloud: distinct count product disagrees with
	// vertex count. Detection still returns something usable.
	positions := []mgl32.Vec3{
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {0, 0, 1}, {1, 0, 1},
	}
	g := Detect(mesh.Snap(positions, nil, nil))
	if g.Matches(len(positions)) {
		t.Errorf("3x2 grid should not match 5 vertices, got %dx%d", g.SizeX, g.SizeZ)
	}
}

func TestCoordsIndexRoundTrip(t *testing.T) {
	g := Grid{SizeX: 10, SizeZ: 10}
	for i := 0; i < 100; i++ {
		gx, gz := g.Coords(i)
		if got := g.Index(gx, gz); got != i {
			t.Fatalf("Index(Coords(%d)) = %d", i, got)
		}
		if gx < 0 || gx >= 10 || gz < 0 || gz >= 10 {
			t.Fatalf("Coords(%d) = (%d, %d) out of range", i, gx, gz)
		}
	}
}

func TestCoordsRowMajor(t *testing.T) {
	g := Grid{SizeX: 4, SizeZ: 3}
	gx, gz := g.Coords(0)
	if gx != 0 || gz != 0 {
		t.Errorf("Coords(0) = (%d, %d), want (0, 0)", gx, gz)
	}
	gx, gz = g.Coords(3)
	if gx != 1 || gz != 0 {
		t.Errorf("Coords(3) = (%d, %d), want (1, 0)", gx, gz)
	}
}

func TestLogicalCoordinates(t *testing.T) {
	g := Grid{SizeX: 10, SizeZ: 10, HalfWidth: 5, HalfLength: 10}

	tests := []struct {
		pos    mgl32.Vec3
		wantLX float32
		wantLZ float32
	}{
		{mgl32.Vec3{-5, 0, -10}, 0, 0},
		{mgl32.Vec3{5, 0, 10}, 1, 1},
		{mgl32.Vec3{0, 0, 0}, 0.5, 0.5},
		{mgl32.Vec3{-2.5, 0, 5}, 0.25, 0.75},
		// Positions beyond the extent clamp.
		{mgl32.Vec3{100, 0, -100}, 1, 0},
	}
	for _, tt := range tests {
		lx, lz := g.Logical(tt.pos)
		if lx != tt.wantLX || lz != tt.wantLZ {
			t.Errorf("Logical(%v) = (%v, %v), want (%v, %v)", tt.pos, lx, lz, tt.wantLX, tt.wantLZ)
		}
	}
}

func TestLogicalDegenerateExtent(t *testing.T) {
	g := Grid{} // zero extent must not divide by zero
	lx, lz := g.Logical(mgl32.Vec3{1, 2, 3})
	if lx != 0 || lz != 0 {
		t.Errorf("degenerate Logical = (%v, %v), want (0, 0)", lx, lz)
	}
}
