// Package chunkaddr implements the hierarchical chunk addressing scheme:
// every chunk on a cube face is named by (face, lod, x, y), with lod 0 the
// finest grid and lod MaxLod a single chunk covering the whole face.
package chunkaddr

import (
	"fmt"

	"github.com/cubesphere/planetgrid/face"
	"github.com/cubesphere/planetgrid/projection"
)

// MaxLod is the coarsest level of detail: one chunk per face.
const MaxLod = 20

// GridSize returns the number of chunks per axis at the given lod.
// GridSize(0) is the finest grid (1<<MaxLod); GridSize(MaxLod) is 1.
func GridSize(lod int) int {
	if lod < 0 || lod > MaxLod {
		panic(fmt.Sprintf("chunkaddr: lod %d out of [0,%d]", lod, MaxLod))
	}
	return (1 << MaxLod) >> uint(lod)
}

// ChunkAddress names a chunk on one cube face at a given level of detail.
// The zero value is the valid address (PosX, 0, 0, 0); use New to build
// other addresses with their range checks.
type ChunkAddress struct {
	Face face.Face
	Lod  int
	X, Y int
}

// New builds a ChunkAddress, panicking if lod is out of [0,MaxLod] or x,y
// are out of [0, GridSize(lod)).
func New(f face.Face, lod, x, y int) ChunkAddress {
	if !f.Valid() {
		panic("chunkaddr: invalid face")
	}
	if lod < 0 || lod > MaxLod {
		panic(fmt.Sprintf("chunkaddr: lod %d out of [0,%d]", lod, MaxLod))
	}
	g := GridSize(lod)
	if x < 0 || x >= g || y < 0 || y >= g {
		panic(fmt.Sprintf("chunkaddr: (x,y)=(%d,%d) out of [0,%d) at lod %d", x, y, g, lod))
	}
	return ChunkAddress{Face: f, Lod: lod, X: x, Y: y}
}

// UVBounds returns the (u0,v0,u1,v1) rectangle this address covers.
func (a ChunkAddress) UVBounds() (u0, v0, u1, v1 float64) {
	g := float64(GridSize(a.Lod))
	return float64(a.X) / g, float64(a.Y) / g, float64(a.X+1) / g, float64(a.Y+1) / g
}

// CenterFaceCoord returns the FaceCoord at the midpoint of this address's
// UV rectangle.
func (a ChunkAddress) CenterFaceCoord() projection.FaceCoord {
	u0, v0, u1, v1 := a.UVBounds()
	return projection.NewFaceCoord(a.Face, (u0+u1)/2, (v0+v1)/2)
}

// Parent returns the address one level coarser and true, or the zero value
// and false if a is already at MaxLod.
func (a ChunkAddress) Parent() (ChunkAddress, bool) {
	if a.Lod == MaxLod {
		return ChunkAddress{}, false
	}
	return ChunkAddress{Face: a.Face, Lod: a.Lod + 1, X: a.X / 2, Y: a.Y / 2}, true
}

// Children returns the four addresses one level finer, in the canonical
// order [(x,y), (x+1,y), (x,y+1), (x+1,y+1)] at child lod, and true; or
// the zero array and false if a is already at lod 0.
func (a ChunkAddress) Children() ([4]ChunkAddress, bool) {
	if a.Lod == 0 {
		return [4]ChunkAddress{}, false
	}
	lod := a.Lod - 1
	x, y := a.X*2, a.Y*2
	return [4]ChunkAddress{
		{Face: a.Face, Lod: lod, X: x, Y: y},
		{Face: a.Face, Lod: lod, X: x + 1, Y: y},
		{Face: a.Face, Lod: lod, X: x, Y: y + 1},
		{Face: a.Face, Lod: lod, X: x + 1, Y: y + 1},
	}, true
}

// Less implements the total order: lexicographic on (face, lod, x, y).
func (a ChunkAddress) Less(b ChunkAddress) bool {
	if a.Face != b.Face {
		return a.Face < b.Face
	}
	if a.Lod != b.Lod {
		return a.Lod < b.Lod
	}
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// String renders a compact human-readable form, e.g. "+X/12/34/56".
func (a ChunkAddress) String() string {
	return fmt.Sprintf("%s/%d/%d/%d", a.Face, a.Lod, a.X, a.Y)
}
