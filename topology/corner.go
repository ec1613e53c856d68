package topology

import (
	"github.com/cubesphere/planetgrid/chunkaddr"
	"github.com/cubesphere/planetgrid/face"
	"github.com/cubesphere/planetgrid/internal/profiling"
)

// CubeCorner identifies one of the 8 cube corners by its sign along each
// axis.
type CubeCorner struct {
	SX, SY, SZ int8 // each is -1 or +1
}

// corners is the canonical 8-corner order: X varies slowest, then Y, then Z.
var corners = [8]CubeCorner{
	{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
	{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
}

// AllCorners returns the 8 cube corners in canonical order.
func AllCorners() [8]CubeCorner { return corners }

func faceForAxisSign(axis int, sign int8) face.Face {
	switch axis {
	case 0:
		if sign > 0 {
			return face.PosX
		}
		return face.NegX
	case 1:
		if sign > 0 {
			return face.PosY
		}
		return face.NegY
	default:
		if sign > 0 {
			return face.PosZ
		}
		return face.NegZ
	}
}

// Faces returns the three faces meeting at c, in canonical (X,Y,Z) axis
// order.
func (c CubeCorner) Faces() [3]face.Face {
	return [3]face.Face{
		faceForAxisSign(0, c.SX),
		faceForAxisSign(1, c.SY),
		faceForAxisSign(2, c.SZ),
	}
}

// sign3 returns the component of c along the given unit axis vector, one
// of -1 or +1.
func sign3(c CubeCorner, axisSign int8, axis int) float64 {
	switch axis {
	case 0:
		return float64(c.SX * axisSign)
	case 1:
		return float64(c.SY * axisSign)
	default:
		return float64(c.SZ * axisSign)
	}
}

// axisOf returns which of X,Y,Z a face's basis vector points along, and
// its sign.
func axisOf(v [3]float64) (axis int, sign int8) {
	for i, c := range v {
		if c > 0.5 {
			return i, 1
		}
		if c < -0.5 {
			return i, -1
		}
	}
	return 0, 1
}

// CornerChunkOnFace returns the chunk address at the given lod on f whose
// corner touches corner c. Panics if f is not one of corner's three
// faces.
func CornerChunkOnFace(c CubeCorner, f face.Face, lod int) chunkaddr.ChunkAddress {
	defer profiling.Track("topology.CornerChunkOnFace")()

	faces := c.Faces()
	if f != faces[0] && f != faces[1] && f != faces[2] {
		panic("topology: face does not meet at this corner")
	}

	tg := face.Tangent(f)
	bt := face.Bitangent(f)

	tAxis, tSign := axisOf([3]float64{tg[0], tg[1], tg[2]})
	bAxis, bSign := axisOf([3]float64{bt[0], bt[1], bt[2]})

	su := sign3(c, tSign, tAxis)
	sv := sign3(c, bSign, bAxis)

	g := chunkaddr.GridSize(lod)
	x, y := 0, 0
	if su > 0 {
		x = g - 1
	}
	if sv > 0 {
		y = g - 1
	}
	return chunkaddr.New(f, lod, x, y)
}

// CornerLODValid reports whether the three chunks meeting at a corner
// satisfy the crack-free meshing constraint max(lod)-min(lod) <= 1. This
// is a pure predicate; nothing in this module enforces it.
func CornerLODValid(addrs [3]chunkaddr.ChunkAddress) bool {
	min, max := addrs[0].Lod, addrs[0].Lod
	for _, a := range addrs[1:] {
		if a.Lod < min {
			min = a.Lod
		}
		if a.Lod > max {
			max = a.Lod
		}
	}
	return max-min <= 1
}
