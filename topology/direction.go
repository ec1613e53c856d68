// Package topology implements cross-chunk and cross-face adjacency: the
// same-face neighbor rule, the derived 24-entry cross-edge adjacency
// table, UV transform across a shared edge, cube-corner adjacency,
// LOD-aware neighbor lookup through the quadtree, and the per-face
// winding-flip table and index generation consumed by a mesher.
package topology

import (
	"fmt"

	"github.com/cubesphere/planetgrid/chunkaddr"
)

// Direction is one of the four in-face neighbor directions. Canonical
// order is North, South, East, West.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// directions is the canonical iteration order.
var directions = [4]Direction{North, South, East, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// edgeVariesAlongU reports whether the edge-parallel parameter along d is
// the address's u (x) coordinate. North/South edges run along u; East/West
// edges run along v.
func edgeVariesAlongU(d Direction) bool {
	return d == North || d == South
}

// SameFaceNeighbor returns the neighbor of a in direction d on the same
// face, and true, if that neighbor is in range. East increments x, North
// increments y; West and South decrement. Returns false (off-face) if the
// step would leave the face's grid.
func SameFaceNeighbor(a chunkaddr.ChunkAddress, d Direction) (chunkaddr.ChunkAddress, bool) {
	g := chunkaddr.GridSize(a.Lod)
	x, y := a.X, a.Y
	switch d {
	case North:
		y++
	case South:
		y--
	case East:
		x++
	case West:
		x--
	}
	if x < 0 || x >= g || y < 0 || y >= g {
		return chunkaddr.ChunkAddress{}, false
	}
	return chunkaddr.New(a.Face, a.Lod, x, y), true
}
