package topology

import (
	"github.com/cubesphere/planetgrid/chunkaddr"
	"github.com/cubesphere/planetgrid/quadtree"
)

// NeighborKind classifies the shape of the answer a LOD-aware neighbor
// lookup returns.
type NeighborKind uint8

const (
	// KindSingle means exactly one neighbor leaf was found, same lod or
	// coarser than the source address.
	KindSingle NeighborKind = iota
	// KindMultiple means the neighbor side is subdivided finer than the
	// source; Leaves holds every distinct finer leaf touching the shared
	// edge.
	KindMultiple
	// KindOffFace means the same-face step left the grid; the caller
	// must look this up against the neighbor face's own tree (see
	// CrossFaceLODNeighbor).
	KindOffFace
)

// NeighborResult is the result of a LOD-aware neighbor lookup.
type NeighborResult struct {
	Kind   NeighborKind
	Single chunkaddr.ChunkAddress
	Leaves []chunkaddr.ChunkAddress
}

// LODNeighbor resolves the neighbor of a in direction d against tree,
// the quadtree of a's own face. If the same-face step is in range, the
// leaf on the stepped-to side of the shared edge's midpoint is looked up
// in tree: a leaf at lod >=
// a.Lod yields KindSingle; a finer leaf yields KindMultiple after
// sampling the shared edge for every distinct finer leaf. An out-of-range
// step yields KindOffFace; the caller must identify the neighbor face via
// CrossEdgeAdjacency and call CrossFaceLODNeighbor with that face's tree.
func LODNeighbor(a chunkaddr.ChunkAddress, d Direction, tree *quadtree.FaceQuadtree) NeighborResult {
	same, ok := SameFaceNeighbor(a, d)
	if !ok {
		return NeighborResult{Kind: KindOffFace}
	}
	return resolveAgainstTree(a, tree, edgeIntervalOnOwnFace(same, d))
}

// CrossFaceLODNeighbor resolves the neighbor of a in direction d on the
// face across that edge, using neighborTree (the FaceQuadtree of the
// face CrossEdgeAdjacency(a.Face, d) names). It transforms a's shared
// edge into the neighbor face's UV space and performs a real tree lookup,
// exactly mirroring LODNeighbor's same-face behavior rather than
// computing an address arithmetically.
func CrossFaceLODNeighbor(a chunkaddr.ChunkAddress, d Direction, neighborTree *quadtree.FaceQuadtree) NeighborResult {
	u0, v0, u1, v1 := a.UVBounds()

	var loU, loV, hiU, hiV float64
	switch d {
	case North:
		_, loU, loV = TransformUVAcrossEdge(a.Face, d, u0, v1)
		_, hiU, hiV = TransformUVAcrossEdge(a.Face, d, u1, v1)
	case South:
		_, loU, loV = TransformUVAcrossEdge(a.Face, d, u0, v0)
		_, hiU, hiV = TransformUVAcrossEdge(a.Face, d, u1, v0)
	case East:
		_, loU, loV = TransformUVAcrossEdge(a.Face, d, u1, v0)
		_, hiU, hiV = TransformUVAcrossEdge(a.Face, d, u1, v1)
	default: // West
		_, loU, loV = TransformUVAcrossEdge(a.Face, d, u0, v0)
		_, hiU, hiV = TransformUVAcrossEdge(a.Face, d, u0, v1)
	}
	// A flipped edge reverses the parameter; edgeSegment keeps lo <= hi.
	if loU > hiU {
		loU, hiU = hiU, loU
	}
	if loV > hiV {
		loV, hiV = hiV, loV
	}

	return resolveAgainstTree(a, neighborTree, edgeSegment{loU, loV, hiU, hiV})
}

// edgeSegment is a straight run of UV space along one face's grid edge,
// either horizontal (loV==hiV, loU<hiU) or vertical (loU==hiU, loV<hiV).
type edgeSegment struct {
	loU, loV, hiU, hiV float64
}

// edgeIntervalOnOwnFace returns, in same's own UV space, the edge of same
// that borders a (the chunk same.ChunkAddress was stepped away from in
// direction d): a's north edge borders same's south edge, and so on.
// FindLeaf assigns a point on a shared boundary to the chunk above or to
// the right of it, so same's north and east edges are returned inset into
// same by half a finest-lod cell, keeping lookups on same's side.
func edgeIntervalOnOwnFace(same chunkaddr.ChunkAddress, d Direction) edgeSegment {
	u0, v0, u1, v1 := same.UVBounds()
	inset := 0.5 / float64(chunkaddr.GridSize(0))
	switch d {
	case North:
		return edgeSegment{u0, v0, u1, v0} // same's south edge
	case South:
		return edgeSegment{u0, v1 - inset, u1, v1 - inset} // just inside same's north edge
	case East:
		return edgeSegment{u0, v0, u0, v1} // same's west edge
	default: // West
		return edgeSegment{u1 - inset, v0, u1 - inset, v1} // just inside same's east edge
	}
}

// resolveAgainstTree looks up the leaf at the segment's midpoint in tree.
// If it is at least as coarse as a, that single leaf is the answer. If it
// is finer, the segment is adaptively subdivided to enumerate every
// distinct finer leaf touching it.
func resolveAgainstTree(a chunkaddr.ChunkAddress, tree *quadtree.FaceQuadtree, seg edgeSegment) NeighborResult {
	midU, midV := (seg.loU+seg.hiU)/2, (seg.loV+seg.hiV)/2
	leaf := tree.FindLeaf(midU, midV)
	if leaf.Lod >= a.Lod {
		return NeighborResult{Kind: KindSingle, Single: leaf}
	}

	seen := map[chunkaddr.ChunkAddress]bool{}
	var leaves []chunkaddr.ChunkAddress
	const maxDepth = chunkaddr.MaxLod + 4
	var recurse func(seg edgeSegment, depth int)
	recurse = func(seg edgeSegment, depth int) {
		midU, midV := (seg.loU+seg.hiU)/2, (seg.loV+seg.hiV)/2
		l := tree.FindLeaf(midU, midV)
		lu0, lv0, lu1, lv1 := l.UVBounds()
		within := seg.loU >= lu0-1e-12 && seg.hiU <= lu1+1e-12 && seg.loV >= lv0-1e-12 && seg.hiV <= lv1+1e-12
		if within || depth >= maxDepth {
			if !seen[l] {
				seen[l] = true
				leaves = append(leaves, l)
			}
			return
		}
		midSegU := (seg.loU + seg.hiU) / 2
		midSegV := (seg.loV + seg.hiV) / 2
		recurse(edgeSegment{seg.loU, seg.loV, midSegU, midSegV}, depth+1)
		recurse(edgeSegment{midSegU, midSegV, seg.hiU, seg.hiV}, depth+1)
	}
	recurse(seg, 0)

	return NeighborResult{Kind: KindMultiple, Leaves: leaves}
}
