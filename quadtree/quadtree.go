// Package quadtree implements the per-face adaptive quadtree that tracks
// which chunk addresses are currently realized leaves versus subdivided
// branches. The tree has a single logical owner: it is not safe for
// concurrent mutation, and concurrent readers racing a writer require
// external synchronization (a reader-writer lock) that this package does
// not provide. The recommended discipline is to mutate all six per-face
// trees within one exclusive LOD-update phase, then hand out read-only
// access to workers for meshing and culling until the next phase.
package quadtree

import (
	"fmt"

	"github.com/cubesphere/planetgrid/chunkaddr"
	"github.com/cubesphere/planetgrid/face"
	"github.com/cubesphere/planetgrid/internal/tuning"
)

// node is either a leaf (children == nil) or a branch with exactly four
// children at the next finer lod.
type node struct {
	addr     chunkaddr.ChunkAddress
	children *[4]node
}

func (n *node) isLeaf() bool { return n.children == nil }

// FaceQuadtree is the adaptive quadtree for one cube face.
type FaceQuadtree struct {
	face face.Face
	root node

	// pool holds child-node arrays reclaimed from Merge, reused by a later
	// Subdivide instead of being heap-allocated again. Only consulted when
	// tuning.GetQuadtreePoolEnabled() is set; since a FaceQuadtree has a
	// single logical owner, no lock guards it.
	pool []*[4]node
}

// New builds a FaceQuadtree for f with a single leaf covering the whole
// face at MaxLod.
func New(f face.Face) *FaceQuadtree {
	return &FaceQuadtree{
		face: f,
		root: node{addr: chunkaddr.New(f, chunkaddr.MaxLod, 0, 0)},
	}
}

// Face returns the face this tree belongs to.
func (t *FaceQuadtree) Face() face.Face { return t.face }

// Subdivide replaces the leaf at addr with a branch whose four children
// are leaves at the child addresses. It panics if addr does not name a
// current leaf or if addr.Lod is 0 (a finest-lod leaf has no children to
// subdivide into).
func (t *FaceQuadtree) Subdivide(addr chunkaddr.ChunkAddress) {
	n := t.findNode(&t.root, addr)
	if n == nil {
		panic(fmt.Sprintf("quadtree: Subdivide: %s is not a current leaf", addr))
	}
	if !n.isLeaf() {
		panic(fmt.Sprintf("quadtree: Subdivide: %s is already a branch", addr))
	}
	children, ok := addr.Children()
	if !ok {
		panic(fmt.Sprintf("quadtree: Subdivide: %s is at lod 0, cannot subdivide", addr))
	}
	kids := t.acquireChildren()
	for i, c := range children {
		kids[i] = node{addr: c}
	}
	n.children = kids
}

// Merge collapses the branch at addr to a leaf at addr, discarding all
// descendants. It is idempotent: calling Merge on an address that is
// already a leaf does nothing. Panics if addr is not a current node at
// all.
func (t *FaceQuadtree) Merge(addr chunkaddr.ChunkAddress) {
	n := t.findNode(&t.root, addr)
	if n == nil {
		panic(fmt.Sprintf("quadtree: Merge: %s is not a current node", addr))
	}
	t.releaseChildren(n)
}

// acquireChildren returns a zeroed *[4]node, reused from the pool when
// tuning.GetQuadtreePoolEnabled() and the pool is non-empty, otherwise
// freshly allocated.
func (t *FaceQuadtree) acquireChildren() *[4]node {
	if tuning.GetQuadtreePoolEnabled() && len(t.pool) > 0 {
		last := len(t.pool) - 1
		kids := t.pool[last]
		t.pool = t.pool[:last]
		*kids = [4]node{}
		return kids
	}
	return &[4]node{}
}

// releaseChildren recursively reclaims n's descendant node arrays into the
// pool, post-order, stopping once the pool reaches tuning.GetPoolHighWater().
// Always clears n.children, whether or not pooling is enabled.
func (t *FaceQuadtree) releaseChildren(n *node) {
	if n.isLeaf() {
		return
	}
	for i := range n.children {
		t.releaseChildren(&n.children[i])
	}
	if tuning.GetQuadtreePoolEnabled() && len(t.pool) < tuning.GetPoolHighWater() {
		t.pool = append(t.pool, n.children)
	}
	n.children = nil
}

// findNode locates the current node exactly matching addr, descending
// only through branches whose UV rectangle contains addr's. Returns nil
// if no current node has that exact address.
func (t *FaceQuadtree) findNode(n *node, addr chunkaddr.ChunkAddress) *node {
	if n.addr == addr {
		return n
	}
	if n.isLeaf() || addr.Lod >= n.addr.Lod {
		return nil
	}
	for i := range n.children {
		c := &n.children[i]
		shift := uint(c.addr.Lod - addr.Lod)
		if addr.X>>shift == c.addr.X && addr.Y>>shift == c.addr.Y {
			return t.findNode(c, addr)
		}
	}
	return nil
}

// FindLeaf descends from the root comparing (u,v) against each node's
// midpoint, returning the address of the containing leaf. Out-of-range
// inputs are clamped into [0,1] first.
func (t *FaceQuadtree) FindLeaf(u, v float64) chunkaddr.ChunkAddress {
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	n := &t.root
	for !n.isLeaf() {
		u0, v0, u1, v1 := n.addr.UVBounds()
		uMid := (u0 + u1) / 2
		vMid := (v0 + v1) / 2
		var idx int
		switch {
		case u < uMid && v < vMid:
			idx = 0
		case u >= uMid && v < vMid:
			idx = 1
		case u < uMid && v >= vMid:
			idx = 2
		default:
			idx = 3
		}
		n = &n.children[idx]
	}
	return n.addr
}

// LeavesAtLod returns every current leaf whose lod equals target, in no
// particular order.
func (t *FaceQuadtree) LeavesAtLod(target int) []chunkaddr.ChunkAddress {
	var out []chunkaddr.ChunkAddress
	t.collectLeaves(&t.root, func(a chunkaddr.ChunkAddress) {
		if a.Lod == target {
			out = append(out, a)
		}
	})
	return out
}

// AllLeaves returns every current leaf, in no particular order.
func (t *FaceQuadtree) AllLeaves() []chunkaddr.ChunkAddress {
	var out []chunkaddr.ChunkAddress
	t.collectLeaves(&t.root, func(a chunkaddr.ChunkAddress) {
		out = append(out, a)
	})
	return out
}

func (t *FaceQuadtree) collectLeaves(n *node, visit func(chunkaddr.ChunkAddress)) {
	if n.isLeaf() {
		visit(n.addr)
		return
	}
	for i := range n.children {
		t.collectLeaves(&n.children[i], visit)
	}
}
