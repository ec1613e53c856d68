package topology

import (
	"testing"

	"github.com/cubesphere/planetgrid/chunkaddr"
	"github.com/cubesphere/planetgrid/face"
	"github.com/cubesphere/planetgrid/quadtree"
)

func TestLODNeighborSameLodIsSingle(t *testing.T) {
	tr := quadtree.New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	tr.Subdivide(root)
	children, _ := root.Children()

	// children[0] and children[1] are neighbors at the same lod (East step).
	res := LODNeighbor(children[0], East, tr)
	if res.Kind != KindSingle {
		t.Fatalf("same-lod neighbor: kind = %v, want KindSingle", res.Kind)
	}
	if res.Single != children[1] {
		t.Fatalf("same-lod neighbor = %v, want %v", res.Single, children[1])
	}
}

func TestLODNeighborOffFace(t *testing.T) {
	tr := quadtree.New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)

	res := LODNeighbor(root, East, tr)
	if res.Kind != KindOffFace {
		t.Fatalf("single-chunk face neighbor: kind = %v, want KindOffFace", res.Kind)
	}
}

func TestLODNeighborFinerGivesMultiple(t *testing.T) {
	tr := quadtree.New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	tr.Subdivide(root)
	children, _ := root.Children()
	// Subdivide the east neighbor finer than its west sibling.
	tr.Subdivide(children[1])

	res := LODNeighbor(children[0], East, tr)
	if res.Kind != KindMultiple {
		t.Fatalf("finer neighbor: kind = %v, want KindMultiple", res.Kind)
	}
	if len(res.Leaves) == 0 {
		t.Fatal("finer neighbor: expected at least one leaf")
	}
	for _, l := range res.Leaves {
		if l.Lod != children[0].Lod-1 {
			t.Fatalf("leaf %v at unexpected lod, want %d", l, children[0].Lod-1)
		}
	}
}

func TestCrossFaceLODNeighborSameLod(t *testing.T) {
	src := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)

	nf, _, _ := CrossEdgeAdjacency(face.PosX, East)
	neighborTree := quadtree.New(nf)

	res := CrossFaceLODNeighbor(src, East, neighborTree)
	if res.Kind != KindSingle {
		t.Fatalf("cross-face same-lod neighbor: kind = %v, want KindSingle", res.Kind)
	}
	if res.Single.Face != nf {
		t.Fatalf("cross-face neighbor face = %s, want %s", res.Single.Face, nf)
	}
}
