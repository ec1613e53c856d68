package quadtree

import (
	"sort"
	"testing"

	"github.com/cubesphere/planetgrid/chunkaddr"
	"github.com/cubesphere/planetgrid/face"
	"github.com/cubesphere/planetgrid/internal/tuning"
)

func addrLess(a, b chunkaddr.ChunkAddress) bool { return a.Less(b) }

func sortedAddrs(addrs []chunkaddr.ChunkAddress) []chunkaddr.ChunkAddress {
	out := append([]chunkaddr.ChunkAddress(nil), addrs...)
	sort.Slice(out, func(i, j int) bool { return addrLess(out[i], out[j]) })
	return out
}

func TestNewIsSingleRootLeaf(t *testing.T) {
	tr := New(face.PosX)
	leaves := tr.AllLeaves()
	if len(leaves) != 1 {
		t.Fatalf("new tree has %d leaves, want 1", len(leaves))
	}
	want := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	if leaves[0] != want {
		t.Fatalf("root leaf = %v, want %v", leaves[0], want)
	}
}

func TestSubdivideProducesFourLeaves(t *testing.T) {
	tr := New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	tr.Subdivide(root)

	leaves := tr.AllLeaves()
	if len(leaves) != 4 {
		t.Fatalf("after one subdivide: %d leaves, want 4", len(leaves))
	}
	wantChildren, _ := root.Children()
	got := sortedAddrs(leaves)
	want := sortedAddrs(wantChildren[:])
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("leaf %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSubdivideTwiceGivesSevenLeaves(t *testing.T) {
	tr := New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	tr.Subdivide(root)

	children, _ := root.Children()
	tr.Subdivide(children[0])

	leaves := tr.AllLeaves()
	if len(leaves) != 7 {
		t.Fatalf("after two subdivides: %d leaves, want 7", len(leaves))
	}
}

func TestMergeCollapsesToRoot(t *testing.T) {
	tr := New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	tr.Subdivide(root)
	children, _ := root.Children()
	tr.Subdivide(children[0])

	tr.Merge(root)
	leaves := tr.AllLeaves()
	if len(leaves) != 1 || leaves[0] != root {
		t.Fatalf("after merging root: leaves = %v, want single root leaf", leaves)
	}
}

func TestMergeIdempotentOnLeaf(t *testing.T) {
	tr := New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	tr.Merge(root)
	leaves := tr.AllLeaves()
	if len(leaves) != 1 || leaves[0] != root {
		t.Fatalf("merge on leaf should be a no-op, got leaves = %v", leaves)
	}
}

func TestSubdivideLodZeroPanics(t *testing.T) {
	tr := New(face.PosX)
	cur := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	for cur.Lod > 0 {
		tr.Subdivide(cur)
		children, _ := cur.Children()
		cur = children[0]
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic subdividing a lod-0 leaf")
		}
	}()
	tr.Subdivide(cur)
}

func TestFindLeafDescendsToCorrectQuadrant(t *testing.T) {
	tr := New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	tr.Subdivide(root)
	children, _ := root.Children()

	cases := []struct {
		u, v float64
		want chunkaddr.ChunkAddress
	}{
		{0.1, 0.1, children[0]},
		{0.9, 0.1, children[1]},
		{0.1, 0.9, children[2]},
		{0.9, 0.9, children[3]},
	}
	for _, c := range cases {
		got := tr.FindLeaf(c.u, c.v)
		if got != c.want {
			t.Errorf("FindLeaf(%v,%v) = %v, want %v", c.u, c.v, got, c.want)
		}
	}
}

func TestFindLeafClampsOutOfRange(t *testing.T) {
	tr := New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	got := tr.FindLeaf(-5, 10)
	if got != root {
		t.Fatalf("FindLeaf with out-of-range input = %v, want root %v", got, root)
	}
}

func TestMergeReusesChildArrayOnNextSubdivide(t *testing.T) {
	tuning.SetQuadtreePoolEnabled(true)
	defer tuning.SetQuadtreePoolEnabled(false)

	tr := New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	tr.Subdivide(root)
	first := tr.root.children

	tr.Merge(root)
	if len(tr.pool) != 1 {
		t.Fatalf("pool size after merge = %d, want 1", len(tr.pool))
	}

	tr.Subdivide(root)
	second := tr.root.children
	if first != second {
		t.Fatal("Subdivide after Merge should reuse the pooled child array")
	}
	if len(tr.pool) != 0 {
		t.Fatalf("pool size after reuse = %d, want 0", len(tr.pool))
	}
}

func TestMergeDoesNotPoolWhenDisabled(t *testing.T) {
	tuning.SetQuadtreePoolEnabled(false)

	tr := New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	tr.Subdivide(root)
	tr.Merge(root)
	if len(tr.pool) != 0 {
		t.Fatalf("pool size with pooling disabled = %d, want 0", len(tr.pool))
	}
}

func TestMergeRespectsPoolHighWater(t *testing.T) {
	tuning.SetQuadtreePoolEnabled(true)
	tuning.SetPoolHighWater(1)
	defer tuning.SetQuadtreePoolEnabled(false)
	defer tuning.SetPoolHighWater(64)

	tr := New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	tr.Subdivide(root)
	children, _ := root.Children()
	tr.Subdivide(children[0])
	tr.Subdivide(children[1])

	tr.Merge(root)
	if len(tr.pool) != 1 {
		t.Fatalf("pool size after merge with high-water 1 = %d, want 1", len(tr.pool))
	}
}

func TestLeavesAtLod(t *testing.T) {
	tr := New(face.PosX)
	root := chunkaddr.New(face.PosX, chunkaddr.MaxLod, 0, 0)
	tr.Subdivide(root)
	children, _ := root.Children()
	tr.Subdivide(children[0])

	atChildLod := tr.LeavesAtLod(chunkaddr.MaxLod - 1)
	if len(atChildLod) != 3 {
		t.Fatalf("leaves at child lod = %d, want 3", len(atChildLod))
	}
	atGrandchildLod := tr.LeavesAtLod(chunkaddr.MaxLod - 2)
	if len(atGrandchildLod) != 4 {
		t.Fatalf("leaves at grandchild lod = %d, want 4", len(atGrandchildLod))
	}
}
