package chunkaddr

import (
	"math"
	"testing"

	"github.com/cubesphere/planetgrid/face"
)

func TestGridSizeEndpoints(t *testing.T) {
	if got := GridSize(0); got != 1<<MaxLod {
		t.Fatalf("GridSize(0) = %d, want %d", got, 1<<MaxLod)
	}
	if got := GridSize(MaxLod); got != 1 {
		t.Fatalf("GridSize(MaxLod) = %d, want 1", got)
	}
}

func TestNewPanicsOnInvalidLod(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for lod > MaxLod")
		}
	}()
	New(face.PosX, MaxLod+1, 0, 0)
}

func TestNewPanicsOnOutOfRangeXY(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for x out of range")
		}
	}()
	New(face.PosX, MaxLod, 1, 0)
}

func TestParentAtMaxLod(t *testing.T) {
	a := New(face.PosX, MaxLod, 0, 0)
	if _, ok := a.Parent(); ok {
		t.Fatal("Parent() at MaxLod should return ok=false")
	}
}

func TestChildrenAtLodZero(t *testing.T) {
	a := New(face.PosX, 0, 5, 5)
	if _, ok := a.Children(); ok {
		t.Fatal("Children() at lod 0 should return ok=false")
	}
}

func TestParentChildRoundTrip(t *testing.T) {
	a := New(face.PosZ, 10, 100, 200)
	children, ok := a.Children()
	if !ok {
		t.Fatal("Children() should succeed above lod 0")
	}
	for i, c := range children {
		p, ok := c.Parent()
		if !ok {
			t.Fatalf("child %d: Parent() should succeed below MaxLod", i)
		}
		if p != a {
			t.Fatalf("child %d: parent = %v, want %v", i, p, a)
		}
	}
}

func TestChildrenCoverParentUVRectDisjointly(t *testing.T) {
	a := New(face.NegY, 8, 10, 20)
	pu0, pv0, pu1, pv1 := a.UVBounds()

	children, _ := a.Children()
	minU, minV := math.Inf(1), math.Inf(1)
	maxU, maxV := math.Inf(-1), math.Inf(-1)
	for i, c := range children {
		u0, v0, u1, v1 := c.UVBounds()
		if u0 < minU {
			minU = u0
		}
		if v0 < minV {
			minV = v0
		}
		if u1 > maxU {
			maxU = u1
		}
		if v1 > maxV {
			maxV = v1
		}
		for j, o := range children {
			if i == j {
				continue
			}
			ou0, ov0, ou1, ov1 := o.UVBounds()
			overlapU := u0 < ou1 && ou0 < u1
			overlapV := v0 < ov1 && ov0 < v1
			if overlapU && overlapV {
				t.Fatalf("children %d and %d overlap: (%v,%v,%v,%v) vs (%v,%v,%v,%v)", i, j, u0, v0, u1, v1, ou0, ov0, ou1, ov1)
			}
		}
	}
	if math.Abs(minU-pu0) > 1e-15 || math.Abs(minV-pv0) > 1e-15 ||
		math.Abs(maxU-pu1) > 1e-15 || math.Abs(maxV-pv1) > 1e-15 {
		t.Fatalf("children union (%v,%v,%v,%v) != parent (%v,%v,%v,%v)", minU, minV, maxU, maxV, pu0, pv0, pu1, pv1)
	}
}

func TestTotalOrder(t *testing.T) {
	a := New(face.PosX, 5, 1, 2)
	b := New(face.PosX, 5, 1, 3)
	c := New(face.PosY, 0, 0, 0)

	if !a.Less(b) {
		t.Fatal("a should be less than b (y differs)")
	}
	if b.Less(a) {
		t.Fatal("b should not be less than a")
	}
	if !a.Less(c) {
		t.Fatal("a should be less than c (face differs)")
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []ChunkAddress{
		New(face.PosX, 0, 0, 0),
		New(face.NegZ, MaxLod, 0, 0),
		New(face.PosY, 4, 12345, 54321),
		New(face.NegX, 20, 0, 0),
	}
	for _, a := range cases {
		key := a.Pack()
		got := UnpackChunkAddress(key)
		if got != a {
			t.Fatalf("Pack/Unpack round trip: got %v, want %v", got, a)
		}
	}
}

func TestCenterFaceCoordMidpoint(t *testing.T) {
	a := New(face.PosX, MaxLod, 0, 0)
	fc := a.CenterFaceCoord()
	if fc.U != 0.5 || fc.V != 0.5 {
		t.Fatalf("single-chunk face center = (%v,%v), want (0.5,0.5)", fc.U, fc.V)
	}
}
