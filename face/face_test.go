package face

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-12

func approxVec(a, b mgl64.Vec3, tol float64) bool {
	return math.Abs(a[0]-b[0]) < tol && math.Abs(a[1]-b[1]) < tol && math.Abs(a[2]-b[2]) < tol
}

// TestBasisContract checks the invariant that must hold regardless of
// which T/B assignment is chosen: T×B=N for every face.
func TestBasisContract(t *testing.T) {
	for _, f := range ALL {
		n, tg, b := Normal(f), Tangent(f), Bitangent(f)

		if math.Abs(n.Len()-1) > eps || math.Abs(tg.Len()-1) > eps || math.Abs(b.Len()-1) > eps {
			t.Fatalf("face %s: basis vectors not unit length (N=%v T=%v B=%v)", f, n, tg, b)
		}
		if math.Abs(tg.Dot(n)) > eps {
			t.Fatalf("face %s: T·N = %v, want 0", f, tg.Dot(n))
		}
		if math.Abs(b.Dot(n)) > eps {
			t.Fatalf("face %s: B·N = %v, want 0", f, b.Dot(n))
		}
		cross := tg.Cross(b)
		if !approxVec(cross, n, eps) {
			t.Fatalf("face %s: T×B = %v, want N = %v", f, cross, n)
		}
	}
}

func TestOppositeInvolution(t *testing.T) {
	for _, f := range ALL {
		if got := f.Opposite().Opposite(); got != f {
			t.Fatalf("Opposite(Opposite(%s)) = %s, want %s", f, got, f)
		}
		n := Normal(f)
		on := Normal(f.Opposite())
		sum := n.Add(on)
		if !approxVec(sum, mgl64.Vec3{0, 0, 0}, eps) {
			t.Fatalf("face %s: N + opposite.N = %v, want zero", f, sum)
		}
	}
}

func TestAllCanonicalOrder(t *testing.T) {
	want := [numFaces]Face{PosX, NegX, PosY, NegY, PosZ, NegZ}
	if ALL != want {
		t.Fatalf("ALL = %v, want %v", ALL, want)
	}
}

func TestBasisVectorsAreAxisAligned(t *testing.T) {
	isAxisUnit := func(v mgl64.Vec3) bool {
		nonZero := 0
		for _, c := range v {
			if math.Abs(c) > eps {
				if math.Abs(math.Abs(c)-1) > eps {
					return false
				}
				nonZero++
			}
		}
		return nonZero == 1
	}
	for _, f := range ALL {
		if !isAxisUnit(Normal(f)) || !isAxisUnit(Tangent(f)) || !isAxisUnit(Bitangent(f)) {
			t.Fatalf("face %s: basis vectors are not axis-aligned units", f)
		}
	}
}
