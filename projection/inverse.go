package projection

import (
	"math"

	"github.com/cubesphere/planetgrid/diag"
	"github.com/cubesphere/planetgrid/face"
	"github.com/cubesphere/planetgrid/internal/profiling"
	"github.com/go-gl/mathgl/mgl64"
)

// DirectionToFace picks the face whose outward normal d points most nearly
// toward: the axis of d's largest absolute component, ties broken
// X > Y > Z, positive > negative. The zero vector maps to +X. This
// tie-break is a global contract: every subsystem that rounds a point to
// a face must use this exact rule.
func DirectionToFace(d mgl64.Vec3) face.Face {
	ax, ay, az := math.Abs(d[0]), math.Abs(d[1]), math.Abs(d[2])

	if ax >= ay && ax >= az {
		if d[0] >= 0 {
			return face.PosX
		}
		return face.NegX
	}
	if ay >= az {
		if d[1] >= 0 {
			return face.PosY
		}
		return face.NegY
	}
	if d[2] >= 0 {
		return face.PosZ
	}
	return face.NegZ
}

// DirectionToFaceCoord performs inverse stage 1: it picks the face via
// DirectionToFace, then gnomonically projects d onto that face's plane
// (d/(d·N)) and decomposes the result along T,B to get an initial
// (u,v) guess. It does not refine against the Everitt forward map; see
// SphereToFaceCoordEveritt for that.
func DirectionToFaceCoord(d mgl64.Vec3) FaceCoord {
	f := DirectionToFace(d)
	n := face.Normal(f)
	denom := d.Dot(n)
	if denom == 0 {
		return NewFaceCoord(f, 0.5, 0.5)
	}
	p := d.Mul(1 / denom)
	rel := p.Sub(n)
	tg := face.Tangent(f)
	bt := face.Bitangent(f)
	s := rel.Dot(tg)
	t := rel.Dot(bt)
	return NewFaceCoord(f, (s+1)/2, (t+1)/2)
}

const (
	newtonStep     = 1e-8
	newtonEpsilon  = 1e-14
	newtonMaxIter  = 10
	newtonDetFloor = 1e-20
)

// SphereToFaceCoordEveritt inverts ToSphereEveritt: given a (not
// necessarily unit) direction, it returns the FaceCoord whose Everitt
// forward projection is closest to dir's normalized direction, refined by
// up to 10 Newton iterations against numerically estimated partials. If
// the iteration cap is hit before reaching the 1e-14 error target, the
// best iterate found is returned and the non-convergence is reported
// through diag.Global() at debug level only; no error is surfaced.
func SphereToFaceCoordEveritt(dir mgl64.Vec3) FaceCoord {
	defer profiling.Track("projection.SphereToFaceCoordEveritt")()

	f := DirectionToFace(dir)
	target := dir.Normalize()

	guess := DirectionToFaceCoord(dir)
	u, v := guess.U, guess.V

	for iter := 0; iter < newtonMaxIter; iter++ {
		cur := FaceCoord{Face: f, U: u, V: v}
		c := ToSphereEveritt(cur)
		e := target.Sub(c)
		if e.Len() < newtonEpsilon {
			return cur
		}

		cu := ToSphereEveritt(FaceCoord{Face: f, U: clamp01(u + newtonStep), V: v})
		dcdu := cu.Sub(c).Mul(1 / newtonStep)
		cv := ToSphereEveritt(FaceCoord{Face: f, U: u, V: clamp01(v + newtonStep)})
		dcdv := cv.Sub(c).Mul(1 / newtonStep)

		a11 := dcdu.Dot(dcdu)
		a12 := dcdu.Dot(dcdv)
		a22 := dcdv.Dot(dcdv)
		b1 := dcdu.Dot(e)
		b2 := dcdv.Dot(e)

		det := a11*a22 - a12*a12
		var du, dv float64
		if math.Abs(det) > newtonDetFloor {
			du = (b1*a22 - b2*a12) / det
			dv = (a11*b2 - a12*b1) / det
		}

		u = clamp01(u + du)
		v = clamp01(v + dv)
	}

	diag.Debugf("projection: Newton inverse for face %s did not converge within %d iterations (target=%v)", f, newtonMaxIter, target)
	return FaceCoord{Face: f, U: u, V: v}
}
