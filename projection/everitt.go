package projection

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ToSphereEveritt is the equal-area-ish forward cube→sphere map. fc's
// FaceCoord is first mapped to a cube-surface point; the Everitt formula
// then warps that point onto the unit sphere with low area distortion.
// Face-center (0.5,0.5) maps exactly to the face normal.
func ToSphereEveritt(fc FaceCoord) mgl64.Vec3 {
	p := FaceCoordToCubePoint(fc)
	return everittWarp(p)
}

// everittWarp applies Everitt's formula to a cube-surface point (one
// coordinate is ±1) and returns a unit vector.
func everittWarp(p mgl64.Vec3) mgl64.Vec3 {
	x, y, z := p[0], p[1], p[2]
	x2, y2, z2 := x*x, y*y, z*z

	sx := x * math.Sqrt(maxf(0, 1-y2/2-z2/2+y2*z2/3))
	sy := y * math.Sqrt(maxf(0, 1-x2/2-z2/2+x2*z2/3))
	sz := z * math.Sqrt(maxf(0, 1-x2/2-y2/2+x2*y2/3))

	return mgl64.Vec3{sx, sy, sz}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ToSphereTangentWarp is the faster, approximate forward map for hot
// paths: it remaps s,t via tan(·π/4) and then simply normalizes the
// resulting cube-surface point instead of applying the Everitt formula.
func ToSphereTangentWarp(fc FaceCoord) mgl64.Vec3 {
	s := 2*fc.U - 1
	t := 2*fc.V - 1
	ws := math.Tan(s * math.Pi / 4)
	wt := math.Tan(t * math.Pi / 4)

	warped := NewFaceCoord(fc.Face, (ws+1)/2, (wt+1)/2)
	p := FaceCoordToCubePoint(warped)
	return p.Normalize()
}
