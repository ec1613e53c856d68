package projection

import (
	"github.com/cubesphere/planetgrid/face"
	"github.com/go-gl/mathgl/mgl64"
)

// FaceCoordToCubePoint maps a FaceCoord to the corresponding point on the
// ±1 cube surface: s=2u-1, t=2v-1, P = N + s·T + t·B.
func FaceCoordToCubePoint(fc FaceCoord) mgl64.Vec3 {
	s := 2*fc.U - 1
	t := 2*fc.V - 1
	n := face.Normal(fc.Face)
	tg := face.Tangent(fc.Face)
	bt := face.Bitangent(fc.Face)
	return n.Add(tg.Mul(s)).Add(bt.Mul(t))
}
