// Package projection implements the cube-to-sphere forward maps, the
// Newton-refined inverse, and the world-coordinate bridge.
package projection

import "github.com/cubesphere/planetgrid/face"

// FaceCoord addresses a point on one cube face by its (u,v) parameters,
// both in [0,1]. (0,0) is the bottom-left corner viewed from outside the
// cube; (1,1) is top-right.
type FaceCoord struct {
	Face face.Face
	U, V float64
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// NewFaceCoord builds a FaceCoord, silently clamping out-of-range u,v into
// [0,1]. This is a documented behavior, not a failure.
func NewFaceCoord(f face.Face, u, v float64) FaceCoord {
	return FaceCoord{Face: f, U: clamp01(u), V: clamp01(v)}
}

// NewFaceCoordUnchecked builds a FaceCoord without clamping. It panics if
// u or v is outside [0,1], for callers in debug contexts who want the
// precondition enforced rather than silently repaired.
func NewFaceCoordUnchecked(f face.Face, u, v float64) FaceCoord {
	if u < 0 || u > 1 || v < 0 || v > 1 {
		panic("projection: FaceCoord u,v out of [0,1] range")
	}
	return FaceCoord{Face: f, U: u, V: v}
}
