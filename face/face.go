// Package face defines the six-face enum of the cubesphere and the
// per-face orthonormal basis every other package projects against.
package face

import "github.com/go-gl/mathgl/mgl64"

// Face names one of the six axis-aligned unit squares of the cube that is
// projected outward into a sphere. The zero value is PosX; use the named
// constants.
type Face uint8

const (
	PosX Face = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ

	numFaces = 6
)

// ALL lists every face in the fixed canonical order used for indexed
// arrays of length 6 throughout this module and its siblings.
var ALL = [numFaces]Face{PosX, NegX, PosY, NegY, PosZ, NegZ}

// String renders the face's conventional short name.
func (f Face) String() string {
	switch f {
	case PosX:
		return "+X"
	case NegX:
		return "-X"
	case PosY:
		return "+Y"
	case NegY:
		return "-Y"
	case PosZ:
		return "+Z"
	case NegZ:
		return "-Z"
	default:
		return "invalid-face"
	}
}

// Valid reports whether f is one of the six canonical faces.
func (f Face) Valid() bool {
	return f <= NegZ
}

// Opposite returns the face sharing no edge with f; Opposite is an
// involution (Opposite(Opposite(f)) == f for every valid f).
func (f Face) Opposite() Face {
	switch f {
	case PosX:
		return NegX
	case NegX:
		return PosX
	case PosY:
		return NegY
	case NegY:
		return PosY
	case PosZ:
		return NegZ
	case NegZ:
		return PosZ
	default:
		panic("face: Opposite called on invalid face")
	}
}

// basis holds the fixed orthonormal (N, T, B) triple for one face. The
// choice of tangent/bitangent direction per face is otherwise arbitrary,
// so a concrete assignment is fixed here once and every other package
// (projection, topology) is derived from it rather than hard-coded
// independently.
type basis struct {
	normal, tangent, bitangent mgl64.Vec3
}

// bases is indexed by Face. Tangent (T) is the direction of increasing u;
// bitangent (B) is the direction of increasing v. Each triple satisfies
// T×B=N, T·N=B·N=0, with every vector one of the six axis-aligned units.
var bases = [numFaces]basis{
	PosX: {normal: mgl64.Vec3{1, 0, 0}, tangent: mgl64.Vec3{0, 0, -1}, bitangent: mgl64.Vec3{0, 1, 0}},
	NegX: {normal: mgl64.Vec3{-1, 0, 0}, tangent: mgl64.Vec3{0, 0, 1}, bitangent: mgl64.Vec3{0, 1, 0}},
	PosY: {normal: mgl64.Vec3{0, 1, 0}, tangent: mgl64.Vec3{1, 0, 0}, bitangent: mgl64.Vec3{0, 0, -1}},
	NegY: {normal: mgl64.Vec3{0, -1, 0}, tangent: mgl64.Vec3{1, 0, 0}, bitangent: mgl64.Vec3{0, 0, 1}},
	PosZ: {normal: mgl64.Vec3{0, 0, 1}, tangent: mgl64.Vec3{1, 0, 0}, bitangent: mgl64.Vec3{0, 1, 0}},
	NegZ: {normal: mgl64.Vec3{0, 0, -1}, tangent: mgl64.Vec3{-1, 0, 0}, bitangent: mgl64.Vec3{0, 1, 0}},
}

// Normal returns the outward unit normal of f.
func Normal(f Face) mgl64.Vec3 { return bases[f].normal }

// Tangent returns the unit vector in the direction of increasing u on f.
func Tangent(f Face) mgl64.Vec3 { return bases[f].tangent }

// Bitangent returns the unit vector in the direction of increasing v on f.
func Bitangent(f Face) mgl64.Vec3 { return bases[f].bitangent }
