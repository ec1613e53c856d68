package projection

import (
	"github.com/cubesphere/planetgrid/worldpos"
	"github.com/go-gl/mathgl/mgl64"
)

// FaceUVToWorldPosition converts a FaceCoord plus a height above the
// planet's reference radius into a universe-space WorldPosition. Units:
// planetRadius and height are in millimeters, matching WorldPosition's
// unit.
func FaceUVToWorldPosition(fc FaceCoord, planetRadius, height float64, planetCenter worldpos.WorldPosition) worldpos.WorldPosition {
	dir := ToSphereEveritt(fc)
	scale := planetRadius + height
	scaled := dir.Mul(scale)
	local := worldpos.FromFloat64(scaled[0], scaled[1], scaled[2])
	return local.Add(planetCenter)
}

// WorldPositionToFaceUV inverts FaceUVToWorldPosition: given a world
// position, a planet's radius, and its center, it recovers the FaceCoord
// and the height above the reference radius.
func WorldPositionToFaceUV(pos worldpos.WorldPosition, planetRadius float64, planetCenter worldpos.WorldPosition) (FaceCoord, float64) {
	local := pos.Sub(planetCenter)
	dx, dy, dz := local.X.Float64(), local.Y.Float64(), local.Z.Float64()
	dir := mgl64.Vec3{dx, dy, dz}
	distance := dir.Len()
	height := distance - planetRadius

	fc := SphereToFaceCoordEveritt(dir)
	return fc, height
}
