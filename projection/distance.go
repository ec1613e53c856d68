package projection

import "math"

// GreatCircleAngle returns the angular separation in radians between two
// face coordinates on the same or different faces, via their Everitt
// forward projections.
func GreatCircleAngle(a, b FaceCoord) float64 {
	pa := ToSphereEveritt(a)
	pb := ToSphereEveritt(b)
	dot := pa.Dot(pb)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(dot)
}
