package topology

import (
	"github.com/cubesphere/planetgrid/face"
	"github.com/cubesphere/planetgrid/projection"
)

// windingEpsilon is the (u,v) step used to sample a test triangle near
// each face's center.
const windingEpsilon = 1e-4

// windingFlipTable[f] is true if a triangle emitted with face-local
// indexing [v(u,v), v(u+eps,v), v(u,v+eps)] produces an inward-facing
// normal after projection onto the sphere on face f, and so must have its
// second and third indices swapped.
var windingFlipTable = computeWindingFlipTable()

func computeWindingFlipTable() [6]bool {
	var table [6]bool
	for _, f := range face.ALL {
		const u, v = 0.5, 0.5
		v0 := projection.ToSphereEveritt(projection.NewFaceCoord(f, u, v))
		v1 := projection.ToSphereEveritt(projection.NewFaceCoord(f, u+windingEpsilon, v))
		v2 := projection.ToSphereEveritt(projection.NewFaceCoord(f, u, v+windingEpsilon))

		normal := v1.Sub(v0).Cross(v2.Sub(v0))
		centroid := v0.Add(v1).Add(v2)
		table[f] = normal.Dot(centroid) < 0
	}
	return table
}

// TriangleWindsOutward reports whether the default face-local winding
// [v(u,v), v(u+eps,v), v(u,v+eps)] already produces an outward normal on
// f, without needing the index swap WindingFlip reports.
func TriangleWindsOutward(f face.Face) bool {
	return !windingFlipTable[f]
}

// WindingFlip reports whether triangles on f need their second and third
// indices swapped to wind outward after sphere projection.
func WindingFlip(f face.Face) bool {
	return windingFlipTable[f]
}
