// Package planet implements per-chunk bounding volumes and the planet
// registry: a collection of registered spheres (name, center, radius)
// that must not overlap.
package planet

import (
	"math"

	"github.com/cubesphere/planetgrid/chunkaddr"
	"github.com/cubesphere/planetgrid/internal/profiling"
	"github.com/cubesphere/planetgrid/projection"
	"github.com/cubesphere/planetgrid/worldpos"
	"github.com/go-gl/mathgl/mgl64"
)

// BoundingSphere is a planet-relative (local-frame, double precision)
// bounding sphere for one chunk.
type BoundingSphere struct {
	Center mgl64.Vec3
	Radius float64
}

// AABB is a planet-relative axis-aligned bounding box for one chunk.
type AABB struct {
	Min, Max mgl64.Vec3
}

// chunkCorners samples the four UV corners of addr's rectangle.
func chunkCorners(addr chunkaddr.ChunkAddress) [4]projection.FaceCoord {
	u0, v0, u1, v1 := addr.UVBounds()
	return [4]projection.FaceCoord{
		projection.NewFaceCoord(addr.Face, u0, v0),
		projection.NewFaceCoord(addr.Face, u1, v0),
		projection.NewFaceCoord(addr.Face, u0, v1),
		projection.NewFaceCoord(addr.Face, u1, v1),
	}
}

// ChunkBoundingSphere computes the bounding sphere for addr given the
// planet's radius and the chunk's height range above that radius. The
// center is the chunk's UV-center projected to the sphere and scaled by
// the mid-height radius; the radius is the farthest distance from that
// center to any of the four UV corners sampled at both height extremes,
// plus the center sampled at both extremes.
func ChunkBoundingSphere(addr chunkaddr.ChunkAddress, planetRadius, minHeight, maxHeight float64) BoundingSphere {
	defer profiling.Track("planet.ChunkBoundingSphere")()

	centerFC := addr.CenterFaceCoord()
	midRadius := planetRadius + (minHeight+maxHeight)/2
	center := projection.ToSphereEveritt(centerFC).Mul(midRadius)

	corners := chunkCorners(addr)
	maxDist := 0.0
	sample := func(fc projection.FaceCoord, h float64) {
		p := projection.ToSphereEveritt(fc).Mul(planetRadius + h)
		if d := p.Sub(center).Len(); d > maxDist {
			maxDist = d
		}
	}
	for _, c := range corners {
		sample(c, minHeight)
		sample(c, maxHeight)
	}
	sample(centerFC, minHeight)
	sample(centerFC, maxHeight)

	return BoundingSphere{Center: center, Radius: maxDist}
}

// ChunkAABB computes a conservative local-frame AABB for addr by sampling
// an 8x8 grid of face-coords across its UV rectangle at both height
// extremes and taking the component-wise min/max.
func ChunkAABB(addr chunkaddr.ChunkAddress, planetRadius, minHeight, maxHeight float64) AABB {
	defer profiling.Track("planet.ChunkAABB")()

	u0, v0, u1, v1 := addr.UVBounds()
	const grid = 8

	min := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}

	update := func(p mgl64.Vec3) {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}

	for i := 0; i < grid; i++ {
		u := u0 + (u1-u0)*float64(i)/(grid-1)
		for j := 0; j < grid; j++ {
			v := v0 + (v1-v0)*float64(j)/(grid-1)
			fc := projection.NewFaceCoord(addr.Face, u, v)
			dir := projection.ToSphereEveritt(fc)
			update(dir.Mul(planetRadius + minHeight))
			update(dir.Mul(planetRadius + maxHeight))
		}
	}
	return AABB{Min: min, Max: max}
}

// WorldBoundingSphere converts a local-frame BoundingSphere to world
// frame by adding planetCenter; the radius stays double precision.
func WorldBoundingSphere(s BoundingSphere, planetCenter worldpos.WorldPosition) (center worldpos.WorldPosition, radius float64) {
	local := worldpos.FromFloat64(s.Center[0], s.Center[1], s.Center[2])
	return local.Add(planetCenter), s.Radius
}

// WorldAABB converts a local-frame AABB to world frame by adding
// planetCenter, flooring the min corner and ceiling the max corner to
// the nearest i128 millimeter so the resulting box is conservative.
func WorldAABB(b AABB, planetCenter worldpos.WorldPosition) (min, max worldpos.WorldPosition) {
	floorPos := worldpos.FromFloat64(math.Floor(b.Min[0]), math.Floor(b.Min[1]), math.Floor(b.Min[2]))
	ceilPos := worldpos.FromFloat64(math.Ceil(b.Max[0]), math.Ceil(b.Max[1]), math.Ceil(b.Max[2]))
	return floorPos.Add(planetCenter), ceilPos.Add(planetCenter)
}
