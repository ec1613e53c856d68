package worldpos

import "math"

// WorldPosition is a point in the universe-wide coordinate system, 1 unit
// = 1 millimeter, supporting a universe of roughly ±9.2×10¹⁸ km. It is
// used only at the boundary between this core's double-precision
// sphere-space math and the rest of the engine.
type WorldPosition struct {
	X, Y, Z Int128
}

// Add returns the component-wise sum.
func (p WorldPosition) Add(o WorldPosition) WorldPosition {
	return WorldPosition{X: p.X.Add(o.X), Y: p.Y.Add(o.Y), Z: p.Z.Add(o.Z)}
}

// Sub returns the component-wise difference.
func (p WorldPosition) Sub(o WorldPosition) WorldPosition {
	return WorldPosition{X: p.X.Sub(o.X), Y: p.Y.Sub(o.Y), Z: p.Z.Sub(o.Z)}
}

// DistanceMM returns the Euclidean distance between p and o in millimeters
// as a float64. Planet radii and separations in this engine stay well
// under 2^53 mm, so the float64 round trip through Int128.Float64 does
// not lose meaningful precision for overlap and radius comparisons.
func (p WorldPosition) DistanceMM(o WorldPosition) float64 {
	d := p.Sub(o)
	dx, dy, dz := d.X.Float64(), d.Y.Float64(), d.Z.Float64()
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// FromFloat64 rounds a (x,y,z) float64 triple component-wise to a
// WorldPosition, as used by the world-coordinate bridge.
func FromFloat64(x, y, z float64) WorldPosition {
	return WorldPosition{
		X: FromFloat64Round(x),
		Y: FromFloat64Round(y),
		Z: FromFloat64Round(z),
	}
}
