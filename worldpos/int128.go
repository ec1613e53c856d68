// Package worldpos defines the universe-wide integer coordinate system
// that sits at the boundary between the sphere-space double-precision
// core and external collaborators.
package worldpos

import (
	"fmt"
	"math/big"
)

// bitLimit is the signed 128-bit range: values must fit in [-2^127, 2^127-1].
const bitLimit = 127

var (
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bitLimit), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), bitLimit))
)

// Int128 is a signed 128-bit integer. The zero value is zero. There is no
// fixed-width 128-bit integer type in the standard library or anywhere in
// the dependency pack this module draws from, so Int128 wraps math/big's
// arbitrary-precision Int and asserts the 128-bit range on every
// construction and arithmetic result, rather than silently becoming
// arbitrary precision.
type Int128 struct {
	v big.Int
}

// Zero is the additive identity.
var Zero = Int128{}

// FromInt64 converts a machine int64 to an Int128.
func FromInt64(n int64) Int128 {
	var i Int128
	i.v.SetInt64(n)
	return i
}

// FromFloat64Round rounds a float64 to the nearest Int128, half away from
// zero, as used by the world-coordinate bridge.
func FromFloat64Round(f float64) Int128 {
	bf := new(big.Float).SetFloat64(f)
	if f >= 0 {
		bf.Add(bf, big.NewFloat(0.5))
	} else {
		bf.Sub(bf, big.NewFloat(0.5))
	}
	bi, _ := bf.Int(nil)
	return checked(bi)
}

// checked asserts bi fits the signed 128-bit range and wraps it.
func checked(bi *big.Int) Int128 {
	if bi.Cmp(maxInt128) > 0 || bi.Cmp(minInt128) < 0 {
		panic(fmt.Sprintf("worldpos: value %s overflows signed 128-bit range", bi.String()))
	}
	var i Int128
	i.v.Set(bi)
	return i
}

// Add returns a+b.
func (a Int128) Add(b Int128) Int128 {
	return checked(new(big.Int).Add(&a.v, &b.v))
}

// Sub returns a-b.
func (a Int128) Sub(b Int128) Int128 {
	return checked(new(big.Int).Sub(&a.v, &b.v))
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a Int128) Cmp(b Int128) int {
	return a.v.Cmp(&b.v)
}

// Float64 converts to the nearest float64, for magnitude computations that
// tolerate the precision loss (e.g. distance checks at planet-registry
// scale, far from the mm-precision boundary that matters for chunk work).
func (a Int128) Float64() float64 {
	f, _ := new(big.Float).SetInt(&a.v).Float64()
	return f
}

// String renders the decimal value.
func (a Int128) String() string { return a.v.String() }

// Sign returns -1, 0, or 1.
func (a Int128) Sign() int { return a.v.Sign() }
