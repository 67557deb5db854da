// Package safecast provides checked arithmetic on unsigned integers. Operations report
// whether the exact result could be represented instead of wrapping, truncating or saturating.
package safecast

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// Mul returns the product of a and b and whether it could be represented in U.
func Mul[U IUnsignedInteger](a, b U) (product U, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product = a * b
	ok = product/a == b
	if !ok {
		product = 0
	}
	return
}

// Narrow converts v into U and reports whether the conversion was lossless.
func Narrow[U IUnsignedInteger, V IUnsignedInteger](v V) (narrowed U, ok bool) {
	narrowed = U(v)
	ok = V(narrowed) == v
	if !ok {
		narrowed = 0
	}
	return
}

// Mul128 returns the product of a 128-bit value and a 64-bit factor and whether it fits in 128 bits.
func Mul128(a uint128.Uint128, b uint64) (product uint128.Uint128, ok bool) {
	carryLo, lo := bits.Mul64(a.Lo, b)
	overflow, hi := bits.Mul64(a.Hi, b)
	if overflow != 0 {
		return uint128.Zero, false
	}
	hi, carry := bits.Add64(hi, carryLo, 0)
	if carry != 0 {
		return uint128.Zero, false
	}
	return uint128.New(lo, hi), true
}

// Narrow128 converts a 128-bit value into U and reports whether the conversion was lossless.
func Narrow128[U IUnsignedInteger](v uint128.Uint128) (U, bool) {
	if v.Hi != 0 {
		return 0, false
	}
	return Narrow[U](v.Lo)
}
