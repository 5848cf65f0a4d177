package ratio

import (
	"math"
	"math/bits"
)

// div128 divides the 128-bit value hi:lo by z, returning the quotient and
// remainder.
// ok is false when the quotient does not fit in 64 bits.
// z must not be zero.
func div128(hi, lo, z uint64) (quo, rem uint64, ok bool) {
	if hi >= z {
		return 0, 0, false
	}
	quo, rem = bits.Div64(hi, lo, z)
	return quo, rem, true
}

// divCeil128 is like [div128] but rounds the quotient up.
// ok is false when the rounded quotient does not fit in 64 bits.
func divCeil128(hi, lo, z uint64) (quo uint64, ok bool) {
	quo, rem, ok := div128(hi, lo, z)
	if !ok {
		return 0, false
	}
	if rem > 0 {
		if quo == math.MaxUint64 {
			return 0, false
		}
		quo++
	}
	return quo, true
}

// add128 adds y to the 128-bit value hi:lo.
// The sum never exceeds 128 bits for the products formed in this package,
// since hi:lo is at most (2^64-1)^2.
func add128(hi, lo, y uint64) (uint64, uint64) {
	sum, carry := bits.Add64(lo, y, 0)
	return hi + carry, sum
}
