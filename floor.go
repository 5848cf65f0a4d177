package ratio

import (
	"math"
	"math/bits"
)

// applyFloor returns floor(amount * r.Num / r.Den).
// ok is false when the quotient exceeds 64 bits.
// The caller has already ruled out zero numerators and denominators.
func applyFloor(r Ratio, amount uint64) (q uint64, ok bool) {
	hi, lo := bits.Mul64(amount, r.Num)
	q, _, ok = div128(hi, lo, r.Den)
	return q, ok
}

// reverseFloorBounds derives the inclusive bounds of the preimage of y
// under floor application of r.
//
// Derivation, with x the amount being recovered, n = r.Num, d = r.Den:
//
//	y = floor(xn / d)
//	y <= xn / d < y + 1
//
//	LHS (min): dy <= xn,      so dy / n <= x
//	RHS (max): xn < dy + d,   so x < (dy + d) / n
//
// min therefore rounds up to ceil(dy / n), and max is (dy + d) / n rounded
// down, minus one when the division is exact because the bound is strict.
// max saturates at [math.MaxUint64]; ok is false when min exceeds it.
// The caller has already ruled out zero numerators and denominators.
func reverseFloorBounds(r Ratio, y uint64) (min, max uint64, ok bool) {
	hi, lo := bits.Mul64(r.Den, y)
	min, ok = divCeil128(hi, lo, r.Num)
	if !ok {
		return 0, 0, false
	}
	hi, lo = add128(hi, lo, r.Den)
	q, rem, fits := div128(hi, lo, r.Num)
	if !fits {
		return min, math.MaxUint64, true
	}
	if rem == 0 {
		// the bound is range-exclusive; q >= 1 since dy + d >= d >= 1
		q--
	}
	return min, q, true
}
