package ratio

import (
	"math"
	"math/bits"
)

// applyCeil returns ceil(amount * r.Num / r.Den).
// ok is false when the quotient exceeds 64 bits.
// The caller has already ruled out zero numerators and denominators.
func applyCeil(r Ratio, amount uint64) (q uint64, ok bool) {
	hi, lo := bits.Mul64(amount, r.Num)
	return divCeil128(hi, lo, r.Den)
}

// reverseCeilBounds derives the inclusive bounds of the preimage of y
// under ceiling application of r.
//
// Derivation, with x the amount being recovered, n = r.Num, d = r.Den:
//
//	y = ceil(xn / d)
//	y - 1 < xn / d <= y
//
//	LHS (min): dy - d < xn,   so (dy - d) / n < x
//	RHS (max): xn <= dy,      so x <= dy / n
//
// min is therefore floor(d(y-1) / n) + 1 because the bound is strict, and
// max is dy / n rounded down.
// max saturates at [math.MaxUint64]; ok is false when min exceeds it.
// The caller has already ruled out zero numerators and denominators.
func reverseCeilBounds(r Ratio, y uint64) (min, max uint64, ok bool) {
	// the only amount a nonzero ratio ceil-maps to 0 is 0 itself;
	// returning early also keeps d(y-1) below from wrapping
	if y == 0 {
		return 0, 0, true
	}
	hi, lo := bits.Mul64(r.Den, y-1)
	f, _, ok := div128(hi, lo, r.Num)
	if !ok || f == math.MaxUint64 {
		return 0, 0, false
	}
	min = f + 1
	hi, lo = bits.Mul64(r.Den, y)
	q, _, fits := div128(hi, lo, r.Num)
	if !fits {
		return min, math.MaxUint64, true
	}
	return min, q, true
}
