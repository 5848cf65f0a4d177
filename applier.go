package ratio

import (
	"fmt"
	"math"
	"strconv"
)

// Rounding selects the direction in which the implied division of an
// [Applier] rounds.
type Rounding uint8

const (
	// Floor rounds the quotient down: floor(amount * Num / Den).
	Floor Rounding = iota

	// Ceil rounds the quotient up: ceil(amount * Num / Den).
	Ceil
)

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the rounding direction.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rounding) String() string {
	switch r {
	case Floor:
		return "Floor"
	case Ceil:
		return "Ceil"
	}
	return "Rounding(" + strconv.Itoa(int(r)) + ")"
}

// flip returns the opposite rounding direction.
func (r Rounding) flip() Rounding {
	if r == Ceil {
		return Floor
	}
	return Ceil
}

// Range is an inclusive range of uint64 amounts returned by the reverse
// operations.
type Range struct {
	// Min is the smallest amount in the range.
	Min uint64

	// Max is the largest amount in the range.
	Max uint64
}

// fullRange is the entire uint64 domain.
var fullRange = Range{Min: 0, Max: math.MaxUint64}

// Contains returns true if x lies within the range.
func (r Range) Contains(x uint64) bool {
	return r.Min <= x && x <= r.Max
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the range in the form "[min, max]".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Range) String() string {
	return "[" + strconv.FormatUint(r.Min, 10) + ", " + strconv.FormatUint(r.Max, 10) + "]"
}

// Applier applies a ratio to uint64 amounts under a fixed rounding
// direction.
// The zero value is a floor applier over the degenerate zero ratio.
// Two appliers over the same ratio but different rounding directions are
// distinct values producing different results and must not be interchanged.
// Applier is designed to be safe for concurrent use by multiple goroutines.
type Applier struct {
	ratio Ratio    // fraction being applied
	round Rounding // direction of the implied division
}

// NewApplier returns an applier computing amount * r.Num / r.Den rounded
// in the given direction.
// Rounding values other than [Floor] and [Ceil] behave as [Floor].
func NewApplier(r Ratio, round Rounding) Applier {
	return Applier{ratio: r, round: round}
}

// Ratio returns the fraction being applied.
func (a Applier) Ratio() Ratio {
	return a.ratio
}

// Rounding returns the direction of the implied division.
func (a Applier) Rounding() Rounding {
	return a.round
}

// Apply returns amount * Num / Den rounded in the applier's direction.
// The intermediate product is widened to 128 bits, so the multiplication
// itself cannot overflow.
// A zero-numerator ratio yields 0 for every amount.
//
// Apply returns an error if:
//   - the denominator is zero while the numerator is not ([ErrInvalidRatio]);
//   - the quotient exceeds [math.MaxUint64] ([ErrOverflow]), which is
//     possible only when Num > Den.
func (a Applier) Apply(amount uint64) (uint64, error) {
	r := a.ratio
	if r.Num == 0 {
		return 0, nil
	}
	if r.Den == 0 {
		return 0, fmt.Errorf("applying %v: %w", a, ErrInvalidRatio)
	}
	var q uint64
	var ok bool
	if a.round == Ceil {
		q, ok = applyCeil(r, amount)
	} else {
		q, ok = applyFloor(r, amount)
	}
	if !ok {
		return 0, fmt.Errorf("applying %v: %w", a, ErrOverflow)
	}
	return q, nil
}

// Reverse returns the inclusive range of amounts x for which
// Apply(x) == result.
// Every amount within the returned range reproduces result exactly when
// re-applied.
// The upper bound saturates at [math.MaxUint64].
//
// Reverse returns an error if:
//   - the denominator is zero while the numerator is not ([ErrInvalidRatio]);
//   - the numerator is zero, making the preimage of 0 unbounded and every
//     other result unattainable ([ErrNoPreimage]);
//   - result is never produced by Apply ([ErrNoPreimage]);
//   - the lower bound of the range exceeds [math.MaxUint64] ([ErrOverflow]),
//     which is possible only when Num < Den.
func (a Applier) Reverse(result uint64) (Range, error) {
	r := a.ratio
	if r.Num == 0 {
		return Range{}, fmt.Errorf("reversing %v: %w", a, ErrNoPreimage)
	}
	if r.Den == 0 {
		return Range{}, fmt.Errorf("reversing %v: %w", a, ErrInvalidRatio)
	}
	var min, max uint64
	var ok bool
	if a.round == Ceil {
		min, max, ok = reverseCeilBounds(r, result)
	} else {
		min, max, ok = reverseFloorBounds(r, result)
	}
	if !ok {
		return Range{}, fmt.Errorf("reversing %v: range lower bound: %w", a, ErrOverflow)
	}
	if min > max {
		return Range{}, fmt.Errorf("reversing %v: %v is never produced: %w", a, result, ErrNoPreimage)
	}
	return Range{Min: min, Max: max}, nil
}

// ReverseEst is the total variant of [Applier.Reverse]: it never fails and
// returns the identical range wherever Reverse succeeds.
// Where Reverse has no exact finite answer, ReverseEst returns a
// best-effort bounding range instead:
//   - the full uint64 domain for zero-numerator and zero-denominator ratios;
//   - the two derived bounds reoriented into a non-empty range bracketing
//     the skipped result, when the exact preimage is empty;
//   - the single point [math.MaxUint64] when the lower bound overflows.
//
// Callers needing strict correctness must use Reverse.
func (a Applier) ReverseEst(result uint64) Range {
	r := a.ratio
	if r.Num == 0 || r.Den == 0 {
		return fullRange
	}
	var min, max uint64
	var ok bool
	if a.round == Ceil {
		min, max, ok = reverseCeilBounds(r, result)
	} else {
		min, max, ok = reverseFloorBounds(r, result)
	}
	if !ok {
		return Range{Min: math.MaxUint64, Max: math.MaxUint64}
	}
	if min > max {
		return Range{Min: max, Max: min}
	}
	return Range{Min: min, Max: max}
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the applier, e.g. "Floor(1/10000)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Applier) String() string {
	return a.round.String() + "(" + a.ratio.String() + ")"
}
