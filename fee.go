package ratio

import (
	"fmt"
)

// AftFee is the decomposition of an amount after a fee has been levied.
// Its invariant is Retained() + Charged() == Amount() exactly, with no
// overflow, since both parts are carved out of a single uint64 amount.
// Fields are private to ensure the invariant is never violated.
type AftFee struct {
	retained uint64 // amount remaining after the fee
	charged  uint64 // fee amount levied
}

// Retained returns the amount remaining after the fee was levied.
func (a AftFee) Retained() uint64 {
	return a.retained
}

// Charged returns the fee amount that was levied.
func (a AftFee) Charged() uint64 {
	return a.charged
}

// Amount returns the original amount before the fee was levied,
// equal to Retained() + Charged().
func (a AftFee) Amount() uint64 {
	return a.retained + a.charged
}

// NewAftFeeFromCharged decomposes amount into a charged part and the
// retained remainder.
//
// NewAftFeeFromCharged returns an error if charged exceeds amount.
func NewAftFeeFromCharged(amount, charged uint64) (AftFee, error) {
	if charged > amount {
		return AftFee{}, fmt.Errorf("charged part %v exceeds amount %v", charged, amount)
	}
	return AftFee{retained: amount - charged, charged: charged}, nil
}

// NewAftFeeFromRetained decomposes amount into a retained part and the
// charged remainder.
//
// NewAftFeeFromRetained returns an error if retained exceeds amount.
func NewAftFeeFromRetained(amount, retained uint64) (AftFee, error) {
	if retained > amount {
		return AftFee{}, fmt.Errorf("retained part %v exceeds amount %v", retained, amount)
	}
	return AftFee{retained: retained, charged: amount - retained}, nil
}

// Fee is a ratio of at most one interpreted as the charged fraction of an
// amount, under a fixed rounding direction.
// The zero value behaves as a zero fee, retaining every amount in full.
// The field is private to enforce the at-most-one invariant.
// Fee is designed to be safe for concurrent use by multiple goroutines.
type Fee struct {
	charge Applier // applier producing the charged part
}

// NewFee returns a fee charging r.Num / r.Den of an amount, rounded in the
// given direction.
// Callers wanting a zero fee must pass a zero numerator explicitly.
//
// NewFee returns an error if:
//   - the denominator is zero ([ErrInvalidRatio]);
//   - the ratio exceeds one, which would let the charged part exceed
//     the amount.
func NewFee(r Ratio, round Rounding) (Fee, error) {
	if r.Den == 0 {
		return Fee{}, fmt.Errorf("fee ratio %v: %w", r, ErrInvalidRatio)
	}
	if r.Num > r.Den {
		return Fee{}, fmt.Errorf("fee ratio %v exceeds one", r)
	}
	return Fee{charge: NewApplier(r, round)}, nil
}

// MustNewFee is like [NewFee] but panics if the fee cannot be constructed.
// It simplifies safe initialization of global variables holding fees.
func MustNewFee(r Ratio, round Rounding) Fee {
	f, err := NewFee(r, round)
	if err != nil {
		panic(fmt.Sprintf("NewFee(%v, %v) failed: %v", r, round, err))
	}
	return f
}

// Ratio returns the charged fraction.
func (f Fee) Ratio() Ratio {
	return f.charge.Ratio()
}

// Rounding returns the direction in which the charged part is rounded.
func (f Fee) Rounding() Rounding {
	return f.charge.Rounding()
}

// IsZero returns:
//
//	true  if f charges nothing for every amount
//	false otherwise
func (f Fee) IsZero() bool {
	return f.charge.Ratio().IsZero()
}

// Complement returns the retained fraction (Den-Num)/Den.
// The complement of a zero fee is [One].
func (f Fee) Complement() Ratio {
	r := f.charge.Ratio()
	if r.IsZero() {
		return One
	}
	// Num <= Den is guaranteed at construction time
	return New(r.Den-r.Num, r.Den)
}

// retain returns the applier producing the retained part: the complementary
// ratio under the opposite rounding direction.
// Charging n/d rounded one way retains (d-n)/d rounded the other way;
// the identity is exact for all valid fees and amounts.
func (f Fee) retain() Applier {
	return NewApplier(f.Complement(), f.charge.Rounding().flip())
}

// Apply charges the fee on amount and returns the resulting decomposition.
// The decomposition always sums back to amount exactly.
//
// Apply returns an error under the same conditions as [Applier.Apply].
func (f Fee) Apply(amount uint64) (AftFee, error) {
	charged, err := f.charge.Apply(amount)
	if err != nil {
		return AftFee{}, err
	}
	return NewAftFeeFromCharged(amount, charged)
}

// ReverseFromCharged returns the inclusive range of amounts whose charged
// part equals charged.
// Every amount within the range reproduces the same charged part when
// re-applied, though possibly a different retained part.
//
// ReverseFromCharged returns an error under the same conditions as
// [Applier.Reverse].
func (f Fee) ReverseFromCharged(charged uint64) (Range, error) {
	return f.charge.Reverse(charged)
}

// ReverseFromRetained returns the inclusive range of amounts whose retained
// part equals retained.
// Every amount within the range reproduces the same retained part when
// re-applied, though possibly a different charged part.
//
// ReverseFromRetained returns an error under the same conditions as
// [Applier.Reverse]; in particular, a fee of exactly one retains nothing
// and has no finite preimage ([ErrNoPreimage]).
func (f Fee) ReverseFromRetained(retained uint64) (Range, error) {
	return f.retain().Reverse(retained)
}

// ReverseFromChargedEst is the total variant of [Fee.ReverseFromCharged];
// see [Applier.ReverseEst].
func (f Fee) ReverseFromChargedEst(charged uint64) Range {
	return f.charge.ReverseEst(charged)
}

// ReverseFromRetainedEst is the total variant of [Fee.ReverseFromRetained];
// see [Applier.ReverseEst].
func (f Fee) ReverseFromRetainedEst(retained uint64) Range {
	return f.retain().ReverseEst(retained)
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the fee, e.g. "Fee(Ceil(4/10000))".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fee) String() string {
	return "Fee(" + f.charge.String() + ")"
}
