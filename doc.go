/*
Package ratio computes and inverts proportional shares of unsigned integer
amounts without ever representing them as floating point.
It is the core arithmetic behind token-pool accounting, fee deduction, and
proportional withdrawal or deposit calculations.

# Features

  - Immutable ratio and fee values, ensuring safe usage across multiple goroutines
  - Application of a ratio to a uint64 amount under floor or ceiling rounding
  - Exact inversion of an application result back to the inclusive range of
    amounts that could have produced it
  - Decomposition of an amount into retained and charged parts that always
    sum back to the amount exactly
  - Conversion between ratios and [decimal] values

# Representation

The package consists of three main types: Ratio, Applier, and Fee.
A Ratio is a pair of uint64 numerator and denominator.
An Applier pairs a Ratio with a Rounding direction and performs the actual
arithmetic.
A Fee is an Applier whose ratio is constrained to be at most one, so that
the charged part never exceeds the amount it was computed from.

# Rounding

Only two rounding directions exist: Floor and Ceil.
Applying a ratio computes amount * Num / Den with the intermediate product
widened to 128 bits, so the multiplication never overflows silently.
Floor and Ceil agree exactly when amount * Num is divisible by Den;
otherwise Ceil is greater by one.

# Reversal

Reverse returns the inclusive range of amounts that Apply maps to a given
result.
ReverseEst is the total variant: where Reverse has no exact finite answer,
it returns a best-effort bounding range instead of failing.

# Errors

All operations are pure functions returning explicit errors.
Exactly three failure kinds exist: [ErrInvalidRatio] for zero denominators,
[ErrOverflow] when a widened value does not narrow back into 64 bits, and
[ErrNoPreimage] when no exact finite preimage range exists for a reversal.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package ratio
