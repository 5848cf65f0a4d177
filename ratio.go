package ratio

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	// ErrInvalidRatio is returned when a ratio with a zero denominator is
	// used where a value is required, at construction or application time.
	ErrInvalidRatio = errors.New("invalid ratio")

	// ErrOverflow is returned when a widened intermediate value cannot be
	// narrowed back into 64 bits without loss.
	ErrOverflow = errors.New("uint64 overflow")

	// ErrNoPreimage is returned by the reverse operations when no exact
	// finite preimage range exists: either the requested result is never
	// produced by Apply, or the ratio has a zero numerator and every
	// amount maps to 0, making the preimage unbounded.
	ErrNoPreimage = errors.New("no finite preimage")
)

// Ratio represents a fraction Num/Den applied to uint64 amounts.
// A zero numerator, including the degenerate 0/0, is the valid constant-zero
// mapping.
// A zero denominator with a nonzero numerator is invalid and rejected with
// [ErrInvalidRatio] when the ratio is used.
// Narrower numerators and denominators widen losslessly into uint64;
// all intermediate products are computed in 128 bits.
// Ratio is designed to be safe for concurrent use by multiple goroutines.
type Ratio struct {
	// Num is the numerator.
	Num uint64

	// Den is the denominator.
	Den uint64
}

var (
	// Zero is the ratio 0/1, mapping every amount to 0.
	Zero = Ratio{Num: 0, Den: 1}

	// One is the ratio 1/1, mapping every amount to itself.
	One = Ratio{Num: 1, Den: 1}
)

// New returns a ratio equal to num / den.
// The arguments are not validated; see the [Ratio] invariants.
func New(num, den uint64) Ratio {
	return Ratio{Num: num, Den: den}
}

// Parse converts a string in the form "numerator/denominator" to a ratio.
func Parse(s string) (Ratio, error) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return Ratio{}, fmt.Errorf("parsing ratio %q: missing '/'", s)
	}
	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return Ratio{}, fmt.Errorf("parsing numerator: %w", err)
	}
	d, err := strconv.ParseUint(den, 10, 64)
	if err != nil {
		return Ratio{}, fmt.Errorf("parsing denominator: %w", err)
	}
	return New(n, d), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding ratios.
func MustParse(s string) Ratio {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return r
}

// pow10 holds the powers of ten representable in a uint64, indexed by
// exponent up to [decimal.MaxScale].
var pow10 = [...]uint64{
	1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000,
	1_000_000_000, 10_000_000_000, 100_000_000_000, 1_000_000_000_000,
	10_000_000_000_000, 100_000_000_000_000, 1_000_000_000_000_000,
	10_000_000_000_000_000, 100_000_000_000_000_000, 1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// NewFromDecimal converts a non-negative decimal rate to a ratio equal to
// coefficient / 10^scale.
// For example, 0.0004 converts to 4/10000.
// The result is not reduced; see also method [Ratio.Reduced].
//
// NewFromDecimal returns an error if the decimal is negative.
func NewFromDecimal(d decimal.Decimal) (Ratio, error) {
	if d.IsNeg() {
		return Ratio{}, fmt.Errorf("converting decimal: %v is negative", d)
	}
	return New(d.Coef(), pow10[d.Scale()]), nil
}

// Decimal returns a (possibly rounded) decimal value of the ratio.
// Rounding occurs only when the exact quotient needs more than
// [decimal.MaxPrec] digits.
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if the denominator is zero and the numerator
// is not.
func (r Ratio) Decimal() (decimal.Decimal, error) {
	if r.IsZero() {
		return decimal.Decimal{}, nil
	}
	if r.Den == 0 {
		return decimal.Decimal{}, fmt.Errorf("converting ratio %v: %w", r, ErrInvalidRatio)
	}
	n, err := unsignedDecimal(r.Num)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting numerator: %w", err)
	}
	d, err := unsignedDecimal(r.Den)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting denominator: %w", err)
	}
	q, err := n.Quo(d)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting ratio %v: %w", r, err)
	}
	return q, nil
}

func unsignedDecimal(u uint64) (decimal.Decimal, error) {
	if u <= math.MaxInt64 {
		return decimal.New(int64(u), 0)
	}
	return decimal.Parse(strconv.FormatUint(u, 10))
}

// IsZero returns:
//
//	true  if applying r yields 0 for every amount
//	false otherwise
func (r Ratio) IsZero() bool {
	return r.Num == 0
}

// IsOne returns:
//
//	true  if applying r yields the amount itself for every amount
//	false otherwise
func (r Ratio) IsOne() bool {
	return r.Num == r.Den && r.Num != 0
}

// WithinOne returns:
//
//	true  if 0 <= r < 1
//	false otherwise
func (r Ratio) WithinOne() bool {
	return r.Num < r.Den
}

// Cmp numerically compares ratios by 128-bit cross-multiplication and
// returns:
//
//	-1 if r < e
//	 0 if r == e
//	+1 if r > e
//
// Ratios with a zero numerator compare as zero.
func (r Ratio) Cmp(e Ratio) int {
	switch {
	case r.IsZero() && e.IsZero():
		return 0
	case r.IsZero():
		return -1
	case e.IsZero():
		return 1
	}
	lhi, llo := bits.Mul64(r.Num, e.Den)
	rhi, rlo := bits.Mul64(e.Num, r.Den)
	switch {
	case lhi != rhi:
		if lhi < rhi {
			return -1
		}
		return 1
	case llo != rlo:
		if llo < rlo {
			return -1
		}
		return 1
	}
	return 0
}

// Reduced returns the ratio in its lowest form, dividing the numerator and
// denominator by their greatest common divisor.
// The reduced form of any zero-numerator ratio is [Zero].
func (r Ratio) Reduced() Ratio {
	if r.IsZero() {
		return Zero
	}
	// the denominator is usually the larger term, so put it first
	g := gcd64(r.Den, r.Num)
	return New(r.Num/g, r.Den/g)
}

// gcd64 never returns 0 unless both arguments are 0.
func gcd64(a, b uint64) uint64 {
	for b > 0 {
		a, b = b, a%b
	}
	return a
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the ratio in the form "numerator/denominator".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Ratio) String() string {
	return strconv.FormatUint(r.Num, 10) + "/" + strconv.FormatUint(r.Den, 10)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Ratio) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Ratio) UnmarshalText(text []byte) error {
	var err error
	*r, err = Parse(string(text))
	return err
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	%s, %v: 1/10000
//	%q:    "1/10000"
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Ratio) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q':
		// continue below
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(ratio.Ratio="))
		state.Write([]byte(r.String()))
		state.Write([]byte(")"))
		return
	}

	frac := r.String()

	// Quotes
	quotes := 0
	if verb == 'q' || verb == 'Q' {
		quotes = 2
	}

	// Padding
	width := len(frac) + quotes
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		if state.Flag('-') {
			tspaces = w - width
		} else {
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if quotes > 0 {
		buf = append(buf, '"')
	}
	buf = append(buf, frac...)
	if quotes > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}
	state.Write(buf)
}
