package fraction

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// String returns a string representation of x, as m/n, or as just m if the
// denominator is 1. The numerator and denominator are written as stored, so
// a fraction that has not been reduced renders unreduced.
func (x Fraction) String() string {
	return string(x.appendText(nil))
}

func (x Fraction) appendText(b []byte) []byte {
	b = strconv.AppendInt(b, x.m, 10)
	if x.n != 0 {
		b = append(b, '/')
		b = strconv.AppendInt(b, x.Den(), 10)
	}
	return b
}

// Parse parses a string representation of a fraction, as produced by String.
// The string must be in the form "m" or "m/n", where m and n are integers in
// base 10 that do not overflow int64. The fraction is created with Try, so
// n must not be zero, a negative n is moved to the numerator, and the result
// is not reduced.
// Malformed strings return an error wrapping ErrFmtInvalid.
func Parse(s string) (Fraction, error) {
	parts := strings.SplitN(s, "/", 3)
	if len(parts) > 2 {
		return Fraction{}, ErrFmtInvalid
	}
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: parsing numerator: %w", ErrFmtInvalid, err)
	}
	den := int64(1)
	if len(parts) == 2 {
		den, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return Fraction{}, fmt.Errorf("%w: parsing denominator: %w", ErrFmtInvalid, err)
		}
	}
	return Try(num, den)
}

// MarshalText implements encoding.TextMarshaler using the String format.
func (x Fraction) MarshalText() ([]byte, error) {
	return x.appendText(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (x *Fraction) UnmarshalText(text []byte) error {
	z, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// Float64 returns the floating-point equivalent of x. If exact is true, then
// v is exactly equal to x; otherwise, it is the closest approximation.
func (x Fraction) Float64() (v float64, exact bool) {
	x = x.Reduce()
	m, n := x.Num(), x.Den()

	// check for zero, trivial case
	if m == 0 {
		return 0, true
	}

	// integers are exact as long as they fit in the mantissa
	prec := bits.Len64(uint64(abs64(m)))
	if n == 1 {
		return float64(m), prec <= 53
	}

	// non-integers are exact as long as the numerator fits in the mantissa
	// and the denominator is a power of two
	nIsPow2 := bits.OnesCount64(uint64(n)) == 1
	return float64(m) / float64(n), prec <= 53 && nIsPow2
}

// BigRat converts x to a new big.Rat, which is always in lowest terms.
func (x Fraction) BigRat() *big.Rat {
	return big.NewRat(x.Num(), x.Den())
}

// FromBigRat converts a big.Rat to a Fraction, if it is possible to do so.
// The result is in lowest terms.
func FromBigRat(r *big.Rat) (Fraction, error) {
	num, den := r.Num(), r.Denom()
	if !num.IsInt64() {
		return Fraction{}, ErrNumOverflow
	} else if !den.IsInt64() {
		return Fraction{}, ErrDenOverflow
	}
	return Try(num.Int64(), den.Int64())
}
