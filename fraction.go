// Package fraction provides exact rational numbers over fixed-width integers.
// See the Fraction type and the Try function for details.
package fraction

import (
	"errors"
	"math"
	"math/bits"
)

// Common errors returned by functions in this package.
var (
	ErrDivByZero    = errors.New("division by zero")
	ErrGCDUndefined = errors.New("gcd(0, 0) is undefined")
	ErrNumOverflow  = errors.New("numerator overflow")
	ErrDenOverflow  = errors.New("denominator overflow")
	ErrFmtInvalid   = errors.New("invalid fraction format")
)

// Fraction is a rational number with a 64-bit numerator and denominator.
//
// The denominator is always positive, so the sign is carried by the
// numerator alone. The numerator is never math.MinInt64, which keeps Neg and
// Abs total. Internally, the denominator is biased by 1, which means the zero
// value is equivalent to 0/1 and thus valid and equal to 0.
//
// Construction does not reduce: Try(2, 4) is stored and rendered as 2/4.
// Every arithmetic operation returns its result in lowest terms, and Reduce
// is available for values built directly.
//
// Valid values are obtained in the following ways:
//   - the zero value of the type Fraction
//   - returned by the New, Try, Int, or Parse functions
//   - returned by arithmetic on any valid values
//   - copied from a valid value
//
// Fraction has proper value semantics and its values can be freely copied.
// Two reduced values can be compared using the == and != operators; Equal
// compares values that may not be reduced.
type Fraction struct {
	m int64
	n int64
}

// Try creates a new fraction with the given numerator and denominator.
// If den is negative, both num and den are negated. The result is not
// reduced.
//
// Try returns ErrDivByZero if den is 0, ErrNumOverflow if num is
// math.MinInt64, and ErrDenOverflow if den is math.MinInt64.
func Try(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDivByZero
	}
	if den < 0 {
		if den == math.MinInt64 {
			return Fraction{}, ErrDenOverflow
		}
		num, den = -num, -den
	}
	if num == math.MinInt64 {
		return Fraction{}, ErrNumOverflow
	}
	return Fraction{num, den - 1}, nil
}

// New is like Try but panics if the fraction cannot be created.
func New(num, den int64) Fraction {
	x, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// Num returns the numerator of x.
func (x Fraction) Num() int64 {
	return x.m
}

// Den returns the denominator of x.
func (x Fraction) Den() int64 {
	return x.n + 1
}

// IsValid returns true if x is a valid fraction.
// Invalid fractions do not arise under normal circumstances, but may occur if
// a value is constructed or manipulated using unsafe operations.
func (x Fraction) IsValid() bool {
	return x.n >= 0 && x.n != math.MaxInt64 && x.m != math.MinInt64
}

// IsZero returns true if x is equal to 0.
func (x Fraction) IsZero() bool {
	return x.m == 0
}

// IsInt returns true if x is equal to an integer.
func (x Fraction) IsInt() bool {
	return x.m%x.Den() == 0
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x Fraction) Sign() int {
	return int(sgn64(x.m))
}

// Reduce returns x in lowest terms, dividing the numerator and denominator by
// their GCD. Reduce is idempotent, and any fraction equal to 0 reduces to 0/1.
func (x Fraction) Reduce() Fraction {
	if x.m == 0 {
		return Fraction{}
	}
	n := x.Den()
	d := GCD(n, x.m)
	if d == 1 {
		return x
	}
	return Fraction{x.m / d, n/d - 1}
}

// Equal returns true if x and y represent the same rational number, even if
// one or both of them are not in lowest terms.
func (x Fraction) Equal(y Fraction) bool {
	return x.Reduce() == y.Reduce()
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
// Cmp never overflows.
func (x Fraction) Cmp(y Fraction) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	if sx == 0 {
		return 0
	}
	// Both have the same nonzero sign, so compare |mx|*ny against |my|*nx
	// with 128-bit products and flip the answer for negative operands.
	h1, l1 := bits.Mul64(uint64(abs64(x.m)), uint64(y.Den()))
	h2, l2 := bits.Mul64(uint64(abs64(y.m)), uint64(x.Den()))
	switch {
	case h1 < h2 || (h1 == h2 && l1 < l2):
		return -sx
	case h1 > h2 || (h1 == h2 && l1 > l2):
		return sx
	}
	return 0
}

// Neg returns the negation of x, -x.
func (x Fraction) Neg() Fraction {
	return Fraction{-x.m, x.n}
}

// Abs returns the absolute value of x, |x|.
func (x Fraction) Abs() Fraction {
	return Fraction{abs64(x.m), x.n}
}

// TryInv returns the reciprocal of x, 1/x, with the sign moved to the
// numerator. The result is in lowest terms only if x is.
// TryInv returns ErrDivByZero if x is 0.
func (x Fraction) TryInv() (Fraction, error) {
	if x.m == 0 {
		return Fraction{}, ErrDivByZero
	}
	return Try(x.Den(), x.m)
}

// Inv is like TryInv but panics if x is 0.
func (x Fraction) Inv() Fraction {
	z, err := x.TryInv()
	if err != nil {
		panic(err)
	}
	return z
}

// TryAdd adds x and y and returns the result in lowest terms.
// The common denominator is LCM(x.Den(), y.Den()) and each numerator is scaled
// up to it before summing.
// TryAdd returns 0 and a non-nil error if an intermediate value would
// overflow.
func (x Fraction) TryAdd(y Fraction) (Fraction, error) {
	return x.combine(y, add64)
}

// Add adds x and y and returns the result.
// Add panics if the result would overflow.
func (x Fraction) Add(y Fraction) Fraction {
	z, err := x.TryAdd(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TrySub subtracts y from x and returns the result in lowest terms.
// It works like TryAdd, subtracting the scaled numerators instead of adding
// them.
// TrySub returns 0 and a non-nil error if an intermediate value would
// overflow.
func (x Fraction) TrySub(y Fraction) (Fraction, error) {
	return x.combine(y, sub64)
}

// Sub subtracts y from x and returns the result.
// Sub panics if the result would overflow.
func (x Fraction) Sub(y Fraction) Fraction {
	z, err := x.TrySub(y)
	if err != nil {
		panic(err)
	}
	return z
}

// combine scales x and y to their least common denominator and joins the
// scaled numerators with op, which reports whether it overflowed.
func (x Fraction) combine(y Fraction, op func(a, b int64) (int64, bool)) (Fraction, error) {
	nx, ny := x.Den(), y.Den()
	l, err := TryLCM(nx, ny)
	if err != nil {
		return Fraction{}, err
	}
	// l is a multiple of both denominators, so the divisions are exact.
	mx, overflow := mul64(x.m, l/nx)
	if overflow {
		return Fraction{}, ErrNumOverflow
	}
	my, overflow := mul64(y.m, l/ny)
	if overflow {
		return Fraction{}, ErrNumOverflow
	}
	m, overflow := op(mx, my)
	if overflow || m == math.MinInt64 {
		return Fraction{}, ErrNumOverflow
	}
	return Fraction{m, l - 1}.Reduce(), nil
}

// TryMul multiplies x and y and returns the result in lowest terms.
// TryMul returns 0 and a non-nil error if the result would overflow.
func (x Fraction) TryMul(y Fraction) (Fraction, error) {
	// Compute the sign of the result.
	sgn := int64(x.Sign() * y.Sign())
	if sgn == 0 {
		return Fraction{}, nil
	}
	// We can ignore the operand signs now that we know the result sign, so we
	// work only with absolute values for simplicity.
	mx, nx := abs64(x.m), x.Den()
	my, ny := abs64(y.m), y.Den()

	// Next, we reduce the fractions by their cross-GCDs to avoid overflow.
	// Since the result is going to be (mx*my)/(nx*ny), we can divide out
	// GCD(mx, ny) and GCD(my, nx) without changing the value.
	if d := GCD(mx, ny); d != 1 {
		mx, ny = mx/d, ny/d
	}
	if d := GCD(my, nx); d != 1 {
		my, nx = my/d, nx/d
	}

	m, overflow := mul64(mx, my)
	if overflow {
		return Fraction{}, ErrNumOverflow
	}
	n, overflow := mul64(nx, ny)
	if overflow {
		return Fraction{}, ErrDenOverflow
	}
	// The operands need not have been reduced, so neither is the product.
	return Fraction{sgn * m, n - 1}.Reduce(), nil
}

// Mul multiplies x and y and returns the result.
// Mul panics if the result would overflow.
func (x Fraction) Mul(y Fraction) Fraction {
	z, err := x.TryMul(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TryDiv divides x by y and returns the result in lowest terms.
// TryDiv returns ErrDivByZero if y is 0, and 0 and a non-nil error if the
// result would overflow.
// The following are equivalent in outcome:
//
//	x.TryDiv(y) == x.TryMul(y.Inv())
func (x Fraction) TryDiv(y Fraction) (Fraction, error) {
	inv, err := y.TryInv()
	if err != nil {
		return Fraction{}, err
	}
	return x.TryMul(inv)
}

// Div divides x by y and returns the result.
// Div panics with ErrDivByZero if y is 0, or if the result would overflow.
func (x Fraction) Div(y Fraction) Fraction {
	z, err := x.TryDiv(y)
	if err != nil {
		panic(err)
	}
	return z
}

// abs64 returns the absolute value of x.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// sgn64 returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func sgn64(x int64) int64 {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -1
	}
	return 1
}

// add64 returns x+y and whether the sum overflowed.
func add64(x, y int64) (int64, bool) {
	z := x + y
	return z, (x^z)&(y^z) < 0
}

// sub64 returns x-y and whether the difference overflowed.
func sub64(x, y int64) (int64, bool) {
	z := x - y
	return z, (x^y)&(x^z) < 0
}

// mul64 returns x*y and whether the product overflowed.
func mul64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, false
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, true
	}
	z := x * y
	if z/y != x {
		return 0, true
	}
	return z, false
}
