package fraction

import "golang.org/x/exp/constraints"

// TryInt returns v as the fraction v/1.
// TryInt returns ErrNumOverflow if v is math.MinInt64.
func TryInt[T constraints.Signed](v T) (Fraction, error) {
	return Try(int64(v), 1)
}

// Int is like TryInt but panics if v is math.MinInt64.
func Int[T constraints.Signed](v T) Fraction {
	return New(int64(v), 1)
}

// Methods taking an integer right-hand operand promote it with TryInt and
// delegate to the Fraction-Fraction method of the same name.

// TryAddInt returns x + v.
func (x Fraction) TryAddInt(v int64) (Fraction, error) {
	y, err := TryInt(v)
	if err != nil {
		return Fraction{}, err
	}
	return x.TryAdd(y)
}

// AddInt returns x + v, panicking on overflow.
func (x Fraction) AddInt(v int64) Fraction {
	return must(x.TryAddInt(v))
}

// TrySubInt returns x - v.
func (x Fraction) TrySubInt(v int64) (Fraction, error) {
	y, err := TryInt(v)
	if err != nil {
		return Fraction{}, err
	}
	return x.TrySub(y)
}

// SubInt returns x - v, panicking on overflow.
func (x Fraction) SubInt(v int64) Fraction {
	return must(x.TrySubInt(v))
}

// TryMulInt returns x * v.
func (x Fraction) TryMulInt(v int64) (Fraction, error) {
	y, err := TryInt(v)
	if err != nil {
		return Fraction{}, err
	}
	return x.TryMul(y)
}

// MulInt returns x * v, panicking on overflow.
func (x Fraction) MulInt(v int64) Fraction {
	return must(x.TryMulInt(v))
}

// TryDivInt returns x / v, or ErrDivByZero if v is 0.
func (x Fraction) TryDivInt(v int64) (Fraction, error) {
	y, err := TryInt(v)
	if err != nil {
		return Fraction{}, err
	}
	return x.TryDiv(y)
}

// DivInt returns x / v, panicking if v is 0 or on overflow.
func (x Fraction) DivInt(v int64) Fraction {
	return must(x.TryDivInt(v))
}

// Functions taking an integer left-hand operand. Addition and multiplication
// commute, so they reuse the methods above with the operands swapped.
// Subtraction and division do not: IntSub(v, x) is v - x, never x - v, so
// those promote v and call Sub or Div on it.

// TryIntAdd returns v + x.
func TryIntAdd(v int64, x Fraction) (Fraction, error) {
	return x.TryAddInt(v)
}

// IntAdd returns v + x, panicking on overflow.
func IntAdd(v int64, x Fraction) Fraction {
	return x.AddInt(v)
}

// TryIntSub returns v - x.
func TryIntSub(v int64, x Fraction) (Fraction, error) {
	w, err := TryInt(v)
	if err != nil {
		return Fraction{}, err
	}
	return w.TrySub(x)
}

// IntSub returns v - x, panicking on overflow.
func IntSub(v int64, x Fraction) Fraction {
	return must(TryIntSub(v, x))
}

// TryIntMul returns v * x.
func TryIntMul(v int64, x Fraction) (Fraction, error) {
	return x.TryMulInt(v)
}

// IntMul returns v * x, panicking on overflow.
func IntMul(v int64, x Fraction) Fraction {
	return x.MulInt(v)
}

// TryIntDiv returns v / x, or ErrDivByZero if x is 0.
func TryIntDiv(v int64, x Fraction) (Fraction, error) {
	w, err := TryInt(v)
	if err != nil {
		return Fraction{}, err
	}
	return w.TryDiv(x)
}

// IntDiv returns v / x, panicking if x is 0 or on overflow.
func IntDiv(v int64, x Fraction) Fraction {
	return must(TryIntDiv(v, x))
}

func must(x Fraction, err error) Fraction {
	if err != nil {
		panic(err)
	}
	return x
}
