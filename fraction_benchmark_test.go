package fraction_test

import (
	"math/big"
	"testing"

	"github.com/kbolino/fraction"
)

var BenchCases = map[string]struct {
	X, Y fraction.Fraction
}{
	"Small":   {New(7, 11*13), New(11, 7*13)},
	"WideAdd": {New(P1, P2*P3), New(P2, P1*P3)},
	"WideMul": {New(P1*P2, P3), New(P3, P4)},
}

func BenchmarkFraction_Add(b *testing.B) {
	for name, c := range BenchCases {
		x, y := c.X, c.Y
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Add(y)
			}
		})
	}
}

func BenchmarkFraction_Sub(b *testing.B) {
	for name, c := range BenchCases {
		x, y := c.X, c.Y
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Sub(y)
			}
		})
	}
}

func BenchmarkFraction_Mul(b *testing.B) {
	for name, c := range BenchCases {
		x, y := c.X, c.Y
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Mul(y)
			}
		})
	}
}

func BenchmarkFraction_Div(b *testing.B) {
	for name, c := range BenchCases {
		x, y := c.X, c.Y
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Div(y)
			}
		})
	}
}

func BenchmarkBigRat_Add(b *testing.B) {
	z := new(big.Rat)
	for name, c := range BenchCases {
		x, y := c.X.BigRat(), c.Y.BigRat()
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				z.Add(x, y)
			}
		})
	}
}

func BenchmarkBigRat_Mul(b *testing.B) {
	z := new(big.Rat)
	for name, c := range BenchCases {
		x, y := c.X.BigRat(), c.Y.BigRat()
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				z.Mul(x, y)
			}
		})
	}
}
