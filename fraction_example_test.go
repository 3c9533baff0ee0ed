package fraction_test

import (
	"errors"
	"fmt"

	"github.com/kbolino/fraction"
)

func ExampleNew() {
	x := fraction.New(1, 3)
	fmt.Println(x)
	// Output: 1/3
}

func ExampleNew_negativeDenominator() {
	x := fraction.New(4, -5)
	fmt.Println(x)
	// Output: -4/5
}

func ExampleTry_denomZero() {
	_, err := fraction.Try(1, 0)
	fmt.Println(err)
	// Output: division by zero
}

func ExampleFraction_Reduce() {
	x := fraction.New(2, 14)
	fmt.Println(x, x.Reduce())
	// Output: 2/14 1/7
}

func ExampleFraction_Add() {
	fmt.Println(fraction.New(1, 3).Add(fraction.New(1, 6)))
	fmt.Println(fraction.New(15, 4).Add(fraction.New(2, 14)))
	// Output:
	// 1/2
	// 109/28
}

func ExampleFraction_AddInt() {
	x := fraction.New(-4, 5)
	fmt.Println(x.AddInt(2))
	// Output: 6/5
}

func ExampleFraction_SubInt() {
	x := fraction.New(-4, 5)
	fmt.Println(x.SubInt(2))
	// Output: -14/5
}

func ExampleIntSub() {
	x := fraction.New(-4, 5)
	fmt.Println(fraction.IntSub(2, x))
	// Output: 14/5
}

func ExampleFraction_Mul() {
	fmt.Println(fraction.New(1, 3).Mul(fraction.New(1, 6)))
	// Output: 1/18
}

func ExampleIntDiv() {
	fmt.Println(fraction.IntDiv(1, fraction.New(1, 3)))
	// Output: 3
}

func ExampleFraction_TryDiv_zero() {
	_, err := fraction.New(1, 2).TryDiv(fraction.New(0, 7))
	fmt.Println(errors.Is(err, fraction.ErrDivByZero))
	// Output: true
}

func ExampleParse() {
	x, err := fraction.Parse("-14/5")
	if err != nil {
		panic(err)
	}
	fmt.Println(x.AddInt(3))
	// Output: 1/5
}

func ExampleGCD() {
	fmt.Println(fraction.GCD(1, 1_000_000), fraction.GCD(0, 12), fraction.GCD(0, 0))
	// Output: 1 12 0
}
