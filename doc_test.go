package rational_test

import (
	"fmt"

	"github.com/exactvalues/rational"
	"github.com/shopspring/decimal"
)

func ExampleNew() {
	r, err := rational.New(22, 7)
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 22/7
}

func ExampleParse() {
	a := rational.MustParse("0.75")
	b := rational.MustParse("3/4")
	fmt.Println(a)
	fmt.Println(a.Equal(b))
	// Output:
	// 3/4
	// true
}

func ExampleRational_Add() {
	a := rational.MustParse("1/2")
	b := rational.MustParse("1/3")
	fmt.Println(a.Add(b))
	// Output: 5/6
}

func ExampleRational_Quo() {
	a := rational.MustParse("1/2")
	b := rational.MustParse("1/4")
	q, err := a.Quo(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	// Output: 2/1
}

func ExampleRational_Pow() {
	r := rational.MustParse("2/3")
	fmt.Println(r.MustPow(rational.NewFromInt64(-2)))
	// Output: 9/4
}

func ExampleRational_Cmp() {
	a := rational.MustParse("1/2")
	b := rational.MustParse("3/4")
	fmt.Println(a.Cmp(b))
	// Output: -1
}

func ExampleRational_DecimalString() {
	fmt.Println(rational.MustNew(1, 7).DecimalString(6))
	fmt.Println(rational.MustNew(1, 1000).DecimalString(5))
	fmt.Println(rational.MustNew(2, 3).DecimalString(4))
	// Output:
	// 0.142857
	// 0.001
	// 0.6666
}

func ExampleRational_Reduce() {
	r := rational.MustNew(6, -8)
	fmt.Println(r)
	fmt.Println(r.Reduce())
	// Output:
	// 6/-8
	// -3/4
}

func ExampleNewFromDecimal() {
	d := decimal.RequireFromString("1.25")
	fmt.Println(rational.NewFromDecimal(d))
	// Output: 5/4
}

func ExampleRational_Decimal() {
	r := rational.MustParse("2/3")
	fmt.Println(r.Decimal(4))
	// Output: 0.6667
}

func ExampleRational_Format() {
	r := rational.MustParse("2/3")
	fmt.Printf("%s is about %.3f\n", r, r)
	// Output: 2/3 is about 0.666
}
