package rational

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NewFromDecimal converts a [decimal.Decimal] to a rational.
// The conversion is exact: the coefficient and exponent of d are taken
// as-is, so the result carries precisely the decimal digits of d's own
// string form. The result is reduced to lowest terms.
func NewFromDecimal(d decimal.Decimal) Rational {
	num := getBint()
	defer putBint(num)
	num.setBig(d.Coefficient())
	den := getBint()
	defer putBint(den)

	exp := int(d.Exponent())
	if exp >= 0 {
		num.lsh(num, exp)
		den.setInt64(1)
	} else {
		den.pow10(-exp)
	}

	r, err := newReducedRational(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewFromDecimal(%q) failed: %v", d, err)) // unexpected by design
	}
	return r
}

// Decimal converts r to a [decimal.Decimal] with the given number of
// digits after the decimal point, rounding half away from zero.
// The conversion is lossy whenever the reduced denominator of r has a
// prime factor other than 2 and 5.
func (r Rational) Decimal(scale int32) decimal.Decimal {
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	return num.DivRound(den, scale)
}
