/*
Package rational implements immutable arbitrary-precision rational numbers.
It is designed for applications that need exact fractional math, such as
pricing and unit conversion, where binary floating point introduces
unacceptable rounding error.

# Representation

[Rational] is a struct with two fields:

  - Numerator: an arbitrary-precision signed integer.
  - Denominator: an arbitrary-precision integer, nonzero for every
    constructed value.

The numerical value of a rational is Numerator / Denominator, computed
exactly. The same value can have multiple representations: 1/2, 2/4 and
-1/-2 are all one half. Constructors store the given pair verbatim;
[Rational.Reduce] produces the canonical representation, in lowest terms
with a strictly positive denominator, and every arithmetic operation
returns its result already reduced.

Special values such as NaN or infinities are not supported: a zero
denominator is rejected at construction, so arithmetic always produces
either a valid rational or an error.

# Conversions

The package provides constructors for the common source types:

  - from an integer pair: [New], [NewFromBigInt], [NewFromInt64].
  - from a string: [Parse], which accepts both decimal numerals ("0.75",
    "-12.5") and fraction literals ("3/4", "-22/7").
  - from a float64: [NewFromFloat64], which captures the float's shortest
    decimal form exactly rather than its underlying binary expansion.
  - from a fixed-precision decimal: [NewFromDecimal], a lossless bridge
    from [github.com/shopspring/decimal].

And accessors going the other way: [Rational.String] renders the fraction
form, [Rational.DecimalString] renders the exact decimal expansion to a
caller-chosen number of digits by long division, [Rational.Float64] is the
documented-lossy float accessor, and [Rational.Decimal] rounds into a
shopspring decimal.

# Operations

[Rational.Add], [Rational.Sub], [Rational.Mul], [Rational.Quo],
[Rational.Inv] and [Rational.Pow] perform exact arithmetic.
[Rational.Cmp] and the predicates derived from it compare values by
cross-multiplication, so comparing never divides and never rounds.

Operations visible to the caller never mutate a rational; each one returns
a new value, so rationals are safe for concurrent use by multiple
goroutines. The only resource consumed is integer magnitude: numerators
and denominators grow as needed and are kept small by the reduction every
operation performs.

# Errors

All errors returned or panicked by this package wrap one of two
sentinels: [ErrDivisionByZero] for any operation that would produce a
zero denominator, and [ErrInvalidRational] for unparseable input. Both
conditions are caller contract violations, not transient states, so there
is no internal recovery or retry.
*/
package rational
