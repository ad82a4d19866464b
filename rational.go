package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Rational type is a representation of an exact rational number: an
// arbitrary-precision integer numerator over a nonzero arbitrary-precision
// integer denominator.
// The zero value is the numeric value of 0.
// Values are immutable: every operation returns a new rational and no
// method ever modifies its receiver or operands, so a rational is safe to
// share between goroutines.
//
// Constructors store the numerator and denominator exactly as given, without
// reducing them to lowest terms. All arithmetic operations return reduced
// results; to reduce a raw value explicitly, use [Rational.Reduce].
type Rational struct {
	num bint // numerator, any sign
	den bint // denominator, nonzero for constructed values
}

// DefaultDecimalPrec is a reasonable fractional digit budget for
// [Rational.DecimalString] and is what the %f verb of [Rational.Format]
// uses when no precision is given.
const DefaultDecimalPrec = 16

var (
	// ErrDivisionByZero occurs when a zero denominator would result:
	// construction with a zero denominator, division by a zero-valued
	// rational, or a negative power of zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidRational occurs when [Parse] receives input that is neither
	// a well-formed decimal numeral nor a well-formed "integer/integer"
	// fraction.
	ErrInvalidRational = errors.New("invalid rational")

	errExponentRange = errors.New("exponent out of range")
)

func newRational(num, den *bint) (Rational, error) {
	if den.sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	r := Rational{}
	r.num.setBint(num)
	r.den.setBint(den)
	return r, nil
}

func newReducedRational(num, den *bint) (Rational, error) {
	r, err := newRational(num, den)
	if err != nil {
		return Rational{}, err
	}
	return r.Reduce(), nil
}

// denom returns the stored denominator of r.
// The zero value has no stored denominator and reads as 0/1.
// The result may alias a shared cache entry and must never be mutated.
func (r *Rational) denom() *bint {
	if r.den.sign() == 0 {
		return bpow10[0]
	}
	return &r.den
}

// New returns a rational with the given numerator and denominator.
// The pair is stored as-is; it is not reduced to lowest terms.
//
// New returns [ErrDivisionByZero] if den is 0.
func New(num, den int64) (Rational, error) {
	n := getBint()
	defer putBint(n)
	n.setInt64(num)
	d := getBint()
	defer putBint(d)
	d.setInt64(den)
	return newRational(n, d)
}

// NewFromBigInt returns a rational with the given numerator and denominator.
// The inputs are copied, so the caller remains free to mutate them.
// The pair is stored as-is; it is not reduced to lowest terms.
//
// NewFromBigInt returns [ErrDivisionByZero] if den is 0.
func NewFromBigInt(num, den *big.Int) (Rational, error) {
	n := getBint()
	defer putBint(n)
	n.setBig(num)
	d := getBint()
	defer putBint(d)
	d.setBig(den)
	return newRational(n, d)
}

// NewFromInt64 returns a rational equal to the given integer.
func NewFromInt64(i int64) Rational {
	r := Rational{}
	r.num.setInt64(i)
	r.den.setInt64(1)
	return r
}

// NewFromFloat64 converts a float64 to an exact rational.
//
// The float is first rendered to its shortest decimal representation and
// the resulting numeral is parsed, so the rational carries exactly the
// digits of the float's own textual form. For example, NewFromFloat64(0.1)
// is exactly 1/10, not the binary value 0.1000000000000000055511151231257827.
//
// NewFromFloat64 returns an error wrapping [ErrInvalidRational] if f is
// NaN or an infinity.
func NewFromFloat64(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, fmt.Errorf("converting %v: %w", f, ErrInvalidRational)
	}
	return Parse(strconv.FormatFloat(f, 'f', -1, 64))
}

// Parse converts a string to a rational.
// The input string must be in one of the following formats:
//
//	1.234
//	-5
//	+0.75
//	.5
//	3/4
//	-22/7
//
// The formal EBNF grammar for the supported formats is as follows:
//
//	sign     ::= '+' | '-'
//	digits   ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeral  ::= [sign] (digits '.' digits | '.' digits | digits '.' | digits)
//	fraction ::= [sign] digits '/' [sign] digits
//
// A fraction is read as numerator/denominator and the result of either form
// is reduced to lowest terms with a positive denominator.
//
// Parse returns an error wrapping:
//   - [ErrInvalidRational] if the string matches neither format;
//   - [ErrDivisionByZero] if the fraction's denominator is 0.
func Parse(s string) (Rational, error) {
	if strings.IndexByte(s, '/') >= 0 {
		return parseFraction(s)
	}
	return parseNumeral(s)
}

func parseNumeral(s string) (Rational, error) {
	var (
		pos     int
		width   int
		neg     bool
		scale   int
		hascoef bool
	)

	coef := getBint()
	defer putBint(coef)
	coef.setInt64(0)
	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer part
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		coef.fsa(coef, 1, s[pos]-'0')
		pos++
	}

	// Fractional part
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			coef.fsa(coef, 1, s[pos]-'0')
			scale++
			pos++
		}
	}

	if pos != width {
		return Rational{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], ErrInvalidRational)
	}
	if !hascoef {
		return Rational{}, fmt.Errorf("parsing %q: no digits: %w", s, ErrInvalidRational)
	}

	if neg {
		coef.neg(coef)
	}
	den := getBint()
	defer putBint(den)
	den.pow10(scale)
	r, err := newReducedRational(coef, den)
	if err != nil {
		panic(fmt.Sprintf("parsing %q failed: %v", s, err)) // unexpected by design
	}
	return r, nil
}

func parseFraction(s string) (Rational, error) {
	i := strings.IndexByte(s, '/')
	left, right := s[:i], s[i+1:]
	if strings.IndexByte(right, '/') >= 0 {
		return Rational{}, fmt.Errorf("parsing %q: more than one slash: %w", s, ErrInvalidRational)
	}
	if left == "" || right == "" {
		return Rational{}, fmt.Errorf("parsing %q: empty operand: %w", s, ErrInvalidRational)
	}
	num, ok := new(big.Int).SetString(left, 10)
	if !ok {
		return Rational{}, fmt.Errorf("parsing %q: invalid numerator %q: %w", s, left, ErrInvalidRational)
	}
	den, ok := new(big.Int).SetString(right, 10)
	if !ok {
		return Rational{}, fmt.Errorf("parsing %q: invalid denominator %q: %w", s, right, ErrInvalidRational)
	}
	r, err := NewFromBigInt(num, den)
	if err != nil {
		return Rational{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return r.Reduce(), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rationals.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return r
}

// Num returns a copy of the numerator of r.
func (r Rational) Num() *big.Int {
	return r.num.big()
}

// Denom returns a copy of the denominator of r.
// The denominator of the zero value Rational{} is 1.
func (r Rational) Denom() *big.Int {
	return r.denom().big()
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r == 0
//	+1 if r > 0
func (r Rational) Sign() int {
	return r.num.sign() * r.denom().sign()
}

// IsZero returns true if r == 0.
func (r Rational) IsZero() bool {
	return r.num.sign() == 0
}

// IsPos returns true if r > 0.
func (r Rational) IsPos() bool {
	return r.Sign() > 0
}

// IsNeg returns true if r < 0.
func (r Rational) IsNeg() bool {
	return r.Sign() < 0
}

// IsInt returns true if r is an exact integer.
func (r Rational) IsInt() bool {
	q := getBint()
	defer putBint(q)
	rem := getBint()
	defer putBint(rem)
	q.quoRem(&r.num, r.denom(), rem)
	return rem.sign() == 0
}

// Reduce returns r in its lowest terms: the numerator and denominator are
// divided by their greatest common divisor and the denominator is made
// strictly positive. Reducing 0/d yields 0/1 (gcd(0, d) = d).
func (r Rational) Reduce() Rational {
	num := getBint()
	defer putBint(num)
	num.setBint(&r.num)
	den := getBint()
	defer putBint(den)
	den.setBint(r.denom())

	g := getBint()
	defer putBint(g)
	g.gcd(num, den)
	num.quo(num, g)
	den.quo(den, g)
	if den.sign() < 0 {
		num.neg(num)
		den.neg(den)
	}

	f, err := newRational(num, den)
	if err != nil {
		panic(fmt.Sprintf("%q.Reduce() failed: %v", r, err)) // unexpected by design
	}
	return f
}

// Neg returns r with opposite sign.
func (r Rational) Neg() Rational {
	f := Rational{}
	f.num.neg(&r.num)
	f.den.setBint(r.denom())
	return f
}

// Abs returns absolute value of r.
func (r Rational) Abs() Rational {
	f := Rational{}
	f.num.abs(&r.num)
	f.den.abs(r.denom())
	return f
}

// Add returns the exact sum of r and e, reduced to lowest terms.
func (r Rational) Add(e Rational) Rational {
	num := getBint()
	defer putBint(num)
	num.mul(&r.num, e.denom())
	t := getBint()
	defer putBint(t)
	t.mul(&e.num, r.denom())
	num.add(num, t)

	den := getBint()
	defer putBint(den)
	den.mul(r.denom(), e.denom())

	f, err := newReducedRational(num, den)
	if err != nil {
		panic(fmt.Sprintf("%q.Add(%q) failed: %v", r, e, err)) // unexpected by design
	}
	return f
}

// Sub returns the exact difference of r and e, reduced to lowest terms.
func (r Rational) Sub(e Rational) Rational {
	return r.Add(e.Neg())
}

// Mul returns the exact product of r and e, reduced to lowest terms.
func (r Rational) Mul(e Rational) Rational {
	num := getBint()
	defer putBint(num)
	num.mul(&r.num, &e.num)
	den := getBint()
	defer putBint(den)
	den.mul(r.denom(), e.denom())

	f, err := newReducedRational(num, den)
	if err != nil {
		panic(fmt.Sprintf("%q.Mul(%q) failed: %v", r, e, err)) // unexpected by design
	}
	return f
}

// Quo returns the exact quotient of r and e, reduced to lowest terms.
//
// Quo returns [ErrDivisionByZero] if e is zero.
func (r Rational) Quo(e Rational) (Rational, error) {
	num := getBint()
	defer putBint(num)
	num.mul(&r.num, e.denom())
	den := getBint()
	defer putBint(den)
	den.mul(r.denom(), &e.num)
	return newReducedRational(num, den)
}

// Inv returns the reciprocal of r, reduced to lowest terms.
//
// Inv returns [ErrDivisionByZero] if r is zero.
func (r Rational) Inv() (Rational, error) {
	return newReducedRational(r.denom(), &r.num)
}

// Pow returns r raised to the given exponent, reduced to lowest terms.
//
// For an integer-valued exponent n this is the ordinary power: numerator
// and denominator are both raised to the n-th power, and a negative n
// takes the reciprocal first, so r must be nonzero in that case.
//
// A non-integer exponent c/d is not a root: the exponent is applied
// componentwise, raising the numerator of r to the c-th power and the
// denominator of r to the d-th power.
//
// Pow returns:
//   - [ErrDivisionByZero] if r is zero and the exponent is negative;
//   - an error if a component of the exponent does not fit in an int64,
//     or if the exponent is both negative and non-integer.
func (r Rational) Pow(e Rational) (Rational, error) {
	e = e.Reduce()
	b := r.Reduce()

	if !e.num.isInt64() || !e.den.isInt64() {
		return Rational{}, fmt.Errorf("%q.Pow(%q): %w", r, e, errExponentRange)
	}

	neg := e.num.sign() < 0
	isInt := e.den.cmp(bpow10[0]) == 0
	if neg && !isInt {
		return Rational{}, fmt.Errorf("%q.Pow(%q): negative non-integer exponent: %w", r, e, errExponentRange)
	}

	// Exponents for the numerator and the denominator of the result.
	cexp := getBint()
	defer putBint(cexp)
	cexp.abs(&e.num)
	dexp := getBint()
	defer putBint(dexp)
	if isInt {
		dexp.setBint(cexp)
	} else {
		dexp.setBint(&e.den)
	}

	num := getBint()
	defer putBint(num)
	den := getBint()
	defer putBint(den)
	if neg {
		if b.IsZero() {
			return Rational{}, ErrDivisionByZero
		}
		num.exp(&b.den, dexp)
		den.exp(&b.num, cexp)
	} else {
		num.exp(&b.num, cexp)
		den.exp(&b.den, dexp)
	}

	f, err := newReducedRational(num, den)
	if err != nil {
		panic(fmt.Sprintf("%q.Pow(%q) failed: %v", r, e, err)) // unexpected by design
	}
	return f, nil
}

// Cmp compares r and e numerically and returns:
//
//	-1 if r < e
//	 0 if r == e
//	+1 if r > e
//
// The comparison cross-multiplies the numerators with the opposite
// denominators, so no division and no rounding takes place.
func (r Rational) Cmp(e Rational) int {
	l := getBint()
	defer putBint(l)
	l.mul(&r.num, e.denom())
	t := getBint()
	defer putBint(t)
	t.mul(&e.num, r.denom())

	c := l.cmp(t)
	// Cross-multiplication flips the ordering once per negative denominator.
	if r.denom().sign()*e.denom().sign() < 0 {
		c = -c
	}
	return c
}

// Equal returns true if r == e numerically.
// Unreduced values compare by value: 2/4 equals 1/2.
func (r Rational) Equal(e Rational) bool {
	return r.Cmp(e) == 0
}

// Less returns true if r < e.
func (r Rational) Less(e Rational) bool {
	return r.Cmp(e) < 0
}

// LessOrEqual returns true if r <= e.
func (r Rational) LessOrEqual(e Rational) bool {
	return r.Cmp(e) <= 0
}

// Greater returns true if r > e.
func (r Rational) Greater(e Rational) bool {
	return r.Cmp(e) > 0
}

// GreaterOrEqual returns true if r >= e.
func (r Rational) GreaterOrEqual(e Rational) bool {
	return r.Cmp(e) >= 0
}

// Max returns the larger of r and e.
func (r Rational) Max(e Rational) Rational {
	if r.Cmp(e) >= 0 {
		return r
	}
	return e
}

// Min returns the smaller of r and e.
func (r Rational) Min(e Rational) Rational {
	if r.Cmp(e) <= 0 {
		return r
	}
	return e
}

// Float64 returns the nearest float64 to r.
//
// This is the lossy accessor: a float64 carries 53 bits of precision, so
// most rationals do not survive the round trip. Use
// [Rational.DecimalString] for exact rendering.
func (r Rational) Float64() float64 {
	num := new(big.Float).SetInt(r.Num())
	den := new(big.Float).SetInt(r.Denom())
	f, _ := num.Quo(num, den).Float64()
	return f
}

// String method implements the [fmt.Stringer] interface and returns the
// fraction form of r, e.g. "3/4" or "-1/3".
// The stored numerator and denominator are rendered verbatim: no reduction
// and no sign canonicalization is applied, so New(2, -4) renders as "2/-4".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rational) String() string {
	return r.num.string() + "/" + r.denom().string()
}

// DecimalString returns the decimal expansion of r with at most prec
// digits after the decimal point.
//
// The expansion is produced by exact long division, so no binary
// floating-point intermediate is ever materialized. It is truncated
// towards zero, never rounded: 2/3 at prec 4 is "0.6666". Rendering stops
// early once the expansion terminates, so 1/8 at prec 16 is "0.125" and an
// integral r renders with no decimal point at all. A prec of 0 or less
// yields just the integer quotient.
func (r Rational) DecimalString(prec int) string {
	num := getBint()
	defer putBint(num)
	num.abs(&r.num)
	den := getBint()
	defer putBint(den)
	den.abs(r.denom())

	quo := getBint()
	defer putBint(quo)
	rem := getBint()
	defer putBint(rem)
	quo.quoRem(num, den, rem)

	var buf []byte
	if r.Sign() < 0 && (quo.sign() != 0 || (rem.sign() != 0 && prec > 0)) {
		buf = append(buf, '-')
	}
	buf = append(buf, quo.string()...)
	if rem.sign() == 0 || prec <= 0 {
		return string(buf)
	}
	buf = append(buf, '.')

	// dprec is the digit count of den-1. Scaling a remainder by
	// 10^(dprec - digits(remainder) + 1) guarantees at least one quotient
	// digit per step, and the shortfall against the scale is exactly the
	// run of leading zeros the step contributes to the expansion
	// (1/1000 renders "001" for its first digit group, not "1").
	t := getBint()
	defer putBint(t)
	t.sub(den, bpow10[0])
	dprec := t.prec()

	carry := getBint()
	defer putBint(carry)
	carry.setBint(rem)
	digit := getBint()
	defer putBint(digit)

	for prec > 0 {
		extra := dprec - carry.prec() + 1
		carry.lsh(carry, extra)
		digit.quoRem(carry, den, rem)

		ds := digit.string()
		group := make([]byte, 0, extra)
		for i := extra - len(ds); i > 0; i-- {
			group = append(group, '0')
		}
		group = append(group, ds...)
		if len(group) > prec {
			group = group[:prec]
		}
		buf = append(buf, group...)
		prec -= len(group)

		if rem.sign() == 0 {
			break
		}
		carry.setBint(rem)
	}
	return string(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// It accepts anything [Parse] accepts.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rational) UnmarshalText(text []byte) error {
	var err error
	*r, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Rational.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: 3/4
//	%q:    "3/4"
//	%f:     0.75
//
// The %f verb renders the decimal expansion of the value; its precision is
// the fractional digit budget of [Rational.DecimalString] and defaults to
// [DefaultDecimalPrec]. The '+' and ' ' flags force a sign, and width with
// the optional '-' flag pads with spaces.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Rational) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'f', 'F':
		prec, ok := state.Precision()
		if !ok {
			prec = DefaultDecimalPrec
		}
		text = r.DecimalString(prec)
	case 's', 'S', 'v', 'V', 'q', 'Q':
		text = r.String()
	default:
		fmt.Fprintf(state, "%%!%c(rational.Rational=%s)", verb, r.String())
		return
	}

	// Arithmetic sign
	if !strings.HasPrefix(text, "-") {
		switch {
		case state.Flag('+'):
			text = "+" + text
		case state.Flag(' '):
			text = " " + text
		}
	}

	// Quotes
	if verb == 'q' || verb == 'Q' {
		text = "\"" + text + "\""
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(text) {
		spaces := strings.Repeat(" ", w-len(text))
		if state.Flag('-') {
			text += spaces
		} else {
			text = spaces + text
		}
	}

	state.Write([]byte(text))
}
