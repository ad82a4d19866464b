package rational

import (
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = [...]*bint{
	newBintFromPow10(0),
	newBintFromPow10(1),
	newBintFromPow10(2),
	newBintFromPow10(3),
	newBintFromPow10(4),
	newBintFromPow10(5),
	newBintFromPow10(6),
	newBintFromPow10(7),
	newBintFromPow10(8),
	newBintFromPow10(9),
	newBintFromPow10(10),
	newBintFromPow10(11),
	newBintFromPow10(12),
	newBintFromPow10(13),
	newBintFromPow10(14),
	newBintFromPow10(15),
	newBintFromPow10(16),
	newBintFromPow10(17),
	newBintFromPow10(18),
	newBintFromPow10(19),
	newBintFromPow10(20),
	newBintFromPow10(21),
	newBintFromPow10(22),
	newBintFromPow10(23),
	newBintFromPow10(24),
	newBintFromPow10(25),
	newBintFromPow10(26),
	newBintFromPow10(27),
	newBintFromPow10(28),
	newBintFromPow10(29),
	newBintFromPow10(30),
	newBintFromPow10(31),
	newBintFromPow10(32),
	newBintFromPow10(33),
	newBintFromPow10(34),
	newBintFromPow10(35),
	newBintFromPow10(36),
	newBintFromPow10(37),
	newBintFromPow10(38),
	newBintFromPow10(39),
}

// newBintFromPow10 calculates 10^power.
// Use only for package variable initialization!
func newBintFromPow10(power int) *bint {
	z := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(power)), nil)
	return (*bint)(z)
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

func (z *bint) setBig(x *big.Int) {
	(*big.Int)(z).Set(x)
}

// big returns z as a newly allocated *big.Int.
func (z *bint) big() *big.Int {
	return new(big.Int).Set((*big.Int)(z))
}

// isInt64 reports whether z fits into an int64.
func (z *bint) isInt64() bool {
	return (*big.Int)(z).IsInt64()
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	// Copying x, y to prevent heap allocations.
	if z == x {
		b := getBint()
		defer putBint(b)
		b.setBint(x)
		x = b
	}
	if z == y {
		b := getBint()
		defer putBint(b)
		b.setBint(y)
		y = b
	}
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// exp calculates z = x^y.
// If y is negative, the result is unpredictable.
func (z *bint) exp(x, y *bint) {
	(*big.Int)(z).Exp((*big.Int)(x), (*big.Int)(y), nil)
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	x := getBint()
	defer putBint(x)
	x.setInt64(10)
	y := getBint()
	defer putBint(y)
	y.setInt64(int64(power))
	z.exp(x, y)
}

// quo calculates z = x / y truncated towards zero.
func (z *bint) quo(x, y *bint) {
	// Passing r to prevent heap allocations.
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
}

// quoRem calculates z = x / y truncated towards zero, r = x - y * z.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// gcd calculates z = gcd(|x|, |y|).
// gcd(0, 0) = 0 by the usual convention of Euclid's algorithm.
func (z *bint) gcd(x, y *bint) {
	a := getBint()
	defer putBint(a)
	a.abs(x)
	b := getBint()
	defer putBint(b)
	b.abs(y)
	(*big.Int)(z).GCD(nil, nil, (*big.Int)(a), (*big.Int)(b))
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.mul(x, y)
}

// fsa (Fused Shift and Addition) calculates z = x * 10^shift + d.
func (z *bint) fsa(x *bint, shift int, d byte) {
	y := getBint()
	defer putBint(y)
	y.setInt64(int64(d))
	z.lsh(x, shift)
	z.add(z, y)
}

// prec returns length of z in decimal digits.
// prec assumes that 0 has no digits.
// If z is negative, the result is unpredictable.
//
// z.prec() is significantly faster than len(z.string()),
// if z has no more than len(bpow10) digits.
func (z *bint) prec() int {
	// Special case
	if z.cmp(bpow10[len(bpow10)-1]) > 0 {
		return len(z.string())
	}
	// General case
	left, right := 0, len(bpow10)
	for left < right {
		mid := (left + right) / 2
		if z.cmp(bpow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
// The returned value is dirty and must be set before the first read.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}
