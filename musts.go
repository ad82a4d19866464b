package rational

import "fmt"

// MustNew is like [New] but panics if the denominator is zero.
// It simplifies safe initialization of global variables holding rationals.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// MustQuo is like [Quo] but panics if computing error.
func (r Rational) MustQuo(e Rational) Rational {
	f, err := r.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustInv is like [Inv] but panics if computing error.
func (r Rational) MustInv() Rational {
	f, err := r.Inv()
	if err != nil {
		panic(fmt.Sprintf("%v.MustInv() failed: %v", r, err))
	}
	return f
}

// MustPow is like [Pow] but panics if computing error.
func (r Rational) MustPow(e Rational) Rational {
	f, err := r.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", e, err))
	}
	return f
}
