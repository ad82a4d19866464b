package rational

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randInt64 returns a random integer in the half-open range [lo, hi).
func randInt64(rng *rand.Rand, lo, hi int64) int64 {
	return lo + rng.Int63n(hi-lo)
}

func randRational(rng *rand.Rand) Rational {
	den := randInt64(rng, 1, 1000)
	if rng.Intn(2) == 0 {
		den = -den
	}
	return MustNew(randInt64(rng, -1000, 1000), den)
}

func TestArithmeticIdentities(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(1))

	zero := MustNew(0, 1)
	one := MustNew(1, 1)
	for i := 0; i < 2000; i++ {
		a := randRational(rng)
		b := randRational(rng)

		assert.True(a.Add(b).Sub(b).Equal(a), "(%v + %v) - %v != %v", a, b, b, a)
		assert.True(a.Add(b).Equal(b.Add(a)), "%v + %v is not commutative", a, b)
		assert.True(a.Sub(a).Equal(zero), "%v - %v != 0", a, a)
		assert.True(a.Mul(one).Equal(a), "%v * 1 != %v", a, a)
		assert.True(a.Mul(b).Equal(b.Mul(a)), "%v * %v is not commutative", a, b)

		if !b.IsZero() {
			q, err := a.Mul(b).Quo(b)
			require.NoError(t, err)
			assert.True(q.Equal(a), "(%v * %v) / %v != %v", a, b, b, a)
		}

		p, err := a.Pow(zero)
		require.NoError(t, err)
		assert.True(p.Equal(one), "%v^0 != 1", a)

		assert.True(a.Neg().Neg().Equal(a), "-(-%v) != %v", a, a)
		assert.True(a.Abs().GreaterOrEqual(a), "|%v| < %v", a, a)
	}
}

func TestReduceInvariants(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 2000; i++ {
		r := randRational(rng)
		c := r.Reduce()

		assert.True(c.Equal(r), "%v.Reduce() = %v changed the value", r, c)
		assert.Equal(c.String(), c.Reduce().String(), "reduce is not idempotent for %v", r)
		assert.Equal(1, c.Denom().Sign(), "%v.Reduce() = %v has a non-positive denominator", r, c)

		if c.IsZero() {
			assert.Equal("0/1", c.String(), "zero did not reduce to 0/1")
		} else {
			g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(c.Num()), c.Denom())
			assert.Equal("1", g.String(), "%v.Reduce() = %v is not in lowest terms", r, c)
		}

		assert.True(MustParse(r.String()).Equal(r), "%v did not survive the fraction round trip", r)
	}
}

func TestComparisonConsistency(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 2000; i++ {
		a := randRational(rng)
		b := randRational(rng)

		cmp := a.Cmp(b)
		assert.Equal(-cmp, b.Cmp(a), "Cmp(%v, %v) is not antisymmetric", a, b)
		assert.Equal(cmp == 0, a.Equal(b), "Equal(%v, %v) disagrees with Cmp", a, b)
		assert.Equal(cmp < 0, a.Less(b), "Less(%v, %v) disagrees with Cmp", a, b)
		assert.Equal(cmp > 0, a.Greater(b), "Greater(%v, %v) disagrees with Cmp", a, b)

		// The sign of the difference is the comparison.
		assert.Equal(cmp, a.Sub(b).Sign(), "sign(%v - %v) disagrees with Cmp", a, b)
	}
}
