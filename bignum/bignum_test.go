package bignum_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nimblesign/fairblind/bignum"
)

func TestModPowAgreesWithConstantModPow(t *testing.T) {
	n := big.NewInt(323) // 19 * 17
	for exp := int64(0); exp < 20; exp++ {
		for base := int64(1); base < 20; base++ {
			b := big.NewInt(base)
			e := big.NewInt(exp)
			require.Equal(t, bignum.ModPow(b, e, n), bignum.ConstantModPow(b, e, n))
		}
	}
}

func TestModInverseRoundTrips(t *testing.T) {
	n := big.NewInt(41623) // 107 * 389
	for a := int64(2); a < 200; a++ {
		aBig := big.NewInt(a)
		if !bignum.IsCoprime(aBig, n) {
			continue
		}
		inv, err := bignum.ModInverse(aBig, n)
		require.NoError(t, err)

		product := new(big.Int).Mul(aBig, inv)
		product.Mod(product, n)
		require.Zero(t, product.Cmp(big.NewInt(1)))
	}
}

func TestConstantModInverseAgreesWithModInverse(t *testing.T) {
	n := big.NewInt(41623)
	for a := int64(2); a < 200; a++ {
		aBig := big.NewInt(a)
		if !bignum.IsCoprime(aBig, n) {
			continue
		}
		want, err := bignum.ModInverse(aBig, n)
		require.NoError(t, err)

		got, err := bignum.ConstantModInverse(aBig, n)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestModInverseRejectsNonCoprime(t *testing.T) {
	n := big.NewInt(323)
	// 17 divides 323, so it shares a factor and has no inverse.
	_, err := bignum.ModInverse(big.NewInt(17), n)
	require.ErrorIs(t, err, bignum.ErrNotInvertible)

	_, err = bignum.ConstantModInverse(big.NewInt(17), n)
	require.ErrorIs(t, err, bignum.ErrNotInvertible)
}

func TestHashToBigIntIsDeterministic(t *testing.T) {
	h1 := bignum.HashToBigInt([]byte("hello"))
	h2 := bignum.HashToBigInt([]byte("hello"))
	require.Equal(t, h1, h2)

	h3 := bignum.HashToBigInt([]byte("world"))
	require.NotEqual(t, h1, h3)
}

func TestRandBigIntStaysInRange(t *testing.T) {
	bound := new(big.Int).Lsh(big.NewInt(1), 64)
	for i := 0; i < 50; i++ {
		r, err := bignum.RandBigInt(64, rand.Reader)
		require.NoError(t, err)
		require.True(t, r.Sign() >= 0)
		require.True(t, r.Cmp(bound) < 0)
	}
}

func TestRandAlphanumericUsesOnlyTheAlphanumericAlphabet(t *testing.T) {
	out, err := bignum.RandAlphanumeric(256, rand.Reader)
	require.NoError(t, err)
	require.Len(t, out, 256)

	for _, c := range out {
		isDigit := c >= '0' && c <= '9'
		isUpper := c >= 'A' && c <= 'Z'
		isLower := c >= 'a' && c <= 'z'
		require.True(t, isDigit || isUpper || isLower, "unexpected byte %q", c)
	}
}
