package wire

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nimblesign/fairblind"
)

func TestBlindedDigestRoundTrips(t *testing.T) {
	d := fairblind.BlindedDigest{M: []*big.Int{big.NewInt(5), big.NewInt(12345)}}
	data, err := MarshalBlindedDigest(d)
	require.NoError(t, err)

	got, err := UnmarshalBlindedDigest(data)
	require.NoError(t, err)
	require.Equal(t, d.M[0], got.M[0])
	require.Equal(t, d.M[1], got.M[1])
}

func TestSubsetRoundTrips(t *testing.T) {
	s := fairblind.Subset{S: []int{0, 2, 4, 6}, C: []int{1, 3, 5, 7}}
	data, err := MarshalSubset(s)
	require.NoError(t, err)

	got, err := UnmarshalSubset(data)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestCheckParameterRoundTrips(t *testing.T) {
	cp := fairblind.CheckParameter{
		U:    [][]byte{[]byte("u0"), []byte("u1")},
		R:    []*big.Int{big.NewInt(7), big.NewInt(99)},
		Beta: []byte{'a', 'b'},
	}
	data, err := MarshalCheckParameter(cp)
	require.NoError(t, err)

	got, err := UnmarshalCheckParameter(data)
	require.NoError(t, err)
	require.Equal(t, cp.U, got.U)
	require.Equal(t, cp.R, got.R)
	require.Equal(t, cp.Beta, got.Beta)
}

func TestBlindSignatureRoundTrips(t *testing.T) {
	bs := fairblind.BlindSignature{B: big.NewInt(123456789)}
	data, err := MarshalBlindSignature(bs)
	require.NoError(t, err)

	got, err := UnmarshalBlindSignature(data)
	require.NoError(t, err)
	require.Equal(t, bs.B, got.B)
}

func TestSignatureRoundTrips(t *testing.T) {
	sig := fairblind.Signature{
		S:     big.NewInt(42),
		Alpha: []byte("abcdefgh"),
		V:     [][]byte{[]byte("v1"), []byte("v3")},
		Subset: fairblind.Subset{
			S: []int{0, 2},
			C: []int{1, 3},
		},
	}
	data, err := MarshalSignature(sig)
	require.NoError(t, err)

	got, err := UnmarshalSignature(data)
	require.NoError(t, err)
	require.Equal(t, sig.S, got.S)
	require.Equal(t, sig.Alpha, got.Alpha)
	require.Equal(t, sig.V, got.V)
	require.Equal(t, sig.Subset, got.Subset)
}
