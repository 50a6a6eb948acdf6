package keygen

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSignerKeyProducesAUsableModulus(t *testing.T) {
	key, err := GenerateSignerKey(512, nil)
	require.NoError(t, err)
	require.True(t, key.N.Cmp(big.NewInt(1)) > 0)
	require.Equal(t, 2, len(key.Primes))
}

func TestNewJudgeKeyReturns32Bytes(t *testing.T) {
	key, err := NewJudgeKey(nil)
	require.NoError(t, err)
	require.Len(t, key, judgeKeyLen)
}

func TestNewJudgeKeyIsNotConstant(t *testing.T) {
	a, err := NewJudgeKey(nil)
	require.NoError(t, err)
	b, err := NewJudgeKey(nil)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestEulerTotientMatchesKnownModulus(t *testing.T) {
	// N = 17*19 = 323, phi(N) = 16*18 = 288
	phi := eulerTotient([]*big.Int{big.NewInt(17), big.NewInt(19)})
	require.Equal(t, big.NewInt(288), phi)
}
