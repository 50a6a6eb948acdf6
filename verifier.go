package fairblind

import (
	"math/big"

	"github.com/nimblesign/fairblind/bignum"
)

// Verify checks signature against message under params. It is stateless and
// deterministic: running it twice on the same inputs returns the same
// result.
//
// It computes L = s^e mod N and R = prod_{i in C} H(Enc_J(message ‖
// alpha[i]) ‖ v_i) mod N, and reports whether L == R.
func Verify(params *Parameters, signature Signature, message []byte) (bool, error) {
	N := params.SignerKey.N
	e := params.publicExponent()

	L := bignum.ModPow(signature.S, e, N)

	R := big.NewInt(1)
	for idx, i := range signature.Subset.C {
		if i < 0 || i >= len(signature.Alpha) {
			return false, nil
		}
		u, err := params.JudgeCipher.Encrypt(append(append([]byte(nil), message...), signature.Alpha[i]))
		if err != nil {
			return false, err
		}
		h := bignum.HashToBigInt(append(append([]byte(nil), u...), signature.V[idx]...))
		R.Mul(R, h)
		R.Mod(R, N)
	}

	return L.Cmp(R) == 0, nil
}
