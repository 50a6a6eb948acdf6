package keygen

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"
	"math/big"
)

var bigOne = big.NewInt(1)

// GenerateSignerKey generates a fresh RSA keypair of the given bit size for
// use as a session's Signer key, and sanity-checks that the public exponent
// is coprime to phi(N) as Parameters requires.
func GenerateSignerKey(bits int, rng io.Reader) (*rsa.PrivateKey, error) {
	if rng == nil {
		rng = rand.Reader
	}
	key, err := rsa.GenerateKey(rng, bits)
	if err != nil {
		return nil, fmt.Errorf("keygen: failed to generate signer key: %w", err)
	}

	phi := eulerTotient(key.Primes)
	e := big.NewInt(int64(key.PublicKey.E))
	if new(big.Int).GCD(nil, nil, e, phi).Cmp(bigOne) != 0 {
		return nil, fmt.Errorf("keygen: generated key has e not coprime to phi(N)")
	}

	return key, nil
}

// eulerTotient computes phi(N) from N's prime factors.
func eulerTotient(primes []*big.Int) *big.Int {
	p0m1 := new(big.Int).Sub(primes[0], bigOne)
	p1m1 := new(big.Int).Sub(primes[1], bigOne)
	phi := new(big.Int).Mul(p0m1, p1m1)

	for i := 2; i < len(primes); i++ {
		pim1 := new(big.Int).Sub(primes[i], bigOne)
		phi.Mul(phi, pim1)
	}
	return phi
}

// judgeKeyLen is the secret key size secretbox.Seal/Open require.
const judgeKeyLen = 32

// NewJudgeKey generates a fresh random key suitable for judge.SealedCipher.
func NewJudgeKey(rng io.Reader) ([]byte, error) {
	if rng == nil {
		rng = rand.Reader
	}
	key := make([]byte, judgeKeyLen)
	if _, err := io.ReadFull(rng, key); err != nil {
		return nil, fmt.Errorf("keygen: failed to generate judge key: %w", err)
	}
	return key, nil
}
