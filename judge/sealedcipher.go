package judge

import (
	"errors"
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/nacl/secretbox"
)

// ErrSealedCipherOpenFailed is returned when a ciphertext fails to
// authenticate, or is too short to contain a nonce.
var ErrSealedCipherOpenFailed = errors.New("judge: sealed cipher open failed")

const sealedCipherKeyContext = "fairblind judge cipher v1"

// SealedCipher is a deterministic authenticated Cipher suitable for an
// actual judge deployment. Determinism (required so the Verifier can
// recompute u_i) comes from deriving the nonce as a keyed BLAKE3 digest of
// the plaintext rather than sampling it: the same plaintext under the same
// key always produces the same nonce, and therefore the same ciphertext.
type SealedCipher struct {
	key [32]byte
}

// NewSealedCipher returns a SealedCipher keyed with key, which must be
// exactly 32 bytes.
func NewSealedCipher(key []byte) (*SealedCipher, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("judge: sealed cipher key must be 32 bytes, got %d", len(key))
	}
	c := &SealedCipher{}
	copy(c.key[:], key)
	return c, nil
}

// subkey derives the 32-byte key secretbox.Seal/Open actually use, keeping
// the raw judge key itself out of the AEAD primitive.
func (c *SealedCipher) subkey() [32]byte {
	var sk [32]byte
	blake3.DeriveKey(sealedCipherKeyContext, c.key[:], sk[:])
	return sk
}

func nonceFor(sk *[32]byte, plaintext []byte) (*[24]byte, error) {
	h, err := blake3.NewKeyed(sk[:])
	if err != nil {
		return nil, err
	}
	if _, err := h.Write(plaintext); err != nil {
		return nil, err
	}
	digest := h.Sum(nil)

	var nonce [24]byte
	copy(nonce[:], digest[:24])
	return &nonce, nil
}

func (c *SealedCipher) Encrypt(plaintext []byte) ([]byte, error) {
	sk := c.subkey()
	nonce, err := nonceFor(&sk, plaintext)
	if err != nil {
		return nil, err
	}
	sealed := secretbox.Seal(nil, plaintext, nonce, &sk)
	out := make([]byte, 24+len(sealed))
	copy(out, nonce[:])
	copy(out[24:], sealed)
	return out, nil
}

func (c *SealedCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < 24 {
		return nil, ErrSealedCipherOpenFailed
	}
	var nonce [24]byte
	copy(nonce[:], ciphertext[:24])

	sk := c.subkey()
	plaintext, ok := secretbox.Open(nil, ciphertext[24:], &nonce, &sk)
	if !ok {
		return nil, ErrSealedCipherOpenFailed
	}
	return plaintext, nil
}
