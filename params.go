package fairblind

import (
	"bytes"
	"crypto/rsa"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"

	"github.com/nimblesign/fairblind/judge"
)

const parametersPEMType = "FAIRBLIND SESSION PARAMETERS"

// Parameters is the shared, immutable object all three parties hold for the
// duration of a session: the judge's cipher capability (used by all parties
// to compute Enc_J), the signer's RSA public key, the security parameter k
// (2k commitments are constructed), and the sender's identifier.
//
// Parameters must be negotiated out-of-band before a session begins; a
// mismatch between parties' copies of Parameters produces a verification
// failure, not a protocol error.
type Parameters struct {
	JudgeCipher judge.Cipher
	SignerKey   *rsa.PublicKey
	K           int
	SenderID    []byte
}

// NewParameters validates and constructs a Parameters value.
func NewParameters(judgeCipher judge.Cipher, signerKey *rsa.PublicKey, k int, senderID []byte) (*Parameters, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be >= 1, got %d", ErrInvalidParameters, k)
	}
	if signerKey == nil || signerKey.N == nil || signerKey.N.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w: signer public key modulus must be > 1", ErrInvalidParameters)
	}
	if judgeCipher == nil {
		return nil, fmt.Errorf("%w: judge cipher must not be nil", ErrInvalidParameters)
	}
	return &Parameters{
		JudgeCipher: judgeCipher,
		SignerKey:   signerKey,
		K:           k,
		SenderID:    append([]byte(nil), senderID...),
	}, nil
}

// commitmentCount returns 2k, the number of parallel commitments.
func (p *Parameters) commitmentCount() int {
	return 2 * p.K
}

func (p *Parameters) publicExponent() *big.Int {
	return big.NewInt(int64(p.SignerKey.E))
}

// pemParameters is the DER-encodable shape of Parameters. The judge cipher
// is deliberately not part of this encoding: it is an external collaborator
// whose key material is negotiated through whatever channel the concrete
// judge.Cipher implementation defines (see judge.SealedCipher).
type pemParameters struct {
	SignerN  []byte
	SignerE  int
	K        int
	SenderID []byte
}

// EncodePEM returns a PEM encoding of everything in Parameters except the
// judge cipher, suitable for distributing (N, e, k, sender_id) to the
// Signer and Verifier out-of-band.
func (p *Parameters) EncodePEM() (string, error) {
	b, err := asn1.Marshal(pemParameters{
		SignerN:  p.SignerKey.N.Bytes(),
		SignerE:  p.SignerKey.E,
		K:        p.K,
		SenderID: p.SenderID,
	})
	if err != nil {
		return "", fmt.Errorf("fairblind: failed to DER-encode parameters: %w", err)
	}

	out := new(bytes.Buffer)
	if err := pem.Encode(out, &pem.Block{Type: parametersPEMType, Bytes: b}); err != nil {
		return "", fmt.Errorf("fairblind: failed to PEM-encode parameters: %w", err)
	}
	return out.String(), nil
}

// DecodePEMParameters parses the output of EncodePEM, pairing it back up
// with a judge cipher the caller already holds (or has independently
// negotiated).
func DecodePEMParameters(encoded string, judgeCipher judge.Cipher) (*Parameters, error) {
	block, rest := pem.Decode([]byte(encoded))
	if block == nil || block.Type != parametersPEMType || len(rest) > 0 {
		return nil, fmt.Errorf("fairblind: failed to decode PEM block containing parameters")
	}

	var pp pemParameters
	if _, err := asn1.Unmarshal(block.Bytes, &pp); err != nil {
		return nil, fmt.Errorf("fairblind: failed to unmarshal DER-encoded parameters: %w", err)
	}

	return NewParameters(judgeCipher, &rsa.PublicKey{
		N: new(big.Int).SetBytes(pp.SignerN),
		E: pp.SignerE,
	}, pp.K, pp.SenderID)
}
