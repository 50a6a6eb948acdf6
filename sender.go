package fairblind

import (
	"fmt"
	"io"
	"math/big"

	"github.com/nimblesign/fairblind/bignum"
)

type senderState int

const (
	senderInitialized senderState = iota
	senderCommitted
	senderChallenged
	senderOpened
	senderCompleted
)

// Sender is the party that wants a signature on a message without revealing
// it. A Sender moves through Initialized -> Committed -> Challenged ->
// Opened -> Completed exactly once; calling an operation out of order fails
// with ErrProtocolMisuse.
type Sender struct {
	params *Parameters
	rng    io.Reader
	state  senderState

	alpha []byte
	beta  []byte

	digest EncryptedMessage
	ids    EncryptedID
	r      []*big.Int

	subset Subset
}

// NewSender samples this session's alpha and beta random strings and
// returns a Sender in the Initialized state. A nil rng defaults to
// crypto/rand.Reader.
func NewSender(params *Parameters, rng io.Reader) (*Sender, error) {
	n := params.commitmentCount()

	alpha, err := bignum.RandAlphanumeric(n, rng)
	if err != nil {
		return nil, fmt.Errorf("fairblind: sender: failed to sample alpha: %w", err)
	}
	beta, err := bignum.RandAlphanumeric(n, rng)
	if err != nil {
		return nil, fmt.Errorf("fairblind: sender: failed to sample beta: %w", err)
	}

	return &Sender{
		params: params,
		rng:    rng,
		state:  senderInitialized,
		alpha:  alpha,
		beta:   beta,
	}, nil
}

func (s *Sender) requireState(want senderState, op string) error {
	if s.state != want {
		return fmt.Errorf("%w: Sender.%s called in state %d, expected %d", ErrProtocolMisuse, op, s.state, want)
	}
	return nil
}

// Blind constructs the 2k commitments over message, sampling a fresh
// blinding scalar r_i for each, and transitions to Committed. It returns
// the four values a transport layer would send to the Signer and Judge:
// the blinded digest (m_i), the unblinder (r_i, kept by the Sender), and
// the two encrypted-value arrays (u_i, v_i).
func (s *Sender) Blind(message []byte) (BlindedDigest, Unblinder, EncryptedMessage, EncryptedID, error) {
	if err := s.requireState(senderInitialized, "Blind"); err != nil {
		return BlindedDigest{}, Unblinder{}, EncryptedMessage{}, EncryptedID{}, err
	}

	n := s.params.commitmentCount()
	e := s.params.publicExponent()
	N := s.params.SignerKey.N

	r := make([]*big.Int, n)
	u := make([][]byte, n)
	v := make([][]byte, n)
	m := make([]*big.Int, n)

	bits := N.BitLen()
	for i := 0; i < n; i++ {
		ri, err := s.sampleBlindingFactor(bits, N)
		if err != nil {
			return BlindedDigest{}, Unblinder{}, EncryptedMessage{}, EncryptedID{}, err
		}

		ui, err := s.params.JudgeCipher.Encrypt(append(append([]byte(nil), message...), s.alpha[i]))
		if err != nil {
			return BlindedDigest{}, Unblinder{}, EncryptedMessage{}, EncryptedID{}, fmt.Errorf("fairblind: sender: encrypt u_%d: %w", i, err)
		}
		vi, err := s.params.JudgeCipher.Encrypt(append(append([]byte(nil), s.params.SenderID...), s.beta[i]))
		if err != nil {
			return BlindedDigest{}, Unblinder{}, EncryptedMessage{}, EncryptedID{}, fmt.Errorf("fairblind: sender: encrypt v_%d: %w", i, err)
		}

		h := bignum.HashToBigInt(append(append([]byte(nil), ui...), vi...))
		rPowE := bignum.ConstantModPow(ri, e, N)
		mi := new(big.Int).Mul(rPowE, h)
		mi.Mod(mi, N)

		r[i], u[i], v[i], m[i] = ri, ui, vi, mi
	}

	s.r = r
	s.digest = EncryptedMessage{U: u}
	s.ids = EncryptedID{V: v}
	s.state = senderCommitted

	return BlindedDigest{M: m}, Unblinder{R: r}, EncryptedMessage{U: u}, EncryptedID{V: v}, nil
}

// sampleBlindingFactor samples r_i uniformly at random at least as wide as
// N, resampling whenever it lands on 0 or shares a factor with N.
func (s *Sender) sampleBlindingFactor(bits int, N *big.Int) (*big.Int, error) {
	for {
		r, err := bignum.RandBigInt(bits, s.rng)
		if err != nil {
			return nil, fmt.Errorf("fairblind: sender: failed to sample blinding factor: %w", err)
		}
		if r.Sign() == 0 {
			continue
		}
		if !bignum.IsCoprime(r, N) {
			continue
		}
		return r, nil
	}
}

// ReceiveSubset stores the Signer's challenge and transitions to
// Challenged.
func (s *Sender) ReceiveSubset(subset Subset) error {
	if err := s.requireState(senderCommitted, "ReceiveSubset"); err != nil {
		return err
	}
	n := s.params.commitmentCount()
	if len(subset.S) != s.params.K || len(subset.C) != n-s.params.K {
		return fmt.Errorf("%w: Subset has |S|=%d, |C|=%d, expected k=%d, 2k-k=%d",
			ErrLengthMismatch, len(subset.S), len(subset.C), s.params.K, n-s.params.K)
	}
	s.subset = subset
	s.state = senderChallenged
	return nil
}

// OpenCheck emits {u_i, r_i, beta[i]} for every i in S, in S's order, and
// transitions to Opened.
func (s *Sender) OpenCheck() (CheckParameter, error) {
	if err := s.requireState(senderChallenged, "OpenCheck"); err != nil {
		return CheckParameter{}, err
	}

	k := len(s.subset.S)
	u := make([][]byte, k)
	r := make([]*big.Int, k)
	beta := make([]byte, k)

	for j, i := range s.subset.S {
		u[j] = s.digest.U[i]
		r[j] = s.r[i]
		beta[j] = s.beta[i]
	}

	s.state = senderOpened
	return CheckParameter{U: u, R: r, Beta: beta}, nil
}

// Unblind divides the blinding factors for the complement out of the
// Signer's blind signature, producing the final Signature, and transitions
// to Completed. It fails with ErrUnblindFailure if the product of the
// complement's blinding factors is not invertible mod N.
func (s *Sender) Unblind(blindSig BlindSignature) (Signature, error) {
	if err := s.requireState(senderOpened, "Unblind"); err != nil {
		return Signature{}, err
	}

	N := s.params.SignerKey.N
	R := big.NewInt(1)
	v := make([][]byte, len(s.subset.C))
	for idx, i := range s.subset.C {
		R.Mul(R, s.r[i])
		R.Mod(R, N)
		v[idx] = s.ids.V[i]
	}

	rInv, err := bignum.ConstantModInverse(R, N)
	if err != nil {
		s.state = senderCompleted
		return Signature{}, fmt.Errorf("%w: %w", ErrUnblindFailure, ErrNotInvertible)
	}

	sig := new(big.Int).Mul(blindSig.B, rInv)
	sig.Mod(sig, N)

	s.state = senderCompleted
	return Signature{
		S:      sig,
		Alpha:  append([]byte(nil), s.alpha...),
		V:      v,
		Subset: s.subset,
	}, nil
}
