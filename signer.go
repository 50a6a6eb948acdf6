package fairblind

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"
	"math/big"
	"sort"

	"github.com/nimblesign/fairblind/bignum"
)

type signerState int

const (
	signerFresh signerState = iota
	signerReceived
	signerChosen
	signerChecked
	signerSigned
	signerAborted
)

// Signer is the party that signs blinded material without learning the
// plaintext. A Signer moves through Fresh -> Received -> Chosen -> Checked
// -> Signed; a failed Check instead moves it to the terminal Aborted state.
// Any operation attempted from a state it does not accept fails with
// ErrProtocolMisuse.
type Signer struct {
	params  *Parameters
	privKey *rsa.PrivateKey
	state   signerState

	digest BlindedDigest
	subset Subset
}

// NewSigner returns a Signer in the Fresh state.
func NewSigner(params *Parameters, privKey *rsa.PrivateKey) *Signer {
	return &Signer{params: params, privKey: privKey, state: signerFresh}
}

func (sg *Signer) requireState(want signerState, op string) error {
	if sg.state != want {
		return fmt.Errorf("%w: Signer.%s called in state %d, expected %d", ErrProtocolMisuse, op, sg.state, want)
	}
	return nil
}

// ReceiveBlinded stores the Sender's blinded digest and transitions to
// Received. Fails with ErrLengthMismatch if digest does not carry exactly
// 2k entries.
func (sg *Signer) ReceiveBlinded(digest BlindedDigest) error {
	if err := sg.requireState(signerFresh, "ReceiveBlinded"); err != nil {
		return err
	}
	want := sg.params.commitmentCount()
	if len(digest.M) != want {
		return fmt.Errorf("%w: BlindedDigest has %d entries, expected %d", ErrLengthMismatch, len(digest.M), want)
	}
	sg.digest = digest
	sg.state = signerReceived
	return nil
}

// ChooseSubset samples a uniform k-subset S of {0, ..., 2k-1}, derives its
// complement C, and transitions to Chosen. A nil rng defaults to
// crypto/rand.Reader.
func (sg *Signer) ChooseSubset(rng io.Reader) (Subset, error) {
	if err := sg.requireState(signerReceived, "ChooseSubset"); err != nil {
		return Subset{}, err
	}
	if rng == nil {
		rng = rand.Reader
	}

	n := sg.params.commitmentCount()
	k := sg.params.K

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	// Fisher-Yates partial shuffle: permute all, take the first k as S.
	for i := 0; i < k; i++ {
		j, err := randIntn(rng, n-i)
		if err != nil {
			return Subset{}, fmt.Errorf("fairblind: signer: failed to sample subset: %w", err)
		}
		j += i
		all[i], all[j] = all[j], all[i]
	}

	s := append([]int(nil), all[:k]...)
	sort.Ints(s)

	inS := make(map[int]bool, k)
	for _, i := range s {
		inS[i] = true
	}
	c := make([]int, 0, n-k)
	for i := 0; i < n; i++ {
		if !inS[i] {
			c = append(c, i)
		}
	}

	subset := Subset{S: s, C: c}
	sg.subset = subset
	sg.state = signerChosen
	return subset, nil
}

// randIntn returns a uniform random integer in [0, n) read from rng.
func randIntn(rng io.Reader, n int) (int, error) {
	max := big.NewInt(int64(n))
	v, err := rand.Int(rng, max)
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// Check verifies the Sender's opened commitments for every i in S: it
// recomputes v_i from the opened beta[i] and the shared sender_id, hashes
// it against the opened u_i, and checks that r_i^e * H(u_i || v_i) equals
// the commitment m_i the Sender originally sent. A full match transitions
// to Checked; any mismatch aborts the session (transition to Aborted) and
// returns false, not an error — a caller distinguishes "the sender cheated"
// from "the session is unusable" by checking ok, not err.
func (sg *Signer) Check(cp CheckParameter) (bool, error) {
	if err := sg.requireState(signerChosen, "Check"); err != nil {
		return false, err
	}
	k := sg.params.K
	if len(cp.U) != k || len(cp.R) != k || len(cp.Beta) != k {
		return false, fmt.Errorf("%w: CheckParameter has |U|=%d, |R|=%d, |Beta|=%d, expected k=%d",
			ErrLengthMismatch, len(cp.U), len(cp.R), len(cp.Beta), k)
	}

	N := sg.params.SignerKey.N
	e := sg.params.publicExponent()

	for j, i := range sg.subset.S {
		vi, err := sg.params.JudgeCipher.Encrypt(append(append([]byte(nil), sg.params.SenderID...), cp.Beta[j]))
		if err != nil {
			return false, fmt.Errorf("fairblind: signer: recompute v_%d: %w", i, err)
		}

		h := bignum.HashToBigInt(append(append([]byte(nil), cp.U[j]...), vi...))
		rPowE := bignum.ModPow(cp.R[j], e, N)
		mPrime := new(big.Int).Mul(rPowE, h)
		mPrime.Mod(mPrime, N)

		if mPrime.Cmp(sg.digest.M[i]) != 0 {
			sg.state = signerAborted
			return false, nil
		}
	}

	sg.state = signerChecked
	return true, nil
}

// Sign computes b = (prod_{i in C} m_i)^d mod N over the unopened
// commitments and transitions to Signed. Requires a prior successful Check.
func (sg *Signer) Sign() (BlindSignature, error) {
	if err := sg.requireState(signerChecked, "Sign"); err != nil {
		return BlindSignature{}, err
	}

	N := sg.params.SignerKey.N
	P := big.NewInt(1)
	for _, i := range sg.subset.C {
		P.Mul(P, sg.digest.M[i])
		P.Mod(P, N)
	}

	b := bignum.ConstantModPow(P, sg.privKey.D, N)

	sg.state = signerSigned
	return BlindSignature{B: b}, nil
}
