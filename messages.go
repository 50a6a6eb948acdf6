package fairblind

import "math/big"

// BlindedDigest is (m_0, ..., m_{2k-1}), sent Sender -> Signer.
type BlindedDigest struct {
	M []*big.Int
}

// Unblinder is the Sender's private collection of blinding scalars r_i.
// Never transmitted in full; only individual entries for i in S are
// revealed, via CheckParameter.
type Unblinder struct {
	R []*big.Int
}

// EncryptedMessage holds u_i = Enc_J(message ‖ alpha[i]) for every
// commitment. The Sender retains this after Blind; individual entries for
// i in S are revealed via CheckParameter.
type EncryptedMessage struct {
	U [][]byte
}

// EncryptedID holds v_i = Enc_J(sender_id ‖ beta[i]) for every commitment.
// Entries for i in C are revealed inside the final Signature; entries for i
// in S are never revealed in full (only beta[i] is, via CheckParameter) —
// the signer recomputes v_i itself during Check.
type EncryptedID struct {
	V [][]byte
}

// Subset is the Signer's random challenge: S is the inspected half, C is
// the complement that gets signed. Both are sorted ascending and partition
// {0, ..., 2k-1}.
type Subset struct {
	S []int
	C []int
}

// CheckParameter is what the Sender opens for the Signer's inspection: for
// each i in S (in the same order as Subset.S), the opened u_i, r_i, and
// beta[i]. Note that alpha[i] is never part of CheckParameter — it is
// revealed only inside the final Signature.
type CheckParameter struct {
	U    [][]byte
	R    []*big.Int
	Beta []byte
}

// BlindSignature is b = (prod_{i in C} m_i)^d mod N, sent Signer -> Sender.
type BlindSignature struct {
	B *big.Int
}

// Signature is the final artifact: the unblinded scalar s, the full alpha
// string, the v_i for i in C (in the same order as Subset.C), and the
// subset descriptor needed to reconstruct which commitments were signed.
type Signature struct {
	S      *big.Int
	Alpha  []byte
	V      [][]byte
	Subset Subset
}
