/*
Package fairblind implements a fair blind signature (FBS) scheme: an RSA
blind signature augmented with a cut-and-choose construction over 2k
parallel commitments, plus an offline judge capable of deanonymizing a
disputed signature after the fact.

# Overview

Three principals run a strictly sequenced four-message protocol. First, a
Sender blinds a message into 2k commitments and sends the blinded digests to
a Signer:

	sender, err := fairblind.NewSender(params, rand.Reader)
	if err != nil {
	    return err
	}
	digest, _, _, _, err := sender.Blind(message)
	if err != nil {
	    return err
	}

The Signer challenges a random half of the commitments, the Sender opens
them, and the Signer checks them before signing the product of the unopened
half:

	signer := fairblind.NewSigner(params, signerPrivateKey)
	signer.ReceiveBlinded(digest)
	subset, _ := signer.ChooseSubset(rand.Reader)
	sender.ReceiveSubset(subset)
	check, _ := sender.OpenCheck()
	ok, _ := signer.Check(check)
	blindSig, _ := signer.Sign()

Finally the Sender unblinds the signature, and anyone holding Parameters can
verify it without learning which commitment carried the signed digest:

	signature, err := sender.Unblind(blindSig)
	ok, err = fairblind.Verify(params, signature, message)

Signer.Check confirms that every opened commitment reproduces the m_i the
Sender sent for it. It sees u_i but not the message inside it, so a
commitment built consistently over a different message passes Check; if
such a commitment is in C, the final signature does not verify for the
original message.

# Fairness

The judge's cipher (package judge) binds the Sender's identifier into every
commitment. Given a disputed Signature, a judge holding the matching
decryption capability can recover the sender's identifier from any v_i
carried in the signature.
*/
package fairblind
