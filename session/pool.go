package session

import (
	"context"
	"crypto/rsa"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nimblesign/fairblind"
)

// Result is the outcome of one session in a Pool run.
type Result struct {
	Message   []byte
	Signature fairblind.Signature
}

// Pool runs independent Sender/Signer exchanges concurrently against a
// single Signer key and a shared set of Parameters. Sessions do not
// interact; the pool exists to exercise the protocol at a throughput a
// single sequential loop would not reach, and to surface the first failure
// across the batch.
type Pool struct {
	params  *fairblind.Parameters
	privKey *rsa.PrivateKey
}

// NewPool returns a Pool bound to params and privKey for the lifetime of
// every session it runs.
func NewPool(params *fairblind.Parameters, privKey *rsa.PrivateKey) *Pool {
	return &Pool{params: params, privKey: privKey}
}

// Run drives one full honest exchange per message in messages, concurrently,
// and returns one Result per message in the same order. It returns the first
// error encountered across the batch; sessions do not consult ctx, so every
// session already started runs to completion.
func (p *Pool) Run(ctx context.Context, messages [][]byte) ([]Result, error) {
	results := make([]Result, len(messages))

	eg, _ := errgroup.WithContext(ctx)
	for i, message := range messages {
		i, message := i, message
		eg.Go(func() error {
			sig, err := p.runOne(message)
			if err != nil {
				return fmt.Errorf("session: message %d failed: %w", i, err)
			}
			results[i] = Result{Message: message, Signature: sig}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Pool) runOne(message []byte) (fairblind.Signature, error) {
	sender, err := fairblind.NewSender(p.params, nil)
	if err != nil {
		return fairblind.Signature{}, err
	}
	signer := fairblind.NewSigner(p.params, p.privKey)

	digest, _, _, _, err := sender.Blind(message)
	if err != nil {
		return fairblind.Signature{}, err
	}
	if err := signer.ReceiveBlinded(digest); err != nil {
		return fairblind.Signature{}, err
	}
	subset, err := signer.ChooseSubset(nil)
	if err != nil {
		return fairblind.Signature{}, err
	}
	if err := sender.ReceiveSubset(subset); err != nil {
		return fairblind.Signature{}, err
	}
	check, err := sender.OpenCheck()
	if err != nil {
		return fairblind.Signature{}, err
	}
	ok, err := signer.Check(check)
	if err != nil {
		return fairblind.Signature{}, err
	}
	if !ok {
		return fairblind.Signature{}, fairblind.ErrCheckFailed
	}
	blindSig, err := signer.Sign()
	if err != nil {
		return fairblind.Signature{}, err
	}
	return sender.Unblind(blindSig)
}
