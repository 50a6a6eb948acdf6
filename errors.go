package fairblind

import "errors"

// Sentinel errors for the protocol's failure paths (§7). Each is wrapped
// with additional context at the call site via fmt.Errorf's %w so callers
// can still distinguish kinds with errors.Is.
var (
	// ErrProtocolMisuse is returned when an operation is invoked from a
	// state it does not accept. Fatal for the session; never retried.
	ErrProtocolMisuse = errors.New("fairblind: operation invoked from an unexpected protocol state")

	// ErrLengthMismatch is returned when a received array has the wrong
	// cardinality. Fatal.
	ErrLengthMismatch = errors.New("fairblind: received value has the wrong length")

	// ErrCheckFailed is returned when the subset check reveals cheating.
	// The signer aborts the session and emits no signature.
	ErrCheckFailed = errors.New("fairblind: subset check failed")

	// ErrNotInvertible is returned when a modular inverse required by the
	// protocol does not exist.
	ErrNotInvertible = errors.New("fairblind: modular inverse does not exist")

	// ErrUnblindFailure wraps ErrNotInvertible specifically for the
	// Sender's unblind step, per §7.
	ErrUnblindFailure = errors.New("fairblind: failed to unblind signature")

	// ErrVerificationFailed is the error kind for a signature that does not
	// verify. Verify reports that case as false with a nil error; no
	// function in this package returns ErrVerificationFailed.
	ErrVerificationFailed = errors.New("fairblind: signature verification failed")

	// ErrInvalidParameters is returned by NewParameters when k < 1 or the
	// signer's public key is malformed.
	ErrInvalidParameters = errors.New("fairblind: invalid parameters")
)
