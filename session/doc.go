// Package session runs multiple independent fairblind exchanges
// concurrently. Sessions share nothing but the (read-only) Parameters and
// Signer key; each runs its own Sender/Signer exchange end to end, and
// verifying the resulting signatures is left to the caller.
package session
