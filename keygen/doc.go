// Package keygen provides the out-of-band key material setup a session
// needs before the protocol in package fairblind can run: an RSA keypair
// for the Signer and a symmetric key for the Judge's sealed cipher.
// Generating these is explicitly outside the protocol itself.
package keygen
