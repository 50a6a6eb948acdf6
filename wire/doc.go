// Package wire serializes the protocol message types in package fairblind
// to and from CBOR, the encoding a transport implementation would actually
// put on the network between Sender, Signer, and Verifier.
package wire
