/*
Package bignum provides the modular arithmetic and sampling primitives the
fair blind signature protocol is built on: modular exponentiation and
inversion (both a plain math/big form and a constant-time form backed by
saferith for operations on secret exponents), a SHA-256-to-BigInt digest, and
uniform sampling of BigInts and alphanumeric byte strings.
*/
package bignum
