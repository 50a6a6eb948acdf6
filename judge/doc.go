/*
Package judge implements the fair blind signature scheme's judge capability:
an interface abstracting the judge's asymmetric cipher (per spec, only
encrypt/decrypt over byte strings is required of the core protocol) plus two
concrete implementations — IdentityCipher, a deterministic passthrough used
for reproducible toy-parameter tests, and SealedCipher, a deterministic
authenticated cipher suitable for an actual deployment.
*/
package judge
