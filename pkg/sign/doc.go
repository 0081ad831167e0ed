// Package sign produces and checks recoverable ECDSA signatures over the
// secp256k1 curve.
//
// A Signature is the 64-byte compact r||s pair plus a 2-bit recovery id
// (0-3) that selects which of the candidate curve points is the signer's
// public key. Signing and verification hash their message argument with
// Keccak-256 internally; recovery takes an already-computed 32-byte digest.
// The two contracts are deliberately kept apart in the API: the *Message
// functions hash, the *Digest functions do not. Passing a digest to a
// *Message function (or the other way around) silently signs the wrong
// bytes, so pick by name, not by position.
//
// Every operation is a single-shot pure computation with no cross-call
// state. Signing nonces are generated internally per RFC 6979; callers never
// supply or observe them. Verification mismatches are reported as a false
// result, not an error - errors are reserved for structurally malformed
// input.
//
// # Security Design
//
// The Signer type wraps a private key without ever exposing it through the
// API, so key material cannot leak through logs or accidental serialization
// of the signer.
package sign
