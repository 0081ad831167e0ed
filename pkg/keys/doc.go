// Package keys defines the secp256k1 key material used across ethkit.
//
// The two types here, PrivateKey and PublicKey, are immutable value types:
// every constructor validates its input fully before storing a single byte,
// so a non-zero value of either type is always a valid curve element. Copies
// are cheap and safe; there is no teardown.
//
// Serialized forms are fixed:
//
//   - PrivateKey: 32 raw bytes, a big-endian scalar in (0, N); hex form is 64
//     lowercase characters with an optional 0x prefix on input.
//   - PublicKey: 65 raw bytes, the 0x04 uncompressed-point marker followed by
//     the 32-byte X and Y coordinates; hex form is 130 characters.
//
// Validation failures are reported through the sentinel errors in this
// package (ErrInvalidLength, ErrInvalidEncoding, ErrInvalidScalar,
// ErrInvalidPoint), matched with errors.Is. Malformed input is never
// truncated, padded or silently accepted.
//
// # Security Design
//
// PrivateKey keeps its scalar in an unexported field and redacts itself when
// printed, so key material does not leak through logs or %v formatting by
// accident. Key bytes are not scrubbed from memory on destruction; callers
// with stronger requirements should manage copies returned by Bytes
// themselves.
package keys
