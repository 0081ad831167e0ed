package keys

import "errors"

var (
	// ErrInvalidLength indicates a byte or hex input of the wrong length.
	ErrInvalidLength = errors.New("keys: invalid length")
	// ErrInvalidEncoding indicates input that is not valid hexadecimal.
	ErrInvalidEncoding = errors.New("keys: invalid hex encoding")
	// ErrInvalidScalar indicates 32 bytes that are zero or not below the
	// curve order, and therefore not a usable private key.
	ErrInvalidScalar = errors.New("keys: scalar out of range")
	// ErrInvalidPoint indicates 65 bytes that do not decode to a point on
	// the secp256k1 curve.
	ErrInvalidPoint = errors.New("keys: point not on curve")
)
