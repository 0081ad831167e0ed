package sign

import "errors"

var (
	// ErrInvalidLength indicates a signature buffer of the wrong length.
	ErrInvalidLength = errors.New("sign: invalid signature length")
	// ErrMalformedSignature indicates r or s values that are zero or not
	// below the curve order.
	ErrMalformedSignature = errors.New("sign: malformed signature")
	// ErrInvalidRecoveryID indicates a recovery id outside 0..3.
	ErrInvalidRecoveryID = errors.New("sign: recovery id out of range")
	// ErrRecoveryFailed indicates that no public key could be recovered
	// from the signature and digest pair.
	ErrRecoveryFailed = errors.New("sign: public key recovery failed")
)
