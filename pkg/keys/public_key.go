package keys

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PublicKeyLength is the byte length of a serialized uncompressed public key.
const PublicKeyLength = 65

// pubKeyFormatUncompressed is the fixed leading byte of the uncompressed
// point serialization.
const pubKeyFormatUncompressed = 0x04

// PublicKey is a validated secp256k1 public key in uncompressed form. The
// zero value is not a usable key.
type PublicKey struct {
	p [PublicKeyLength]byte
}

// PublicKeyFromPrivate derives the public key of priv. It is equivalent to
// priv.PublicKey.
func PublicKeyFromPrivate(priv PrivateKey) PublicKey {
	return priv.PublicKey()
}

// PublicKeyFromBytes validates b as a 65-byte uncompressed curve point and
// wraps it. The leading byte must be 0x04 and (X, Y) must lie on the curve.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeyLength {
		return PublicKey{}, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, PublicKeyLength, len(b))
	}
	if b[0] != pubKeyFormatUncompressed {
		return PublicKey{}, fmt.Errorf("%w: leading byte %#02x, want 0x04", ErrInvalidPoint, b[0])
	}
	if _, err := secp256k1.ParsePubKey(b); err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	var pub PublicKey
	copy(pub.p[:], b)
	return pub, nil
}

// PublicKeyFromHex decodes a 130-character hex point, with or without a 0x
// prefix.
func PublicKeyFromHex(s string) (PublicKey, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != 2*PublicKeyLength {
		return PublicKey{}, fmt.Errorf("%w: want %d hex chars, got %d", ErrInvalidLength, 2*PublicKeyLength, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return PublicKeyFromBytes(b)
}

// Bytes returns a copy of the 65-byte uncompressed serialization.
func (p PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeyLength)
	copy(b, p.p[:])
	return b
}

// Hex returns the point as 130 lowercase hex characters without a prefix.
func (p PublicKey) Hex() string {
	return hex.EncodeToString(p.p[:])
}

// Equal reports whether both keys hold the same point.
func (p PublicKey) Equal(other PublicKey) bool {
	return p.p == other.p
}

// IsZero reports whether p is the zero value rather than a constructed key.
func (p PublicKey) IsZero() bool {
	return p.p == [PublicKeyLength]byte{}
}
