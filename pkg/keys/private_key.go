package keys

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PrivateKeyLength is the byte length of a serialized private key.
const PrivateKeyLength = 32

// PrivateKey is a validated secp256k1 private key. The zero value is not a
// usable key; obtain one through GeneratePrivateKey, PrivateKeyFromBytes or
// PrivateKeyFromHex.
type PrivateKey struct {
	d [PrivateKeyLength]byte
}

// GeneratePrivateKey draws a fresh private key from crypto/rand. The
// returned key is always a valid scalar.
func GeneratePrivateKey() (PrivateKey, error) {
	return GeneratePrivateKeyFrom(rand.Reader)
}

// GeneratePrivateKeyFrom draws a private key from the given randomness
// source. The source must be cryptographically secure in production; it is a
// parameter so tests can substitute a deterministic reader.
func GeneratePrivateKeyFrom(r io.Reader) (PrivateKey, error) {
	priv, err := secp256k1.GeneratePrivateKeyFromRand(r)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("generate private key: %w", err)
	}
	var key PrivateKey
	copy(key.d[:], priv.Serialize())
	priv.Zero()
	return key, nil
}

// PrivateKeyFromBytes validates b as a 32-byte big-endian scalar and wraps
// it. The scalar must be non-zero and strictly below the curve order.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeyLength {
		return PrivateKey{}, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, PrivateKeyLength, len(b))
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	zero := s.IsZero()
	s.Zero()
	if overflow || zero {
		return PrivateKey{}, ErrInvalidScalar
	}
	var key PrivateKey
	copy(key.d[:], b)
	return key, nil
}

// PrivateKeyFromHex decodes a 64-character hex scalar, with or without a 0x
// prefix.
func PrivateKeyFromHex(s string) (PrivateKey, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != 2*PrivateKeyLength {
		return PrivateKey{}, fmt.Errorf("%w: want %d hex chars, got %d", ErrInvalidLength, 2*PrivateKeyLength, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return PrivateKeyFromBytes(b)
}

// Bytes returns a copy of the 32-byte big-endian scalar.
func (k PrivateKey) Bytes() []byte {
	b := make([]byte, PrivateKeyLength)
	copy(b, k.d[:])
	return b
}

// Hex returns the scalar as 64 lowercase hex characters without a prefix.
func (k PrivateKey) Hex() string {
	return hex.EncodeToString(k.d[:])
}

// PublicKey derives the uncompressed public key by multiplying the curve
// generator with the scalar. The derivation is deterministic.
func (k PrivateKey) PublicKey() PublicKey {
	priv := secp256k1.PrivKeyFromBytes(k.d[:])
	var pub PublicKey
	copy(pub.p[:], priv.PubKey().SerializeUncompressed())
	priv.Zero()
	return pub
}

// Equal reports whether both keys hold the same scalar.
func (k PrivateKey) Equal(other PrivateKey) bool {
	return k.d == other.d
}

// IsZero reports whether k is the zero value rather than a constructed key.
func (k PrivateKey) IsZero() bool {
	return k.d == [PrivateKeyLength]byte{}
}

// String implements fmt.Stringer without revealing key material.
func (k PrivateKey) String() string {
	return "PrivateKey(redacted)"
}
