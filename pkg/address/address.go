package address

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/elabs-dev/ethkit/pkg/keccak"
	"github.com/elabs-dev/ethkit/pkg/keys"
)

// Length is the byte length of an address.
const Length = 20

// HexLength is the character length of the checksum rendering, including
// the 0x prefix.
const HexLength = 2 + 2*Length

// Address is a 20-byte account address. It is a comparable value type.
type Address [Length]byte

// FromPublicKey derives the address of pub: the last 20 bytes of the
// Keccak-256 digest of the 64-byte X||Y coordinate pair, excluding the
// leading 0x04 format byte.
func FromPublicKey(pub keys.PublicKey) Address {
	digest := keccak.Sum256(pub.Bytes()[1:])
	var a Address
	copy(a[:], digest[keccak.Size256-Length:])
	return a
}

// FromPrivateKey derives the public key of key and returns its address.
func FromPrivateKey(key keys.PrivateKey) Address {
	return FromPublicKey(key.PublicKey())
}

// FromBytes wraps 20 raw bytes as an Address. It is intended for interop
// with externally supplied data and does not check provenance.
func FromBytes(b []byte) (Address, error) {
	if len(b) != Length {
		return Address{}, fmt.Errorf("invalid address length: want %d bytes, got %d", Length, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// FromHex decodes a 40-character hex address, with or without a 0x prefix.
// Both plain and checksummed case are accepted; the checksum is not
// verified.
func FromHex(s string) (Address, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != 2*Length {
		return Address{}, fmt.Errorf("invalid address length: want %d hex chars, got %d", 2*Length, len(s))
	}
	b, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return Address{}, fmt.Errorf("invalid address encoding: %w", err)
	}
	return FromBytes(b)
}

// Bytes returns a copy of the 20 raw address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, a[:])
	return b
}

// Hex returns the EIP-55 checksum rendering: "0x" followed by 40 hex
// characters whose letter case encodes a Keccak-derived checksum. The
// checksum hashes the ASCII bytes of the lowercase hex text, not the raw
// address bytes; a hex character is uppercased when the digest nibble at
// the same position is greater than 7. The result is always 42 characters
// and lowercasing it yields the plain hex form.
func (a Address) Hex() string {
	buf := []byte(hex.EncodeToString(a[:]))
	digest := keccak.Sum256(buf)
	sum := hex.EncodeToString(digest[:])
	for i, c := range buf {
		if c >= 'a' && hexNibble(sum[i]) > 7 {
			buf[i] = c - ('a' - 'A')
		}
	}
	return "0x" + string(buf)
}

// String returns the checksum rendering.
func (a Address) String() string {
	return a.Hex()
}

func hexNibble(c byte) byte {
	if c >= 'a' {
		return c - 'a' + 10
	}
	return c - '0'
}
