package sign

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// CompactLength is the byte length of the compact r||s serialization.
	CompactLength = 64
	// WireLength is CompactLength plus the trailing recovery id byte.
	WireLength = CompactLength + 1
	// maxRecoveryID is the largest valid recovery id.
	maxRecoveryID = 3
)

// Signature is a recoverable ECDSA signature: a compact 64-byte r||s pair
// plus the recovery id. It is an immutable value type.
type Signature struct {
	rs  [CompactLength]byte
	rid byte
}

// NewSignature builds a Signature from a compact 64-byte r||s serialization
// and a recovery id in 0..3.
func NewSignature(compact []byte, recoveryID byte) (Signature, error) {
	if len(compact) != CompactLength {
		return Signature{}, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, CompactLength, len(compact))
	}
	if recoveryID > maxRecoveryID {
		return Signature{}, fmt.Errorf("%w: %d", ErrInvalidRecoveryID, recoveryID)
	}
	var sig Signature
	copy(sig.rs[:], compact)
	sig.rid = recoveryID
	return sig, nil
}

// ParseHex decodes a 0x-prefixed 65-byte r||s||v signature. A v of 27 or 28
// is normalized into the 0..3 recovery id range.
func ParseHex(s string) (Signature, error) {
	raw, err := hexutil.Decode(s)
	if err != nil {
		return Signature{}, fmt.Errorf("decode signature hex: %w", err)
	}
	if len(raw) != WireLength {
		return Signature{}, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, WireLength, len(raw))
	}
	v := raw[CompactLength]
	if v >= 27 {
		v -= 27
	}
	return NewSignature(raw[:CompactLength], v)
}

// CompactBytes returns a copy of the 64-byte r||s pair.
func (s Signature) CompactBytes() []byte {
	b := make([]byte, CompactLength)
	copy(b, s.rs[:])
	return b
}

// RecoveryID returns the recovery id, a value in 0..3.
func (s Signature) RecoveryID() byte {
	return s.rid
}

// Bytes returns the 65-byte r||s||v wire form with v equal to the recovery
// id.
func (s Signature) Bytes() []byte {
	b := make([]byte, WireLength)
	copy(b, s.rs[:])
	b[CompactLength] = s.rid
	return b
}

// String returns the 0x-prefixed hex of the wire form.
func (s Signature) String() string {
	return hexutil.Encode(s.Bytes())
}

// MarshalJSON encodes the signature as a 0x-prefixed hex string.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a 0x-prefixed hex string as produced by MarshalJSON.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return err
	}
	sig, err := ParseHex(hexStr)
	if err != nil {
		return err
	}
	*s = sig
	return nil
}
