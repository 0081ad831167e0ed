package sign

import (
	"fmt"

	"github.com/elabs-dev/ethkit/pkg/address"
	"github.com/elabs-dev/ethkit/pkg/keys"
)

// Signer signs messages with a fixed private key and exposes the derived
// identity. The zero value is unusable; construct one with NewSigner or
// NewSignerFromKey.
type Signer struct {
	key keys.PrivateKey
}

// NewSigner creates a Signer from a hex-encoded private key, with or
// without a 0x prefix.
func NewSigner(privateKeyHex string) (*Signer, error) {
	key, err := keys.PrivateKeyFromHex(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return NewSignerFromKey(key), nil
}

// NewSignerFromKey creates a Signer around an existing key.
func NewSignerFromKey(key keys.PrivateKey) *Signer {
	return &Signer{key: key}
}

// Sign hashes message with Keccak-256 and returns a recoverable signature.
func (s *Signer) Sign(message []byte) (Signature, error) {
	return SignMessage(message, s.key)
}

// SignDigest signs a pre-computed 32-byte digest.
func (s *Signer) SignDigest(digest [32]byte) (Signature, error) {
	return SignDigest(digest, s.key)
}

// PublicKey returns the public key associated with the signer.
func (s *Signer) PublicKey() keys.PublicKey {
	return s.key.PublicKey()
}

// Address returns the address derived from the signer's public key.
func (s *Signer) Address() address.Address {
	return address.FromPrivateKey(s.key)
}
