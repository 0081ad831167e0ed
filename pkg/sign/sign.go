package sign

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/elabs-dev/ethkit/pkg/keccak"
	"github.com/elabs-dev/ethkit/pkg/keys"
)

// compactSigMagicOffset is the header offset the curve library applies to
// the recovery code in its own compact serialization.
const compactSigMagicOffset = 27

// SignMessage hashes message with Keccak-256 and signs the digest with key.
// Use SignDigest when the digest has already been computed.
func SignMessage(message []byte, key keys.PrivateKey) (Signature, error) {
	return SignDigest(keccak.Sum256(message), key)
}

// SignDigest signs a pre-computed 32-byte digest with key. Nonces come from
// RFC 6979, which makes the signature bytes a pure function of digest and
// key; callers should rely on verifiability and recovery, not on the exact
// bytes.
func SignDigest(digest [keccak.Size256]byte, key keys.PrivateKey) (Signature, error) {
	priv := secp256k1.PrivKeyFromBytes(key.Bytes())
	defer priv.Zero()
	// Library layout is v||r||s with the magic offset applied to v.
	compact := secpecdsa.SignCompact(priv, digest[:], false)
	return NewSignature(compact[1:], compact[0]-compactSigMagicOffset)
}

// VerifyMessage hashes message with Keccak-256 and checks the compact r||s
// signature against pub. A signature that simply does not match yields
// (false, nil); an error is returned only for structurally malformed input.
func VerifyMessage(message []byte, compactSig []byte, pub keys.PublicKey) (bool, error) {
	return VerifyDigest(keccak.Sum256(message), compactSig, pub)
}

// VerifyDigest checks the compact r||s signature against pub and a
// pre-computed 32-byte digest. The error contract matches VerifyMessage.
func VerifyDigest(digest [keccak.Size256]byte, compactSig []byte, pub keys.PublicKey) (bool, error) {
	if len(compactSig) != CompactLength {
		return false, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, CompactLength, len(compactSig))
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(compactSig[:CompactLength/2]); overflow || r.IsZero() {
		return false, fmt.Errorf("%w: r out of range", ErrMalformedSignature)
	}
	if overflow := s.SetByteSlice(compactSig[CompactLength/2:]); overflow || s.IsZero() {
		return false, fmt.Errorf("%w: s out of range", ErrMalformedSignature)
	}
	point, err := secp256k1.ParsePubKey(pub.Bytes())
	if err != nil {
		return false, fmt.Errorf("parse public key: %w", err)
	}
	return secpecdsa.NewSignature(&r, &s).Verify(digest[:], point), nil
}

// RecoverDigest reconstructs the public key that produced the compact r||s
// signature over digest. Unlike SignMessage and VerifyMessage it performs no
// hashing: digest must be the 32-byte Keccak-256 digest the signature was
// made over.
func RecoverDigest(digest [keccak.Size256]byte, compactSig []byte, recoveryID byte) (keys.PublicKey, error) {
	if len(compactSig) != CompactLength {
		return keys.PublicKey{}, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, CompactLength, len(compactSig))
	}
	if recoveryID > maxRecoveryID {
		return keys.PublicKey{}, fmt.Errorf("%w: %d", ErrInvalidRecoveryID, recoveryID)
	}
	var buf [WireLength]byte
	buf[0] = compactSigMagicOffset + recoveryID
	copy(buf[1:], compactSig)
	point, _, err := secpecdsa.RecoverCompact(buf[:], digest[:])
	if err != nil {
		return keys.PublicKey{}, fmt.Errorf("%w: %v", ErrRecoveryFailed, err)
	}
	return keys.PublicKeyFromBytes(point.SerializeUncompressed())
}

// Recover is shorthand for RecoverDigest with the signature's own recovery
// id.
func (s Signature) Recover(digest [keccak.Size256]byte) (keys.PublicKey, error) {
	return RecoverDigest(digest, s.rs[:], s.rid)
}
