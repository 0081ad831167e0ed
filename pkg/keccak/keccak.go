package keccak

import "golang.org/x/crypto/sha3"

const (
	// Size256 is the byte length of a Keccak-256 digest.
	Size256 = 32
	// Size512 is the byte length of a Keccak-512 digest.
	Size512 = 64
)

// Sum256 returns the legacy Keccak-256 digest of data.
func Sum256(data []byte) [Size256]byte {
	var out [Size256]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	h.Sum(out[:0])
	return out
}

// Sum512 returns the legacy Keccak-512 digest of data.
func Sum512(data []byte) [Size512]byte {
	var out [Size512]byte
	h := sha3.NewLegacyKeccak512()
	h.Write(data)
	h.Sum(out[:0])
	return out
}
