package wallet

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/hkdf"

	"github.com/elabs-dev/ethkit/pkg/address"
	"github.com/elabs-dev/ethkit/pkg/keys"
)

// hkdfInfoPrefix domain-separates ethkit key derivation from any other use
// of the same seed.
const hkdfInfoPrefix = "ethkit/wallet/key/v1/"

// ErrInvalidMnemonic indicates a word sequence that fails the BIP-39
// checksum or wordlist.
var ErrInvalidMnemonic = errors.New("wallet: invalid mnemonic")

// NewMnemonic returns a fresh BIP-39 mnemonic backed by the given entropy
// size in bits (128 to 256, a multiple of 32; 128 bits gives 12 words,
// 256 gives 24).
func NewMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("encode mnemonic: %w", err)
	}
	return mnemonic, nil
}

// DeriveKey derives the index-th private key from mnemonic and passphrase.
// The derivation is deterministic; the rare candidate scalar outside the
// curve order is skipped by reading further into the HKDF stream.
func DeriveKey(mnemonic, passphrase string, index uint32) (keys.PrivateKey, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return keys.PrivateKey{}, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}

	info := make([]byte, 0, len(hkdfInfoPrefix)+4)
	info = append(info, hkdfInfoPrefix...)
	info = binary.BigEndian.AppendUint32(info, index)

	stream := hkdf.New(sha256.New, seed, nil, info)
	buf := make([]byte, keys.PrivateKeyLength)
	for {
		if _, err := io.ReadFull(stream, buf); err != nil {
			return keys.PrivateKey{}, fmt.Errorf("expand seed: %w", err)
		}
		key, err := keys.PrivateKeyFromBytes(buf)
		if err == nil {
			return key, nil
		}
	}
}

// DeriveAddress is shorthand for the address of the index-th derived key.
func DeriveAddress(mnemonic, passphrase string, index uint32) (address.Address, error) {
	key, err := DeriveKey(mnemonic, passphrase, index)
	if err != nil {
		return address.Address{}, err
	}
	return address.FromPrivateKey(key), nil
}
