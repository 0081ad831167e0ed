package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"

	"github.com/elabs-dev/ethkit/pkg/address"
	"github.com/elabs-dev/ethkit/pkg/keccak"
	"github.com/elabs-dev/ethkit/pkg/keys"
)

const (
	version    = 3
	cipherName = "aes-128-ctr"
	kdfName    = "scrypt"

	// StandardScryptN and StandardScryptP are the scrypt cost parameters
	// for keys at rest.
	StandardScryptN = 1 << 18
	StandardScryptP = 1
	// LightScryptN and LightScryptP trade stretching strength for speed;
	// meant for tests and throwaway keys.
	LightScryptN = 1 << 12
	LightScryptP = 6

	scryptR     = 8
	scryptDKLen = 32
)

var (
	// ErrDecrypt indicates a MAC mismatch: wrong passphrase or tampered
	// envelope.
	ErrDecrypt = errors.New("keystore: could not decrypt key with given passphrase")
	// ErrUnsupportedVersion indicates an envelope version other than 3.
	ErrUnsupportedVersion = errors.New("keystore: unsupported envelope version")
	// ErrUnsupportedCipher indicates a cipher other than aes-128-ctr.
	ErrUnsupportedCipher = errors.New("keystore: unsupported cipher")
	// ErrUnsupportedKDF indicates a key-derivation function other than
	// scrypt.
	ErrUnsupportedKDF = errors.New("keystore: unsupported kdf")
)

var validate = validator.New()

type encryptedKeyJSON struct {
	Address string     `json:"address" validate:"required,len=40,hexadecimal"`
	Crypto  cryptoJSON `json:"crypto" validate:"required"`
	ID      string     `json:"id" validate:"required,uuid4"`
	Version int        `json:"version" validate:"required"`
}

type cryptoJSON struct {
	Cipher       string       `json:"cipher" validate:"required"`
	CipherText   string       `json:"ciphertext" validate:"required,hexadecimal"`
	CipherParams cipherParams `json:"cipherparams"`
	KDF          string       `json:"kdf" validate:"required"`
	KDFParams    kdfParams    `json:"kdfparams"`
	MAC          string       `json:"mac" validate:"required,hexadecimal"`
}

type cipherParams struct {
	IV string `json:"iv" validate:"required,hexadecimal"`
}

type kdfParams struct {
	DKLen int    `json:"dklen" validate:"required,min=32"`
	N     int    `json:"n" validate:"required,min=2"`
	P     int    `json:"p" validate:"required,min=1"`
	R     int    `json:"r" validate:"required,min=1"`
	Salt  string `json:"salt" validate:"required,hexadecimal"`
}

// EncryptKey seals key under passphrase into a v3 JSON envelope using the
// given scrypt cost parameters (see the Standard and Light constants).
func EncryptKey(key keys.PrivateKey, passphrase string, scryptN, scryptP int) ([]byte, error) {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}
	dk, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, scryptDKLen)
	if err != nil {
		return nil, fmt.Errorf("derive encryption key: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("read iv: %w", err)
	}
	block, err := aes.NewCipher(dk[:16])
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	ciphertext := make([]byte, keys.PrivateKeyLength)
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, key.Bytes())

	mac := keccak.Sum256(append(dk[16:32], ciphertext...))

	envelope := encryptedKeyJSON{
		Address: hex.EncodeToString(address.FromPrivateKey(key).Bytes()),
		Crypto: cryptoJSON{
			Cipher:       cipherName,
			CipherText:   hex.EncodeToString(ciphertext),
			CipherParams: cipherParams{IV: hex.EncodeToString(iv)},
			KDF:          kdfName,
			KDFParams: kdfParams{
				DKLen: scryptDKLen,
				N:     scryptN,
				P:     scryptP,
				R:     scryptR,
				Salt:  hex.EncodeToString(salt),
			},
			MAC: hex.EncodeToString(mac[:]),
		},
		ID:      uuid.NewString(),
		Version: version,
	}
	return json.Marshal(envelope)
}

// DecryptKey opens a v3 JSON envelope produced by EncryptKey or any other
// scrypt-based v3 implementation. A wrong passphrase or a tampered envelope
// yields ErrDecrypt.
func DecryptKey(data []byte, passphrase string) (keys.PrivateKey, error) {
	var envelope encryptedKeyJSON
	if err := json.Unmarshal(data, &envelope); err != nil {
		return keys.PrivateKey{}, fmt.Errorf("decode keystore json: %w", err)
	}
	if err := validate.Struct(envelope); err != nil {
		return keys.PrivateKey{}, fmt.Errorf("invalid keystore json: %w", err)
	}
	if envelope.Version != version {
		return keys.PrivateKey{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, envelope.Version)
	}
	if envelope.Crypto.Cipher != cipherName {
		return keys.PrivateKey{}, fmt.Errorf("%w: %q", ErrUnsupportedCipher, envelope.Crypto.Cipher)
	}
	if envelope.Crypto.KDF != kdfName {
		return keys.PrivateKey{}, fmt.Errorf("%w: %q", ErrUnsupportedKDF, envelope.Crypto.KDF)
	}

	salt, err := hex.DecodeString(envelope.Crypto.KDFParams.Salt)
	if err != nil {
		return keys.PrivateKey{}, fmt.Errorf("decode salt: %w", err)
	}
	iv, err := hex.DecodeString(envelope.Crypto.CipherParams.IV)
	if err != nil {
		return keys.PrivateKey{}, fmt.Errorf("decode iv: %w", err)
	}
	ciphertext, err := hex.DecodeString(envelope.Crypto.CipherText)
	if err != nil {
		return keys.PrivateKey{}, fmt.Errorf("decode ciphertext: %w", err)
	}
	mac, err := hex.DecodeString(envelope.Crypto.MAC)
	if err != nil {
		return keys.PrivateKey{}, fmt.Errorf("decode mac: %w", err)
	}

	p := envelope.Crypto.KDFParams
	dk, err := scrypt.Key([]byte(passphrase), salt, p.N, p.R, p.P, p.DKLen)
	if err != nil {
		return keys.PrivateKey{}, fmt.Errorf("derive encryption key: %w", err)
	}

	want := keccak.Sum256(append(dk[16:32], ciphertext...))
	if !hmac.Equal(want[:], mac) {
		return keys.PrivateKey{}, ErrDecrypt
	}

	block, err := aes.NewCipher(dk[:16])
	if err != nil {
		return keys.PrivateKey{}, fmt.Errorf("init cipher: %w", err)
	}
	plain := make([]byte, len(ciphertext))
	cipher.NewCTR(block, iv).XORKeyStream(plain, ciphertext)
	return keys.PrivateKeyFromBytes(plain)
}
