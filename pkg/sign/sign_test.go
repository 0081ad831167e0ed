package sign

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elabs-dev/ethkit/pkg/keccak"
	"github.com/elabs-dev/ethkit/pkg/keys"
)

func testKey(t *testing.T) keys.PrivateKey {
	t.Helper()
	key, err := keys.PrivateKeyFromHex("4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")
	require.NoError(t, err)
	return key
}

func TestSignVerifyRoundTrip(t *testing.T) {
	key := testKey(t)
	message := []byte("hello ethkit")

	sig, err := SignMessage(message, key)
	require.NoError(t, err)

	t.Run("Verifies against the signing key", func(t *testing.T) {
		valid, err := VerifyMessage(message, sig.CompactBytes(), key.PublicKey())
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Tampered message does not verify", func(t *testing.T) {
		valid, err := VerifyMessage([]byte("hello ethkit!"), sig.CompactBytes(), key.PublicKey())
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Wrong key does not verify", func(t *testing.T) {
		other, err := keys.GeneratePrivateKey()
		require.NoError(t, err)

		valid, err := VerifyMessage(message, sig.CompactBytes(), other.PublicKey())
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Same input signs identically", func(t *testing.T) {
		again, err := SignMessage(message, key)
		require.NoError(t, err)
		assert.Equal(t, sig.Bytes(), again.Bytes())
	})

	t.Run("Digest API agrees with message API", func(t *testing.T) {
		direct, err := SignDigest(keccak.Sum256(message), key)
		require.NoError(t, err)
		assert.Equal(t, sig.Bytes(), direct.Bytes())
	})
}

func TestVerifyDigestMalformed(t *testing.T) {
	key := testKey(t)
	digest := keccak.Sum256([]byte("payload"))

	sig, err := SignDigest(digest, key)
	require.NoError(t, err)

	zeroR := sig.CompactBytes()
	copy(zeroR[:CompactLength/2], make([]byte, CompactLength/2))

	overflowS := sig.CompactBytes()
	for i := CompactLength / 2; i < CompactLength; i++ {
		overflowS[i] = 0xff
	}

	tests := []struct {
		name     string
		sig      []byte
		expected error
	}{
		{"Too short", sig.CompactBytes()[:63], ErrInvalidLength},
		{"Too long", sig.Bytes(), ErrInvalidLength},
		{"Empty", nil, ErrInvalidLength},
		{"Zero r", zeroR, ErrMalformedSignature},
		{"Overflowing s", overflowS, ErrMalformedSignature},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := VerifyDigest(digest, test.sig, key.PublicKey())
			assert.ErrorIs(t, err, test.expected)
		})
	}
}

func TestRecoverDigest(t *testing.T) {
	key := testKey(t)
	digest := keccak.Sum256([]byte("recover me"))

	sig, err := SignDigest(digest, key)
	require.NoError(t, err)

	t.Run("Recovers the signing key", func(t *testing.T) {
		pub, err := RecoverDigest(digest, sig.CompactBytes(), sig.RecoveryID())
		require.NoError(t, err)
		assert.True(t, pub.Equal(key.PublicKey()))
	})

	t.Run("Shorthand on Signature", func(t *testing.T) {
		pub, err := sig.Recover(digest)
		require.NoError(t, err)
		assert.True(t, pub.Equal(key.PublicKey()))
	})

	t.Run("Different digest recovers a different key", func(t *testing.T) {
		other := keccak.Sum256([]byte("some other digest"))
		pub, err := RecoverDigest(other, sig.CompactBytes(), sig.RecoveryID())
		if err == nil {
			assert.False(t, pub.Equal(key.PublicKey()))
		}
	})

	t.Run("Rejections", func(t *testing.T) {
		_, err := RecoverDigest(digest, sig.CompactBytes(), 4)
		assert.ErrorIs(t, err, ErrInvalidRecoveryID)

		_, err = RecoverDigest(digest, sig.CompactBytes()[:10], sig.RecoveryID())
		assert.ErrorIs(t, err, ErrInvalidLength)

		wrongID := (sig.RecoveryID() + 2) % 4
		_, err = RecoverDigest(digest, sig.CompactBytes(), wrongID)
		assert.ErrorIs(t, err, ErrRecoveryFailed)
	})
}

func TestGoEthereumInterop(t *testing.T) {
	key := testKey(t)
	digest := keccak.Sum256([]byte("interop payload"))

	t.Run("go-ethereum verifies our signatures", func(t *testing.T) {
		sig, err := SignDigest(digest, key)
		require.NoError(t, err)

		rawPub, err := crypto.Ecrecover(digest[:], sig.Bytes())
		require.NoError(t, err)
		assert.Equal(t, key.PublicKey().Bytes(), rawPub)
	})

	t.Run("We verify go-ethereum signatures", func(t *testing.T) {
		ecdsaKey, err := crypto.ToECDSA(key.Bytes())
		require.NoError(t, err)

		gethSig, err := crypto.Sign(digest[:], ecdsaKey)
		require.NoError(t, err)
		require.Len(t, gethSig, WireLength)

		valid, err := VerifyDigest(digest, gethSig[:CompactLength], key.PublicKey())
		require.NoError(t, err)
		assert.True(t, valid)

		pub, err := RecoverDigest(digest, gethSig[:CompactLength], gethSig[CompactLength])
		require.NoError(t, err)
		assert.True(t, pub.Equal(key.PublicKey()))
	})
}

func TestSigner(t *testing.T) {
	const keyHex = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

	t.Run("Construction from hex", func(t *testing.T) {
		signer, err := NewSigner(keyHex)
		require.NoError(t, err)
		assert.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", signer.Address().Hex())

		_, err = NewSigner("not a key")
		assert.Error(t, err)
	})

	t.Run("Sign and verify", func(t *testing.T) {
		signer, err := NewSigner(keyHex)
		require.NoError(t, err)

		message := []byte("signer message")
		sig, err := signer.Sign(message)
		require.NoError(t, err)

		valid, err := VerifyMessage(message, sig.CompactBytes(), signer.PublicKey())
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("From existing key", func(t *testing.T) {
		key := testKey(t)
		signer := NewSignerFromKey(key)
		assert.True(t, signer.PublicKey().Equal(key.PublicKey()))
	})
}
