package keystore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elabs-dev/ethkit/pkg/address"
)

func testVault(t *testing.T) *Vault {
	t.Helper()
	vault, err := OpenVault(VaultConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "vault.db"),
	})
	require.NoError(t, err)
	return vault
}

func TestOpenVault(t *testing.T) {
	t.Run("Defaults to in-memory sqlite", func(t *testing.T) {
		vault, err := OpenVault(VaultConfig{})
		require.NoError(t, err)

		_, err = vault.Addresses()
		assert.NoError(t, err)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		_, err := OpenVault(VaultConfig{Driver: "oracle"})
		assert.Error(t, err)
	})
}

func TestVaultPutGet(t *testing.T) {
	vault := testVault(t)
	key := testKey(t)
	const passphrase = "vault passphrase"

	addr, err := vault.Put(key, passphrase, LightScryptN, LightScryptP)
	require.NoError(t, err)
	assert.Equal(t, address.FromPrivateKey(key), addr)

	t.Run("Round trip", func(t *testing.T) {
		got, err := vault.Get(addr, passphrase)
		require.NoError(t, err)
		assert.True(t, got.Equal(key))
	})

	t.Run("Wrong passphrase", func(t *testing.T) {
		_, err := vault.Get(addr, "wrong")
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("Unknown address", func(t *testing.T) {
		other := testKey(t)
		_, err := vault.Get(address.FromPrivateKey(other), passphrase)
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("Put overwrites", func(t *testing.T) {
		again, err := vault.Put(key, "new passphrase", LightScryptN, LightScryptP)
		require.NoError(t, err)
		assert.Equal(t, addr, again)

		got, err := vault.Get(addr, "new passphrase")
		require.NoError(t, err)
		assert.True(t, got.Equal(key))
	})
}

func TestVaultAddresses(t *testing.T) {
	vault := testVault(t)

	first, err := vault.Put(testKey(t), "pw", LightScryptN, LightScryptP)
	require.NoError(t, err)
	second, err := vault.Put(testKey(t), "pw", LightScryptN, LightScryptP)
	require.NoError(t, err)

	addrs, err := vault.Addresses()
	require.NoError(t, err)
	assert.Len(t, addrs, 2)
	assert.Contains(t, addrs, first)
	assert.Contains(t, addrs, second)
}

func TestVaultDelete(t *testing.T) {
	vault := testVault(t)
	key := testKey(t)

	addr, err := vault.Put(key, "pw", LightScryptN, LightScryptP)
	require.NoError(t, err)

	require.NoError(t, vault.Delete(addr))

	_, err = vault.Get(addr, "pw")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, vault.Delete(addr))
}
