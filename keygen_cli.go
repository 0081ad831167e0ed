package main

import (
	"fmt"
	"os"

	"github.com/elabs-dev/ethkit/pkg/address"
	"github.com/elabs-dev/ethkit/pkg/keys"
	"github.com/elabs-dev/ethkit/pkg/keystore"
	"github.com/elabs-dev/ethkit/pkg/log"
)

// runKeygenCli is the entry point for the keygen command line interface.
// Example: ethkit keygen
//
// The private key is written to stdout; everything else goes to the log.
// With ETHKIT_VAULT_PASSPHRASE set, the key is also sealed into the vault.
func runKeygenCli(logger log.Logger) {
	logger = logger.WithName("keygen")

	config, err := LoadConfig(logger)
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	key, err := keys.GeneratePrivateKey()
	if err != nil {
		logger.Fatal("failed to generate private key", "error", err)
	}
	addr := address.FromPrivateKey(key)

	fmt.Fprintln(os.Stdout, key.Hex())
	logger.Info("generated key", "address", addr.Hex())

	passphrase := os.Getenv(vaultPassphraseEnv)
	if passphrase == "" {
		return
	}

	vault, err := keystore.OpenVault(config.Vault)
	if err != nil {
		logger.Fatal("failed to open vault", "error", err)
	}
	scryptN, scryptP := config.scryptParams()
	if _, err := vault.Put(key, passphrase, scryptN, scryptP); err != nil {
		logger.Fatal("failed to store key", "error", err)
	}
	logger.Info("key stored in vault", "address", addr.Hex(), "profile", config.ScryptProfile)
}
