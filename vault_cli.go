package main

import (
	"fmt"
	"os"

	"github.com/elabs-dev/ethkit/pkg/address"
	"github.com/elabs-dev/ethkit/pkg/keystore"
	"github.com/elabs-dev/ethkit/pkg/log"
)

// runVaultListCli is the entry point for the vault-list command line
// interface. Example: ethkit vault-list
func runVaultListCli(logger log.Logger) {
	logger = logger.WithName("vault-list")

	config, err := LoadConfig(logger)
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	vault, err := keystore.OpenVault(config.Vault)
	if err != nil {
		logger.Fatal("failed to open vault", "error", err)
	}

	addrs, err := vault.Addresses()
	if err != nil {
		logger.Fatal("failed to list vault keys", "error", err)
	}

	for _, addr := range addrs {
		fmt.Fprintln(os.Stdout, addr.Hex())
	}
	logger.Info("listed vault keys", "count", len(addrs))
}

// runVaultDeleteCli is the entry point for the vault-delete command line
// interface. Example: ethkit vault-delete <address_hex>
func runVaultDeleteCli(logger log.Logger) {
	logger = logger.WithName("vault-delete")
	if len(os.Args) < 3 {
		logger.Fatal("usage: ethkit vault-delete <address_hex>")
	}

	addr, err := address.FromHex(os.Args[2])
	if err != nil {
		logger.Fatal("invalid address", "error", err)
	}

	config, err := LoadConfig(logger)
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	vault, err := keystore.OpenVault(config.Vault)
	if err != nil {
		logger.Fatal("failed to open vault", "error", err)
	}

	if err := vault.Delete(addr); err != nil {
		logger.Fatal("failed to delete key", "error", err)
	}
	logger.Info("deleted key", "address", addr.Hex())
}
