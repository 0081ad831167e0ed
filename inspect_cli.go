package main

import (
	"os"

	"github.com/elabs-dev/ethkit/pkg/address"
	"github.com/elabs-dev/ethkit/pkg/keys"
	"github.com/elabs-dev/ethkit/pkg/log"
)

// runInspectCli is the entry point for the inspect command line interface.
// Example: ethkit inspect <private_key_hex>
func runInspectCli(logger log.Logger) {
	logger = logger.WithName("inspect")
	if len(os.Args) < 3 {
		logger.Fatal("usage: ethkit inspect <private_key_hex>")
	}

	key, err := keys.PrivateKeyFromHex(os.Args[2])
	if err != nil {
		logger.Fatal("invalid private key", "error", err)
	}

	pub := key.PublicKey()
	logger.Info("key material",
		"publicKey", pub.Hex(),
		"address", address.FromPublicKey(pub).Hex(),
	)
}
