package main

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/elabs-dev/ethkit/pkg/address"
	"github.com/elabs-dev/ethkit/pkg/keccak"
	"github.com/elabs-dev/ethkit/pkg/log"
	"github.com/elabs-dev/ethkit/pkg/sign"
)

// runRecoverCli is the entry point for the recover command line interface.
// Example: ethkit recover <digest_hex> <signature_hex>
//
// The digest is the 32-byte Keccak-256 hash the signature was made over.
func runRecoverCli(logger log.Logger) {
	logger = logger.WithName("recover")
	if len(os.Args) < 4 {
		logger.Fatal("usage: ethkit recover <digest_hex> <signature_hex>")
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(os.Args[2], "0x"))
	if err != nil || len(raw) != keccak.Size256 {
		logger.Fatal("invalid digest, want 32 bytes of hex", "value", os.Args[2])
	}
	var digest [keccak.Size256]byte
	copy(digest[:], raw)

	sig, err := sign.ParseHex(os.Args[3])
	if err != nil {
		logger.Fatal("invalid signature", "error", err)
	}

	pub, err := sig.Recover(digest)
	if err != nil {
		logger.Fatal("failed to recover public key", "error", err)
	}

	logger.Info("recovered signer",
		"publicKey", pub.Hex(),
		"address", address.FromPublicKey(pub).Hex(),
	)
}
