package main

import (
	"fmt"
	"os"

	"github.com/elabs-dev/ethkit/pkg/keys"
	"github.com/elabs-dev/ethkit/pkg/log"
	"github.com/elabs-dev/ethkit/pkg/sign"
)

// runSignCli is the entry point for the sign command line interface.
// Example: ethkit sign <private_key_hex> <message>
//
// The message is hashed with Keccak-256 before signing. The 0x-prefixed
// 65-byte signature is written to stdout.
func runSignCli(logger log.Logger) {
	logger = logger.WithName("sign")
	if len(os.Args) < 4 {
		logger.Fatal("usage: ethkit sign <private_key_hex> <message>")
	}

	signer, err := sign.NewSigner(os.Args[2])
	if err != nil {
		logger.Fatal("invalid private key", "error", err)
	}

	sig, err := signer.Sign([]byte(os.Args[3]))
	if err != nil {
		logger.Fatal("failed to sign message", "error", err)
	}

	fmt.Fprintln(os.Stdout, sig.String())
	logger.Info("signed message", "address", signer.Address().Hex(), "recoveryID", sig.RecoveryID())
}

// runVerifyCli is the entry point for the verify command line interface.
// Example: ethkit verify <public_key_hex> <signature_hex> <message>
func runVerifyCli(logger log.Logger) {
	logger = logger.WithName("verify")
	if len(os.Args) < 5 {
		logger.Fatal("usage: ethkit verify <public_key_hex> <signature_hex> <message>")
	}

	pub, err := keys.PublicKeyFromHex(os.Args[2])
	if err != nil {
		logger.Fatal("invalid public key", "error", err)
	}

	sig, err := sign.ParseHex(os.Args[3])
	if err != nil {
		logger.Fatal("invalid signature", "error", err)
	}

	valid, err := sign.VerifyMessage([]byte(os.Args[4]), sig.CompactBytes(), pub)
	if err != nil {
		logger.Fatal("failed to verify signature", "error", err)
	}
	if !valid {
		logger.Fatal("signature does not match", "publicKey", pub.Hex())
	}
	logger.Info("signature valid", "publicKey", pub.Hex())
}
