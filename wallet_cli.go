package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/elabs-dev/ethkit/pkg/address"
	"github.com/elabs-dev/ethkit/pkg/log"
	"github.com/elabs-dev/ethkit/pkg/wallet"
)

const mnemonicEntropyBits = 256

// mnemonicPassphraseEnv supplies the optional BIP-39 passphrase for
// mnemonic and derive.
const mnemonicPassphraseEnv = "ETHKIT_MNEMONIC_PASSPHRASE"

// runMnemonicCli is the entry point for the mnemonic command line interface.
// Example: ethkit mnemonic
//
// The mnemonic is written to stdout; the address of the first derived key
// goes to the log so the phrase can be verified after it is written down.
func runMnemonicCli(logger log.Logger) {
	logger = logger.WithName("mnemonic")

	mnemonic, err := wallet.NewMnemonic(mnemonicEntropyBits)
	if err != nil {
		logger.Fatal("failed to generate mnemonic", "error", err)
	}

	fmt.Fprintln(os.Stdout, mnemonic)

	addr, err := wallet.DeriveAddress(mnemonic, os.Getenv(mnemonicPassphraseEnv), 0)
	if err != nil {
		logger.Fatal("failed to derive first address", "error", err)
	}
	logger.Info("generated mnemonic", "firstAddress", addr.Hex())
}

// runDeriveCli is the entry point for the derive command line interface.
// Example: ethkit derive "<mnemonic>" 3
//
// An optional BIP-39 passphrase is taken from ETHKIT_MNEMONIC_PASSPHRASE.
func runDeriveCli(logger log.Logger) {
	logger = logger.WithName("derive")
	if len(os.Args) < 4 {
		logger.Fatal("usage: ethkit derive <mnemonic> <index>")
	}

	index, err := strconv.ParseUint(os.Args[3], 10, 32)
	if err != nil {
		logger.Fatal("invalid index", "value", os.Args[3])
	}

	key, err := wallet.DeriveKey(os.Args[2], os.Getenv(mnemonicPassphraseEnv), uint32(index))
	if err != nil {
		logger.Fatal("failed to derive key", "error", err)
	}

	fmt.Fprintln(os.Stdout, key.Hex())
	logger.Info("derived key", "index", index, "address", address.FromPrivateKey(key).Hex())
}
