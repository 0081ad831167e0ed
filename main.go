package main

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/elabs-dev/ethkit/pkg/log"
)

func main() {
	logger := newLogger()
	if len(os.Args) < 2 {
		logger.Fatal("usage: ethkit <command>",
			"commands", "keygen, inspect, sign, verify, recover, mnemonic, derive, vault-list, vault-delete")
	}
	runCli(logger, os.Args[1])
}

func runCli(logger log.Logger, name string) {
	switch name {
	case "keygen":
		runKeygenCli(logger)
	case "inspect":
		runInspectCli(logger)
	case "sign":
		runSignCli(logger)
	case "verify":
		runVerifyCli(logger)
	case "recover":
		runRecoverCli(logger)
	case "mnemonic":
		runMnemonicCli(logger)
	case "derive":
		runDeriveCli(logger)
	case "vault-list":
		runVaultListCli(logger)
	case "vault-delete":
		runVaultDeleteCli(logger)
	default:
		logger.Fatal("unknown CLI command", "name", name)
	}
}

func newLogger() log.Logger {
	var conf log.Config
	if err := cleanenv.ReadEnv(&conf); err != nil {
		return log.NewZapLogger(log.Config{})
	}
	return log.NewZapLogger(conf)
}
