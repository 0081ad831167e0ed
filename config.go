package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/elabs-dev/ethkit/pkg/keystore"
	"github.com/elabs-dev/ethkit/pkg/log"
)

const (
	configDirPathEnv     = "ETHKIT_CONFIG_DIR_PATH"
	defaultConfigDirPath = "."

	vaultPassphraseEnv = "ETHKIT_VAULT_PASSPHRASE"
)

// Config represents the overall application configuration
type Config struct {
	Log   log.Config
	Vault keystore.VaultConfig

	// ScryptProfile selects the keystore stretching cost: "standard" for
	// keys at rest, "light" for tests and throwaway keys.
	ScryptProfile string `env:"ETHKIT_SCRYPT_PROFILE" env-default:"standard"`
}

// LoadConfig builds configuration from environment variables
func LoadConfig(logger log.Logger) (*Config, error) {
	logger = logger.WithName("config")

	configDirPath := os.Getenv(configDirPathEnv)
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	// Load .env files
	configDotEnvPath := filepath.Join(configDirPath, ".env")
	if err := godotenv.Load(configDotEnvPath); err != nil {
		logger.Debug(".env file not found", "path", configDotEnvPath)
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		logger.Error("failed to read env", "err", err)
		return nil, err
	}

	if config.ScryptProfile != "standard" && config.ScryptProfile != "light" {
		return nil, fmt.Errorf("invalid %s value: %q", "ETHKIT_SCRYPT_PROFILE", config.ScryptProfile)
	}

	return &config, nil
}

// scryptParams maps the configured profile to concrete scrypt costs.
func (c *Config) scryptParams() (n, p int) {
	if c.ScryptProfile == "light" {
		return keystore.LightScryptN, keystore.LightScryptP
	}
	return keystore.StandardScryptN, keystore.StandardScryptP
}
