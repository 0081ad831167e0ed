package keystore

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/elabs-dev/ethkit/pkg/address"
	"github.com/elabs-dev/ethkit/pkg/keys"
)

// ErrKeyNotFound indicates that the vault holds no key for the requested
// address.
var ErrKeyNotFound = errors.New("keystore: no key stored for address")

// VaultConfig selects the database backing a Vault.
//
// The sqlite driver with an empty DSN keeps the vault in memory. Point DSN
// at a file path for a persistent local vault, or switch to the postgres
// driver with a connection string for a shared one.
type VaultConfig struct {
	Driver  string `env:"ETHKIT_VAULT_DRIVER" env-default:"sqlite"`
	DSN     string `env:"ETHKIT_VAULT_DSN" env-default:""`
	Retries int    `env:"ETHKIT_VAULT_RETRIES" env-default:"3"`
}

type vaultRecord struct {
	Address   string `gorm:"primaryKey;size:42"`
	Keystore  []byte
	CreatedAt time.Time
}

func (vaultRecord) TableName() string {
	return "vault_keys"
}

// Vault stores passphrase-encrypted keys in a relational database, keyed by
// checksum address.
type Vault struct {
	db *gorm.DB
}

// OpenVault connects to the configured database and migrates the schema.
func OpenVault(conf VaultConfig) (*Vault, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(conf.Driver) {
	case "", "sqlite":
		dsn := conf.DSN
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(conf.DSN)
	default:
		return nil, fmt.Errorf("unsupported vault driver: %q", conf.Driver)
	}

	retries := conf.Retries
	if retries < 1 {
		retries = 1
	}
	var db *gorm.DB
	var err error
	for i := 0; i < retries; i++ {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to vault database: %w", err)
	}

	if err := db.AutoMigrate(&vaultRecord{}); err != nil {
		return nil, fmt.Errorf("migrate vault schema: %w", err)
	}
	return &Vault{db: db}, nil
}

// Put seals key under passphrase and stores the envelope, overwriting any
// previous envelope for the same address. It returns the key's address.
func (v *Vault) Put(key keys.PrivateKey, passphrase string, scryptN, scryptP int) (address.Address, error) {
	blob, err := EncryptKey(key, passphrase, scryptN, scryptP)
	if err != nil {
		return address.Address{}, err
	}
	addr := address.FromPrivateKey(key)
	rec := vaultRecord{Address: addr.Hex(), Keystore: blob}
	if err := v.db.Save(&rec).Error; err != nil {
		return address.Address{}, fmt.Errorf("store key: %w", err)
	}
	return addr, nil
}

// Get loads and opens the key stored for addr.
func (v *Vault) Get(addr address.Address, passphrase string) (keys.PrivateKey, error) {
	var rec vaultRecord
	if err := v.db.First(&rec, "address = ?", addr.Hex()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return keys.PrivateKey{}, fmt.Errorf("%w: %s", ErrKeyNotFound, addr.Hex())
		}
		return keys.PrivateKey{}, fmt.Errorf("load key: %w", err)
	}
	return DecryptKey(rec.Keystore, passphrase)
}

// Addresses lists every stored address, oldest first.
func (v *Vault) Addresses() ([]address.Address, error) {
	var recs []vaultRecord
	if err := v.db.Order("created_at").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	out := make([]address.Address, 0, len(recs))
	for _, rec := range recs {
		addr, err := address.FromHex(rec.Address)
		if err != nil {
			return nil, fmt.Errorf("corrupt vault record %q: %w", rec.Address, err)
		}
		out = append(out, addr)
	}
	return out, nil
}

// Delete removes the key stored for addr. Deleting an absent address is not
// an error.
func (v *Vault) Delete(addr address.Address) error {
	if err := v.db.Delete(&vaultRecord{}, "address = ?", addr.Hex()).Error; err != nil {
		return fmt.Errorf("delete key: %w", err)
	}
	return nil
}
