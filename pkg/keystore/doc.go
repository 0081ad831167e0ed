// Package keystore seals private keys under a passphrase and stores the
// resulting envelopes.
//
// EncryptKey and DecryptKey implement the web3 secret-storage (version 3)
// JSON format: the passphrase is stretched with scrypt, the key is encrypted
// with aes-128-ctr, and a Keccak-256 MAC binds the ciphertext to the derived
// key. Envelopes produced here are interchangeable with other v3
// implementations that use the scrypt KDF.
//
// Vault persists envelopes in a relational database (sqlite by default,
// postgres for shared setups), keyed by checksum address.
package keystore
