// Package wallet derives private keys deterministically from BIP-39
// mnemonics.
//
// The mnemonic and optional passphrase are stretched into a BIP-39 seed,
// then expanded with HKDF-SHA256 under a domain-separated info string that
// includes the account index. The same mnemonic, passphrase and index always
// yield the same key, so a mnemonic written down on paper is a full backup
// of every derived account. This is not BIP-32/BIP-44 hierarchical
// derivation; keys derived here are specific to ethkit.
package wallet
