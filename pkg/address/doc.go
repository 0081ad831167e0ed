// Package address derives 20-byte account addresses from secp256k1 public
// keys and renders them in the EIP-55 mixed-case checksum form.
//
// An Address has no independent existence: it is always the trailing 20
// bytes of the Keccak-256 digest of a public key's coordinates. FromBytes
// and FromHex exist for interoperability with external data and do not
// re-validate where their input came from.
package address
