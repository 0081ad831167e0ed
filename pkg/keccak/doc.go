// Package keccak provides the legacy Keccak hash family used throughout the
// Ethereum ecosystem.
//
// These are the original Keccak functions with the pre-standardisation
// padding rule, not the NIST SHA-3 variants. The two differ only in padding,
// but the outputs are completely different, so the distinction matters for
// every address and signature digest in this module.
//
// Both functions are pure and keep no shared state; they are safe to call
// from any number of goroutines without coordination.
package keccak
