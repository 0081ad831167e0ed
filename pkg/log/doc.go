// Package log provides the structured logging used by the ethkit CLI.
//
// The Logger interface decouples callers from the backing implementation.
// NewZapLogger builds the production logger on top of Uber's zap with a
// choice of console, logfmt or JSON encoding; NewNoopLogger discards
// everything and is handy in tests. Loggers are immutable: WithKV and
// WithName return derived loggers and leave the receiver untouched.
//
// Log lines use message-plus-key-value style:
//
//	logger.Info("key stored in vault", "address", addr.Hex())
package log
