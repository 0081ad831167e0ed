package log

var _ Logger = NoopLogger{}

// NoopLogger discards every log line. Useful as a default and in tests.
type NoopLogger struct{}

// NewNoopLogger returns a logger that does nothing.
func NewNoopLogger() Logger {
	return NoopLogger{}
}

func (NoopLogger) Debug(string, ...any) {}
func (NoopLogger) Info(string, ...any)  {}
func (NoopLogger) Warn(string, ...any)  {}
func (NoopLogger) Error(string, ...any) {}
func (NoopLogger) Fatal(string, ...any) {}

func (n NoopLogger) WithKV(string, any) Logger { return n }
func (n NoopLogger) WithName(string) Logger    { return n }
