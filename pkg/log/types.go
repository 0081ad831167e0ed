package log

// Logger is the structured logging interface used across ethkit.
// keysAndValues are treated as alternating key-value pairs
// (e.g., "address", addr, "error", err).
type Logger interface {
	// Debug logs detail useful during development.
	Debug(msg string, keysAndValues ...any)
	// Info logs routine progress and state changes.
	Info(msg string, keysAndValues ...any)
	// Warn logs unexpected situations the program can survive.
	Warn(msg string, keysAndValues ...any)
	// Error logs failures that need attention.
	Error(msg string, keysAndValues ...any)
	// Fatal logs an unrecoverable failure and terminates the program.
	Fatal(msg string, keysAndValues ...any)
	// WithKV returns a logger that attaches the key-value pair to every
	// future line.
	WithKV(key string, value any) Logger
	// WithName returns a logger named after a component or subsystem.
	WithName(name string) Logger
}

// Level is the severity of a log line, used to filter output.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)
