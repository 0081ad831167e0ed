package log

import (
	"os"
	"path/filepath"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*ZapLogger)(nil)

// Config configures the zap-backed logger. Every field can be populated
// from the environment.
type Config struct {
	Format string `env:"ETHKIT_LOG_FORMAT" env-default:"console"` // console, logfmt or json
	Level  Level  `env:"ETHKIT_LOG_LEVEL" env-default:"info"`     // debug, info, warn, error, fatal
	Output string `env:"ETHKIT_LOG_OUTPUT" env-default:"stderr"`  // stderr, stdout or a file path
}

// ZapLogger is a Logger backed by Uber's zap.
type ZapLogger struct {
	lg *zap.SugaredLogger
}

// NewZapLogger creates a ZapLogger for the given configuration. Unknown
// formats fall back to console encoding; an unopenable output file falls
// back to stderr.
func NewZapLogger(conf Config) Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(ts time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(ts.UTC().Format(time.RFC3339))
	}

	var encoder zapcore.Encoder
	switch conf.Format {
	case "logfmt":
		encoder = zaplogfmt.NewEncoder(encCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	var ws zapcore.WriteSyncer
	switch conf.Output {
	case "", "stderr":
		ws = zapcore.Lock(os.Stderr)
	case "stdout":
		ws = zapcore.Lock(os.Stdout)
	default:
		if err := os.MkdirAll(filepath.Dir(conf.Output), 0o755); err != nil {
			ws = zapcore.Lock(os.Stderr)
			break
		}
		file, err := os.OpenFile(conf.Output, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
		if err != nil {
			ws = zapcore.Lock(os.Stderr)
			break
		}
		ws = zapcore.AddSync(file)
	}

	core := zapcore.NewCore(encoder, ws, toZapLevel(conf.Level))
	return &ZapLogger{
		lg: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar(),
	}
}

func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.lg.Debugw(msg, keysAndValues...)
}

func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.lg.Infow(msg, keysAndValues...)
}

func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.lg.Warnw(msg, keysAndValues...)
}

func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.lg.Errorw(msg, keysAndValues...)
}

func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.lg.Fatalw(msg, keysAndValues...)
}

// WithKV returns a logger that attaches the pair to every future line.
func (l *ZapLogger) WithKV(key string, value any) Logger {
	return &ZapLogger{lg: l.lg.With(key, value)}
}

// WithName returns a logger named after a component.
func (l *ZapLogger) WithName(name string) Logger {
	return &ZapLogger{lg: l.lg.Named(name)}
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
