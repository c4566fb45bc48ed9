package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options controls logger construction. The binary fills this from its
// YAML config; tests fill it directly.
type Options struct {
	// Level is the minimum level emitted: debug, info, warn, error.
	Level string

	// Format selects the handler: "text" for development, anything else
	// is JSON for production.
	Format string

	// Output selects the destination: "stderr" or "stdout" (default).
	Output string

	// Version is stamped on every entry alongside the service name.
	Version string
}

// Logger wraps slog.Logger with Slipstream-specific defaults.
//
// Thread Safety:
//   - All methods are safe for concurrent use from multiple goroutines.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with level filtering, the chosen output format,
// and the service/version default fields on every entry.
func New(opts Options) *Logger {
	var output io.Writer
	switch strings.ToLower(opts.Output) {
	case "stderr":
		output = os.Stderr
	default:
		output = os.Stdout
	}
	return newWithWriter(opts, output)
}

// newWithWriter is the testable core of New.
func newWithWriter(opts Options, output io.Writer) *Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "text":
		handler = slog.NewTextHandler(output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(output, handlerOpts)
	}

	version := opts.Version
	if version == "" {
		version = "dev"
	}
	handler = handler.WithAttrs([]slog.Attr{
		slog.String("service", "slipstream"),
		slog.String("version", version),
	})

	return &Logger{Logger: slog.New(handler)}
}

// parseLevel converts a string log level to slog.Level.
// Defaults to info if unrecognised.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a new Logger with additional default attributes.
//
// Example:
//
//	gwLogger := logger.With("component", "gateway")
//	gwLogger.Info("connected") // Includes component=gateway
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Default creates a JSON/info logger for use before configuration is
// loaded. It should only be needed during early startup.
func Default() *Logger {
	return New(Options{Level: "info", Format: "json", Output: "stdout"})
}
