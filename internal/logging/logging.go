// Package logging provides the JSON-lines diagnostic channel.
//
// Records look like:
//
//	{"ts":"2026-01-15T10:30:00Z","level":"ERROR","msg":"copy open tabs failed","invocation":"5f0c...","err":"..."}
//
// Only unexpected failures are logged at error level; debug records trace
// each step of an invocation and are off unless requested.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// DebugEnv enables debug logging when set to "1".
const DebugEnv = "COPY_OPEN_EDITORS_DEBUG"

// Config configures the logger.
type Config struct {
	// Output is the writer for log output (default: os.Stderr)
	Output io.Writer

	// Level is the minimum log level (default: LevelWarn)
	Level slog.Level

	// Debug enables debug level logging (overrides Level)
	Debug bool
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: os.Stderr,
		Level:  slog.LevelWarn,
	}
}

// New creates a JSON-lines logger.
func New(cfg *Config) *slog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	level := cfg.Level
	if cfg.Debug || os.Getenv(DebugEnv) == "1" {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				a.Key = "ts"
			}
			return a
		},
	}

	return slog.New(slog.NewJSONHandler(output, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ForInvocation tags logger with a fresh invocation ID.
func ForInvocation(logger *slog.Logger) *slog.Logger {
	return logger.With("invocation", uuid.NewString())
}
