// Package logging builds the slog loggers used by the CLI and server
// surfaces. Converted ciphertext goes to stdout, so every logger here
// writes somewhere else.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger at the given level, writing to stderr
// to keep stdout clean for cipher output.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger on an explicit writer. Attribute keys are
// normalized so every log site reads the same: "error" values land under
// the short "err" key.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
