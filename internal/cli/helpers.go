package cli

import (
	"log/slog"

	"github.com/aretw0/rotary/internal/logging"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to keep Stdout clean for cipher output).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}
