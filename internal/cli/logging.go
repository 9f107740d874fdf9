package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/tatianab/trail-game/internal/config"
)

// newLogger returns the process logger and a function that closes its
// file. The game owns the terminal, so logs only go to TRAIL_LOG_FILE.
func newLogger(cfg *config.Config) (*slog.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	log := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return log, f.Close, nil
}
