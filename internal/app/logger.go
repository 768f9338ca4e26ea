package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/expandr/internal/config"
)

// newLogger builds an isolated slog.Logger from the log section of the
// configuration. It does not set the global logger.
func newLogger(cfg config.Log, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel(), AddSource: cfg.Source}
	if cfg.JSON() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
