package genlog

import (
	"io"

	"github.com/decred/slog"
)

// Backend wraps a decred/slog.Backend writing to a single io.Writer,
// handing out one named subsystem logger per caller, mirroring the
// EXCCoin-exccd daemon's logging setup.
type Backend struct {
	backend *slog.Backend
}

// NewBackend creates a Backend writing formatted log lines to w.
func NewBackend(w io.Writer) *Backend {
	return &Backend{backend: slog.NewBackend(w)}
}

// Logger returns a slog.Logger tagged with subsystem, filtered to level.
func (b *Backend) Logger(subsystem string, level slog.Level) slog.Logger {
	l := b.backend.Logger(subsystem)
	l.SetLevel(level)
	return l
}

// VerbosityLevel maps the CLI's -v/-q flags onto a slog.Level: quiet
// suppresses everything but errors, verbose drops to debug, and the
// default sits at info.
func VerbosityLevel(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
