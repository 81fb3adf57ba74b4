package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes packet events to an slog.Logger. Useful for
// development when you want to watch traffic in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event at Debug level, or Warn when the packet failed
// to decode.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("direction", event.Direction.String()),
		slog.String("remote", event.RemoteAddr),
		slog.Int("size", event.Size),
	}
	if event.Target != "" {
		attrs = append(attrs,
			slog.String("target", event.Target),
			slog.Uint64("type", uint64(event.Type)),
			slog.Uint64("seq", uint64(event.Sequence)),
		)
	}
	if event.Truncated {
		attrs = append(attrs, slog.Bool("truncated", true))
	}

	level := slog.LevelDebug
	if event.Err != "" {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", event.Err))
	}
	a.logger.LogAttrs(context.Background(), level, "packet", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
