package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Useful for development when you want to see protocol events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Errors log at Warn level,
// everything else at Debug.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}

	if event.Stage != "" {
		attrs = append(attrs, slog.String("stage", event.Stage))
	}
	if event.Method != "" {
		attrs = append(attrs,
			slog.String("method", event.Method),
			slog.String("path", event.Path),
		)
	}
	if event.Category == CategoryResponse {
		attrs = append(attrs, slog.Int("status", event.Status))
	}
	if event.LFDI != "" {
		attrs = append(attrs, slog.String("lfdi", event.LFDI))
	}

	level := slog.LevelDebug
	msg := "protocol event"
	if event.Category == CategoryError {
		level = slog.LevelWarn
		msg = event.Error
		attrs = append(attrs, slog.String("error", event.Error))
	}

	a.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
