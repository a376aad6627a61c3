package progress

import (
	"context"
	"log/slog"

	"github.com/modreg-org/modreg-cli/internal/domain"
)

// LogSink writes audit events to the structured logger.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a logger-backed event sink
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

// Emit logs one committed registry event.
func (s *LogSink) Emit(_ context.Context, event domain.Event) {
	s.log.Info("registry event",
		"event", event.RegistryEventName(),
		"detail", event.String(),
	)
}
