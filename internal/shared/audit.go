package shared

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// AuditLog captures a single business-level action for traceability.
type AuditLog struct {
	EventID  string
	ActorID  int64
	Action   string
	Entity   string
	EntityID string
	Meta     map[string]any
	At       time.Time
}

// Recorder persists audit entries. Implementations must be safe for
// concurrent use.
type Recorder interface {
	Record(ctx context.Context, log AuditLog) error
}

// LogRecorder writes audit entries to the structured logger.
type LogRecorder struct {
	logger *slog.Logger
}

// NewLogRecorder builds a Recorder backed by slog.
func NewLogRecorder(logger *slog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

// Record assigns an event id and timestamp, then emits the entry.
func (r *LogRecorder) Record(ctx context.Context, log AuditLog) error {
	if log.EventID == "" {
		log.EventID = uuid.NewString()
	}
	if log.At.IsZero() {
		log.At = time.Now().UTC()
	}
	if r.logger != nil {
		r.logger.InfoContext(ctx, "audit",
			slog.String("event_id", log.EventID),
			slog.Int64("actor_id", log.ActorID),
			slog.String("action", log.Action),
			slog.String("entity", log.Entity),
			slog.String("entity_id", log.EntityID),
			slog.Any("meta", log.Meta),
			slog.Time("at", log.At),
		)
	}
	return nil
}
