// Package auditlog writes audit events to a structured logger.
package auditlog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/records-api/internal/domain"
)

// Sink logs every audit event at info level under the "audit" group.
type Sink struct {
	log *slog.Logger
}

func New(logger *slog.Logger) *Sink {
	return &Sink{log: logger.With("component", "audit")}
}

// Emit never fails.
func (s *Sink) Emit(ctx context.Context, event domain.AuditEvent) error {
	s.log.LogAttrs(ctx, slog.LevelInfo, "record changed",
		slog.Group("audit",
			slog.String("id", event.ID.String()),
			slog.String("entity_type", event.EntityType.String()),
			slog.String("entity_id", event.EntityID),
			slog.String("owner", event.Owner),
			slog.String("actor", event.Actor),
			slog.String("action", event.Action.String()),
			slog.String("label", event.Label),
			slog.Any("before", map[string]any(event.Before)),
			slog.Any("after", map[string]any(event.After)),
			slog.String("request_id", event.RequestID),
			slog.Time("created_at", event.CreatedAt),
		),
	)
	return nil
}
