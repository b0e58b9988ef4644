// Package auditstream publishes audit events to a Redis stream.
package auditstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/records-api/internal/domain"
)

// streamAdder is the subset of the redis client used by the sink.
type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// Sink appends one stream entry per audit event.
type Sink struct {
	client streamAdder
	stream string
	maxLen int64
}

// New creates a Sink writing to stream. A positive maxLen caps the stream
// length approximately.
func New(client streamAdder, stream string, maxLen int64) *Sink {
	return &Sink{client: client, stream: stream, maxLen: maxLen}
}

// Emit appends event to the stream.
func (s *Sink) Emit(ctx context.Context, event domain.AuditEvent) error {
	before, err := json.Marshal(event.Before)
	if err != nil {
		return fmt.Errorf("auditstream.Emit marshal before: %w", err)
	}
	after, err := json.Marshal(event.After)
	if err != nil {
		return fmt.Errorf("auditstream.Emit marshal after: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"id":          event.ID.String(),
			"entity_type": event.EntityType.String(),
			"entity_id":   event.EntityID,
			"owner":       event.Owner,
			"actor":       event.Actor,
			"action":      event.Action.String(),
			"label":       event.Label,
			"before":      string(before),
			"after":       string(after),
			"request_id":  event.RequestID,
			"created_at":  event.CreatedAt.UTC().Format(time.RFC3339Nano),
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}

	if err := s.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("auditstream.Emit: %w", err)
	}
	return nil
}
