// Package audit implements the audit sink using PostgreSQL.
// It provides append-only storage of record change snapshots.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/records-api/internal/adapter/postgres"
	"github.com/heartmarshall/records-api/internal/domain"
)

const table = "audit_log"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Emit appends event to the audit log.
func (r *Repo) Emit(ctx context.Context, event domain.AuditEvent) error {
	before, err := json.Marshal(event.Before)
	if err != nil {
		return fmt.Errorf("audit marshal before: %w", err)
	}
	after, err := json.Marshal(event.After)
	if err != nil {
		return fmt.Errorf("audit marshal after: %w", err)
	}

	sql, args, err := psql.Insert(table).
		Columns("id", "entity_type", "entity_id", "owner", "actor", "action", "label", "before", "after", "request_id", "created_at").
		Values(event.ID, event.EntityType.String(), event.EntityID, event.Owner, event.Actor,
			event.Action.String(), event.Label, before, after, event.RequestID, event.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("audit build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, table, event.ID.String())
	}
	return nil
}
