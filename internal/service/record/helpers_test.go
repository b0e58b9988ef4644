package record

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/heartmarshall/records-api/internal/domain"
)

var testSchema = domain.Schema{
	Entity:   domain.EntityTypeUserData,
	Table:    "users_data",
	Identity: "uuid",
	Owner:    "users_uuid",
	Fields: []domain.Field{
		{Name: "id", Kind: domain.KindInt, ReadOnly: true},
		{Name: "uuid", Export: true, Rule: "uuid"},
		{Name: "users_uuid", Export: true, Rule: "uuid"},
		{Name: "key", Export: true, Rule: "max=255"},
		{Name: "value", Export: true},
		{Name: "type", Export: true, Rule: "max=32"},
		{Name: "token", Secret: true},
		{Name: "created", Kind: domain.KindTime, Export: true, ReadOnly: true},
		{Name: "updated", Kind: domain.KindTime, Export: true, ReadOnly: true},
	},
}

var testRequired = []string{"users_uuid", "key", "value"}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func defaultAuditMock() *auditSinkMock {
	return &auditSinkMock{
		EmitFunc: func(ctx context.Context, event domain.AuditEvent) error {
			return nil
		},
	}
}

// echoStore returns a storeMock whose writes return the record they were given.
func echoStore(existing domain.Record) *storeMock {
	return &storeMock{
		LoadFunc: func(ctx context.Context, schema domain.Schema, lookup domain.Record) (domain.Record, error) {
			if existing == nil {
				return nil, domain.ErrNotFound
			}
			return existing.Clone(), nil
		},
		InsertFunc: func(ctx context.Context, schema domain.Schema, rec domain.Record) (domain.Record, error) {
			out := rec.Clone()
			out["id"] = int64(1)
			return out, nil
		},
		UpdateFunc: func(ctx context.Context, schema domain.Schema, identity string, rec domain.Record) (domain.Record, error) {
			return rec.Clone(), nil
		},
	}
}

func newTestEngine(t *testing.T, st *storeMock, audit *auditSinkMock, tx *txManagerMock) *Engine {
	t.Helper()
	e := NewEngine(slog.Default(), testSchema, st, audit, tx, NewValidator())
	e.now = func() time.Time { return fixedNow }
	return e
}
