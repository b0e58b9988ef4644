// Package recordstore persists schema-bounded records in PostgreSQL.
// One Store serves every resource; the table and columns come from the schema.
package recordstore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/records-api/internal/adapter/postgres"
	"github.com/heartmarshall/records-api/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Store provides record persistence backed by PostgreSQL.
type Store struct {
	db postgres.Querier
}

// New creates a new record store.
func New(db postgres.Querier) *Store {
	return &Store{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Load returns the single row matching every lookup column. Inside a
// transaction the row is locked with FOR UPDATE.
func (s *Store) Load(ctx context.Context, schema domain.Schema, lookup domain.Record) (domain.Record, error) {
	q := psql.Select(schema.Columns()...).
		From(schema.Table).
		Where(squirrel.Eq(lookup)).
		Limit(1)
	if postgres.InTx(ctx) {
		q = q.Suffix("FOR UPDATE")
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s build select: %w", schema.Table, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, s.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, schema.Table, describe(lookup))
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToMap)
	if err != nil {
		return nil, postgres.MapError(err, schema.Table, describe(lookup))
	}

	return domain.Record(row), nil
}

// List returns rows matching every filter column, ordered by id.
func (s *Store) List(ctx context.Context, schema domain.Schema, filter domain.Record, page domain.Page) ([]domain.Record, error) {
	q := psql.Select(schema.Columns()...).
		From(schema.Table).
		OrderBy("id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))
	if len(filter) > 0 {
		q = q.Where(squirrel.Eq(filter))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s build list: %w", schema.Table, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, s.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, schema.Table, describe(filter))
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, postgres.MapError(err, schema.Table, describe(filter))
	}

	out := make([]domain.Record, len(maps))
	for i, m := range maps {
		out[i] = domain.Record(m)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert stores rec and returns the row as persisted.
func (s *Store) Insert(ctx context.Context, schema domain.Schema, rec domain.Record) (domain.Record, error) {
	cols, vals := columnsOf(schema, rec, "id")

	q := psql.Insert(schema.Table).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING " + strings.Join(schema.Columns(), ", "))

	return s.writeReturning(ctx, schema, q, rec.String(schema.Identity))
}

// Update overwrites the row with the given identity and returns it as persisted.
func (s *Store) Update(ctx context.Context, schema domain.Schema, identity string, rec domain.Record) (domain.Record, error) {
	cols, vals := columnsOf(schema, rec, "id", "created", schema.Identity)

	set := make(map[string]any, len(cols))
	for i, c := range cols {
		set[c] = vals[i]
	}

	q := psql.Update(schema.Table).
		SetMap(set).
		Where(squirrel.Eq{schema.Identity: identity}).
		Suffix("RETURNING " + strings.Join(schema.Columns(), ", "))

	return s.writeReturning(ctx, schema, q, identity)
}

func (s *Store) writeReturning(ctx context.Context, schema domain.Schema, q squirrel.Sqlizer, key string) (domain.Record, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s build write: %w", schema.Table, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, s.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, schema.Table, key)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToMap)
	if err != nil {
		return nil, postgres.MapError(err, schema.Table, key)
	}

	return domain.Record(row), nil
}

// columnsOf returns the schema columns present in rec, sorted, minus skip.
func columnsOf(schema domain.Schema, rec domain.Record, skip ...string) ([]string, []any) {
	skipped := make(map[string]bool, len(skip))
	for _, c := range skip {
		skipped[c] = true
	}

	cols := make([]string, 0, len(rec))
	for k := range rec {
		if schema.Has(k) && !skipped[k] {
			cols = append(cols, k)
		}
	}
	sort.Strings(cols)

	vals := make([]any, len(cols))
	for i, c := range cols {
		vals[i] = rec[c]
	}
	return cols, vals
}

func describe(r domain.Record) string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + r.String(k)
	}
	return strings.Join(parts, ",")
}
