// Package recordtest provides in-memory collaborators for exercising a
// record.Engine without a database.
package recordtest

import (
	"context"
	"sort"
	"sync"

	"github.com/heartmarshall/records-api/internal/domain"
)

// MemStore keeps records in memory and enforces identity uniqueness plus
// any extra Unique column sets.
type MemStore struct {
	Unique [][]string

	mu     sync.Mutex
	rows   []domain.Record
	nextID int64
}

// Rows returns a snapshot of every stored record.
func (m *MemStore) Rows() []domain.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Record, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Clone()
	}
	return out
}

// Seed stores rec as-is, assigning an id.
func (m *MemStore) Seed(rec domain.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r := rec.Clone()
	r["id"] = m.nextID
	m.rows = append(m.rows, r)
}

func (m *MemStore) Load(_ context.Context, _ domain.Schema, lookup domain.Record) (domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if matches(r, lookup) {
			return r.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MemStore) Insert(_ context.Context, schema domain.Schema, rec domain.Record) (domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.violates(schema, rec, -1) {
		return nil, domain.ErrAlreadyExists
	}
	m.nextID++
	r := rec.Clone()
	r["id"] = m.nextID
	m.rows = append(m.rows, r)
	return r.Clone(), nil
}

func (m *MemStore) Update(_ context.Context, schema domain.Schema, identity string, rec domain.Record) (domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.String(schema.Identity) != identity {
			continue
		}
		if m.violates(schema, rec, i) {
			return nil, domain.ErrAlreadyExists
		}
		updated := rec.Clone()
		updated["id"] = r["id"]
		m.rows[i] = updated
		return updated.Clone(), nil
	}
	return nil, domain.ErrNotFound
}

func (m *MemStore) List(_ context.Context, _ domain.Schema, filter domain.Record, page domain.Page) ([]domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Record
	for _, r := range m.rows {
		if matches(r, filter) {
			out = append(out, r.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i]["id"].(int64) < out[j]["id"].(int64) })

	if page.Offset >= len(out) {
		return nil, nil
	}
	out = out[page.Offset:]
	if page.Limit > 0 && page.Limit < len(out) {
		out = out[:page.Limit]
	}
	return out, nil
}

func (m *MemStore) violates(schema domain.Schema, rec domain.Record, skip int) bool {
	sets := append([][]string{{schema.Identity}}, m.Unique...)
	for i, r := range m.rows {
		if i == skip {
			continue
		}
		for _, cols := range sets {
			same := true
			for _, c := range cols {
				if r.String(c) != rec.String(c) {
					same = false
					break
				}
			}
			if same {
				return true
			}
		}
	}
	return false
}

func matches(r, filter domain.Record) bool {
	for k := range filter {
		if r.String(k) != filter.String(k) {
			return false
		}
	}
	return true
}

// MemAudit records emitted events.
type MemAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *MemAudit) Emit(_ context.Context, event domain.AuditEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
	return nil
}

// Events returns every event emitted so far.
func (a *MemAudit) Events() []domain.AuditEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.AuditEvent(nil), a.events...)
}

// NoTx runs the callback directly.
type NoTx struct{}

func (NoTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
