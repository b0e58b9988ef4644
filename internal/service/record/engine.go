package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/records-api/internal/domain"
)

// store defines the record persistence operations needed by the engine.
type store interface {
	// Load returns the single record matching every lookup field, locked for
	// update when called inside a transaction. Missing rows yield domain.ErrNotFound.
	Load(ctx context.Context, schema domain.Schema, lookup domain.Record) (domain.Record, error)
	Insert(ctx context.Context, schema domain.Schema, rec domain.Record) (domain.Record, error)
	Update(ctx context.Context, schema domain.Schema, identity string, rec domain.Record) (domain.Record, error)
	List(ctx context.Context, schema domain.Schema, filter domain.Record, page domain.Page) ([]domain.Record, error)
}

// auditSink receives audit events after a successful write.
type auditSink interface {
	Emit(ctx context.Context, event domain.AuditEvent) error
}

// txManager defines the transaction manager interface needed by the engine.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// AuthorizeFunc decides whether the write may touch target. It runs after the
// pre-image is loaded and before anything is merged or persisted.
type AuthorizeFunc func(target domain.Record) error

// MergeRequest describes one merge-on-save write.
type MergeRequest struct {
	// Lookup is an equality predicate on the natural key of the target record.
	Lookup domain.Record
	// Input holds sanitized fields to overlay onto the pre-image.
	Input domain.Record
	// Pinned fields keep their stored values regardless of Input.
	Pinned []string
	// Required fields must be present and non-empty after the overlay.
	Required []string
	// MustExist turns a missing pre-image into domain.ErrNotFound instead of a create.
	MustExist bool
	// Authorize is checked against the pre-image before anything is merged.
	// On create there is no pre-image, so it sees the validated merged record.
	Authorize AuthorizeFunc
	// Labels name the audit event for each outcome.
	Labels Labels

	Actor     string
	RequestID string
}

// Labels are the human-readable audit labels of a write.
type Labels struct {
	Created string
	Updated string
}

func (l Labels) pick(created bool) string {
	if created {
		return l.Created
	}
	return l.Updated
}

// Result is the outcome of a successful MergeAndSave.
type Result struct {
	Record  domain.Record
	Before  domain.Record
	Created bool
}

// Engine runs the load, merge, validate, persist and audit steps for one resource.
type Engine struct {
	log       *slog.Logger
	schema    domain.Schema
	store     store
	audit     auditSink
	tx        txManager
	validator *Validator
	now       func() time.Time
	newID     func() string
}

// NewEngine creates an Engine bound to schema.
func NewEngine(
	logger *slog.Logger,
	schema domain.Schema,
	st store,
	audit auditSink,
	tx txManager,
	validator *Validator,
) *Engine {
	return &Engine{
		log:       logger.With("service", "record", "entity", schema.Entity.String()),
		schema:    schema,
		store:     st,
		audit:     audit,
		tx:        tx,
		validator: validator,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Schema returns the schema the engine is bound to.
func (e *Engine) Schema() domain.Schema { return e.schema }

// MergeAndSave loads the record matching req.Lookup, overlays req.Input,
// validates and persists the result in a single transaction. The audit event
// is emitted after commit; its failure is logged and never returned.
func (e *Engine) MergeAndSave(ctx context.Context, req MergeRequest) (Result, error) {
	var res Result

	err := e.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := e.store.Load(ctx, e.schema, req.Lookup)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			if req.MustExist {
				return err
			}
			existing = nil
		case err != nil:
			return fmt.Errorf("load: %w", err)
		}

		created := existing == nil
		if !created && req.Authorize != nil {
			if err := req.Authorize(existing); err != nil {
				return err
			}
		}

		before := existing.Clone()

		merged := before.Clone()
		for k, v := range req.Input {
			merged[k] = v
		}
		for _, f := range req.Pinned {
			if v, ok := existing[f]; ok {
				merged[f] = v
			}
		}

		if errs := e.validator.Validate(e.schema, merged, req.Required); len(errs) > 0 {
			return domain.NewValidationErrors(errs)
		}

		if created && req.Authorize != nil {
			if err := req.Authorize(merged); err != nil {
				return err
			}
		}

		now := e.now().UTC()
		if e.schema.Has("updated") {
			merged["updated"] = now
		}

		var saved domain.Record
		if created {
			if domain.IsEmptyValue(merged[e.schema.Identity]) {
				merged[e.schema.Identity] = e.newID()
			}
			if e.schema.Has("created") {
				merged["created"] = now
			}
			saved, err = e.store.Insert(ctx, e.schema, merged)
		} else {
			saved, err = e.store.Update(ctx, e.schema, existing.String(e.schema.Identity), merged)
		}
		if err != nil {
			return &domain.PersistenceError{
				Entity:   e.schema.Entity,
				Conflict: errors.Is(err, domain.ErrAlreadyExists),
				Err:      err,
			}
		}

		res = Result{Record: saved, Before: before, Created: created}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("record.MergeAndSave: %w", err)
	}

	e.emit(ctx, req, res)

	return res, nil
}

func (e *Engine) emit(ctx context.Context, req MergeRequest, res Result) {
	action := domain.AuditActionUpdate
	if res.Created {
		action = domain.AuditActionCreate
	}

	event := domain.AuditEvent{
		ID:         uuid.New(),
		EntityType: e.schema.Entity,
		EntityID:   res.Record.String(e.schema.Identity),
		Owner:      res.Record.String(e.schema.Owner),
		Actor:      req.Actor,
		Action:     action,
		Label:      req.Labels.pick(res.Created),
		Before:     Redact(e.schema, res.Before),
		After:      Redact(e.schema, res.Record),
		RequestID:  req.RequestID,
		CreatedAt:  e.now().UTC(),
	}

	if err := e.audit.Emit(context.WithoutCancel(ctx), event); err != nil {
		e.log.ErrorContext(ctx, "audit emit failed",
			slog.String("entity_id", event.EntityID),
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}

// Get returns the single record matching lookup without locking.
func (e *Engine) Get(ctx context.Context, lookup domain.Record) (domain.Record, error) {
	rec, err := e.store.Load(ctx, e.schema, lookup)
	if err != nil {
		return nil, fmt.Errorf("record.Get: %w", err)
	}
	return rec, nil
}

// List returns records matching every filter field, ordered by creation.
func (e *Engine) List(ctx context.Context, filter domain.Record, page domain.Page) ([]domain.Record, error) {
	recs, err := e.store.List(ctx, e.schema, filter, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("record.List: %w", err)
	}
	return recs, nil
}
