package userdata

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/records-api/internal/domain"
	"github.com/heartmarshall/records-api/internal/service/record"
)

// recordEngine defines the merge-on-save operations needed by the user data service.
type recordEngine interface {
	MergeAndSave(ctx context.Context, req record.MergeRequest) (record.Result, error)
	Get(ctx context.Context, lookup domain.Record) (domain.Record, error)
	List(ctx context.Context, filter domain.Record, page domain.Page) ([]domain.Record, error)
}

// authorizer defines the permission checks needed by the user data service.
type authorizer interface {
	AuthorizeOwnership(caller domain.Caller, existing domain.Record, ownerField string) error
	AuthorizeRead(caller domain.Caller, existing domain.Record, ownerField string) error
	CanViewAdmin(caller domain.Caller) bool
}

// Service implements per-user key/value data operations.
type Service struct {
	log    *slog.Logger
	engine recordEngine
	authz  authorizer
}

// NewService creates a new user data service.
func NewService(logger *slog.Logger, engine recordEngine, authz authorizer) *Service {
	return &Service{
		log:    logger.With("service", "userdata"),
		engine: engine,
		authz:  authz,
	}
}

func (s *Service) normalize(ctx context.Context, raw map[string]any) domain.Record {
	in, dropped := record.Normalize(Schema, raw)
	if len(dropped) > 0 {
		s.log.DebugContext(ctx, "ignoring unknown fields", slog.Any("fields", dropped))
	}
	return in
}

func (s *Service) ownership(caller domain.Caller) record.AuthorizeFunc {
	return func(target domain.Record) error {
		return s.authz.AuthorizeOwnership(caller, target, Schema.Owner)
	}
}

func (s *Service) adminView(caller domain.Caller, opts record.ViewOptions) bool {
	return opts.WantsAdmin() && s.authz.CanViewAdmin(caller)
}
