package oauthapp

import (
	"context"
	"fmt"

	"github.com/heartmarshall/records-api/internal/domain"
	"github.com/heartmarshall/records-api/internal/service/record"
)

// Get returns the app with clientID if the caller may read it.
func (s *Service) Get(ctx context.Context, clientID string, view record.ViewOptions) (map[string]any, error) {
	caller, err := record.CallerFromCtx(ctx)
	if err != nil {
		return nil, fmt.Errorf("oauthapp.Get: %w", err)
	}

	rec, err := s.engine.Get(ctx, domain.Record{Schema.Identity: clientID})
	if err != nil {
		return nil, fmt.Errorf("oauthapp.Get: %w", err)
	}

	if err := s.authz.AuthorizeRead(caller, rec, Schema.Owner); err != nil {
		return nil, fmt.Errorf("oauthapp.Get: %w", err)
	}

	return s.project(caller, rec, view), nil
}

// List returns the caller's apps. Admins may list another owner's apps, or
// every app when no owner is given.
func (s *Service) List(ctx context.Context, in ListInput) ([]map[string]any, error) {
	caller, err := record.CallerFromCtx(ctx)
	if err != nil {
		return nil, fmt.Errorf("oauthapp.List: %w", err)
	}

	filter := domain.Record{Schema.Owner: caller.Identity()}
	if caller.IsAdmin() {
		filter = domain.Record{}
		if in.Owner != "" {
			filter[Schema.Owner] = in.Owner
		}
	}

	recs, err := s.engine.List(ctx, filter, in.Page)
	if err != nil {
		return nil, fmt.Errorf("oauthapp.List: %w", err)
	}

	admin := in.View.WantsAdmin() && s.authz.CanViewAdmin(caller)
	return record.ProjectAll(Schema, recs, admin, in.View.Fields), nil
}
