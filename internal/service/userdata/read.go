package userdata

import (
	"context"
	"fmt"

	"github.com/heartmarshall/records-api/internal/domain"
	"github.com/heartmarshall/records-api/internal/service/record"
)

// Get returns the entry with the given uuid if the caller may read it.
func (s *Service) Get(ctx context.Context, id string, view record.ViewOptions) (map[string]any, error) {
	caller, err := record.CallerFromCtx(ctx)
	if err != nil {
		return nil, fmt.Errorf("userdata.Get: %w", err)
	}

	rec, err := s.engine.Get(ctx, domain.Record{Schema.Identity: id})
	if err != nil {
		return nil, fmt.Errorf("userdata.Get: %w", err)
	}

	if err := s.authz.AuthorizeRead(caller, rec, Schema.Owner); err != nil {
		return nil, fmt.Errorf("userdata.Get: %w", err)
	}

	return record.Project(Schema, rec, s.adminView(caller, view), view.Fields), nil
}

// List returns the caller's entries. Admins may pass Owner to list another
// user's data, or omit it to list everything.
func (s *Service) List(ctx context.Context, in ListInput) ([]map[string]any, error) {
	caller, err := record.CallerFromCtx(ctx)
	if err != nil {
		return nil, fmt.Errorf("userdata.List: %w", err)
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
		return nil, fmt.Errorf("userdata.List: %w", err)
	}

	return record.ProjectAll(Schema, recs, s.adminView(caller, in.View), in.View.Fields), nil
}
