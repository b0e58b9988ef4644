package userdata

import (
	"context"
	"fmt"

	"github.com/heartmarshall/records-api/internal/domain"
	"github.com/heartmarshall/records-api/internal/service/record"
	"github.com/heartmarshall/records-api/pkg/ctxutil"
)

var (
	prohibitedPost  = []string{"id", "uuid"}
	prohibitedPatch = []string{"id", "uuid"}
	prohibitedPut   = []string{"id"}

	labels = record.Labels{
		Created: "User data created via API",
		Updated: "User data updated via API",
	}
)

// Post creates the entry for (owner, key) or updates it when one exists.
// Non-admins always write their own data. Admins target ownerID when given,
// otherwise the users_uuid in the request.
func (s *Service) Post(ctx context.Context, ownerID string, in WriteInput) (Output, error) {
	caller, err := record.CallerFromCtx(ctx)
	if err != nil {
		return Output{}, fmt.Errorf("userdata.Post: %w", err)
	}

	input := s.normalize(ctx, in.Fields)

	switch {
	case !caller.IsAdmin():
		input[Schema.Owner] = caller.Identity()
	case ownerID != "":
		input[Schema.Owner] = ownerID
	}

	input = record.Sanitize(input, prohibitedPost, nil)

	res, err := s.engine.MergeAndSave(ctx, record.MergeRequest{
		Lookup: domain.Record{
			Schema.Owner: input.String(Schema.Owner),
			"key":        input.String("key"),
		},
		Input:     input,
		Pinned:    []string{Schema.Identity},
		Required:  required,
		Authorize: s.ownership(caller),
		Actor:     caller.Identity(),
		Labels:    labels,
		RequestID: ctxutil.RequestIDFromCtx(ctx),
	})
	if err != nil {
		return Output{}, fmt.Errorf("userdata.Post: %w", err)
	}

	return Output{
		Record:  record.Project(Schema, res.Record, s.adminView(caller, in.View), in.View.Fields),
		Created: res.Created,
	}, nil
}

// Patch updates the entry with the given uuid. Owner and key stay fixed.
func (s *Service) Patch(ctx context.Context, id string, in WriteInput) (Output, error) {
	out, err := s.update(ctx, id, in, prohibitedPatch, []string{Schema.Identity, Schema.Owner, "key"})
	if err != nil {
		return Output{}, fmt.Errorf("userdata.Patch: %w", err)
	}
	return out, nil
}

// Put replaces the entry with the given uuid. The key may change; the owner stays fixed.
func (s *Service) Put(ctx context.Context, id string, in WriteInput) (Output, error) {
	out, err := s.update(ctx, id, in, prohibitedPut, []string{Schema.Identity, Schema.Owner})
	if err != nil {
		return Output{}, fmt.Errorf("userdata.Put: %w", err)
	}
	return out, nil
}

func (s *Service) update(ctx context.Context, id string, in WriteInput, prohibited, pinned []string) (Output, error) {
	caller, err := record.CallerFromCtx(ctx)
	if err != nil {
		return Output{}, err
	}

	input := record.Sanitize(s.normalize(ctx, in.Fields), prohibited, nil)

	res, err := s.engine.MergeAndSave(ctx, record.MergeRequest{
		Lookup:    domain.Record{Schema.Identity: id},
		Input:     input,
		Pinned:    pinned,
		Required:  required,
		MustExist: true,
		Authorize: s.ownership(caller),
		Actor:     caller.Identity(),
		Labels:    labels,
		RequestID: ctxutil.RequestIDFromCtx(ctx),
	})
	if err != nil {
		return Output{}, err
	}

	return Output{Record: record.Project(Schema, res.Record, s.adminView(caller, in.View), in.View.Fields)}, nil
}
