package oauthapp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/records-api/internal/domain"
	"github.com/heartmarshall/records-api/internal/service/record"
	"github.com/heartmarshall/records-api/pkg/ctxutil"
)

// Fields a client may never set on any write. Credentials are dropped
// separately on create so their generators still run.
var prohibited = []string{"id"}

var labels = record.Labels{
	Created: "OAuth2 app created via API",
	Updated: "OAuth2 app updated via API",
}

// Stored values that survive every update.
var pinned = []string{"client_id", "client_secret", "users_uuid"}

func newCredential() any { return uuid.New().String() }

// Create registers a new app. The owner defaults to the caller, status to
// approved, and the client credentials are always generated server-side.
func (s *Service) Create(ctx context.Context, in WriteInput) (Output, error) {
	caller, err := record.CallerFromCtx(ctx)
	if err != nil {
		return Output{}, fmt.Errorf("oauthapp.Create: %w", err)
	}

	input := s.normalize(ctx, in.Fields)
	delete(input, "client_id")
	delete(input, "client_secret")

	input = record.Sanitize(input, prohibited, []record.Default{
		{Field: "users_uuid", Value: caller.Identity()},
		{Field: "status", Value: domain.AppStatusApproved.String()},
		{Field: "client_id", Generate: newCredential},
		{Field: "client_secret", Generate: newCredential},
	})

	res, err := s.engine.MergeAndSave(ctx, record.MergeRequest{
		Lookup:    domain.Record{Schema.Identity: input[Schema.Identity]},
		Input:     input,
		Required:  required,
		Authorize: s.ownership(caller),
		Actor:     caller.Identity(),
		Labels:    labels,
		RequestID: ctxutil.RequestIDFromCtx(ctx),
	})
	if err != nil {
		return Output{}, fmt.Errorf("oauthapp.Create: %w", err)
	}

	s.log.InfoContext(ctx, "app registered",
		slog.String("client_id", res.Record.String("client_id")),
		slog.String("client_secret", record.Fingerprint(res.Record.String("client_secret"))),
		slog.String("owner", res.Record.String("users_uuid")),
	)

	return Output{Record: s.project(caller, res.Record, in.View), Created: res.Created}, nil
}

// Patch updates the fields present in the request on the app with clientID.
func (s *Service) Patch(ctx context.Context, clientID string, in WriteInput) (Output, error) {
	out, err := s.update(ctx, clientID, in)
	if err != nil {
		return Output{}, fmt.Errorf("oauthapp.Patch: %w", err)
	}
	return out, nil
}

// Put replaces the writable fields present in the request on the app with clientID.
func (s *Service) Put(ctx context.Context, clientID string, in WriteInput) (Output, error) {
	out, err := s.update(ctx, clientID, in)
	if err != nil {
		return Output{}, fmt.Errorf("oauthapp.Put: %w", err)
	}
	return out, nil
}

func (s *Service) update(ctx context.Context, clientID string, in WriteInput) (Output, error) {
	caller, err := record.CallerFromCtx(ctx)
	if err != nil {
		return Output{}, err
	}

	input := record.Sanitize(s.normalize(ctx, in.Fields), prohibited, nil)

	res, err := s.engine.MergeAndSave(ctx, record.MergeRequest{
		Lookup:    domain.Record{Schema.Identity: clientID},
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

	return Output{Record: s.project(caller, res.Record, in.View)}, nil
}
