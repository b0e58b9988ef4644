package record

import (
	"context"

	"github.com/heartmarshall/records-api/internal/domain"
	"github.com/heartmarshall/records-api/pkg/ctxutil"
)

// CallerFromCtx returns the authenticated caller, or an
// *domain.AuthorizationError when the request is anonymous.
func CallerFromCtx(ctx context.Context) (domain.Caller, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Caller{}, &domain.AuthorizationError{Actor: "anonymous", Reason: "authentication required"}
	}

	role := domain.UserRole(ctxutil.UserRoleFromCtx(ctx))
	if !role.IsValid() {
		role = domain.UserRoleUser
	}

	return domain.Caller{ID: id, Role: role}, nil
}
