package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/records-api/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Auth resolves the bearer token into a user ID and role on the context.
// Requests without a token pass through anonymously; handlers decide whether
// that is acceptable. A token that fails validation is rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, role, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "access_denied", "authentication_error", "Invalid access token.")
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithUserRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) < 7 || !strings.EqualFold(auth[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}
