package middleware

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/heartmarshall/records-api/pkg/ctxutil"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLen = 128

var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// RequestID reuses a well-formed incoming X-Request-Id or generates a new
// one, stores it in the context and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}

func validRequestID(id string) bool {
	return id != "" && len(id) <= maxRequestIDLen && requestIDPattern.MatchString(id)
}
