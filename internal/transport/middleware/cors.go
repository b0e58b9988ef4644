package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/records-api/internal/config"
)

// CORS answers preflight requests itself and decorates every other response
// with Access-Control-Allow-Origin when the Origin is allowed. Allowed
// origins are echoed back verbatim, so "*" still works with credentials.
func CORS(cfg config.CORSConfig) Middleware {
	origins := splitList(cfg.AllowedOrigins)
	anyOrigin := slices.Contains(origins, "*")
	methods := strings.Join(splitList(cfg.AllowedMethods), ", ")
	headers := strings.Join(splitList(cfg.AllowedHeaders), ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := origin != "" && (anyOrigin || slices.Contains(origins, origin))
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			if allowed {
				h.Set("Access-Control-Allow-Methods", methods)
				h.Set("Access-Control-Allow-Headers", headers)
				h.Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
