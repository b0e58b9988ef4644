package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/records-api/internal/domain"
	"github.com/heartmarshall/records-api/internal/transport/middleware"
)

var (
	errRouteNotFound    = domain.FieldError{Field: "route", Rule: "not_found"}
	errMethodNotAllowed = domain.FieldError{Field: "method", Rule: "not_allowed"}
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Apps     *OAuthAppHandler
	UserData *UserDataHandler
}

// Stack holds the request middleware that depends on runtime wiring.
// RateLimit is optional.
type Stack struct {
	CORS      middleware.Middleware
	Auth      middleware.Middleware
	RateLimit middleware.Middleware
}

// NewRouter builds the HTTP routing tree. Probes sit outside auth and
// throttling; every /api route runs RequestID, Recovery, CORS, Auth, Logger
// and RateLimit in that order.
func NewRouter(logger *slog.Logger, h Handlers, s Stack) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		if s.CORS != nil {
			r.Use(s.CORS)
		}
		r.Use(s.Auth)
		r.Use(middleware.Logger(logger))
		if s.RateLimit != nil {
			r.Use(s.RateLimit)
		}

		r.Route("/oauth2/apps", func(r chi.Router) {
			r.Get("/", h.Apps.List)
			r.Post("/", h.Apps.Create)
			r.Get("/{id}", h.Apps.Get)
			r.Patch("/{id}", h.Apps.Patch)
			r.Put("/{id}", h.Apps.Put)
		})

		r.Route("/users/data", func(r chi.Router) {
			r.Get("/", h.UserData.List)
			r.Post("/", h.UserData.Post)
			r.Post("/{id}", h.UserData.Post)
			r.Get("/{id}", h.UserData.Get)
			r.Patch("/{id}", h.UserData.Patch)
			r.Put("/{id}", h.UserData.Put)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, domain.OAuthInvalidRequest, errRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, domain.OAuthInvalidRequest, errMethodNotAllowed)
	})

	return r
}
