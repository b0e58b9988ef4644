package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/records-api/internal/service/oauthapp"
	"github.com/heartmarshall/records-api/internal/service/record"
)

type oauthAppService interface {
	Create(ctx context.Context, in oauthapp.WriteInput) (oauthapp.Output, error)
	Patch(ctx context.Context, clientID string, in oauthapp.WriteInput) (oauthapp.Output, error)
	Put(ctx context.Context, clientID string, in oauthapp.WriteInput) (oauthapp.Output, error)
	Get(ctx context.Context, clientID string, view record.ViewOptions) (map[string]any, error)
	List(ctx context.Context, in oauthapp.ListInput) ([]map[string]any, error)
}

// OAuthAppHandler serves /api/oauth2/apps.
type OAuthAppHandler struct {
	svc      oauthAppService
	log      *slog.Logger
	maxBytes int64
}

// NewOAuthAppHandler creates an OAuthAppHandler.
func NewOAuthAppHandler(svc oauthAppService, logger *slog.Logger, maxBodyBytes int64) *OAuthAppHandler {
	return &OAuthAppHandler{svc: svc, log: logger.With("handler", "oauthapp"), maxBytes: maxBodyBytes}
}

// Create handles POST /api/oauth2/apps.
func (h *OAuthAppHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r, h.maxBytes)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	out, err := h.svc.Create(r.Context(), oauthapp.WriteInput{Fields: fields, View: viewOptions(r)})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, out.Record)
}

// Patch handles PATCH /api/oauth2/apps/{id}.
func (h *OAuthAppHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.svc.Patch)
}

// Put handles PUT /api/oauth2/apps/{id}.
func (h *OAuthAppHandler) Put(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.svc.Put)
}

func (h *OAuthAppHandler) update(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, string, oauthapp.WriteInput) (oauthapp.Output, error),
) {
	fields, err := decodeFields(w, r, h.maxBytes)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	out, err := op(r.Context(), chi.URLParam(r, "id"), oauthapp.WriteInput{Fields: fields, View: viewOptions(r)})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Record)
}

// Get handles GET /api/oauth2/apps/{id}.
func (h *OAuthAppHandler) Get(w http.ResponseWriter, r *http.Request) {
	app, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"), viewOptions(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, app)
}

// List handles GET /api/oauth2/apps?users_uuid=&limit=&offset=.
func (h *OAuthAppHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	apps, err := h.svc.List(r.Context(), oauthapp.ListInput{
		Owner: r.URL.Query().Get("users_uuid"),
		Page:  page,
		View:  viewOptions(r),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, apps)
}
