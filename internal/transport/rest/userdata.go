package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/records-api/internal/service/record"
	"github.com/heartmarshall/records-api/internal/service/userdata"
)

type userDataService interface {
	Post(ctx context.Context, ownerID string, in userdata.WriteInput) (userdata.Output, error)
	Patch(ctx context.Context, id string, in userdata.WriteInput) (userdata.Output, error)
	Put(ctx context.Context, id string, in userdata.WriteInput) (userdata.Output, error)
	Get(ctx context.Context, id string, view record.ViewOptions) (map[string]any, error)
	List(ctx context.Context, in userdata.ListInput) ([]map[string]any, error)
}

// UserDataHandler serves /api/users/data.
type UserDataHandler struct {
	svc      userDataService
	log      *slog.Logger
	maxBytes int64
}

// NewUserDataHandler creates a UserDataHandler.
func NewUserDataHandler(svc userDataService, logger *slog.Logger, maxBodyBytes int64) *UserDataHandler {
	return &UserDataHandler{svc: svc, log: logger.With("handler", "userdata"), maxBytes: maxBodyBytes}
}

// Post handles POST /api/users/data and POST /api/users/data/{id} (admin: {id} is the owner).
// Responds 201 when a new entry was created and 200 when an existing key was updated.
func (h *UserDataHandler) Post(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r, h.maxBytes)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	out, err := h.svc.Post(r.Context(), chi.URLParam(r, "id"), userdata.WriteInput{Fields: fields, View: viewOptions(r)})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, out.Record)
}

// Patch handles PATCH /api/users/data/{id}.
func (h *UserDataHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.svc.Patch)
}

// Put handles PUT /api/users/data/{id}.
func (h *UserDataHandler) Put(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, h.svc.Put)
}

func (h *UserDataHandler) update(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, string, userdata.WriteInput) (userdata.Output, error),
) {
	fields, err := decodeFields(w, r, h.maxBytes)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	out, err := op(r.Context(), chi.URLParam(r, "id"), userdata.WriteInput{Fields: fields, View: viewOptions(r)})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Record)
}

// Get handles GET /api/users/data/{id}.
func (h *UserDataHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"), viewOptions(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// List handles GET /api/users/data?users_uuid=&limit=&offset=.
func (h *UserDataHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.List(r.Context(), userdata.ListInput{
		Owner: r.URL.Query().Get("users_uuid"),
		Page:  page,
		View:  viewOptions(r),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
