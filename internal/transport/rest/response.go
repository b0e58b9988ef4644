package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/records-api/internal/domain"
)

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Error  string              `json:"error"`
	Errors []domain.FieldError `json:"errors"`
}

const (
	msgNoPermission   = "User does not have permission."
	msgUnableToUpdate = "Unable to update object."
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code string, errs ...domain.FieldError) {
	if errs == nil {
		errs = []domain.FieldError{}
	}
	writeJSON(w, status, errorResponse{Error: code, Errors: errs})
}

// handleError maps a service error to its HTTP status and error body.
// Only unexpected errors are logged at error level.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, domain.OAuthInvalidRequest, verr.Errors...)
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusUnauthorized, domain.OAuthAccessDenied,
			domain.FieldError{Field: "authentication_error", Rule: msgNoPermission})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, domain.OAuthInvalidRequest,
			domain.FieldError{Field: "id", Rule: "not_found"})
	case errors.Is(err, domain.ErrConflict):
		log.WarnContext(r.Context(), "write conflict", slog.String("error", err.Error()))
		writeError(w, http.StatusConflict, domain.OAuthInvalidRequest,
			domain.FieldError{Field: "error", Rule: msgUnableToUpdate})
	case errors.Is(err, domain.ErrPersistence):
		log.ErrorContext(r.Context(), "persistence failure", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, domain.OAuthInvalidRequest,
			domain.FieldError{Field: "error", Rule: msgUnableToUpdate})
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, domain.OAuthServerError,
			domain.FieldError{Field: "error", Rule: "Internal server error."})
	}
}
