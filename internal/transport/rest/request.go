package rest

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/heartmarshall/records-api/internal/domain"
	"github.com/heartmarshall/records-api/internal/service/record"
)

var errBodyTooLarge = errors.New("request body too large")

// decodeFields reads the request body into a flat field map. JSON objects and
// form-encoded bodies are accepted; an empty body yields an empty map.
func decodeFields(w http.ResponseWriter, r *http.Request, maxBytes int64) (map[string]any, error) {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return decodeForm(r, mediaType, maxBytes)
	default:
		return decodeJSON(r)
	}
}

func decodeJSON(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, bodyError(err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func decodeForm(r *http.Request, mediaType string, maxBytes int64) (map[string]any, error) {
	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(maxBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, bodyError(err)
	}

	fields := make(map[string]any, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) == 1 {
			fields[k] = vs[0]
			continue
		}
		fields[k] = vs
	}
	return fields, nil
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errBodyTooLarge
	}
	return domain.NewValidationError("body", "invalid")
}

// viewOptions reads ?view= and ?fields=.
func viewOptions(r *http.Request) record.ViewOptions {
	q := r.URL.Query()
	return record.ViewOptions{
		View:   q.Get("view"),
		Fields: record.ParseFields(q.Get("fields")),
	}
}

// pageParams reads ?limit= and ?offset=. Out-of-range values are clamped
// later by domain.Page.Normalize; non-numeric values are rejected.
func pageParams(r *http.Request) (domain.Page, error) {
	var (
		page domain.Page
		errs []domain.FieldError
	)
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Rule: "numeric"})
		}
		page.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Rule: "numeric"})
		}
		page.Offset = n
	}

	if len(errs) > 0 {
		return domain.Page{}, domain.NewValidationErrors(errs)
	}
	return page, nil
}

// writeBodyError reports a body that could not be decoded.
func writeBodyError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, domain.OAuthInvalidRequest,
			domain.FieldError{Field: "body", Rule: "too_large"})
		return
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, domain.OAuthInvalidRequest, verr.Errors...)
		return
	}
	writeError(w, http.StatusBadRequest, domain.OAuthInvalidRequest, domain.FieldError{Field: "body", Rule: "invalid"})
}
