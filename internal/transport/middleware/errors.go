package middleware

import (
	"encoding/json"
	"net/http"
)

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type errorBody struct {
	Error  string       `json:"error"`
	Errors []fieldError `json:"errors"`
}

// writeError writes the same error envelope the REST handlers use.
func writeError(w http.ResponseWriter, status int, code, field, rule string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:  code,
		Errors: []fieldError{{Field: field, Rule: rule}},
	})
}
