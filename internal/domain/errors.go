package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrPersistence   = errors.New("persistence error")
)

// OAuth2 error codes carried alongside API errors (RFC 6749 §5.2 vocabulary).
const (
	OAuthInvalidRequest = "invalid_request"
	OAuthAccessDenied   = "access_denied"
	OAuthServerError    = "server_error"
)

// OAuthCoder is implemented by errors that carry an OAuth2 error code.
type OAuthCoder interface {
	OAuthCode() string
}

// OAuthCode returns the OAuth2 error code attached to err, or "" if none.
func OAuthCode(err error) string {
	var c OAuthCoder
	if errors.As(err, &c) {
		return c.OAuthCode()
	}
	return ""
}

// FieldError describes a validation failure for a specific field.
// Rule names the check that failed ("required", "uuid", "max", ...).
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Rule)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func (e *ValidationError) OAuthCode() string { return OAuthInvalidRequest }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Rule: rule}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// AuthorizationError is returned when the caller neither owns the record
// nor holds the admin role.
type AuthorizationError struct {
	Actor  string
	Reason string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization: %s: %s", e.Actor, e.Reason)
}

func (e *AuthorizationError) Unwrap() error { return ErrUnauthorized }

func (e *AuthorizationError) OAuthCode() string { return OAuthAccessDenied }

// PersistenceError wraps a storage failure during save. Conflict is set when
// the store rejected the write because of a uniqueness constraint.
type PersistenceError struct {
	Entity   EntityType
	Conflict bool
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: save %s: %v", e.Entity, e.Err)
}

// Unwrap exposes both the category sentinel and the underlying cause.
func (e *PersistenceError) Unwrap() []error {
	if e.Conflict {
		return []error{ErrPersistence, ErrConflict, e.Err}
	}
	return []error{ErrPersistence, e.Err}
}

func (e *PersistenceError) OAuthCode() string { return OAuthInvalidRequest }
