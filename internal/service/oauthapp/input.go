package oauthapp

import (
	"github.com/heartmarshall/records-api/internal/domain"
	"github.com/heartmarshall/records-api/internal/service/record"
)

// WriteInput holds the decoded request body and view selection for a write.
type WriteInput struct {
	Fields map[string]any
	View   record.ViewOptions
}

// ListInput holds parameters for listing app registrations.
// Owner is honored only for admins.
type ListInput struct {
	Owner string
	Page  domain.Page
	View  record.ViewOptions
}

// Output is a projected app registration.
type Output struct {
	Record  map[string]any
	Created bool
}
