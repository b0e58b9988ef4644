package record

import "github.com/heartmarshall/records-api/internal/domain"

// ViewOptions carries the ?view= and ?fields= selection of a request.
type ViewOptions struct {
	View   string
	Fields []string
}

// WantsAdmin reports whether the admin view was requested. Callers still
// need CanViewAdmin before honoring it.
func (o ViewOptions) WantsAdmin() bool {
	return o.View == domain.ViewAdmin
}
