package record

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/records-api/internal/domain"
)

const ruleRequired = "required"

// Validator checks merged records against required fields and schema rules.
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a Validator backed by go-playground/validator.
func NewValidator() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate returns every violation found in rec: required fields first in
// the given order, then format rules in schema order. Rules run only on
// non-empty values. A field reports at most one violation.
func (val *Validator) Validate(schema domain.Schema, rec domain.Record, required []string) []domain.FieldError {
	var errs []domain.FieldError
	missing := make(map[string]bool, len(required))

	for _, name := range required {
		if domain.IsEmptyValue(rec[name]) {
			errs = append(errs, domain.FieldError{Field: name, Rule: ruleRequired})
			missing[name] = true
		}
	}

	for _, f := range schema.Fields {
		if f.Rule == "" || missing[f.Name] || domain.IsEmptyValue(rec[f.Name]) {
			continue
		}
		if rule := val.check(rec.String(f.Name), f.Rule); rule != "" {
			errs = append(errs, domain.FieldError{Field: f.Name, Rule: rule})
		}
	}

	return errs
}

// check returns the failing validator tag, or "" when value passes.
func (val *Validator) check(value, rule string) string {
	err := val.v.Var(value, rule)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return rule
}
