package record

import (
	"slices"

	"github.com/heartmarshall/records-api/internal/domain"
)

// Default is a server-side value injected into sanitized input.
// Exactly one of Value or Generate should be set; Generate wins when both are.
type Default struct {
	Field    string
	Value    any
	Generate func() any
}

func (d Default) resolve() any {
	if d.Generate != nil {
		return d.Generate()
	}
	return d.Value
}

// Sanitize returns a copy of input with every prohibited field removed and
// every default applied to fields absent from input. A present but empty
// value is kept and left to validation.
// A default targeting a prohibited field is skipped.
func Sanitize(input domain.Record, prohibited []string, defaults []Default) domain.Record {
	out := input.Clone()

	for _, f := range prohibited {
		delete(out, f)
	}

	for _, d := range defaults {
		if slices.Contains(prohibited, d.Field) {
			continue
		}
		if _, ok := out[d.Field]; ok {
			continue
		}
		out[d.Field] = d.resolve()
	}

	return out
}
