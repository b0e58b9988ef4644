package record

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/heartmarshall/records-api/internal/domain"
)

// Normalize maps decoded request input onto the schema. Keys the schema does
// not declare, or declares ReadOnly, are dropped and returned in dropped.
// Scalars become strings; nested objects and arrays are stored as JSON text.
func Normalize(schema domain.Schema, raw map[string]any) (rec domain.Record, dropped []string) {
	rec = make(domain.Record, len(raw))

	for k, v := range raw {
		f, ok := schema.Field(k)
		if !ok || f.ReadOnly {
			dropped = append(dropped, k)
			continue
		}
		rec[k] = toText(v)
	}

	return rec, dropped
}

func toText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []string:
		if len(t) == 1 {
			return t[0]
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
