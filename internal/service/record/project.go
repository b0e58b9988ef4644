package record

import (
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/records-api/internal/domain"
)

// Project renders rec for a response. The admin view carries every schema
// field with typed values; the exported view carries only Export fields as
// strings. A non-empty fields list restricts either view further.
func Project(schema domain.Schema, rec domain.Record, adminView bool, fields []string) map[string]any {
	var want map[string]bool
	if len(fields) > 0 {
		want = make(map[string]bool, len(fields))
		for _, f := range fields {
			want[f] = true
		}
	}

	out := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		if want != nil && !want[f.Name] {
			continue
		}
		if adminView {
			out[f.Name] = typed(f, rec[f.Name])
			continue
		}
		if f.Export {
			out[f.Name] = rec.String(f.Name)
		}
	}
	return out
}

// ProjectAll applies Project to every record in recs.
func ProjectAll(schema domain.Schema, recs []domain.Record, adminView bool, fields []string) []map[string]any {
	out := make([]map[string]any, len(recs))
	for i, r := range recs {
		out[i] = Project(schema, r, adminView, fields)
	}
	return out
}

// ParseFields splits a comma-separated ?fields= value, dropping blanks.
func ParseFields(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func typed(f domain.Field, v any) any {
	if v == nil {
		return nil
	}

	switch f.Kind {
	case domain.KindInt:
		switch n := v.(type) {
		case int64:
			return n
		case int32:
			return int64(n)
		case int:
			return int64(n)
		case string:
			if i, err := strconv.ParseInt(n, 10, 64); err == nil {
				return i
			}
		}
	case domain.KindTime:
		switch t := v.(type) {
		case time.Time:
			return t.UTC()
		case string:
			if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
				return ts.UTC()
			}
		}
	}

	return domain.Record{f.Name: v}.String(f.Name)
}
