package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is a schema-bounded set of field values for one stored row.
// Keys are column names declared by the resource Schema.
type Record map[string]any

// Clone returns a shallow copy. Values are scalars, so this is a full snapshot.
func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Has reports whether the field is present, even with an empty value.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// String returns the field value rendered as a string ("" when absent or nil).
func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case uuid.UUID:
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// IsEmptyValue reports whether v counts as missing for required-field checks.
func IsEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []byte:
		return len(t) == 0
	case time.Time:
		return t.IsZero()
	case uuid.UUID:
		return t == uuid.Nil
	}
	return false
}

// Caller is the authenticated principal performing a request.
type Caller struct {
	ID   uuid.UUID
	Role UserRole
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool { return c.Role.IsAdmin() }

// Identity returns the caller's user uuid as stored in owner fields.
func (c Caller) Identity() string { return c.ID.String() }

// AuditEvent is the before/after snapshot emitted after a successful write.
type AuditEvent struct {
	ID         uuid.UUID
	EntityType EntityType
	EntityID   string
	Owner      string
	Actor      string
	Action     AuditAction
	Label      string
	Before     Record
	After      Record
	RequestID  string
	CreatedAt  time.Time
}
