package domain

// FieldKind is the storage type of a schema field.
type FieldKind int

const (
	KindString FieldKind = iota
	KindInt
	KindTime
)

// Field declares one allowed column of a resource.
type Field struct {
	Name string
	Kind FieldKind
	// Export marks the field as part of the exported (non-admin) view.
	Export bool
	// ReadOnly fields are managed by the store and never taken from request input.
	ReadOnly bool
	// Secret fields are fingerprinted in audit snapshots.
	Secret bool
	// Rule is a validator tag applied to non-empty values (e.g. "uuid", "max=255").
	Rule string
}

// Schema enumerates the fields a resource accepts and how they are stored.
type Schema struct {
	Entity   EntityType
	Table    string
	Identity string
	Owner    string
	Fields   []Field
}

// Field looks up a field declaration by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Has reports whether the schema declares the field.
func (s Schema) Has(name string) bool {
	_, ok := s.Field(name)
	return ok
}

// Columns returns all field names in declaration order.
func (s Schema) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Name
	}
	return cols
}

// WritableColumns returns fields that are not ReadOnly, in declaration order.
func (s Schema) WritableColumns() []string {
	cols := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if !f.ReadOnly {
			cols = append(cols, f.Name)
		}
	}
	return cols
}

// Page bounds for list operations.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Page is a limit/offset window over a list.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
