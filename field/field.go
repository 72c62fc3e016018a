package field

import (
	"objmap/record"
	"objmap/report"
)

// Field converts one named attribute between its remote and local form.
type Field interface {
	// Info returns the naming and direction metadata of the field.
	Info() *Meta
	// Load converts a remote value into its local form.
	Load(value any, s *Scope) (any, error)
	// Dump converts a local value into its remote form.
	Dump(value any, s *Scope) (any, error)
}

// Schema is anything that converts whole records. Nested fields accept any
// implementation, not only the one of package schema.
type Schema interface {
	Load(data any) (any, error)
	Dump(data any) (map[string]any, error)
}

// Skip controls whether a computed Undefined value is written to the result.
type Skip struct {
	WhenLoad bool
	WhenDump bool
}

// Meta holds what a schema needs to know to route a field's value.
type Meta struct {
	Kind Kind
	// Name identifies the field; empty until assigned for anonymous fields.
	Name string
	// LocalName is the attribute key on the local side.
	LocalName string
	// RemoteName is the attribute key on the remote side.
	RemoteName string
	// DumpOnly fields are skipped on load.
	DumpOnly bool
	// LoadOnly fields are skipped on dump.
	LoadOnly bool
	// SkipIfUndefined omits Undefined results instead of writing them.
	SkipIfUndefined Skip
}

func (m *Meta) Info() *Meta { return m }

// Adopt back-fills the empty names from key.
func (m *Meta) Adopt(key string) {
	if m.Name == "" {
		m.Name = key
	}

	if m.LocalName == "" {
		m.LocalName = key
	}

	if m.RemoteName == "" {
		m.RemoteName = key
	}
}

// Label is the name used in error paths.
func (m *Meta) Label() string {
	switch {
	case m.Name != "":
		return m.Name
	case m.RemoteName != "":
		return m.RemoteName
	default:
		return m.LocalName
	}
}

func newMeta(kind Kind, o Options) Meta {
	m := Meta{
		Kind:            kind,
		Name:            o.Name,
		LocalName:       o.LocalName,
		RemoteName:      o.RemoteName,
		DumpOnly:        o.DumpOnly,
		LoadOnly:        o.LoadOnly,
		SkipIfUndefined: Skip{WhenLoad: true, WhenDump: true},
	}

	if m.LocalName == "" {
		m.LocalName = o.Name
	}

	if m.RemoteName == "" {
		m.RemoteName = o.Name
	}

	if o.SkipIfUndefined != nil {
		m.SkipIfUndefined = *o.SkipIfUndefined
	}

	return m
}

// Scope is the per-call state handed to fields, filters and validators.
// A schema creates one scope for every Load or Dump call.
type Scope struct {
	// Context is the whole source record.
	Context any
	// Result is the output record, filled by the fields processed so far.
	Result any
	// Schema is the schema processing the record.
	Schema Schema
	// Reports collects validator reports of the call.
	Reports *report.List
	// Field is the label of the field currently being validated.
	Field string
}

// NewScope creates the scope of one schema call.
func NewScope(context, result any, schema Schema) *Scope {
	return &Scope{
		Context: context,
		Result:  result,
		Schema:  schema,
		Reports: &report.List{},
	}
}

// Report records a structured validation failure for the current field.
func (s *Scope) Report(reason string, code int, typ string, data any) {
	s = s.ensure()
	s.Reports.Add(report.ErrorReport{
		Reason: reason,
		Code:   code,
		Type:   typ,
		Field:  s.Field,
		Data:   data,
		Schema: s.Schema,
	})
}

// ensure returns a usable scope for fields called outside of a schema.
func (s *Scope) ensure() *Scope {
	if s == nil {
		return NewScope(record.Undefined, record.Undefined, nil)
	}

	if s.Reports == nil {
		s.Reports = &report.List{}
	}

	return s
}

var (
	_ Field = (*Str)(nil)
	_ Field = (*Numeric)(nil)
	_ Field = (*Int)(nil)
	_ Field = (*Bool)(nil)
	_ Field = (*Date)(nil)
	_ Field = (*Time)(nil)
	_ Field = (*DateTime)(nil)
	_ Field = (*Nested)(nil)
	_ Field = (*List)(nil)
	_ Field = (*Dict)(nil)
	_ Field = (*Map)(nil)
	_ Field = (*Raw)(nil)
	_ Field = (*Callbacks)(nil)
)
