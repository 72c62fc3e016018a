// Package schema converts whole records through an ordered list of fields.
//
// A Schema reads every field's value from the source record, converts it with
// the field and writes the result under the field's name on the other side:
//
//	load: remote[RemoteName] -> Field.Load -> local[LocalName]
//	dump: local[LocalName]   -> Field.Dump -> remote[RemoteName]
//
// The local side is a plain record by default; WithObject or Typed produce
// structs instead. A Schema holds no per-call state and may be shared between
// goroutines.
package schema

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"objmap/field"
	"objmap/record"
	"objmap/report"
)

// Option configures a Schema.
type Option func(*Schema)

// WithObject sets the factory of the local object a Load without target
// fills. The factory must return a map with string keys, a record.Object or a
// pointer to a struct.
func WithObject(create func() any) Option {
	return func(s *Schema) {
		s.object = create
	}
}

// WithLogger sets the logger receiving conversion failures at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Schema) {
		if l != nil {
			s.logger = l
		}
	}
}

// Schema is an ordered collection of fields defining a whole-record
// conversion.
type Schema struct {
	create func() []field.Field
	object func() any
	logger *slog.Logger

	once   sync.Once
	fields []field.Field
}

// New creates a schema whose fields are produced by create on first use.
// A nil create yields a schema without fields.
func New(create func() []field.Field, opts ...Option) *Schema {
	s := &Schema{
		create: create,
		object: func() any { return map[string]any{} },
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Of creates a schema over a fixed list of fields.
func Of(fields ...field.Field) *Schema {
	return New(func() []field.Field { return fields })
}

// Fields returns the field list, building it on the first call.
func (s *Schema) Fields() []field.Field {
	s.once.Do(func() {
		if s.create != nil {
			s.fields = s.create()
		}
	})

	return s.fields
}

// Load converts a remote record into a new local object.
func (s *Schema) Load(data any) (any, error) {
	return s.LoadInto(data, nil)
}

// LoadInto converts a remote record into target, or into a new local object
// when target is nil. It returns the filled object.
func (s *Schema) LoadInto(data, target any) (any, error) {
	src, err := record.Of(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote record: %w", err)
	}

	result := target
	if result == nil {
		result = s.object()
	}

	dst, err := record.Of(result)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare local object: %w", err)
	}

	scope := field.NewScope(data, result, s)

	for _, f := range s.Fields() {
		m := f.Info()
		if m.DumpOnly {
			continue
		}

		in := src.Get(m.RemoteName)

		v, err := f.Load(in, scope)
		if err != nil {
			return nil, s.failed(field.OpLoad, m, in, err)
		}

		if record.IsUndefined(v) && m.SkipIfUndefined.WhenLoad {
			continue
		}

		if err := dst.Set(m.LocalName, v); err != nil {
			return nil, s.failed(field.OpLoad, m, v, err)
		}
	}

	return result, nil
}

// Dump converts a local object into a new remote record.
func (s *Schema) Dump(data any) (map[string]any, error) {
	src, err := record.Of(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read local object: %w", err)
	}

	result := map[string]any{}
	dst := record.Map(result)
	scope := field.NewScope(data, result, s)

	for _, f := range s.Fields() {
		m := f.Info()
		if m.LoadOnly {
			continue
		}

		in := src.Get(m.LocalName)

		v, err := f.Dump(in, scope)
		if err != nil {
			return nil, s.failed(field.OpDump, m, in, err)
		}

		if record.IsUndefined(v) && m.SkipIfUndefined.WhenDump {
			continue
		}

		if err := dst.Set(m.RemoteName, v); err != nil {
			return nil, s.failed(field.OpDump, m, v, err)
		}
	}

	return result, nil
}

// failed places err under the field's path unless the field already did, and
// logs it.
func (s *Schema) failed(op field.Op, m *field.Meta, value any, err error) error {
	if _, ok := err.(*field.Error); !ok {
		err = field.Within(m.Label(), op, value, err)
	}

	s.logger.Debug("field conversion failed",
		slog.String("field", m.Label()),
		slog.String("op", string(op)),
		slog.Any("error", err))

	return err
}

// Reports returns the validator reports carried by err, if it is or wraps a
// validation failure.
func Reports(err error) report.List {
	var verr *field.ValidationError
	if errors.As(err, &verr) {
		return verr.Reports
	}

	return report.List{}
}

var _ field.Schema = (*Schema)(nil)
