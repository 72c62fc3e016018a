package schema

import (
	"fmt"

	"objmap/field"
)

// Typed is a schema whose local side is the struct T.
type Typed[T any] struct {
	*Schema
}

// NewTyped creates a schema loading into *T.
func NewTyped[T any](create func() []field.Field, opts ...Option) *Typed[T] {
	opts = append(opts, WithObject(func() any { return new(T) }))

	return &Typed[T]{Schema: New(create, opts...)}
}

// TypedOf creates a schema loading into *T from the fields and logger of s,
// typically one made by a Builder.
func TypedOf[T any](s *Schema) *Typed[T] {
	return NewTyped[T](s.create, WithLogger(s.logger))
}

// Load converts a remote record into a new *T.
func (t *Typed[T]) Load(data any) (*T, error) {
	out := new(T)
	if err := t.LoadInto(data, out); err != nil {
		return nil, err
	}

	return out, nil
}

// LoadInto converts a remote record into target.
func (t *Typed[T]) LoadInto(data any, target *T) error {
	if target == nil {
		return fmt.Errorf("failed to prepare local object: nil %T", target)
	}

	_, err := t.Schema.LoadInto(data, target)

	return err
}

// Dump converts v into a new remote record.
func (t *Typed[T]) Dump(v *T) (map[string]any, error) {
	if v == nil {
		return nil, fmt.Errorf("failed to read local object: nil %T", v)
	}

	return t.Schema.Dump(v)
}
