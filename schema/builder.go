package schema

import (
	"slices"

	"objmap/field"
)

// Builder declares a schema field by field. Each field is registered under a
// key that fills in its empty Name, LocalName and RemoteName.
//
//	users := schema.NewBuilder().
//		Add("id", field.NewInt(field.Options{RemoteName: "id_item", Required: true})).
//		Add("name", field.NewStr(field.Options{})).
//		Build()
type Builder struct {
	keys   []string
	fields map[string]field.Field
}

func NewBuilder() *Builder {
	return &Builder{fields: make(map[string]field.Field)}
}

// Add registers f under key. Adding a key again replaces its field and keeps
// its position.
func (b *Builder) Add(key string, f field.Field) *Builder {
	f.Info().Adopt(key)

	if _, ok := b.fields[key]; !ok {
		b.keys = append(b.keys, key)
	}

	b.fields[key] = f

	return b
}

// Extend inherits the fields of parent. Parent fields come first in parent
// order; fields b already declares under the same key override them.
func (b *Builder) Extend(parent *Builder) *Builder {
	keys := slices.Clone(parent.keys)

	for _, key := range b.keys {
		if _, ok := parent.fields[key]; !ok {
			keys = append(keys, key)
		}
	}

	for _, key := range parent.keys {
		if _, ok := b.fields[key]; !ok {
			b.fields[key] = parent.fields[key]
		}
	}

	b.keys = keys

	return b
}

// Fields returns the declared fields in order.
func (b *Builder) Fields() []field.Field {
	out := make([]field.Field, len(b.keys))
	for i, key := range b.keys {
		out[i] = b.fields[key]
	}

	return out
}

// Build creates a schema from the fields declared so far.
func (b *Builder) Build(opts ...Option) *Schema {
	fields := b.Fields()

	return New(func() []field.Field { return fields }, opts...)
}
