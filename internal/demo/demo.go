// Package demo holds the sample user and message schemas served by the
// objmap command.
package demo

import (
	"errors"
	"fmt"
	"sort"

	"objmap/datetime"
	"objmap/field"
	"objmap/internal/suggest"
	"objmap/schema"
)

var ErrUnknownSchema = errors.New("unknown schema")

// User maps an account. The remote id is "my_id", the password is only ever
// read and the creation stamp only ever written.
func User(f datetime.Formatter, opts ...schema.Option) *schema.Schema {
	return schema.NewBuilder().
		Add("id", field.NewInt(field.Options{RemoteName: "my_id", Required: true})).
		Add("my_name", field.NewStr(field.Options{Required: true, Default: "John Doe"})).
		Add("password", field.NewStr(field.Options{LoadOnly: true})).
		Add("created_at", field.NewDateTime(field.Options{DumpOnly: true, Required: true, Formatter: f})).
		Build(opts...)
}

// Message maps a message with its author and recipients.
func Message(f datetime.Formatter, opts ...schema.Option) *schema.Schema {
	return schema.NewBuilder().
		Add("id", field.NewInt(field.Options{Required: true})).
		Add("subject", field.NewStr(field.Options{Required: true})).
		Add("body", field.NewStr(field.Options{Default: field.Null})).
		Add("user", field.NewNested(User(f, opts...), field.Options{})).
		Add("recipients", field.NewList(field.NewStr(field.Options{}), field.Options{})).
		Build(opts...)
}

var registry = map[string]func(datetime.Formatter, ...schema.Option) *schema.Schema{
	"user":    User,
	"message": Message,
}

// Names lists the available schemas.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Lookup builds the named schema. A nil formatter means datetime.Default.
func Lookup(name string, f datetime.Formatter, opts ...schema.Option) (*schema.Schema, error) {
	build, ok := registry[name]
	if !ok {
		if alt, found := suggest.Closest(name, Names()); found {
			return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownSchema, name, alt)
		}

		return nil, fmt.Errorf("%w %q, want one of %v", ErrUnknownSchema, name, Names())
	}

	return build(f, opts...), nil
}
