package field

import (
	"fmt"
	"reflect"
	"strings"

	"objmap/record"
)

// composite holds the reduced policy of the container kinds. A default stands
// in for a missing value during the null check and is never returned. Filters
// and validators belong to the wrapped fields.
type composite struct {
	Meta
	Presence
}

func newComposite(kind Kind, o Options) composite {
	return composite{Meta: newMeta(kind, o), Presence: newPresence(o)}
}

// gate runs the direction, missing and null checks. When done is true the
// call is over and v, err are its result.
func (c *composite) gate(op Op, value any) (v any, done bool, err error) {
	if !record.IsUndefined(value) && record.ShapeOf(value) == record.ShapeNull {
		value = nil
	}

	switch {
	case op == OpLoad && c.DumpOnly:
		return nil, true, c.fail(op, value, ErrDumpOnly)
	case op == OpDump && c.LoadOnly:
		return nil, true, c.fail(op, value, ErrLoadOnly)
	case !record.IsNullish(value):
		return nil, false, nil
	}

	resolved := value
	if record.IsUndefined(value) {
		if c.Required && !c.HasDefault {
			return nil, true, c.fail(op, value, ErrMissingValue)
		}

		if c.HasDefault {
			resolved = c.Default
		}
	}

	if record.IsNull(record.Indirect(resolved)) && !c.Nullable {
		return nil, true, c.fail(op, value, ErrNullNotAllowed)
	}

	return value, true, nil
}

// Nested converts a sub-record through a schema.
type Nested struct {
	composite

	Schema Schema
}

func NewNested(schema Schema, o Options) *Nested {
	return &Nested{composite: newComposite(KindNested, o), Schema: schema}
}

func (f *Nested) Load(value any, _ *Scope) (any, error) {
	if v, done, err := f.gate(OpLoad, value); done {
		return v, err
	}

	out, err := f.Schema.Load(value)
	if err != nil {
		return nil, Within(f.Label(), OpLoad, value, err)
	}

	return out, nil
}

func (f *Nested) Dump(value any, _ *Scope) (any, error) {
	if v, done, err := f.gate(OpDump, value); done {
		return v, err
	}

	out, err := f.Schema.Dump(value)
	if err != nil {
		return nil, Within(f.Label(), OpDump, value, err)
	}

	return out, nil
}

// List converts every element of a slice or array through Item.
type List struct {
	composite

	Item Field
}

func NewList(item Field, o Options) *List {
	return &List{composite: newComposite(KindList, o), Item: item}
}

func (f *List) Load(value any, s *Scope) (any, error) {
	return f.each(OpLoad, value, s, f.Item.Load)
}

func (f *List) Dump(value any, s *Scope) (any, error) {
	return f.each(OpDump, value, s, f.Item.Dump)
}

func (f *List) each(op Op, value any, s *Scope, conv func(any, *Scope) (any, error)) (any, error) {
	if v, done, err := f.gate(op, value); done {
		return v, err
	}

	items, ok := record.Elements(value)
	if !ok {
		return nil, f.fail(op, value, fmt.Errorf("%w: must be an Array", ErrTypeMismatch))
	}

	out := make([]any, len(items))

	for i, item := range items {
		v, err := conv(item, s)
		if err != nil {
			path := fmt.Sprintf("%s[%d]", f.Label(), i)
			return nil, rebase(path, f.Item, op, item, err)
		}

		out[i] = v
	}

	return out, nil
}

// Dict converts a string-keyed record, passing keys through Key and values
// through Value. The result is always a new map[string]any.
type Dict struct {
	composite

	Key   Field
	Value Field
}

func NewDict(key, value Field, o Options) *Dict {
	return &Dict{composite: newComposite(KindDict, o), Key: key, Value: value}
}

func (f *Dict) Load(value any, s *Scope) (any, error) {
	if v, done, err := f.gate(OpLoad, value); done {
		return v, err
	}

	entries, err := stringEntries(value)
	if err != nil {
		return nil, f.fail(OpLoad, value, err)
	}

	return f.convert(OpLoad, entries, s, f.Key.Load, f.Value.Load)
}

func (f *Dict) Dump(value any, s *Scope) (any, error) {
	if v, done, err := f.gate(OpDump, value); done {
		return v, err
	}

	entries, err := stringEntries(value)
	if err != nil {
		return nil, f.fail(OpDump, value, err)
	}

	return f.convert(OpDump, entries, s, f.Key.Dump, f.Value.Dump)
}

func (f *Dict) convert(op Op, entries []record.Entry, s *Scope, key, val func(any, *Scope) (any, error)) (any, error) {
	out := make(map[string]any, len(entries))

	for _, e := range entries {
		k, v, err := convertEntry(f.Label(), op, e, s, f.Key, f.Value, key, val)
		if err != nil {
			return nil, err
		}

		ks, _ := toString(k)
		out[ks.(string)] = v
	}

	return out, nil
}

// Map is Dict with a Go map on the local side: load produces a map[any]any,
// dump accepts any Go map and produces a map[string]any.
type Map struct {
	composite

	Key   Field
	Value Field
}

func NewMap(key, value Field, o Options) *Map {
	return &Map{composite: newComposite(KindMap, o), Key: key, Value: value}
}

func (f *Map) Load(value any, s *Scope) (any, error) {
	if v, done, err := f.gate(OpLoad, value); done {
		return v, err
	}

	entries, err := stringEntries(value)
	if err != nil {
		return nil, f.fail(OpLoad, value, err)
	}

	out := make(map[any]any, len(entries))

	for _, e := range entries {
		k, v, err := convertEntry(f.Label(), OpLoad, e, s, f.Key, f.Value, f.Key.Load, f.Value.Load)
		if err != nil {
			return nil, err
		}

		if k != nil && !reflect.TypeOf(k).Comparable() {
			path := fmt.Sprintf("%s[%v]", f.Label(), e.Key)
			return nil, &Error{Field: path, Op: OpLoad, Value: k, Err: fmt.Errorf("%w: key %T is not comparable", ErrTypeMismatch, k)}
		}

		out[k] = v
	}

	return out, nil
}

func (f *Map) Dump(value any, s *Scope) (any, error) {
	if v, done, err := f.gate(OpDump, value); done {
		return v, err
	}

	entries, ok := record.Entries(value)
	if !ok {
		return nil, f.fail(OpDump, value, fmt.Errorf("%w: must be a Map", ErrTypeMismatch))
	}

	out := make(map[string]any, len(entries))

	for _, e := range entries {
		k, v, err := convertEntry(f.Label(), OpDump, e, s, f.Key, f.Value, f.Key.Dump, f.Value.Dump)
		if err != nil {
			return nil, err
		}

		ks, _ := toString(k)
		out[ks.(string)] = v
	}

	return out, nil
}

// stringEntries returns the pairs of a string-keyed Go map.
func stringEntries(value any) ([]record.Entry, error) {
	entries, ok := record.Entries(value)
	if !ok || reflect.Indirect(reflect.ValueOf(value)).Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: must be an Object", ErrTypeMismatch)
	}

	return entries, nil
}

func convertEntry(
	label string, op Op, e record.Entry, s *Scope,
	keyField, valueField Field,
	key, val func(any, *Scope) (any, error),
) (k, v any, err error) {
	path := fmt.Sprintf("%s[%v]", label, e.Key)

	k, err = key(e.Key, s)
	if err != nil {
		return nil, nil, rebase(path, keyField, op, e.Key, err)
	}

	v, err = val(e.Value, s)
	if err != nil {
		return nil, nil, rebase(path, valueField, op, e.Value, err)
	}

	if record.IsUndefined(v) {
		v = nil
	}

	return k, v, nil
}

// rebase moves an error of an element field under path, dropping the
// element field's own label.
func rebase(path string, elem Field, op Op, value any, err error) error {
	fe, ok := err.(*Error)
	if !ok {
		return &Error{Field: path, Op: op, Value: value, Err: err}
	}

	rest := fe.Field
	if label := elem.Info().Label(); label != "" {
		switch {
		case rest == label:
			rest = ""
		case strings.HasPrefix(rest, label+".") || strings.HasPrefix(rest, label+"["):
			rest = strings.TrimPrefix(rest[len(label):], ".")
		}
	}

	return &Error{Field: JoinPath(path, rest), Op: fe.Op, Value: fe.Value, Err: fe.Err}
}
