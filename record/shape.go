package record

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

//go:generate go tool stringer -type=Shape -trimprefix=Shape -output=shape_string.go

// Shape is the structural category of a value.
type Shape int

const (
	ShapeNull Shape = iota
	ShapeScalar
	ShapeSequence
	ShapeMapping
	ShapeStruct

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

var timeType = reflect.TypeFor[time.Time]()

// ShapeOf dispatches a value to its structural category. Pointers are
// followed; time.Time counts as a scalar.
func ShapeOf(v any) Shape {
	if IsNullish(v) {
		return ShapeNull
	}

	switch v.(type) {
	case map[string]any, Object:
		return ShapeMapping
	case []any:
		return ShapeSequence
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ShapeNull
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return ShapeSequence
	case reflect.Map:
		return ShapeMapping
	case reflect.Struct:
		if rv.Type() == timeType {
			return ShapeScalar
		}

		return ShapeStruct
	default:
		return ShapeScalar
	}
}

// Elements returns the items of a slice or array. The second result is false
// for any other shape.
func Elements(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = plainInterface(rv.Index(i))
	}

	return items, true
}

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key   any
	Value any
}

// Entries returns the pairs of any Go map ordered by the textual form of
// their keys. The second result is false for any other shape.
func Entries(v any) ([]Entry, bool) {
	if m, ok := v.(map[string]any); ok {
		entries := make([]Entry, 0, len(m))
		for k, val := range m {
			entries = append(entries, Entry{Key: k, Value: val})
		}

		sortEntries(entries)

		return entries, true
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Map {
		return nil, false
	}

	entries := make([]Entry, 0, rv.Len())
	iter := rv.MapRange()

	for iter.Next() {
		entries = append(entries, Entry{
			Key:   plainInterface(iter.Key()),
			Value: plainInterface(iter.Value()),
		})
	}

	sortEntries(entries)

	return entries, true
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return fmt.Sprint(entries[i].Key) < fmt.Sprint(entries[j].Key)
	})
}

// Indirect follows pointers to the value they point at. A nil pointer
// yields nil.
func Indirect(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return v
	}

	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}

		rv = rv.Elem()
	}

	return plainInterface(rv)
}
