package record

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"objmap/internal/suggest"
)

// TagName is the struct tag consulted for attribute names before the json tag.
const TagName = "objmap"

type structObject struct {
	v     reflect.Value
	index map[string][]int
}

var indexCache sync.Map // reflect.Type -> map[string][]int

func newStructObject(v reflect.Value) structObject {
	return structObject{v: v, index: attributeIndex(v.Type())}
}

func (s structObject) Get(key string) any {
	idx, ok := s.index[key]
	if !ok {
		return Undefined
	}

	f, err := s.v.FieldByIndexErr(idx)
	if err != nil {
		// nil embedded pointer
		return nil
	}

	return plainInterface(f)
}

func (s structObject) Set(key string, value any) error {
	if !s.v.CanSet() {
		return fmt.Errorf("%w: %s", ErrReadOnly, s.v.Type())
	}

	idx, ok := s.index[key]
	if !ok {
		err := fmt.Errorf("%w %q in %s", ErrUnknownAttribute, key, s.v.Type())
		if alt, found := suggest.Closest(key, Attributes(s.v.Type())); found {
			err = fmt.Errorf("%w, did you mean %q?", err, alt)
		}

		return err
	}

	f, err := s.v.FieldByIndexErr(idx)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", key, err)
	}

	if err := assign(f, value); err != nil {
		return fmt.Errorf("attribute %q: %w", key, err)
	}

	return nil
}

// Attributes returns the attribute names of a struct type in declaration
// order. Non-struct types yield nil.
func Attributes(t reflect.Type) []string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	var names []string

	for _, f := range reflect.VisibleFields(t) {
		if name, ok := attributeName(f); ok {
			names = append(names, name)
		}
	}

	return names
}

func attributeIndex(t reflect.Type) map[string][]int {
	if cached, ok := indexCache.Load(t); ok {
		return cached.(map[string][]int)
	}

	index := make(map[string][]int)

	for _, f := range reflect.VisibleFields(t) {
		name, ok := attributeName(f)
		if !ok {
			continue
		}

		// shallower fields come first and shadow deeper ones
		if _, taken := index[name]; !taken {
			index[name] = f.Index
		}
	}

	indexCache.Store(t, index)

	return index
}

func attributeName(f reflect.StructField) (string, bool) {
	if f.Anonymous || !f.IsExported() {
		return "", false
	}

	for _, tag := range []string{TagName, "json"} {
		value, ok := f.Tag.Lookup(tag)
		if !ok {
			continue
		}

		name, _, _ := strings.Cut(value, ",")
		if name == "-" {
			return "", false
		}

		if name != "" {
			return name, true
		}
	}

	return f.Name, true
}
