package record

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotAnObject      = errors.New("value is neither a record nor a struct")
	ErrReadOnly         = errors.New("object is read only")
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrIncompatible     = errors.New("incompatible value")
)

// Object is an attribute container that fields read from and write to.
type Object interface {
	// Get returns the attribute value, or Undefined if it is absent.
	Get(key string) any
	// Set stores the attribute value.
	Set(key string, value any) error
}

// Map is a plain string-keyed record.
type Map map[string]any

func (m Map) Get(key string) any {
	v, ok := m[key]
	if !ok {
		return Undefined
	}

	return v
}

func (m Map) Set(key string, value any) error {
	if IsUndefined(value) {
		value = nil
	}

	m[key] = value

	return nil
}

// Of adapts v to an Object.
//
// Supported inputs:
//   - values already implementing Object
//   - map[string]any and other maps with string keys
//   - pointers to structs (read and write)
//   - struct values (read only)
func Of(v any) (Object, error) {
	switch t := v.(type) {
	case Object:
		return t, nil
	case map[string]any:
		return Map(t), nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: <nil>", ErrNotAnObject)
	}

	switch rv.Kind() {
	case reflect.Ptr:
		if !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
			return newStructObject(rv.Elem()), nil
		}
	case reflect.Struct:
		return newStructObject(rv), nil
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return mapObject{v: rv}, nil
		}
	default:
	}

	return nil, fmt.Errorf("%w: %T", ErrNotAnObject, v)
}

// mapObject wraps string-keyed maps of any other element type.
type mapObject struct {
	v reflect.Value
}

func (m mapObject) Get(key string) any {
	val := m.v.MapIndex(reflect.ValueOf(key).Convert(m.v.Type().Key()))
	if !val.IsValid() {
		return Undefined
	}

	return plainInterface(val)
}

func (m mapObject) Set(key string, value any) error {
	if m.v.IsNil() {
		return ErrReadOnly
	}

	elem := reflect.New(m.v.Type().Elem()).Elem()
	if err := assign(elem, value); err != nil {
		return fmt.Errorf("attribute %q: %w", key, err)
	}

	m.v.SetMapIndex(reflect.ValueOf(key).Convert(m.v.Type().Key()), elem)

	return nil
}

// plainInterface unwraps a reflected value, turning nil pointers, maps,
// slices and interfaces into an untyped nil.
func plainInterface(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	default:
	}

	if !v.CanInterface() {
		return Undefined
	}

	return v.Interface()
}
