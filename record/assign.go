package record

import (
	"fmt"
	"reflect"
)

// assign stores value into dst, converting where Go allows it without
// surprises. Null and Undefined reset dst to its zero value.
func assign(dst reflect.Value, value any) error {
	if IsNullish(value) {
		dst.SetZero()
		return nil
	}

	src := reflect.ValueOf(value)

	return assignValue(dst, src)
}

func assignValue(dst, src reflect.Value) error {
	dt := dst.Type()

	switch {
	case src.Type().AssignableTo(dt):
		dst.Set(src)
		return nil

	case src.Kind() == reflect.Ptr && !src.IsNil() && src.Elem().Type().AssignableTo(dt):
		dst.Set(src.Elem())
		return nil

	case dt.Kind() == reflect.Ptr:
		elem := reflect.New(dt.Elem())
		if err := assignValue(elem.Elem(), src); err != nil {
			return err
		}

		dst.Set(elem)

		return nil

	case dt.Kind() == reflect.Interface && src.Type().Implements(dt):
		dst.Set(src)
		return nil

	case dt.Kind() == reflect.Slice && (src.Kind() == reflect.Slice || src.Kind() == reflect.Array):
		out := reflect.MakeSlice(dt, src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			if err := assignElem(out.Index(i), src.Index(i)); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}

		dst.Set(out)

		return nil

	case dt.Kind() == reflect.Map && src.Kind() == reflect.Map:
		out := reflect.MakeMapWithSize(dt, src.Len())
		iter := src.MapRange()

		for iter.Next() {
			k := reflect.New(dt.Key()).Elem()
			if err := assignElem(k, iter.Key()); err != nil {
				return fmt.Errorf("key %v: %w", iter.Key(), err)
			}

			v := reflect.New(dt.Elem()).Elem()
			if err := assignElem(v, iter.Value()); err != nil {
				return fmt.Errorf("[%v]: %w", iter.Key(), err)
			}

			out.SetMapIndex(k, v)
		}

		dst.Set(out)

		return nil

	case dt.Kind() == reflect.Struct && src.Kind() == reflect.Map:
		obj := newStructObject(dst)
		iter := src.MapRange()

		for iter.Next() {
			if iter.Key().Kind() != reflect.String {
				return fmt.Errorf("%w: %s into %s", ErrIncompatible, src.Type(), dt)
			}

			if err := obj.Set(iter.Key().String(), plainInterface(iter.Value())); err != nil {
				return err
			}
		}

		return nil

	case convertible(src.Type(), dt):
		dst.Set(src.Convert(dt))
		return nil
	}

	return fmt.Errorf("%w: %s into %s", ErrIncompatible, src.Type(), dt)
}

// assignElem unwraps interface elements before assigning them.
func assignElem(dst, src reflect.Value) error {
	for src.Kind() == reflect.Interface {
		if src.IsNil() {
			dst.SetZero()
			return nil
		}

		src = src.Elem()
	}

	if IsUndefined(src.Interface()) {
		dst.SetZero()
		return nil
	}

	return assignValue(dst, src)
}

// convertible excludes the integer to string conversion, which yields a rune
// rather than the decimal text.
func convertible(src, dst reflect.Type) bool {
	if !src.ConvertibleTo(dst) {
		return false
	}

	if dst.Kind() == reflect.String {
		return src.Kind() == reflect.String
	}

	if src.Kind() == reflect.String {
		return dst.Kind() == reflect.String
	}

	return true
}
