package field_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"objmap/field"
	"objmap/record"
)

// pointSchema is a minimal field.Schema used to exercise Nested without
// depending on package schema.
type pointSchema struct{}

func (pointSchema) Load(data any) (any, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("not a record: %T", data)
	}

	x, err := field.NewInt(field.Options{Name: "x", Required: true}).Load(record.Map(m).Get("x"), nil)
	if err != nil {
		return nil, err
	}

	return map[string]any{"x": x}, nil
}

func (pointSchema) Dump(data any) (map[string]any, error) {
	m := data.(map[string]any)
	return map[string]any{"x": fmt.Sprint(m["x"])}, nil
}

func TestNested(t *testing.T) {
	f := field.NewNested(pointSchema{}, field.Options{Name: "origin"})

	v, err := f.Load(map[string]any{"x": "4"}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": int64(4)}, v)

	v, err = f.Dump(map[string]any{"x": 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": "4"}, v)

	_, err = f.Load(map[string]any{}, nil)
	require.ErrorIs(t, err, field.ErrMissingValue)

	var fe *field.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "origin.x", fe.Field)

	_, err = f.Load(7, nil)
	require.Error(t, err)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "origin", fe.Field)
}

func TestComposite_Gate(t *testing.T) {
	item := field.NewInt(field.Options{})
	kinds := func(o field.Options) []field.Field {
		return []field.Field{
			field.NewNested(pointSchema{}, o),
			field.NewList(item, o),
			field.NewDict(field.NewStr(field.Options{}), item, o),
			field.NewMap(field.NewStr(field.Options{}), item, o),
		}
	}

	for _, f := range kinds(field.Options{Name: "c"}) {
		t.Run("optional "+f.Info().Kind.String(), func(t *testing.T) {
			v, err := f.Load(record.Undefined, nil)
			require.NoError(t, err)
			assert.True(t, record.IsUndefined(v))

			v, err = f.Dump(nil, nil)
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}

	for _, f := range kinds(field.Options{Name: "c", Required: true}) {
		t.Run("required "+f.Info().Kind.String(), func(t *testing.T) {
			_, err := f.Load(record.Undefined, nil)
			require.ErrorIs(t, err, field.ErrMissingValue)

			_, err = f.Dump(nil, nil)
			require.ErrorIs(t, err, field.ErrNullNotAllowed)
		})
	}

	for _, f := range kinds(field.Options{Name: "c", Required: true, Default: []any{}}) {
		t.Run("required with default "+f.Info().Kind.String(), func(t *testing.T) {
			v, err := f.Load(record.Undefined, nil)
			require.NoError(t, err)
			assert.True(t, record.IsUndefined(v), "the default is not returned")

			_, err = f.Dump(nil, nil)
			require.ErrorIs(t, err, field.ErrNullNotAllowed)
		})
	}

	for _, f := range kinds(field.Options{Name: "c", Required: true, Default: field.Null}) {
		t.Run("required with null default "+f.Info().Kind.String(), func(t *testing.T) {
			_, err := f.Load(record.Undefined, nil)
			require.ErrorIs(t, err, field.ErrNullNotAllowed)
		})
	}

	nullable := field.Options{Name: "c", Required: true, Nullable: field.Ptr(true), Default: field.Null}
	for _, f := range kinds(nullable) {
		t.Run("nullable with null default "+f.Info().Kind.String(), func(t *testing.T) {
			v, err := f.Load(record.Undefined, nil)
			require.NoError(t, err)
			assert.True(t, record.IsUndefined(v))
		})
	}

	// falsy but present values are not short-circuited
	_, err := field.NewList(item, field.Options{}).Load(0, nil)
	require.ErrorIs(t, err, field.ErrTypeMismatch)
}

func TestList(t *testing.T) {
	f := field.NewList(field.NewInt(field.Options{}), field.Options{Name: "tags"})

	v, err := f.Load([]any{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, v)

	v, err = f.Dump([3]float64{1.5, 2.5, 3.5}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, v)

	_, err = f.Load("not a list", nil)
	require.ErrorIs(t, err, field.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "must be an Array")

	_, err = f.Load([]any{1, "x", 3}, nil)
	require.ErrorIs(t, err, field.ErrInvalidFieldInput)

	var fe *field.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "tags[1]", fe.Field, spew.Sdump(fe))
}

func TestList_NestedPaths(t *testing.T) {
	inner := field.NewList(field.NewInt(field.Options{Name: "n", Required: true}), field.Options{Name: "row"})
	f := field.NewList(inner, field.Options{Name: "grid"})

	_, err := f.Load([]any{[]any{1}, []any{2, nil}}, nil)
	require.ErrorIs(t, err, field.ErrNullNotAllowed)

	var fe *field.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "grid[1][1]", fe.Field)
}

func TestDict(t *testing.T) {
	f := field.NewDict(field.NewStr(field.Options{}), field.NewInt(field.Options{}), field.Options{Name: "scores"})

	in := map[string]any{"a": 1, "b": "2"}
	v, err := f.Load(in, nil)
	require.NoError(t, err)

	out, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"a": int64(1), "b": int64(2)}, out)

	out["c"] = 3
	assert.NotContains(t, in, "c")

	v, err = f.Dump(map[string]int{"z": 26}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"z": int64(26)}, v)

	_, err = f.Load(map[string]any{"alice": "x"}, nil)

	var fe *field.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "scores[alice]", fe.Field)

	_, err = f.Load(map[int]any{1: 1}, nil)
	require.ErrorIs(t, err, field.ErrTypeMismatch)

	_, err = f.Load([]any{}, nil)
	require.ErrorIs(t, err, field.ErrTypeMismatch)
}

func TestDict_UndefinedValueBecomesNull(t *testing.T) {
	drop := field.NewCallbacks(func(any, *field.Scope) (any, error) { return record.Undefined, nil }, nil, field.Options{})
	f := field.NewDict(field.NewStr(field.Options{}), drop, field.Options{})

	v, err := f.Load(map[string]any{"k": 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": nil}, v)
}

func TestMap(t *testing.T) {
	f := field.NewMap(field.NewInt(field.Options{}), field.NewStr(field.Options{}), field.Options{Name: "names"})

	v, err := f.Load(map[string]any{"1": "one", "2": 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[any]any{int64(1): "one", int64(2): "2"}, v)

	v, err = f.Dump(map[int]string{3: "three"}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"3": "three"}, v)

	_, err = f.Dump([]any{1}, nil)
	require.ErrorIs(t, err, field.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "must be a Map")

	_, err = f.Load(map[string]any{"x": "y"}, nil)
	require.ErrorIs(t, err, field.ErrInvalidFieldInput)
}

func TestRaw(t *testing.T) {
	f := field.NewRaw(field.Options{Name: "blob", Required: true})
	in := map[string]any{"k": []any{1}}

	v, err := f.Load(in, nil)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%p", in), fmt.Sprintf("%p", v))

	v, err = f.Dump(record.Undefined, nil)
	require.NoError(t, err)
	assert.True(t, record.IsUndefined(v))
}

func TestCallbacks(t *testing.T) {
	boom := errors.New("boom")
	f := field.NewCallbacks(
		func(v any, s *field.Scope) (any, error) {
			return fmt.Sprintf("%v/%v", v, s.Context), nil
		},
		func(any, *field.Scope) (any, error) { return nil, boom },
		field.Options{Name: "cb", Required: true},
	)

	v, err := f.Load(record.Undefined, field.NewScope("ctx", nil, nil))
	require.NoError(t, err)
	assert.Equal(t, "undefined/ctx", v)

	_, err = f.Dump(1, nil)
	require.ErrorIs(t, err, boom)

	pass := field.NewCallbacks(nil, nil, field.Options{})
	v, err = pass.Dump(5, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}
