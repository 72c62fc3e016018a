package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"objmap/field"
	"objmap/schema"
)

func parent() *schema.Builder {
	return schema.NewBuilder().
		Add("id", field.NewInt(field.Options{RemoteName: "remoteId"})).
		Add("name", field.NewStr(field.Options{LocalName: "localName"}))
}

func child() *schema.Builder {
	return schema.NewBuilder().
		Add("description", field.NewStr(field.Options{Name: "myDescription"})).
		Extend(parent())
}

func names(fields []field.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Info().Name)
	}

	return out
}

func TestBuilder_CollectsFields(t *testing.T) {
	s := child().Build()

	assert.Equal(t, []string{"id", "name", "myDescription"}, names(s.Fields()))

	m := s.Fields()[1].Info()
	assert.Equal(t, "localName", m.LocalName)
	assert.Equal(t, "name", m.RemoteName)
}

func TestBuilder_Inherited(t *testing.T) {
	s := child().Build()

	in := map[string]any{"remoteId": 1, "name": "foo", "myDescription": "bar"}
	out, err := s.Load(in)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": int64(1), "localName": "foo", "myDescription": "bar"}, out)

	remote, err := s.Dump(out)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"remoteId": int64(1), "name": "foo", "myDescription": "bar"}, remote)
}

func TestBuilder_Override(t *testing.T) {
	b := schema.NewBuilder().
		Add("id", field.NewStr(field.Options{})).
		Add("tag", field.NewStr(field.Options{})).
		Extend(parent())

	assert.Equal(t, []string{"id", "name", "tag"}, names(b.Fields()))
	assert.Equal(t, field.KindStr, b.Fields()[0].Info().Kind)

	b.Add("tag", field.NewBool(field.Options{}))
	assert.Equal(t, []string{"id", "name", "tag"}, names(b.Fields()))
	assert.Equal(t, field.KindBool, b.Fields()[2].Info().Kind)
}

func TestBuilder_BuildSnapshots(t *testing.T) {
	b := schema.NewBuilder().Add("a", field.NewStr(field.Options{}))
	s := b.Build()

	b.Add("b", field.NewStr(field.Options{}))

	assert.Len(t, s.Fields(), 1)
	assert.Len(t, b.Build().Fields(), 2)
}
