package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"objmap/field"
)

func TestUser_Dump(t *testing.T) {
	created := time.Date(2021, 1, 5, 10, 0, 0, 0, time.UTC)

	out, err := User(nil).Dump(map[string]any{"id": 1, "created_at": created, "password": "secret"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"my_id":      int64(1),
		"my_name":    "John Doe",
		"created_at": "2021-01-05T10:00:00.000Z",
	}, out)

	_, err = User(nil).Dump(map[string]any{"created_at": created})
	require.ErrorIs(t, err, field.ErrMissingValue)
}

func TestUser_Load(t *testing.T) {
	out, err := User(nil).Load(map[string]any{"my_id": 6, "password": "pw", "my_name": "Mr. Dead", "created_at": "x"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": int64(6), "my_name": "Mr. Dead", "password": "pw"}, out)

	_, err = User(nil).Load(map[string]any{"password": "pw"})
	require.ErrorIs(t, err, field.ErrMissingValue)
}

func TestMessage_Load(t *testing.T) {
	out, err := Message(nil).Load(map[string]any{
		"id":         2,
		"subject":    "hello!",
		"user":       map[string]any{"my_id": 6},
		"recipients": []any{"Alice", "Bob", "Žitomír"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"id":         int64(2),
		"subject":    "hello!",
		"body":       nil,
		"user":       map[string]any{"id": int64(6), "my_name": "John Doe"},
		"recipients": []any{"Alice", "Bob", "Žitomír"},
	}, out)

	_, err = Message(nil).Load(map[string]any{"id": 2, "subject": "s", "user": map[string]any{}})

	var fe *field.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "user.id", fe.Field)
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"message", "user"}, Names())

	s, err := Lookup("user", nil)
	require.NoError(t, err)
	assert.Len(t, s.Fields(), 4)

	_, err = Lookup("order", nil)
	require.ErrorIs(t, err, ErrUnknownSchema)
	assert.Contains(t, err.Error(), "want one of [message user]")

	_, err = Lookup("mesage", nil)
	require.ErrorIs(t, err, ErrUnknownSchema)
	assert.Contains(t, err.Error(), `did you mean "message"?`)
}
