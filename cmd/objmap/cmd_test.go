package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"objmap/field"
	"objmap/internal/demo"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := New()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "message.yaml", `
id: 2
subject: hello!
user:
  my_id: 6
  my_name: Mr. Dead
  password: my-secret-password
recipients: [Alice, Bob]
`)

	out, _, err := run(t, "", "load", "--canonical", path)
	require.NoError(t, err)
	assert.Equal(t,
		`{"body":null,"id":2,"recipients":["Alice","Bob"],"subject":"hello!",`+
			`"user":{"id":6,"my_name":"Mr. Dead","password":"my-secret-password"}}`+"\n",
		out)
}

func TestDump_JSONMany(t *testing.T) {
	a := writeFile(t, "a.json", `{"id": 1, "created_at": "2021-01-05T10:00:00+02:00", "password": "x"}`)
	b := writeFile(t, "b.json", `{"id": 2, "my_name": "Ann", "created_at": "2021-01-05"}`)

	_, _, err := run(t, "", "dump", "--schema", "user", "--canonical", a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, field.ErrInvalidDateFormat)
	assert.Contains(t, err.Error(), "b.json")

	b = writeFile(t, "b.json", `{"id": 2, "my_name": "Ann", "created_at": "2021-01-05T00:00"}`)

	out, _, err := run(t, "", "dump", "--schema", "user", "--canonical", a, b)
	require.NoError(t, err)
	assert.Equal(t,
		`{"created_at":"2021-01-05T08:00:00.000Z","my_id":1,"my_name":"John Doe"}`+"\n"+
			`{"created_at":"2021-01-05T00:00:00.000Z","my_id":2,"my_name":"Ann"}`+"\n",
		out)
}

func TestDump_FormatterConfig(t *testing.T) {
	cfg := writeFile(t, "formatter.yaml", "default_timezone: \"+01:00\"\n")

	out, _, err := run(t, `{"id": 1, "created_at": "2021-01-05T10:00"}`,
		"dump", "--schema", "user", "--canonical", "--formatter-config", cfg, "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"created_at":"2021-01-05T09:00:00.000Z"`)

	bad := writeFile(t, "bad.yaml", "default_timezone: moon\n")
	_, _, err = run(t, "{}", "dump", "--formatter-config", bad, "-")
	require.Error(t, err)
}

func TestLoad_Indented(t *testing.T) {
	out, _, err := run(t, `{"my_id": 3}`, "load", "--schema", "user", "-")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": 3,\n  \"my_name\": \"John Doe\"\n}\n", out)
}

func TestLoad_Errors(t *testing.T) {
	_, _, err := run(t, `{}`, "load", "--schema", "order", "-")
	require.ErrorIs(t, err, demo.ErrUnknownSchema)

	_, _, err = run(t, `[1]`, "load", "-")
	require.Error(t, err)

	_, _, err = run(t, "", "load", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "", "load")
	require.Error(t, err)

	out, _, err := run(t, `{"my_id": 1}`, "load", "--schema", "user", "-", "-")
	require.ErrorIs(t, err, ErrRepeatedStdin)
	assert.Empty(t, out)
}

func TestLogging(t *testing.T) {
	_, logs, err := run(t, `{}`, "load", "--schema", "user", "--loglevel", "debug", "--logformat", "json", "-")
	require.Error(t, err)
	assert.Contains(t, logs, `"msg":"field conversion failed"`)
	assert.Contains(t, logs, `"field":"id"`)

	_, _, err = run(t, `{}`, "load", "--loglevel", "loud", "-")
	require.Error(t, err)

	_, _, err = run(t, `{}`, "load", "--logformat", "xml", "-")
	require.Error(t, err)
}
