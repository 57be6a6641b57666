package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/growth.toml", []byte(`
capacity = 8
initial = ["0", "1", "2", "3", "4", "5", "6", "7"]

[[steps]]
op = "push"
value = "8"

[[steps]]
op = "shift"
`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/empty.yaml", []byte("steps:\n  - op: shift\n"), 0o644))

	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	var out bytes.Buffer
	code := execute(logger, fs, "/growth.toml", "", &out)
	assert.Equal(t, 0, code)
	assert.Equal(t, "1\n2\n3\n4\n5\n6\n7\n8\n", out.String())

	out.Reset()
	code = execute(logger, fs, "/empty.yaml", "", &out)
	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "array is empty")

	code = execute(logger, fs, "/missing.toml", "", &out)
	assert.Equal(t, 1, code)
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-version"}, &out, &bytes.Buffer{}, func(string) string { return "" }, afero.NewMemMapFs())
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "arrayctl version:")
}

func TestRun_BadArguments(t *testing.T) {
	getenv := func(string) string { return "" }

	t.Run("Invalid log level", func(t *testing.T) {
		var stderr bytes.Buffer
		code := run([]string{"-log-level", "loud", "x.toml"}, &bytes.Buffer{}, &stderr, getenv, afero.NewMemMapFs())
		assert.Equal(t, 2, code)
		assert.Contains(t, stderr.String(), "Config initialization failed")
		assert.Contains(t, stderr.String(), "invalid log level")
	})

	t.Run("Invalid format from environment", func(t *testing.T) {
		var stderr bytes.Buffer
		env := func(k string) string {
			if k == "ARRAYCTL_FORMAT" {
				return "json"
			}
			return ""
		}
		code := run([]string{"x.toml"}, &bytes.Buffer{}, &stderr, env, afero.NewMemMapFs())
		assert.Equal(t, 2, code)
		assert.Contains(t, stderr.String(), `invalid format "json"`)
	})

	t.Run("Unknown flag", func(t *testing.T) {
		var stderr bytes.Buffer
		code := run([]string{"-bogus"}, &bytes.Buffer{}, &stderr, getenv, afero.NewMemMapFs())
		assert.Equal(t, 2, code)
		assert.Contains(t, stderr.String(), "flag provided but not defined")
	})

	t.Run("Missing scenario file argument", func(t *testing.T) {
		var stderr bytes.Buffer
		code := run([]string{"-no-color"}, &bytes.Buffer{}, &stderr, getenv, afero.NewMemMapFs())
		assert.Equal(t, 2, code)
		assert.Contains(t, stderr.String(), "Expected exactly one scenario file")
		assert.Contains(t, stderr.String(), "Usage of arrayctl")
	})
}
