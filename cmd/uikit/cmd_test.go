package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uikit/internal/colorsync"
	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

const stylesheet = `:root {
  --background: 0 0% 100%;
  --primary: 240 5.9% 10%;
}

.dark {
  --background: 240 10% 3.9%;
  --primary: 0 0% 98%;
}
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSyncColorsWritesTokens(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "global.css")
	output := filepath.Join(dir, "tokens", "colors_gen.go")
	writeFile(t, input, stylesheet)

	stdout, _, err := execute(t, "sync-colors", "--input", input, "--output", output)
	require.NoError(t, err)
	assert.Equal(t, "Successfully synced CSS variables to "+output+"!\n", stdout)

	generated, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(generated), "// Code generated by uikit sync-colors. DO NOT EDIT.")
	assert.Contains(t, string(generated), "package tokens")
	assert.Contains(t, string(generated), `"primary"`)

	_, _, err = execute(t, "sync-colors", "--input", input, "--output", output, "--check")
	assert.NoError(t, err, "a fresh file passes the check")
}

func TestSyncColorsCheckReportsDrift(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "global.css")
	output := filepath.Join(dir, "colors_gen.go")
	writeFile(t, input, stylesheet)

	_, _, err := execute(t, "sync-colors", "--input", input, "--output", output)
	require.NoError(t, err)
	before, err := os.ReadFile(output)
	require.NoError(t, err)

	writeFile(t, input, ":root { --primary: 10 50% 50%; }")
	stdout, _, err := execute(t, "sync-colors", "--input", input, "--output", output, "--check")
	require.Error(t, err)
	assert.True(t, errors.Is(err, colorsync.ErrDrift))
	var syncErr *uikiterrors.SyncError
	assert.True(t, errors.As(err, &syncErr))
	assert.Contains(t, stdout, "---")

	after, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, before, after, "check never writes")
}

func TestSyncColorsErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.css")
	writeFile(t, empty, "body { color: red; }")

	cases := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "missing input",
			input: filepath.Join(dir, "missing.css"),
			check: func(t *testing.T, err error) {
				var parseErr *uikiterrors.ParseError
				assert.True(t, errors.As(err, &parseErr))
			},
		},
		{
			name:  "no variables",
			input: empty,
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, colorsync.ErrNoVariables))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, "sync-colors", "--input", tc.input, "--output", filepath.Join(dir, tc.name+".go"))
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestSyncColorsUsesConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "theme.css")
	output := filepath.Join(dir, "out", "palette.go")
	writeFile(t, input, stylesheet)
	cfgPath := filepath.Join(dir, "uikit.yaml")
	writeFile(t, cfgPath, `version: "1.0.0"
colors:
  input: `+input+`
  output: `+output+`
  package: palette
log:
  level: debug
  human: false
`)

	_, stderr, err := execute(t, "--config", cfgPath, "sync-colors")
	require.NoError(t, err)

	generated, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(generated), "package palette")
	assert.Contains(t, stderr, `"component":"sync-colors"`)
}

func TestInvalidConfigFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "uikit.yaml")
	writeFile(t, cfgPath, "version: one\n")

	_, _, err := execute(t, "--config", cfgPath, "sync-colors")
	require.Error(t, err)
	var validationErr *uikiterrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestDemoRequiresTerminal(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "demo")
	assert.ErrorIs(t, err, ErrNotTerminal)
}

func TestDemoRejectsUnknownScheme(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "demo", "--scheme", "sepia")
	var validationErr *uikiterrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "scheme", validationErr.Field)
}

func TestSchemeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", string(schemeFor("auto")))
	assert.Equal(t, "dark", string(schemeFor("dark")))
	assert.NoError(t, validateScheme(""))
	assert.NoError(t, validateScheme("light"))
}
