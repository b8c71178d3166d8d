package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0.0"
theme:
  scheme: dark
colors:
  input: styles/global.css
  output: internal/ui/tokens/colors_gen.go
  package: tokens
log:
  level: debug
  human: false
`

	minimalYAML := `version: "1.0.0"
`

	invalidYAML := `version: "1.0.0"
theme: [light, dark]
`

	missingVersion := `theme:
  scheme: light
`

	badScheme := `version: "1.0.0"
theme:
  scheme: sepia
`

	badPackage := `version: "1.0.0"
colors:
  package: func
`

	badOutput := `version: "1.0.0"
colors:
  output: colors.ts
`

	cases := []struct {
		name      string
		contents  string
		wantError error
		assert    func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "dark", cfg.Theme.Scheme)
				require.Equal(t, "styles/global.css", cfg.Colors.Input)
				require.Equal(t, "debug", cfg.Log.Level)
				require.False(t, cfg.HumanLogs())
			},
		},
		{
			name:     "defaults fill missing sections",
			contents: minimalYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, DefaultScheme, cfg.Theme.Scheme)
				require.Equal(t, DefaultColorsInput, cfg.Colors.Input)
				require.Equal(t, DefaultColorsOutput, cfg.Colors.Output)
				require.Equal(t, DefaultPackage, cfg.Colors.Package)
				require.Equal(t, DefaultLogLevel, cfg.Log.Level)
				require.True(t, cfg.HumanLogs())
			},
		},
		{
			name:      "invalid yaml returns parse error",
			contents:  invalidYAML,
			wantError: &uikiterrors.ParseError{},
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *uikiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:      "missing version returns validation error",
			contents:  missingVersion,
			wantError: &uikiterrors.ValidationError{},
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *uikiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "config.version", validationErr.Field)
			},
		},
		{
			name:      "scheme must be light or dark",
			contents:  badScheme,
			wantError: &uikiterrors.ValidationError{},
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *uikiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "config.theme.scheme", validationErr.Field)
				require.Contains(t, validationErr.Message, "oneof")
			},
		},
		{
			name:      "package must be a go identifier",
			contents:  badPackage,
			wantError: &uikiterrors.ValidationError{},
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *uikiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "go_ident")
			},
		},
		{
			name:      "output must be a go file",
			contents:  badOutput,
			wantError: &uikiterrors.ValidationError{},
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *uikiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "config.colors.output", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			if tc.wantError != nil {
				require.Error(t, err)
				require.Nil(t, cfg)
			}
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	var parseErr *uikiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestLoadWithoutPathReturnsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfigRejectsNil(t *testing.T) {
	t.Parallel()

	var validationErr *uikiterrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "uikit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
