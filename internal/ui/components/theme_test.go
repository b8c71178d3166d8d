package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uikit/internal/ui/tokens"
)

func TestPinnedThemesCoverEveryToken(t *testing.T) {
	t.Parallel()

	for _, scheme := range []Scheme{SchemeLight, SchemeDark} {
		theme := ThemeForScheme(scheme)
		for _, name := range tokens.Names() {
			light, _ := tokens.Lookup(tokens.SchemeLight, name)
			dark, _ := tokens.Lookup(tokens.SchemeDark, name)
			if light.Hex == "" && dark.Hex == "" {
				continue
			}
			c, ok := theme.Color(name)
			require.Truef(t, ok, "%s theme is missing %q", scheme, name)

			pinned, isAdaptive := c.(lipgloss.AdaptiveColor)
			require.True(t, isAdaptive)
			assert.Equal(t, pinned.Light, pinned.Dark, "pinned themes ignore the terminal background")
		}
	}
}

func TestDarkThemeUsesDarkValues(t *testing.T) {
	t.Parallel()

	dark, ok := tokens.Lookup(tokens.SchemeDark, "background")
	require.True(t, ok)
	c, ok := DarkTheme().Color("background")
	require.True(t, ok)
	assert.Equal(t, dark.Hex, c.(lipgloss.AdaptiveColor).Dark)
	assert.True(t, DarkTheme().Dark())
	assert.False(t, LightTheme().Dark())
}
