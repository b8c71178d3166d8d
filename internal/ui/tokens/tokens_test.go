package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemesDeclareTheSameNames(t *testing.T) {
	t.Parallel()

	require.Len(t, Dark, len(Light))
	for name := range Light {
		_, ok := Dark[name]
		assert.Truef(t, ok, "dark scheme is missing %q", name)
	}
}

func TestEveryTokenHasHex(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		light, _ := Lookup(SchemeLight, name)
		dark, _ := Lookup(SchemeDark, name)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, light.Hex, name)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, dark.Hex, name)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	c, ok := Lookup(SchemeLight, "--background")
	require.True(t, ok)
	assert.Equal(t, "hsl(0 0% 100%)", c.HSL)
	assert.Equal(t, "#ffffff", c.Hex)

	_, ok = Lookup(SchemeDark, "does-not-exist")
	assert.False(t, ok)
}

func TestParseScheme(t *testing.T) {
	t.Parallel()

	s, err := ParseScheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, SchemeDark, s)
	assert.Equal(t, SchemeLight, s.Toggle())

	s, err = ParseScheme("")
	require.NoError(t, err)
	assert.Equal(t, SchemeLight, s)

	_, err = ParseScheme("sepia")
	assert.Error(t, err)
}
