package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttonTable() *Table {
	return New("flex flex-row items-center justify-center",
		Axis{Name: "variant", Default: "default", Values: map[string]string{
			"default":     "bg-primary",
			"destructive": "bg-destructive",
			"outline":     "bg-transparent border border-border",
		}},
		Axis{Name: "size", Default: "default", Values: map[string]string{
			"default": "h-14 px-6",
			"sm":      "h-8 px-2",
			"icon":    "h-12 w-12 p-0",
		}},
		Axis{Name: "type", Default: "default", Values: map[string]string{
			"default": "rounded-2xl",
			"pill":    "rounded-[999px]",
		}},
	)
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	table := buttonTable()
	sel := Selection{"size": "sm", "type": "pill"}

	first := table.Resolve(sel)
	second := table.Resolve(sel)

	require.Equal(t, first, second)
	require.Equal(t, "flex flex-row items-center justify-center bg-primary h-8 px-2 rounded-[999px]", first)
}

func TestResolveOverrideWinsPerProperty(t *testing.T) {
	t.Parallel()

	got := buttonTable().Resolve(Selection{"size": "sm", "type": "pill"}, "px-4 rounded-none")

	assert.Equal(t, "flex flex-row items-center justify-center bg-primary h-8 px-4 rounded-none", got)
	assert.NotContains(t, got, "px-2")
	assert.NotContains(t, got, "rounded-[999px]")
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	table := buttonTable()
	cases := []struct {
		name string
		sel  Selection
	}{
		{name: "nil selection", sel: nil},
		{name: "unknown value", sel: Selection{"size": "huge", "variant": "sparkly"}},
		{name: "unknown axis", sel: Selection{"colour": "red"}},
	}

	want := "flex flex-row items-center justify-center bg-primary h-14 px-6 rounded-2xl"
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, table.Resolve(tc.sel))
		})
	}
}

func TestResolveLaterAxisWins(t *testing.T) {
	t.Parallel()

	table := New("text-base",
		Axis{Name: "variant", Default: "body", Values: map[string]string{
			"body":  "text-[19px] leading-[25px]",
			"title": "text-[33px] font-normal leading-[41px]",
		}},
		Axis{Name: "tone", Default: "plain", Values: map[string]string{
			"plain": "",
			"muted": "text-muted-foreground",
		}},
	)

	got := table.Resolve(Selection{"variant": "title", "tone": "muted"})
	assert.Equal(t, "text-[33px] font-normal leading-[41px] text-muted-foreground", got)
}

func TestSelectedAndDefaults(t *testing.T) {
	t.Parallel()

	table := buttonTable()

	assert.Equal(t, "sm", table.Selected(Selection{"size": "sm"}, "size"))
	assert.Equal(t, "default", table.Selected(Selection{"size": "xxl"}, "size"))
	assert.Equal(t, "", table.Selected(nil, "missing"))
	assert.Equal(t, Selection{"variant": "default", "size": "default", "type": "default"}, table.Defaults())
	assert.Equal(t, []string{"default", "pill"}, table.Values("type"))
}

func TestNilTableResolvesOverrideOnly(t *testing.T) {
	t.Parallel()

	var table *Table
	assert.Equal(t, "p-2", table.Resolve(Selection{"x": "y"}, "p-1 p-2"))
}

func TestMerge(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []string
		want string
	}{
		{name: "empty", in: nil, want: ""},
		{name: "whitespace collapses", in: []string{"  flex   ", "", "items-center"}, want: "flex items-center"},
		{name: "duplicates collapse", in: []string{"flex flex"}, want: "flex"},
		{name: "background last wins", in: []string{"bg-primary", "bg-accent"}, want: "bg-accent"},
		{name: "text color and size are independent", in: []string{"text-sm text-primary", "text-lg"}, want: "text-primary text-lg"},
		{name: "arbitrary size conflicts with keyword size", in: []string{"text-base text-foreground text-[41px]"}, want: "text-foreground text-[41px]"},
		{name: "text align is its own group", in: []string{"text-center text-primary"}, want: "text-center text-primary"},
		{name: "padding shorthand removes sides", in: []string{"px-2 py-1 pt-3", "p-4"}, want: "p-4"},
		{name: "side after shorthand survives", in: []string{"p-8", "pt-0"}, want: "p-8 pt-0"},
		{name: "px removes pl and pr", in: []string{"pl-1 pr-1 px-4"}, want: "px-4"},
		{name: "border width vs color", in: []string{"border border-border", "border-primary"}, want: "border border-primary"},
		{name: "border side width", in: []string{"border-b border-b-0"}, want: "border-b-0"},
		{name: "border none is a style", in: []string{"border border-input border-none"}, want: "border border-input border-none"},
		{name: "rounded sizes", in: []string{"rounded-2xl rounded-[999px]"}, want: "rounded-[999px]"},
		{name: "modifiers are scoped", in: []string{"bg-transparent disabled:bg-card dark:bg-black bg-card"}, want: "disabled:bg-card dark:bg-black bg-card"},
		{name: "modifier order does not matter", in: []string{"dark:hover:bg-muted hover:dark:bg-accent"}, want: "hover:dark:bg-accent"},
		{name: "font weight", in: []string{"font-medium font-semibold"}, want: "font-semibold"},
		{name: "text transform", in: []string{"uppercase capitalize"}, want: "capitalize"},
		{name: "unknown tokens survive", in: []string{"shadow-lg foo bar foo"}, want: "shadow-lg bar foo"},
		{name: "size removes w and h", in: []string{"h-12 w-12 size-4"}, want: "size-4"},
		{name: "arbitrary colon value", in: []string{"bg-[url(a:b)] bg-card"}, want: "bg-card"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Merge(tc.in...))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	c := Parse("dark:disabled:text-[17px]")
	assert.Equal(t, []string{"dark", "disabled"}, c.Modifiers)
	assert.True(t, c.Arbitrary)
	assert.Equal(t, "text", c.Property)
	assert.Equal(t, "17px", c.Value)
	assert.True(t, c.Has("disabled"))
	assert.False(t, c.Plain())

	neg := Parse("-mt-2")
	assert.True(t, neg.Negative)
	assert.Equal(t, "mt-2", neg.Utility)
	assert.Equal(t, "mt", Group(neg))

	url := Parse("hover:bg-[url(a:b)]")
	assert.Equal(t, []string{"hover"}, url.Modifiers)
	assert.Equal(t, "url(a:b)", url.Value)
}
