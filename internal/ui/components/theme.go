package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/tokens"
)

// Scheme is the colour scheme a theme is pinned to.
type Scheme = tokens.Scheme

const (
	SchemeLight = tokens.SchemeLight
	SchemeDark  = tokens.SchemeDark
)

// Toggle returns the opposite scheme.
func Toggle(s Scheme) Scheme {
	return s.Toggle()
}

const paletteShadeCount = 10

// PaletteShades is a Tailwind-style colour scale, lightest (50) to darkest (900).
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a shade scale from up to ten colours ordered lightest to darkest.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the colour at a shade, or "" when out of range.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// PaletteShade indexes a PaletteShades scale.
type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

// ParseShade converts a Tailwind shade number ("50", "500") to a PaletteShade.
func ParseShade(s string) (PaletteShade, bool) {
	n, err := strconv.Atoi(s)
	switch {
	case err != nil:
		return 0, false
	case n == 50:
		return PaletteShade50, true
	case n >= 100 && n <= 900 && n%100 == 0:
		return PaletteShade(n / 100), true
	default:
		return 0, false
	}
}

// ColorPalette holds the raw colour families reachable through classes like
// "text-blue-500".
type ColorPalette map[string]PaletteShades

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// Theme is an immutable set of colours and borders passed to components
// through RenderContext. Tokens carries the stylesheet variables
// (background, primary, muted-foreground, ...) as adaptive colours.
type Theme struct {
	// Scheme is empty for an adaptive theme that follows the terminal background.
	Scheme  Scheme
	Tokens  map[string]lipgloss.AdaptiveColor
	Colors  ColorPalette
	Borders BorderSet
}

// DefaultTheme returns an adaptive theme: every token resolves to its light
// or dark value depending on the terminal background.
func DefaultTheme() Theme {
	return Theme{
		Tokens:  adaptiveTokens(),
		Colors:  defaultColors(),
		Borders: defaultBorders(),
	}
}

// ThemeForScheme returns a theme pinned to one scheme regardless of the
// terminal background. A token the dark scheme does not declare keeps its
// light value.
func ThemeForScheme(s Scheme) Theme {
	if s != SchemeDark {
		s = SchemeLight
	}
	adaptive := adaptiveTokens()
	pinned := make(map[string]lipgloss.AdaptiveColor, len(adaptive))
	for name, c := range adaptive {
		hex := c.Light
		if s == SchemeDark {
			hex = c.Dark
		}
		pinned[name] = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}
	theme := DefaultTheme()
	theme.Scheme = s
	theme.Tokens = pinned
	return theme
}

// LightTheme returns the theme pinned to the light scheme.
func LightTheme() Theme {
	return ThemeForScheme(SchemeLight)
}

// DarkTheme returns the theme pinned to the dark scheme.
func DarkTheme() Theme {
	return ThemeForScheme(SchemeDark)
}

// Dark reports whether "dark:" classes apply.
func (t Theme) Dark() bool {
	return t.Scheme == SchemeDark
}

// Color looks a colour up by name. Names are tried as a stylesheet token
// ("primary", "--muted-foreground"), a keyword ("black", "white",
// "transparent") and a palette shade ("blue-500"), in that order.
func (t Theme) Color(name string) (lipgloss.TerminalColor, bool) {
	name = strings.TrimPrefix(name, "--")
	if c, ok := t.Tokens[name]; ok {
		return c, true
	}

	switch name {
	case "black":
		return lipgloss.Color("#000000"), true
	case "white":
		return lipgloss.Color("#ffffff"), true
	case "transparent", "current", "inherit":
		return lipgloss.NoColor{}, true
	}

	idx := strings.LastIndex(name, "-")
	if idx <= 0 {
		return nil, false
	}
	family, ok := t.Colors[name[:idx]]
	if !ok {
		return nil, false
	}
	shade, ok := ParseShade(name[idx+1:])
	if !ok {
		return nil, false
	}
	return family.Color(shade), true
}

// MustColor is Color for names known to exist; unknown names yield NoColor.
func (t Theme) MustColor(name string) lipgloss.TerminalColor {
	if c, ok := t.Color(name); ok {
		return c
	}
	return lipgloss.NoColor{}
}

func adaptiveTokens() map[string]lipgloss.AdaptiveColor {
	out := make(map[string]lipgloss.AdaptiveColor, len(tokens.Light))
	for _, name := range tokens.Names() {
		light, _ := tokens.Lookup(tokens.SchemeLight, name)
		dark, ok := tokens.Lookup(tokens.SchemeDark, name)
		if !ok {
			dark = light
		}
		if light.Hex == "" && dark.Hex == "" {
			continue
		}
		if light.Hex == "" {
			light = dark
		}
		if dark.Hex == "" {
			dark = light
		}
		out[name] = lipgloss.AdaptiveColor{Light: light.Hex, Dark: dark.Hex}
	}
	return out
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}
}

func shades(hexes ...string) PaletteShades {
	colors := make([]lipgloss.Color, len(hexes))
	for i, h := range hexes {
		colors[i] = lipgloss.Color(h)
	}
	return NewPaletteShades(colors...)
}

func defaultColors() ColorPalette {
	return ColorPalette{
		"slate":  shades("#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"),
		"gray":   shades("#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"),
		"blue":   shades("#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"),
		"green":  shades("#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"),
		"red":    shades("#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"),
		"yellow": shades("#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"),
		"purple": shades("#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87"),
		"cyan":   shades("#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63"),
	}
}

// Background sets a token as background and its "-foreground" pair, when
// the theme has one, as foreground.
//
//	card := NewCard().WithAppliers(Background("primary"))
func Background(token string) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if c, ok := theme.Color(token); ok {
			base = base.Background(c)
		}
		if fg, ok := theme.Color(token + "-foreground"); ok {
			base = base.Foreground(fg)
		}
		return base
	}
}

// Foreground sets a token as foreground without touching the background.
func Foreground(token string) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if c, ok := theme.Color(token); ok {
			return base.Foreground(c)
		}
		return base
	}
}

// Rounded draws a rounded border coloured with the "border" token.
func Rounded() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.Borders.Rounded).BorderForeground(theme.MustColor("border"))
	}
}

// Padding sets vertical and horizontal padding in cells.
func Padding(vertical, horizontal int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Padding(vertical, horizontal)
	}
}
