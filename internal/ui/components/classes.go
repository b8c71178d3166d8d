package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// Terminal cells are roughly twice as tall as they are wide. One spacing
// unit is 4px; a cell column is 8px wide and a row 32px tall.
const (
	pxPerUnit   = 4
	pxPerColumn = 8
	pxPerRow    = 32

	// Text at or above this size renders bold.
	headingPx = 20
)

var fontSizePx = map[string]float64{
	"xs": 12, "sm": 14, "base": 16, "lg": 18, "xl": 20, "2xl": 24, "3xl": 30,
	"4xl": 36, "5xl": 48, "6xl": 60, "7xl": 72, "8xl": 96, "9xl": 128,
}

var maxWidthPx = map[string]float64{
	"xs": 320, "sm": 384, "md": 448, "lg": 512, "xl": 576, "2xl": 672,
	"3xl": 768, "4xl": 896, "5xl": 1024, "6xl": 1152, "7xl": 1280,
}

// Classes interprets utility classes as a lipgloss style against the theme.
// Conflicting classes are merged first, so the last one wins. A class with
// modifiers ("disabled:opacity-50") applies only when each of its modifiers
// is listed in active; "dark:" also applies under a dark-pinned theme.
// Classes with no terminal meaning (flex, items-center, shadow-lg) are
// ignored.
func Classes(classes string, active ...string) StyleFunc {
	tokens := variants.Fields(variants.Merge(classes))
	parsed := make([]variants.Class, 0, len(tokens))
	for _, token := range tokens {
		parsed = append(parsed, variants.Parse(token))
	}

	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		var st classState
		for _, c := range parsed {
			if !modifiersActive(c, theme, active) {
				continue
			}
			base = st.apply(base, c, theme)
		}
		return st.finish(base, theme)
	}
}

// ClassStyle renders classes onto an empty style.
func ClassStyle(theme Theme, classes string, active ...string) lipgloss.Style {
	return Classes(classes, active...)(lipgloss.NewStyle(), theme)
}

// HasClass reports whether the merged classes keep the given utility.
func HasClass(classes, utility string) bool {
	for _, token := range variants.Fields(variants.Merge(classes)) {
		if token == utility {
			return true
		}
	}
	return false
}

func modifiersActive(c variants.Class, theme Theme, active []string) bool {
	for _, m := range c.Modifiers {
		if m == "dark" && theme.Dark() {
			continue
		}
		found := false
		for _, a := range active {
			if a == m {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

const (
	sideTop = iota
	sideRight
	sideBottom
	sideLeft
)

// classState collects what can only be decided once every class is seen.
type classState struct {
	borderSet   bool
	borderOn    bool
	sides       [4]bool
	rounded     bool
	borderColor lipgloss.TerminalColor
	heading     bool
}

func (st *classState) apply(base lipgloss.Style, c variants.Class, theme Theme) lipgloss.Style {
	if c.Negative {
		return base
	}
	if c.Arbitrary {
		return st.applyArbitrary(base, c, theme)
	}

	u := c.Utility
	switch u {
	case "italic":
		return base.Italic(true)
	case "not-italic":
		return base.Italic(false)
	case "underline":
		return base.Underline(true)
	case "no-underline":
		return base.Underline(false).Strikethrough(false)
	case "line-through":
		return base.Strikethrough(true)
	case "uppercase":
		return base.Transform(strings.ToUpper)
	case "lowercase":
		return base.Transform(strings.ToLower)
	case "capitalize":
		return base.Transform(capitalize)
	case "normal-case":
		return base.UnsetTransform()
	case "border":
		st.setBorder(true)
		return base
	case "w-full", "w-screen":
		return base
	}

	prefix, rest, _ := strings.Cut(u, "-")
	switch prefix {
	case "bg":
		if color, _, ok := colorClass(rest, theme); ok {
			return base.Background(color)
		}
	case "text":
		return st.applyText(base, rest, theme)
	case "font":
		switch rest {
		case "semibold", "bold", "extrabold", "black":
			return base.Bold(true)
		case "thin", "extralight", "light", "normal", "medium":
			return base.Bold(false)
		}
	case "border":
		st.applyBorder(rest, theme)
	case "rounded":
		st.rounded = rest != "none"
	case "opacity":
		if n, err := strconv.Atoi(rest); err == nil {
			return base.Faint(n <= 50)
		}
	case "w":
		if units, ok := spacingUnits(rest); ok {
			return base.Width(columns(units))
		}
	case "h", "size":
		if units, ok := spacingUnits(rest); ok {
			base = base.Height(maxInt(1, rows(units)))
			if prefix == "size" {
				base = base.Width(columns(units))
			}
			return base
		}
	case "max":
		if side, size, ok := strings.Cut(rest, "-"); ok && side == "w" {
			if px, ok := maxWidthPx[size]; ok {
				return base.MaxWidth(int(px / pxPerColumn))
			}
		}
	case "p", "px", "py", "pt", "pr", "pb", "pl", "ps", "pe":
		if units, ok := spacingUnits(rest); ok {
			return padding(base, prefix[1:], units)
		}
	case "m", "mx", "my", "mt", "mr", "mb", "ml", "ms", "me":
		if units, ok := spacingUnits(rest); ok {
			return margin(base, prefix[1:], units)
		}
	}
	return base
}

func (st *classState) applyText(base lipgloss.Style, rest string, theme Theme) lipgloss.Style {
	if px, ok := fontSizePx[rest]; ok {
		st.heading = px >= headingPx
		return base
	}
	switch rest {
	case "left", "start":
		return base.Align(lipgloss.Left)
	case "center":
		return base.Align(lipgloss.Center)
	case "right", "end":
		return base.Align(lipgloss.Right)
	}
	color, alpha, ok := colorClass(rest, theme)
	if !ok {
		return base
	}
	base = base.Foreground(color)
	if alpha >= 0 && alpha <= 50 {
		base = base.Faint(true)
	}
	return base
}

func (st *classState) applyBorder(rest string, theme Theme) {
	if rest == "none" {
		st.setBorder(false)
		return
	}
	if n, err := strconv.Atoi(rest); err == nil {
		st.setBorder(n > 0)
		return
	}

	side, width, hasWidth := strings.Cut(rest, "-")
	if idx, ok := borderSides(side); ok {
		on := true
		if hasWidth {
			n, err := strconv.Atoi(width)
			if err != nil {
				return
			}
			on = n > 0
		}
		if !st.borderOn && on {
			st.borderOn = true
			st.sides = [4]bool{}
		}
		st.borderSet = true
		for _, i := range idx {
			st.sides[i] = on
		}
		return
	}

	if color, _, ok := colorClass(rest, theme); ok {
		st.borderColor = color
	}
}

func (st *classState) setBorder(on bool) {
	st.borderSet = true
	st.borderOn = on
	st.sides = [4]bool{on, on, on, on}
}

func (st *classState) applyArbitrary(base lipgloss.Style, c variants.Class, theme Theme) lipgloss.Style {
	switch c.Property {
	case "text":
		if px, ok := pixels(c.Value); ok {
			st.heading = px >= headingPx
			return base
		}
		if strings.HasPrefix(c.Value, "#") {
			return base.Foreground(lipgloss.Color(c.Value))
		}
	case "bg":
		if strings.HasPrefix(c.Value, "#") {
			return base.Background(lipgloss.Color(c.Value))
		}
	case "border":
		if strings.HasPrefix(c.Value, "#") {
			st.borderColor = lipgloss.Color(c.Value)
		} else if px, ok := pixels(c.Value); ok {
			st.setBorder(px > 0)
		}
	case "rounded":
		st.rounded = true
	case "w", "max-w":
		if px, ok := pixels(c.Value); ok && !strings.HasSuffix(c.Value, "%") {
			if c.Property == "w" {
				return base.Width(int(px / pxPerColumn))
			}
			return base.MaxWidth(int(px / pxPerColumn))
		}
	case "h":
		if px, ok := pixels(c.Value); ok && !strings.HasSuffix(c.Value, "%") {
			return base.Height(maxInt(1, int(px/pxPerRow)))
		}
	case "p", "px", "py", "pt", "pr", "pb", "pl":
		if px, ok := pixels(c.Value); ok {
			return padding(base, c.Property[1:], px/pxPerUnit)
		}
	case "m", "mx", "my", "mt", "mr", "mb", "ml":
		if px, ok := pixels(c.Value); ok {
			return margin(base, c.Property[1:], px/pxPerUnit)
		}
	}
	return base
}

func (st *classState) finish(base lipgloss.Style, theme Theme) lipgloss.Style {
	if st.heading {
		base = base.Bold(true)
	}
	if !st.borderSet {
		return base
	}
	if !st.borderOn || st.sides == [4]bool{} {
		return base.UnsetBorderStyle().
			UnsetBorderTop().UnsetBorderRight().UnsetBorderBottom().UnsetBorderLeft()
	}

	border := theme.Borders.Normal
	if st.rounded {
		border = theme.Borders.Rounded
	}
	color := st.borderColor
	if color == nil {
		color = theme.MustColor("border")
	}
	return base.
		Border(border, st.sides[sideTop], st.sides[sideRight], st.sides[sideBottom], st.sides[sideLeft]).
		BorderForeground(color)
}

func borderSides(side string) ([]int, bool) {
	switch side {
	case "t":
		return []int{sideTop}, true
	case "r", "e":
		return []int{sideRight}, true
	case "b":
		return []int{sideBottom}, true
	case "l", "s":
		return []int{sideLeft}, true
	case "x":
		return []int{sideLeft, sideRight}, true
	case "y":
		return []int{sideTop, sideBottom}, true
	}
	return nil, false
}

// colorClass resolves "primary", "foreground/50" or "blue-500". alpha is -1
// when the class carries no opacity suffix.
func colorClass(value string, theme Theme) (lipgloss.TerminalColor, int, bool) {
	alpha := -1
	if name, a, ok := strings.Cut(value, "/"); ok {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, 0, false
		}
		value, alpha = name, n
	}
	color, ok := theme.Color(value)
	return color, alpha, ok
}

// spacingUnits parses a Tailwind spacing value: "4", "0.5", "px".
func spacingUnits(value string) (float64, bool) {
	if value == "px" {
		return 1.0 / pxPerUnit, true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}

func pixels(value string) (float64, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(value, "px"), "%")
	if rem, ok := strings.CutSuffix(value, "rem"); ok {
		f, err := strconv.ParseFloat(rem, 64)
		return f * 16, err == nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	return f, err == nil
}

// columns converts spacing units to cell columns; any non-zero value is at
// least one column.
func columns(units float64) int {
	if units <= 0 {
		return 0
	}
	return maxInt(1, int(units*pxPerUnit/pxPerColumn))
}

// rows converts spacing units to cell rows. Small values round to zero.
func rows(units float64) int {
	return int(units * pxPerUnit / pxPerRow)
}

func padding(base lipgloss.Style, axis string, units float64) lipgloss.Style {
	h, v := columns(units), rows(units)
	switch axis {
	case "":
		return base.Padding(v, h)
	case "x":
		return base.PaddingLeft(h).PaddingRight(h)
	case "y":
		return base.PaddingTop(v).PaddingBottom(v)
	case "t":
		return base.PaddingTop(v)
	case "b":
		return base.PaddingBottom(v)
	case "r", "e":
		return base.PaddingRight(h)
	case "l", "s":
		return base.PaddingLeft(h)
	}
	return base
}

func margin(base lipgloss.Style, axis string, units float64) lipgloss.Style {
	h, v := columns(units), rows(units)
	switch axis {
	case "":
		return base.Margin(v, h)
	case "x":
		return base.MarginLeft(h).MarginRight(h)
	case "y":
		return base.MarginTop(v).MarginBottom(v)
	case "t":
		return base.MarginTop(v)
	case "b":
		return base.MarginBottom(v)
	case "r", "e":
		return base.MarginRight(h)
	case "l", "s":
		return base.MarginLeft(h)
	}
	return base
}

func capitalize(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
