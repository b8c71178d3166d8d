package colorsync

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLFunc wraps a raw variable value the way the stylesheet consumes it.
func HSLFunc(value string) string {
	return "hsl(" + value + ")"
}

// ToHex converts a variable value to #rrggbb. It accepts bare HSL triples
// ("222.2 84% 4.9%", optionally comma separated, with an ignored "/ alpha"
// suffix), hsl() calls and hex colours. ok is false for anything else.
func ToHex(value string) (hex string, ok bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", false
	}

	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return "", false
		}
		return c.Hex(), true
	}

	if strings.HasPrefix(v, "hsl(") || strings.HasPrefix(v, "hsla(") {
		open := strings.Index(v, "(")
		v = strings.TrimSuffix(v[open+1:], ")")
	}

	if alpha := strings.Index(v, "/"); alpha != -1 {
		v = v[:alpha]
	}

	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) < 3 {
		return "", false
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "deg"), 64)
	if err != nil {
		return "", false
	}
	s, okS := percent(fields[1])
	l, okL := percent(fields[2])
	if !okS || !okL {
		return "", false
	}

	return colorful.Hsl(normalizeHue(h), s, l).Clamped().Hex(), true
}

func percent(field string) (float64, bool) {
	if !strings.HasSuffix(field, "%") {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(field, "%"), 64)
	if err != nil {
		return 0, false
	}
	return f / 100, true
}

func normalizeHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
