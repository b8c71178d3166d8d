// Package tokens exposes the stylesheet colour variables, per scheme, that
// the theme is built from. colors_gen.go is produced by `uikit sync-colors`.
package tokens

//go:generate go run github.com/alexisbeaulieu97/uikit/cmd/uikit sync-colors

import (
	"fmt"
	"sort"
	"strings"
)

// Scheme is a colour scheme name.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// ParseScheme accepts "light" or "dark" in any case.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case SchemeLight, "":
		return SchemeLight, nil
	case SchemeDark:
		return SchemeDark, nil
	default:
		return SchemeLight, fmt.Errorf("unknown colour scheme %q", s)
	}
}

// Toggle returns the other scheme.
func (s Scheme) Toggle() Scheme {
	if s == SchemeDark {
		return SchemeLight
	}
	return SchemeDark
}

// For returns the colour map of a scheme. Unknown schemes get Light.
func For(s Scheme) map[string]Color {
	if s == SchemeDark {
		return Dark
	}
	return Light
}

// Lookup finds a colour by variable name (without the leading "--").
func Lookup(s Scheme, name string) (Color, bool) {
	c, ok := For(s)[strings.TrimPrefix(name, "--")]
	return c, ok
}

// Names returns every variable name declared in either scheme, sorted.
func Names() []string {
	seen := make(map[string]struct{}, len(Light))
	for name := range Light {
		seen[name] = struct{}{}
	}
	for name := range Dark {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
