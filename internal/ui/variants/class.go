package variants

import (
	"sort"
	"strings"
)

// Class is a single utility token split into its parts.
//
//	"disabled:bg-card"  -> Modifiers: [disabled], Utility: "bg-card"
//	"text-[17px]"       -> Utility: "text-[17px]", Property: "text", Value: "17px", Arbitrary: true
type Class struct {
	Raw       string
	Modifiers []string
	Utility   string
	Negative  bool

	// Arbitrary values only.
	Arbitrary bool
	Property  string
	Value     string
}

// Parse splits a token into modifiers and utility. Colons inside an
// arbitrary value ("bg-[url(a:b)]") do not start a modifier.
func Parse(token string) Class {
	c := Class{Raw: token}

	parts := splitModifiers(token)
	c.Utility = parts[len(parts)-1]
	if len(parts) > 1 {
		c.Modifiers = append([]string(nil), parts[:len(parts)-1]...)
	}

	if strings.HasPrefix(c.Utility, "-") && len(c.Utility) > 1 {
		c.Negative = true
		c.Utility = c.Utility[1:]
	}

	if open := strings.Index(c.Utility, "["); open != -1 && strings.HasSuffix(c.Utility, "]") {
		c.Arbitrary = true
		c.Property = strings.TrimSuffix(c.Utility[:open], "-")
		c.Value = strings.TrimSuffix(c.Utility[open+1:], "]")
	}

	return c
}

// Has reports whether the class carries the given modifier.
func (c Class) Has(modifier string) bool {
	for _, m := range c.Modifiers {
		if m == modifier {
			return true
		}
	}
	return false
}

// Plain reports whether the class applies unconditionally.
func (c Class) Plain() bool {
	return len(c.Modifiers) == 0
}

// modifierKey is order independent so "dark:hover:x" and "hover:dark:x" collide.
func (c Class) modifierKey() string {
	if len(c.Modifiers) == 0 {
		return ""
	}
	sorted := append([]string(nil), c.Modifiers...)
	sort.Strings(sorted)
	return strings.Join(sorted, ":") + ":"
}

func splitModifiers(token string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range token {
		switch r {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				parts = append(parts, token[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, token[start:])
}

// Fields splits a class string on whitespace and drops empties.
func Fields(classes ...string) []string {
	var out []string
	for _, group := range classes {
		out = append(out, strings.Fields(group)...)
	}
	return out
}
