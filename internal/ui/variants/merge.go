package variants

import (
	"regexp"
	"strings"
)

var (
	fontSizes    = set("xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl")
	textAlign    = set("left", "center", "right", "justify", "start", "end")
	fontWeights  = set("thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black")
	borderStyles = set("solid", "dashed", "dotted", "double", "hidden", "none")
	borderSides  = set("x", "y", "t", "r", "b", "l", "s", "e")
	roundedSides = set("t", "r", "b", "l", "s", "e", "tl", "tr", "br", "bl", "ss", "se", "ee", "es")

	keywordGroups = map[string]string{
		"block": "display", "inline-block": "display", "inline": "display", "flex": "display",
		"inline-flex": "display", "grid": "display", "inline-grid": "display", "hidden": "display",
		"contents": "display", "table": "display",

		"static": "position", "fixed": "position", "absolute": "position", "relative": "position", "sticky": "position",

		"uppercase": "text-transform", "lowercase": "text-transform", "capitalize": "text-transform", "normal-case": "text-transform",

		"underline": "text-decoration", "overline": "text-decoration", "line-through": "text-decoration", "no-underline": "text-decoration",

		"italic": "font-style", "not-italic": "font-style",

		"truncate": "text-overflow",

		"flex-row": "flex-direction", "flex-row-reverse": "flex-direction", "flex-col": "flex-direction", "flex-col-reverse": "flex-direction",
		"flex-wrap": "flex-wrap", "flex-nowrap": "flex-wrap", "flex-wrap-reverse": "flex-wrap",
		"flex-1": "flex", "flex-auto": "flex", "flex-initial": "flex", "flex-none": "flex",

		"shadow": "shadow",
		"grow":   "grow", "shrink": "shrink",
	}

	// A later class in the key group also removes earlier classes in these groups.
	overrides = map[string][]string{
		"p":          {"px", "py", "ps", "pe", "pt", "pr", "pb", "pl"},
		"px":         {"pr", "pl", "ps", "pe"},
		"py":         {"pt", "pb"},
		"m":          {"mx", "my", "ms", "me", "mt", "mr", "mb", "ml"},
		"mx":         {"mr", "ml", "ms", "me"},
		"my":         {"mt", "mb"},
		"size":       {"w", "h"},
		"border-w":   {"border-w-x", "border-w-y", "border-w-s", "border-w-e", "border-w-t", "border-w-r", "border-w-b", "border-w-l"},
		"border-w-x": {"border-w-r", "border-w-l"},
		"border-w-y": {"border-w-t", "border-w-b"},
		"rounded":    {"rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-s", "rounded-e", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl", "rounded-ss", "rounded-se", "rounded-ee", "rounded-es"},
		"gap":        {"gap-x", "gap-y"},
		"inset":      {"top", "right", "bottom", "left"},
		"overflow":   {"overflow-x", "overflow-y"},
	}

	spacingPrefix = regexp.MustCompile(`^(p|px|py|ps|pe|pt|pr|pb|pl|m|mx|my|ms|me|mt|mr|mb|ml|w|h|size|min-w|min-h|max-w|max-h|gap|gap-x|gap-y|top|right|bottom|left|inset|z|opacity|leading|tracking|basis|order|space-x|space-y)-`)
	lengthValue   = regexp.MustCompile(`^-?\d*\.?\d+(px|rem|em|%|vh|vw|ch)?$`)
)

func set(values ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

func in(m map[string]struct{}, key string) bool {
	_, ok := m[key]
	return ok
}

// Group returns the conflict group of a utility (without modifiers). Two
// classes with the same modifiers and group set the same property.
// Utilities outside the known groups are their own group.
func Group(c Class) string {
	if c.Arbitrary {
		return arbitraryGroup(c.Property, c.Value)
	}

	u := c.Utility
	if g, ok := keywordGroups[u]; ok {
		return g
	}

	if m := spacingPrefix.FindStringSubmatch(u); m != nil {
		return m[1]
	}

	switch {
	case strings.HasPrefix(u, "text-"):
		rest := strings.TrimPrefix(u, "text-")
		switch {
		case in(fontSizes, rest):
			return "font-size"
		case in(textAlign, rest):
			return "text-align"
		case rest == "ellipsis" || rest == "clip":
			return "text-overflow"
		}
		return "text-color"

	case strings.HasPrefix(u, "font-"):
		if in(fontWeights, strings.TrimPrefix(u, "font-")) {
			return "font-weight"
		}
		return "font-family"

	case strings.HasPrefix(u, "bg-"):
		return "bg-color"

	case u == "border":
		return "border-w"
	case strings.HasPrefix(u, "border-"):
		return borderGroup(strings.TrimPrefix(u, "border-"))

	case u == "rounded":
		return "rounded"
	case strings.HasPrefix(u, "rounded-"):
		rest := strings.TrimPrefix(u, "rounded-")
		side, _, _ := strings.Cut(rest, "-")
		if in(roundedSides, side) {
			return "rounded-" + side
		}
		return "rounded"

	case strings.HasPrefix(u, "shadow-"):
		return "shadow"
	case strings.HasPrefix(u, "items-"):
		return "align-items"
	case strings.HasPrefix(u, "justify-"):
		return "justify-content"
	case strings.HasPrefix(u, "self-"):
		return "align-self"
	case strings.HasPrefix(u, "overflow-x-"):
		return "overflow-x"
	case strings.HasPrefix(u, "overflow-y-"):
		return "overflow-y"
	case strings.HasPrefix(u, "overflow-"):
		return "overflow"
	case strings.HasPrefix(u, "underline-offset-"):
		return "underline-offset"
	case strings.HasPrefix(u, "decoration-"):
		return "decoration"
	}

	return "token:" + u
}

func borderGroup(rest string) string {
	if rest == "0" || rest == "2" || rest == "4" || rest == "8" {
		return "border-w"
	}
	if in(borderStyles, rest) {
		return "border-style"
	}
	side, width, hasWidth := strings.Cut(rest, "-")
	if in(borderSides, side) && (!hasWidth || lengthValue.MatchString(width)) {
		return "border-w-" + side
	}
	return "border-color"
}

func arbitraryGroup(property, value string) string {
	switch property {
	case "text":
		if lengthValue.MatchString(value) {
			return "font-size"
		}
		return "text-color"
	case "bg":
		return "bg-color"
	case "border":
		if lengthValue.MatchString(value) {
			return "border-w"
		}
		return "border-color"
	case "font":
		if lengthValue.MatchString(value) {
			return "font-weight"
		}
		return "font-family"
	}

	if m := spacingPrefix.FindStringSubmatch(property + "-"); m != nil {
		return m[1]
	}
	if property == "rounded" || strings.HasPrefix(property, "rounded-") {
		return property
	}
	return "arbitrary:" + property
}

// Merge joins class strings and drops every class that a later class
// overrides. Survivors keep their relative order.
//
//	Merge("px-2 py-1 bg-red", "p-3 bg-[#B91C1C]") == "p-3 bg-[#B91C1C]"
//	Merge("text-sm text-primary", "text-lg")      == "text-primary text-lg"
func Merge(classes ...string) string {
	tokens := Fields(classes...)
	if len(tokens) == 0 {
		return ""
	}

	claimed := make(map[string]struct{}, len(tokens))
	kept := make([]string, 0, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		c := Parse(tokens[i])
		prefix := c.modifierKey()
		group := Group(c)

		key := prefix + group
		if _, taken := claimed[key]; taken {
			continue
		}

		claimed[key] = struct{}{}
		for _, sub := range overrides[group] {
			claimed[prefix+sub] = struct{}{}
		}
		kept = append(kept, tokens[i])
	}

	for l, r := 0, len(kept)-1; l < r; l, r = l+1, r-1 {
		kept[l], kept[r] = kept[r], kept[l]
	}
	return strings.Join(kept, " ")
}
