// Package colorsync turns the CSS custom properties of a stylesheet into a
// generated Go file of colour tokens.
package colorsync

import (
	"regexp"
	"sort"
	"strings"
)

var (
	variablePattern = regexp.MustCompile(`--([a-zA-Z0-9-]+):\s*([^;]+);`)
	commentPattern  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	darkSelector    = regexp.MustCompile(`\.dark([^\w-]|$)`)
)

// Palette holds the variables of each scheme keyed by name.
type Palette struct {
	Light map[string]string
	Dark  map[string]string
}

// Len returns the number of distinct variable names across both schemes.
func (p Palette) Len() int {
	return len(p.Names())
}

// Names returns every variable name in sorted order.
func (p Palette) Names() []string {
	seen := make(map[string]struct{}, len(p.Light)+len(p.Dark))
	for name := range p.Light {
		seen[name] = struct{}{}
	}
	for name := range p.Dark {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extract splits declarations by scheme. Declarations inside a block whose
// selector names the .dark class (at any nesting depth) belong to Dark;
// all others belong to Light. Dark inherits every Light variable it does
// not override, as .dark inherits from :root in the cascade. A name
// declared twice keeps its last value.
func Extract(css string) Palette {
	light := map[string]string{}
	dark := map[string]string{}

	type block struct {
		dark bool
	}

	var (
		stack   []block
		segment strings.Builder
	)

	inDark := func() bool {
		return len(stack) > 0 && stack[len(stack)-1].dark
	}

	flush := func(text string) {
		target := light
		if inDark() {
			target = dark
		}
		for _, m := range variablePattern.FindAllStringSubmatch(text, -1) {
			target[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
		}
	}

	for _, r := range stripComments(css) {
		switch r {
		case '{':
			selector := strings.TrimSpace(segment.String())
			stack = append(stack, block{dark: inDark() || darkSelector.MatchString(selector)})
			segment.Reset()
		case '}':
			flush(segment.String())
			segment.Reset()
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case ';':
			segment.WriteRune(r)
			flush(segment.String())
			segment.Reset()
		default:
			segment.WriteRune(r)
		}
	}

	for name, value := range light {
		if _, ok := dark[name]; !ok {
			dark[name] = value
		}
	}

	return Palette{Light: light, Dark: dark}
}

func stripComments(css string) string {
	return commentPattern.ReplaceAllString(css, "")
}
