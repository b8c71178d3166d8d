package colorsync

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// GeneratedHeader marks files written by Generate.
const GeneratedHeader = "// Code generated by uikit sync-colors. DO NOT EDIT."

var tokensTemplate = template.Must(template.New("tokens").Parse(`{{.Header}}
// Source: {{.Source}}

package {{.Package}}

// Color is a stylesheet colour variable as declared and as hex.
type Color struct {
	HSL string
	Hex string
}

// Light holds the variables of the default scheme.
var Light = map[string]Color{
{{- range .Light}}
	{{printf "%q" .Name}}: {
		HSL: {{printf "%q" .HSL}},
		Hex: {{printf "%q" .Hex}},
	},
{{- end}}
}

// Dark holds the variables of the dark scheme.
var Dark = map[string]Color{
{{- range .Dark}}
	{{printf "%q" .Name}}: {
		HSL: {{printf "%q" .HSL}},
		Hex: {{printf "%q" .Hex}},
	},
{{- end}}
}
`))

type tokenEntry struct {
	Name string
	HSL  string
	Hex  string
}

type templateData struct {
	Header  string
	Source  string
	Package string
	Light   []tokenEntry
	Dark    []tokenEntry
}

// Generate renders the palette as gofmt-formatted Go source for pkg.
// Entries are sorted by name so the output is stable.
func Generate(p Palette, pkg, source string) ([]byte, error) {
	data := templateData{
		Header:  GeneratedHeader,
		Source:  source,
		Package: pkg,
		Light:   entries(p.Light),
		Dark:    entries(p.Dark),
	}

	var buf bytes.Buffer
	if err := tokensTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render tokens: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format tokens: %w", err)
	}
	return formatted, nil
}

func entries(vars map[string]string) []tokenEntry {
	names := Palette{Light: vars}.Names()
	out := make([]tokenEntry, 0, len(names))
	for _, name := range names {
		value := vars[name]
		hex, _ := ToHex(value)
		out = append(out, tokenEntry{Name: name, HSL: HSLFunc(value), Hex: hex})
	}
	return out
}
