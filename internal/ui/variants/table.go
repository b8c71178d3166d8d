// Package variants resolves a component's variant selections into a single
// utility-class string.
//
// A Table declares base classes and an ordered list of axes. Each axis maps
// a value name to the classes it contributes and names a default. Resolve
// concatenates base, one entry per axis in declaration order and finally the
// caller override, then merges the result so that later classes win whenever
// two classes set the same property:
//
//	button := variants.New("flex items-center",
//		variants.Axis{Name: "size", Default: "default", Values: map[string]string{
//			"default": "h-14 px-6",
//			"sm":      "h-8 px-2",
//		}},
//	)
//	button.Resolve(variants.Selection{"size": "sm"}, "px-4") // "flex items-center h-8 px-4"
//
// Unknown axes and unknown values never fail; they fall back to the axis
// default. Resolution is pure and deterministic.
package variants

import "sort"

// Selection picks a value per axis name.
type Selection map[string]string

// Axis is one dimension of variation.
type Axis struct {
	Name    string
	Values  map[string]string
	Default string
}

// Table is an immutable set of base classes plus ordered axes.
type Table struct {
	base string
	axes []Axis
}

// New builds a table. Axes are applied in the order given.
func New(base string, axes ...Axis) *Table {
	copied := make([]Axis, len(axes))
	for i, axis := range axes {
		values := make(map[string]string, len(axis.Values))
		for k, v := range axis.Values {
			values[k] = v
		}
		copied[i] = Axis{Name: axis.Name, Values: values, Default: axis.Default}
	}
	return &Table{base: base, axes: copied}
}

// Resolve returns the merged class string for sel with override applied last.
func (t *Table) Resolve(sel Selection, override ...string) string {
	if t == nil {
		return Merge(override...)
	}

	parts := make([]string, 0, len(t.axes)+len(override)+1)
	parts = append(parts, t.base)
	for _, axis := range t.axes {
		parts = append(parts, axis.Values[t.value(axis, sel)])
	}
	parts = append(parts, override...)

	return Merge(parts...)
}

// Selected reports the effective value of an axis for sel, after fallback.
// It returns "" for an axis the table does not declare.
func (t *Table) Selected(sel Selection, axis string) string {
	if t == nil {
		return ""
	}
	for _, a := range t.axes {
		if a.Name == axis {
			return t.value(a, sel)
		}
	}
	return ""
}

// Defaults returns the default value of every axis.
func (t *Table) Defaults() Selection {
	out := Selection{}
	if t == nil {
		return out
	}
	for _, a := range t.axes {
		out[a.Name] = a.Default
	}
	return out
}

// Values lists the declared values of an axis in sorted order.
func (t *Table) Values(axis string) []string {
	if t == nil {
		return nil
	}
	for _, a := range t.axes {
		if a.Name != axis {
			continue
		}
		out := make([]string, 0, len(a.Values))
		for k := range a.Values {
			out = append(out, k)
		}
		sort.Strings(out)
		return out
	}
	return nil
}

func (t *Table) value(axis Axis, sel Selection) string {
	if v, ok := sel[axis.Name]; ok {
		if _, known := axis.Values[v]; known {
			return v
		}
	}
	return axis.Default
}
