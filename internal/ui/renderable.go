// Package ui holds the contracts shared by every visual building block.
package ui

// Renderable is anything that can produce its terminal representation.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a plain function to Renderable.
type RenderableFunc func() string

// View calls f.
func (f RenderableFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}

// String wraps static content as a Renderable.
type String string

// View returns the string unchanged.
func (s String) View() string {
	return string(s)
}
