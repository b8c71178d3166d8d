package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
)

// StyleFunc is a theme-aware style transformation. Classes returns one.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent carries the caller's raw style and appliers. Components
// embed it and layer their class-derived style on top of ComputeStyle.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent returns an empty base.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the caller style with every applier run in order.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = append([]StyleFunc(nil), appliers...)
}

// AddAppliers appends appliers after the existing ones.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	b.appliers = append(b.appliers[:len(b.appliers):len(b.appliers)], appliers...)
}

// Constraints bound the size a child may render at. Zero means unlimited.
type Constraints struct {
	MaxWidth  int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{}
}

// WithMaxWidth limits the width to maxWidth cells.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth}
}

// Tighten keeps, per dimension, the smaller of two non-zero limits.
func (c Constraints) Tighten(other Constraints) Constraints {
	return Constraints{
		MaxWidth:  tighter(c.MaxWidth, other.MaxWidth),
		MaxHeight: tighter(c.MaxHeight, other.MaxHeight),
	}
}

func tighter(a, b int) int {
	switch {
	case a <= 0:
		return max(b, 0)
	case b <= 0:
		return a
	default:
		return min(a, b)
	}
}

// RenderContext is handed down the tree on render.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	// Focused is set by stateful parents for the child that owns input.
	Focused bool
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithFocus returns a new context with the focus flag set.
func (r RenderContext) WithFocus(focused bool) RenderContext {
	r.Focused = focused
	return r
}

// MaxWidth returns the width limit, or 0 when unconstrained.
func (r RenderContext) MaxWidth() int {
	return max(r.Constraints.MaxWidth, 0)
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// MainAxisAlignment places children along a stack's direction.
type MainAxisAlignment int

const (
	MainStart MainAxisAlignment = iota
	MainCenter
	MainEnd
	MainSpaceBetween
	MainSpaceAround
	MainSpaceEvenly
)

// CrossAxisAlignment places children across a stack's direction.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
	CrossStretch
)

// render calls ViewWithContext when the child supports it.
func render(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
