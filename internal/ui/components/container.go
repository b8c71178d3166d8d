package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// Container is a generic box around a stack of children. Its look,
// spacing included, comes from utility classes.
type Container struct {
	BaseComponent
	children  []ui.Renderable
	layout    *Stack
	base      string
	className string
}

// NewContainer creates an unstyled vertical container.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		children:      children,
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := Classes(c.Classes())(c.ComputeStyle(ctx.Theme), ctx.Theme)

	inner := ctx
	if HasClass(c.Classes(), "w-full") && ctx.MaxWidth() > 0 {
		style = style.Width(ctx.MaxWidth() - style.GetHorizontalBorderSize())
	}
	if w := style.GetWidth(); w > 0 {
		inner = ctx.WithConstraints(WithMaxWidth(w - style.GetHorizontalPadding()))
	}

	var content string
	if len(c.children) > 0 {
		content = c.layout.ViewWithContext(inner)
	}
	return style.Render(content)
}

// Classes returns the container's base classes merged with the caller's.
func (c *Container) Classes() string {
	return variants.Merge(c.base, c.className)
}

// WithClassName adds classes that win over the container's own.
func (c *Container) WithClassName(className string) *Container {
	c.className = className
	return c
}

func (c *Container) withBase(base string) *Container {
	c.base = base
	return c
}

// WithStyle sets the container style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.SetAppliers(appliers...)
	return c
}

// WithDirection sets the layout direction.
func (c *Container) WithDirection(dir Direction) *Container {
	c.layout.WithDirection(dir)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithCrossAlign sets the cross-axis alignment.
func (c *Container) WithCrossAlign(align CrossAxisAlignment) *Container {
	c.layout.WithCrossAlign(align)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.children = append(c.children, children...)
	c.layout.Add(children...)
	return c
}
