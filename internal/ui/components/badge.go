package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// BadgeVariants styles the badge pill.
var BadgeVariants = variants.New("flex items-center justify-center px-4 py-2 rounded-full", variants.Axis{
	Name: "variant",
	Values: map[string]string{
		"default":     "bg-primary text-primary-foreground",
		"secondary":   "bg-secondary text-secondary-foreground",
		"success":     "bg-success text-success-foreground",
		"destructive": "bg-destructive text-destructive-foreground",
	},
	Default: "default",
})

// Badge is a small status indicator.
type Badge struct {
	BaseComponent
	text      string
	variant   string
	className string
}

// NewBadge creates a default badge.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	body := Classes(b.Classes())(b.ComputeStyle(ctx.Theme), ctx.Theme)
	caption := TextVariants.Resolve(variants.Selection{"variant": "caption1"})
	// The caption's own text colour must not override the variant's.
	label := onSurface(ClassStyle(ctx.Theme, caption).UnsetForeground(), body)
	return body.Render(label.Render(b.text))
}

// Classes returns the resolved class string.
func (b *Badge) Classes() string {
	return BadgeVariants.Resolve(variants.Selection{"variant": b.variant}, b.className)
}

// WithVariant sets the variant (default, secondary, success, destructive).
func (b *Badge) WithVariant(variant string) *Badge {
	b.variant = variant
	return b
}

// WithClassName adds classes that win over the variant's.
func (b *Badge) WithClassName(className string) *Badge {
	b.className = className
	return b
}

// WithStyle sets the badge style.
func (b *Badge) WithStyle(style lipgloss.Style) *Badge {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SecondaryBadge creates a secondary badge.
func SecondaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant("secondary")
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant("success")
}

// DestructiveBadge creates a destructive badge.
func DestructiveBadge(text string) *Badge {
	return NewBadge(text).WithVariant("destructive")
}
