package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// ButtonVariants styles the button body.
var ButtonVariants = variants.New("flex flex-row items-center justify-center",
	variants.Axis{
		Name: "variant",
		Values: map[string]string{
			"success":     "bg-success",
			"default":     "bg-primary",
			"secondary":   "bg-secondary",
			"destructive": "bg-destructive",
			"ghost":       "bg-accent",
			"link":        "text-primary underline-offset-4",
			"outline":     "bg-transparent border border-border",
		},
		Default: "default",
	},
	variants.Axis{
		Name: "size",
		Values: map[string]string{
			"default": "h-14 px-6",
			"sm":      "h-8 px-2",
			"lg":      "h-12 px-8",
			"icon":    "h-12 w-12 p-0",
			"icon sm": "h-8 w-8 p-0",
			"icon lg": "h-16 w-16 p-0",
			"icon xl": "h-20 w-20 p-0",
		},
		Default: "default",
	},
	variants.Axis{
		Name: "type",
		Values: map[string]string{
			"pill":    "rounded-[999px]",
			"default": "rounded-2xl",
		},
		Default: "default",
	},
)

// ButtonTextVariants styles the button label for each body variant.
var ButtonTextVariants = variants.New("text-center capitalize", variants.Axis{
	Name: "variant",
	Values: map[string]string{
		"success":     "text-success-foreground",
		"default":     "text-primary-foreground",
		"secondary":   "text-secondary-foreground",
		"destructive": "text-destructive-foreground",
		"ghost":       "text-accent-foreground",
		"link":        "text-primary-foreground underline",
		"outline":     "text-foreground",
	},
	Default: "default",
})

// Button renders a pressable label. Press runs the callback unless disabled.
type Button struct {
	BaseComponent
	label          string
	variant        string
	size           string
	buttonType     string
	className      string
	labelClassName string
	disabled       bool
	active         bool
	onPress        func()
}

// NewButton creates a default button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	body := b.bodyStyle(ctx.Theme)
	if b.active || ctx.Focused {
		body = body.Bold(true).Underline(true)
	}
	label := onSurface(ClassStyle(ctx.Theme, b.LabelClasses(), b.modifiers()...), body)
	return body.AlignVertical(lipgloss.Center).Render(label.Render(b.label))
}

func (b *Button) bodyStyle(theme Theme) lipgloss.Style {
	return Classes(b.Classes(), b.modifiers()...)(b.ComputeStyle(theme), theme)
}

func (b *Button) modifiers() []string {
	if b.disabled {
		return []string{"disabled"}
	}
	return nil
}

// Classes returns the resolved body classes.
func (b *Button) Classes() string {
	extra := b.className
	if b.disabled {
		extra = variants.Merge(extra, "opacity-50")
	}
	return ButtonVariants.Resolve(b.selection(), extra)
}

// LabelClasses returns the resolved label classes.
func (b *Button) LabelClasses() string {
	text := ButtonTextVariants.Resolve(variants.Selection{"variant": b.variant})
	return TextVariants.Resolve(variants.Selection{"variant": "callout"}, "font-semibold", text, b.labelClassName)
}

func (b *Button) selection() variants.Selection {
	return variants.Selection{"variant": b.variant, "size": b.size, "type": b.buttonType}
}

// Press runs the callback unless the button is disabled. It reports whether
// the callback ran.
func (b *Button) Press() bool {
	if b.disabled || b.onPress == nil {
		return false
	}
	b.onPress()
	return true
}

// WithVariant sets the colour variant (default, success, secondary,
// destructive, ghost, link, outline).
func (b *Button) WithVariant(variant string) *Button {
	b.variant = variant
	return b
}

// WithSize sets the size (default, sm, lg, icon, "icon sm", "icon lg", "icon xl").
func (b *Button) WithSize(size string) *Button {
	b.size = size
	return b
}

// WithType sets the corner shape (default, pill).
func (b *Button) WithType(buttonType string) *Button {
	b.buttonType = buttonType
	return b
}

// WithClassName adds body classes that win over the variants.
func (b *Button) WithClassName(className string) *Button {
	b.className = className
	return b
}

// WithLabelClassName adds label classes that win over the label variants.
func (b *Button) WithLabelClassName(className string) *Button {
	b.labelClassName = className
	return b
}

// WithOnPress sets the press callback.
func (b *Button) WithOnPress(fn func()) *Button {
	b.onPress = fn
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive marks the button as focused.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// onSurface gives inner the colours of outer where it sets none, so nested
// renders do not punch holes in a filled box.
func onSurface(inner, outer lipgloss.Style) lipgloss.Style {
	if isUnset(inner.GetBackground()) && !isUnset(outer.GetBackground()) {
		inner = inner.Background(outer.GetBackground())
	}
	if isUnset(inner.GetForeground()) && !isUnset(outer.GetForeground()) {
		inner = inner.Foreground(outer.GetForeground())
	}
	return inner
}

func isUnset(c lipgloss.TerminalColor) bool {
	if c == nil {
		return true
	}
	_, none := c.(lipgloss.NoColor)
	return none
}
