package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

const (
	defaultDividerWidth = 40
	dividerClasses      = "text-border"
)

// Divider renders a separator line in the border colour.
type Divider struct {
	BaseComponent
	char      string
	width     int
	direction Direction
	className string
}

// NewDivider creates a horizontal divider.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
		direction:     DirectionHorizontal,
	}
}

// HorizontalDivider creates a horizontal divider.
func HorizontalDivider() *Divider {
	return NewDivider()
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider. Without an explicit width a
// horizontal divider fills the available width.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	length := d.width
	if length <= 0 {
		length = ctx.MaxWidth()
	}
	if length <= 0 {
		length = defaultDividerWidth
	}

	content := strings.Repeat(d.char, length)
	if d.direction == DirectionVertical {
		content = strings.TrimSuffix(strings.Repeat(d.char+"\n", length), "\n")
	}

	style := Classes(variants.Merge(dividerClasses, d.className))(d.ComputeStyle(ctx.Theme), ctx.Theme)
	return style.Render(content)
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit length.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithDirection sets the divider direction.
func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

// WithClassName adds classes; "text-primary" recolours the line.
func (d *Divider) WithClassName(className string) *Divider {
	d.className = className
	return d
}

// WithStyle sets the divider style.
func (d *Divider) WithStyle(style lipgloss.Style) *Divider {
	d.SetStyle(style)
	return d
}

// DottedDivider creates a dotted divider.
func DottedDivider() *Divider {
	return NewDivider().WithChar("·")
}
