package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// TextVariants is the typography scale. Sizes above the heading threshold
// render bold; links render underlined in blue.
var TextVariants = variants.New("text-base text-foreground", variants.Axis{
	Name: "variant",
	Values: map[string]string{
		"largeTitle": "text-[41px] font-normal leading-[51px]",
		"title1":     "text-[33px] font-normal leading-[41px]",
		"title2":     "text-[25px] font-normal leading-[32px]",
		"title3":     "text-[23px] font-normal leading-[29px]",
		"headline":   "text-[19px] font-semibold leading-[25px]",
		"body":       "text-[19px] font-normal leading-[25px]",
		"callout":    "text-[17px] font-normal leading-[22px]",
		"subhead":    "text-[15px] font-normal leading-[20px]",
		"footnote":   "text-[13px] font-normal leading-[18px]",
		"caption1":   "text-[12px] font-normal leading-[16px]",
		"caption2":   "text-[11px] font-normal leading-[13px]",
		"link":       "text-blue-500 underline",
	},
	Default: "body",
})

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content   string
	variant   string
	className string
}

// NewText creates a body text.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.Style(ctx.Theme).Render(t.content)
}

// Style is the caller style with the resolved classes layered on top.
func (t *Text) Style(theme Theme) lipgloss.Style {
	return Classes(t.Classes())(t.ComputeStyle(theme), theme)
}

// Classes returns the resolved class string.
func (t *Text) Classes() string {
	return TextVariants.Resolve(variants.Selection{"variant": t.variant}, t.className)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithVariant picks a typography variant; unknown names fall back to body.
func (t *Text) WithVariant(variant string) *Text {
	t.variant = variant
	return t
}

// WithClassName appends caller classes that win over the variant's.
func (t *Text) WithClassName(className string) *Text {
	t.className = className
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// TitleText creates a title1 text.
func TitleText(content string) *Text {
	return NewText(content).WithVariant("title1")
}

// HeadlineText creates a headline text.
func HeadlineText(content string) *Text {
	return NewText(content).WithVariant("headline")
}

// MutedText creates a subhead in the muted foreground colour.
func MutedText(content string) *Text {
	return NewText(content).WithVariant("subhead").WithClassName("text-muted-foreground")
}
