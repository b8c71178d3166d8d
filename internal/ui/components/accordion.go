package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// Chevrons drawn on disclosure triggers.
const (
	ChevronCollapsed = "▸"
	ChevronExpanded  = "▾"
)

// AccordionVariants styles each item's outline.
var AccordionVariants = variants.New("border-b", variants.Axis{
	Name: "variant",
	Values: map[string]string{
		"default": "border-border",
		"primary": "border-primary",
	},
	Default: "default",
})

// AccordionTriggerVariants styles the clickable title row.
var AccordionTriggerVariants = variants.New("flex flex-1 items-center justify-between py-4 font-medium",
	variants.Axis{
		Name: "variant",
		Values: map[string]string{
			"default":     "bg-primary text-primary-foreground",
			"secondary":   "bg-secondary text-secondary-foreground",
			"destructive": "bg-destructive text-destructive-foreground",
		},
		Default: "default",
	},
	variants.Axis{
		Name: "size",
		Values: map[string]string{
			"default": "text-lg",
			"sm":      "text-sm",
		},
		Default: "default",
	},
)

// AccordionContentVariants styles the revealed body.
var AccordionContentVariants = variants.New("overflow-hidden text-foreground", variants.Axis{
	Name: "variant",
	Values: map[string]string{
		"default":   "bg-card",
		"secondary": "bg-secondary",
	},
	Default: "default",
})

// AccordionItem is one collapsible section.
type AccordionItem struct {
	Title   string
	Content ui.Renderable
}

// Accordion is a list of sections that open and close independently.
type Accordion struct {
	items          []AccordionItem
	open           []bool
	cursor         int
	focused        bool
	variant        string
	triggerVariant string
	triggerSize    string
	contentVariant string
	className      string
	keys           KeyMap
}

// NewAccordion creates an accordion with every item closed.
func NewAccordion(items ...AccordionItem) Accordion {
	return Accordion{
		items: items,
		open:  make([]bool, len(items)),
		keys:  DefaultKeyMap(),
	}
}

// Toggle opens or closes item i and returns its new state.
func (a *Accordion) Toggle(i int) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	a.open[i] = !a.open[i]
	return a.open[i]
}

// IsOpen reports whether item i is open.
func (a Accordion) IsOpen(i int) bool {
	return i >= 0 && i < len(a.open) && a.open[i]
}

// Update moves between triggers and toggles the one under the cursor.
func (a Accordion) Update(msg tea.Msg) (Accordion, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !a.focused || len(a.items) == 0 {
		return a, nil
	}
	switch {
	case key.Matches(k, a.keys.Up):
		a.cursor = maxInt(0, a.cursor-1)
	case key.Matches(k, a.keys.Down):
		a.cursor = min(len(a.items)-1, a.cursor+1)
	case key.Matches(k, a.keys.Select):
		a.open = append([]bool(nil), a.open...)
		a.Toggle(a.cursor)
	}
	return a, nil
}

// Focus lets the accordion handle keys.
func (a *Accordion) Focus() {
	a.focused = true
}

// Blur stops the accordion from handling keys.
func (a *Accordion) Blur() {
	a.focused = false
}

// View renders the accordion with the default theme.
func (a Accordion) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every trigger and the content of open items.
func (a Accordion) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	width := ctx.MaxWidth()
	views := make([]string, 0, len(a.items))
	for i, item := range a.items {
		outline := ClassStyle(theme, AccordionVariants.Resolve(variants.Selection{"variant": a.variant}, a.className))

		trigger := ClassStyle(theme, AccordionTriggerVariants.Resolve(
			variants.Selection{"variant": a.triggerVariant, "size": a.triggerSize}, "px-4"))
		if a.focused && i == a.cursor {
			trigger = trigger.Underline(true)
		}
		chevron := ChevronCollapsed
		if a.IsOpen(i) {
			chevron = ChevronExpanded
		}
		title := item.Title
		if width > 0 {
			trigger = trigger.Width(width)
			inner := width - trigger.GetHorizontalPadding()
			title = lipgloss.PlaceHorizontal(maxInt(0, inner-lipgloss.Width(chevron)), lipgloss.Left, title,
				lipgloss.WithWhitespaceBackground(trigger.GetBackground()))
		} else {
			title += " "
		}
		section := []string{trigger.Render(title + chevron)}

		if a.IsOpen(i) {
			content := ClassStyle(theme, AccordionContentVariants.Resolve(variants.Selection{"variant": a.contentVariant}, "px-4"))
			inner := ctx
			if width > 0 {
				content = content.Width(width)
				inner = ctx.WithConstraints(WithMaxWidth(width - content.GetHorizontalPadding()))
			}
			section = append(section, content.Render(render(item.Content, inner)))
		}
		views = append(views, outline.Render(lipgloss.JoinVertical(lipgloss.Left, section...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

// WithVariant sets the item outline colour (default, primary).
func (a Accordion) WithVariant(variant string) Accordion {
	a.variant = variant
	return a
}

// WithTriggerVariant sets the trigger colours (default, secondary, destructive).
func (a Accordion) WithTriggerVariant(variant string) Accordion {
	a.triggerVariant = variant
	return a
}

// WithTriggerSize sets the trigger text size (default, sm).
func (a Accordion) WithTriggerSize(size string) Accordion {
	a.triggerSize = size
	return a
}

// WithContentVariant sets the content background (default, secondary).
func (a Accordion) WithContentVariant(variant string) Accordion {
	a.contentVariant = variant
	return a
}

// WithClassName adds classes to every item.
func (a Accordion) WithClassName(className string) Accordion {
	a.className = className
	return a
}

// KeyBindings lists the bindings for help views.
func (a Accordion) KeyBindings() []key.Binding {
	return []key.Binding{a.keys.Up, a.keys.Down, a.keys.Select}
}
