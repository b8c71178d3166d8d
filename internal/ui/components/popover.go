package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// Position places a popover relative to its trigger.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
)

// Popover placement offsets in cells.
const (
	popoverGap        = 1
	popoverHalfWidth  = 12
	popoverLeftOffset = 14
	popoverHalfHeight = 2
)

// PopoverVariants styles the menu box.
var PopoverVariants = variants.New("absolute bg-background border border-border rounded-lg shadow-lg", variants.Axis{
	Name: "size",
	Values: map[string]string{
		"default": "w-48",
		"small":   "w-36",
		"large":   "w-64",
	},
	Default: "default",
})

// PopoverItemVariants styles one menu entry. Hover applies to the entry
// under the cursor.
var PopoverItemVariants = variants.New("px-4 py-2 text-sm text-foreground cursor-pointer", variants.Axis{
	Name: "variant",
	Values: map[string]string{
		"default": "hover:bg-muted",
		"danger":  "hover:bg-danger text-danger-foreground",
	},
	Default: "default",
})

const popoverButtonClasses = "px-4 py-2 bg-primary text-primary-foreground rounded-lg"

// PopoverPosition returns the top-left cell of a popover placed on the
// given side of trigger. Coordinates never go negative.
func PopoverPosition(pos Position, trigger Rect) Point {
	var p Point
	switch pos {
	case PositionTop:
		p = Point{X: trigger.X + trigger.Width/2 - popoverHalfWidth, Y: trigger.Y - popoverGap}
	case PositionLeft:
		p = Point{X: trigger.X - popoverLeftOffset, Y: trigger.Y + trigger.Height/2 - popoverHalfHeight}
	case PositionRight:
		p = Point{X: trigger.X + trigger.Width + popoverGap, Y: trigger.Y}
	default:
		p = Point{X: trigger.X, Y: trigger.Y + trigger.Height + popoverGap}
	}
	return Point{X: maxInt(0, p.X), Y: maxInt(0, p.Y)}
}

// PopoverItem is one menu entry.
type PopoverItem struct {
	Label   string
	Variant string
	OnPress func()
}

// PopoverMenu is a trigger button with a menu shown next to it.
type PopoverMenu struct {
	trigger   *Button
	items     []PopoverItem
	open      bool
	cursor    int
	focused   bool
	size      string
	position  Position
	className string
	keys      KeyMap
}

// NewPopoverButton creates a closed menu opened by a button with the
// given label.
func NewPopoverButton(label string, items ...PopoverItem) PopoverMenu {
	return PopoverMenu{
		trigger:  NewButton(label).WithSize("sm").WithClassName(popoverButtonClasses),
		items:    items,
		position: PositionBottom,
		keys:     DefaultKeyMap(),
	}
}

// Update opens the menu, moves the cursor and runs the chosen item.
func (p PopoverMenu) Update(msg tea.Msg) (PopoverMenu, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p, nil
	}
	if !p.open {
		if key.Matches(k, p.keys.Select) {
			p.Open()
		}
		return p, nil
	}
	switch {
	case key.Matches(k, p.keys.Close):
		p.Close()
	case key.Matches(k, p.keys.Up):
		p.cursor = maxInt(0, p.cursor-1)
	case key.Matches(k, p.keys.Down):
		p.cursor = maxInt(0, min(len(p.items)-1, p.cursor+1))
	case key.Matches(k, p.keys.Select):
		p.Choose(p.cursor)
	}
	return p, nil
}

// Choose runs item i and closes the menu.
func (p *PopoverMenu) Choose(i int) bool {
	if i < 0 || i >= len(p.items) {
		return false
	}
	p.Close()
	if fn := p.items[i].OnPress; fn != nil {
		fn()
	}
	return true
}

// Open shows the menu with the cursor on the first item.
func (p *PopoverMenu) Open() {
	p.open = true
	p.cursor = 0
}

// Close hides the menu.
func (p *PopoverMenu) Close() {
	p.open = false
}

// IsOpen reports whether the menu is shown.
func (p PopoverMenu) IsOpen() bool {
	return p.open
}

// Position returns the side the menu opens on.
func (p PopoverMenu) Position() Position {
	return p.position
}

// Focus lets the menu handle keys.
func (p *PopoverMenu) Focus() {
	p.focused = true
}

// Blur closes the menu and stops handling keys.
func (p *PopoverMenu) Blur() {
	p.focused = false
	p.open = false
}

// View renders the trigger with the default theme.
func (p PopoverMenu) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger button. The menu is drawn by
// MenuView so hosts can overlay it at PopoverPosition.
func (p PopoverMenu) ViewWithContext(ctx RenderContext) string {
	return p.trigger.ViewWithContext(ctx.WithFocus(p.focused))
}

// MenuView renders the open menu, or "" when closed.
func (p PopoverMenu) MenuView(ctx RenderContext) string {
	if !p.open {
		return ""
	}
	theme := ctx.Theme
	box := ClassStyle(theme, PopoverVariants.Resolve(variants.Selection{"size": p.size}, p.className))
	inner := box.GetWidth() - box.GetHorizontalPadding()

	rows := make([]string, 0, len(p.items))
	for i, item := range p.items {
		var active []string
		if i == p.cursor {
			active = append(active, "hover")
		}
		style := onSurface(ClassStyle(theme, PopoverItemVariants.Resolve(variants.Selection{"variant": item.Variant}), active...), box)
		if inner > 0 {
			style = style.Width(inner)
		}
		rows = append(rows, style.Render(item.Label))
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// MenuAt returns the menu position for a trigger drawn at origin.
func (p PopoverMenu) MenuAt(ctx RenderContext, origin Point) Point {
	trigger := p.ViewWithContext(ctx)
	return PopoverPosition(p.position, Rect{
		X:      origin.X,
		Y:      origin.Y,
		Width:  lipgloss.Width(trigger),
		Height: lipgloss.Height(trigger),
	})
}

// WithSize sets the menu width (default, small, large).
func (p PopoverMenu) WithSize(size string) PopoverMenu {
	p.size = size
	return p
}

// WithPosition sets the side the menu opens on.
func (p PopoverMenu) WithPosition(pos Position) PopoverMenu {
	p.position = pos
	return p
}

// WithClassName adds classes to the menu box.
func (p PopoverMenu) WithClassName(className string) PopoverMenu {
	p.className = className
	return p
}

// WithTrigger replaces the trigger button.
func (p PopoverMenu) WithTrigger(b *Button) PopoverMenu {
	p.trigger = b
	return p
}

// KeyBindings lists the bindings for help views.
func (p PopoverMenu) KeyBindings() []key.Binding {
	if !p.open {
		return []key.Binding{p.keys.Select}
	}
	return []key.Binding{p.keys.Up, p.keys.Down, p.keys.Select, p.keys.Close}
}
