package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
)

// Collapse is a trigger line that shows or hides its content.
type Collapse struct {
	BaseComponent
	trigger   string
	content   ui.Renderable
	expanded  bool
	focused   bool
	className string
	keys      KeyMap
}

// NewCollapse creates a collapsed section.
func NewCollapse(trigger string, content ui.Renderable) *Collapse {
	return &Collapse{
		BaseComponent: NewBaseComponent(),
		trigger:       trigger,
		content:       content,
		keys:          DefaultKeyMap(),
	}
}

// Toggle flips the state and returns the new one.
func (c *Collapse) Toggle() bool {
	c.expanded = !c.expanded
	return c.expanded
}

// Expanded reports whether the content is shown.
func (c *Collapse) Expanded() bool {
	return c.expanded
}

// Update toggles on enter or space while focused.
func (c *Collapse) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && c.focused && key.Matches(k, c.keys.Select) {
		c.Toggle()
	}
	return nil
}

// Focus lets the collapse handle keys.
func (c *Collapse) Focus() {
	c.focused = true
}

// Blur stops the collapse from handling keys.
func (c *Collapse) Blur() {
	c.focused = false
}

// View renders with the default theme.
func (c *Collapse) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger and, when expanded, the content.
func (c *Collapse) ViewWithContext(ctx RenderContext) string {
	style := Classes("text-foreground font-medium "+c.className)(c.ComputeStyle(ctx.Theme), ctx.Theme)
	if c.focused {
		style = style.Underline(true)
	}
	chevron := ChevronCollapsed
	if c.expanded {
		chevron = ChevronExpanded
	}
	trigger := style.Render(chevron + " " + c.trigger)
	if !c.expanded {
		return trigger
	}
	return lipgloss.JoinVertical(lipgloss.Left, trigger, render(c.content, ctx))
}

// WithExpanded sets the initial state.
func (c *Collapse) WithExpanded(expanded bool) *Collapse {
	c.expanded = expanded
	return c
}

// WithClassName adds classes to the trigger.
func (c *Collapse) WithClassName(className string) *Collapse {
	c.className = className
	return c
}
