package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
)

func TestAccordionToggle(t *testing.T) {
	t.Parallel()

	a := NewAccordion(
		AccordionItem{Title: "First", Content: ui.String("first body")},
		AccordionItem{Title: "Second", Content: ui.String("second body")},
	)
	view := plain(a.View())
	assert.Contains(t, view, "First "+ChevronCollapsed)
	assert.NotContains(t, view, "first body")

	assert.True(t, a.Toggle(1))
	assert.False(t, a.IsOpen(0))
	view = plain(a.View())
	assert.Contains(t, view, "Second "+ChevronExpanded)
	assert.Contains(t, view, "second body")
	assert.NotContains(t, view, "first body")

	assert.False(t, a.Toggle(1))
	assert.False(t, a.Toggle(5), "out of range")
}

func TestAccordionKeys(t *testing.T) {
	t.Parallel()

	a := NewAccordion(
		AccordionItem{Title: "First", Content: ui.String("first body")},
		AccordionItem{Title: "Second", Content: ui.String("second body")},
	)
	a.Focus()
	before := a
	a, _ = a.Update(press("down"))
	a, _ = a.Update(press("enter"))

	assert.True(t, a.IsOpen(1))
	assert.False(t, before.IsOpen(1), "update does not leak into earlier copies")

	a.Blur()
	a, _ = a.Update(press("enter"))
	assert.True(t, a.IsOpen(1))
}

func TestCollapse(t *testing.T) {
	t.Parallel()

	c := NewCollapse("Details", ui.String("hidden text"))
	assert.False(t, c.Expanded())
	assert.NotContains(t, plain(c.View()), "hidden text")

	c.Focus()
	c.Update(press("enter"))
	assert.True(t, c.Expanded())
	assert.Contains(t, plain(c.View()), ChevronExpanded+" Details")
	assert.Contains(t, plain(c.View()), "hidden text")

	assert.False(t, c.Toggle())
}
