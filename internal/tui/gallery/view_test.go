package gallery

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uikit/internal/ui/toast"
)

// find returns the cell position of the first occurrence of text.
func find(view, text string) (int, int, bool) {
	for y, line := range strings.Split(ansi.Strip(view), "\n") {
		if i := strings.Index(line, text); i >= 0 {
			return ansi.StringWidth(line[:i]), y, true
		}
	}
	return 0, 0, false
}

func click(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func TestViewFillsWindow(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	view := m.View()
	assert.Equal(t, 40, lipgloss.Height(view))
	assert.LessOrEqual(t, lipgloss.Width(view), 100)

	plain := ansi.Strip(view)
	for _, want := range []string{pageTitle, "Body", "This is Tab One", "Default", "Destructive", "focus: tabs"} {
		assert.Contains(t, plain, want)
	}
}

func TestViewScrollsToFocus(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	assert.NotContains(t, ansi.Strip(m.View()), "Open Popover")

	focusOn(t, m, widgetPopover)
	assert.Positive(t, m.scroll.YOffset())
	assert.Contains(t, ansi.Strip(m.View()), "Open Popover")
}

func TestViewDrawsToasts(t *testing.T) {
	t.Parallel()

	m, p := newTestModel(t)
	p.Notify(toast.KindInfo, "Heads up")

	view := m.View()
	assert.Contains(t, ansi.Strip(view), "Heads up")
	assert.Equal(t, 40, lipgloss.Height(view))
}

func TestClickDismissesToast(t *testing.T) {
	t.Parallel()

	m, p := newTestModel(t)
	p.Notify(toast.KindWarning, "Tap to close")

	x, y, ok := find(m.View(), toast.CloseGlyph)
	require.True(t, ok)
	click(m, x, y)
	assert.Equal(t, 0, p.Len())
}

func TestDebugPanel(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	assert.Contains(t, ansi.Strip(m.View()), debugBugGlyph)

	send(m, "d")
	view := ansi.Strip(m.View())
	assert.Contains(t, view, debugTitle)
	assert.Contains(t, view, "focus: tabs")
	assert.Contains(t, view, "scheme: light")

	r := m.debugRect()
	click(m, r.X+1, r.Y+1)
	assert.NotContains(t, ansi.Strip(m.View()), debugTitle)
}

func TestDebugPanelDrags(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	before := m.debugRect()

	m.Update(tea.MouseMsg{X: before.X + 1, Y: before.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: before.X - 4, Y: before.Y - 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: before.X - 9, Y: before.Y - 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	after := m.debugRect()
	assert.Equal(t, before.X-10, after.X)
	assert.Equal(t, before.Y-3, after.Y)
	assert.False(t, m.debug.showing, "a drag does not toggle the panel")
}

func TestDebugOriginStaysOnScreen(t *testing.T) {
	t.Parallel()

	d := debugPanel{dx: 500, dy: -500}
	at := d.origin("abc\ndef", 80, 24)
	assert.Equal(t, 77, at.X)
	assert.Equal(t, 0, at.Y)
}
