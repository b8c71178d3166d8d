package components

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
)

func TestModalOpenClose(t *testing.T) {
	t.Parallel()

	closed := 0
	m := NewModal("Modal", ui.String("Modal Content")).WithOnClose(func() { closed++ })
	assert.False(t, m.Visible())
	assert.Empty(t, m.SheetView(DefaultContext()))

	m.Open()
	sheet := plain(m.SheetView(DefaultContext()))
	assert.Contains(t, sheet, "Modal")
	assert.Contains(t, sheet, "Modal Content")
	assert.Contains(t, sheet, CloseGlyph)

	m, _ = m.Update(press("esc"))
	assert.False(t, m.Visible())
	assert.Equal(t, 1, closed)

	m.Close()
	assert.Equal(t, 1, closed, "closing a hidden modal does not fire")
}

func TestModalHeaderAndSize(t *testing.T) {
	t.Parallel()

	m := NewModal("Title", ui.String("body")).WithShowHeader(false).WithElevation("3")
	m.SetSize(40, 8)
	m.Open()
	sheet := m.SheetView(DefaultContext())
	assert.NotContains(t, plain(sheet), "Title")
	assert.Equal(t, 40, maxLineWidth(sheet))
	assert.Equal(t, 8, strings.Count(sheet, "\n")+1)
}

func TestModalScrolls(t *testing.T) {
	t.Parallel()

	lines := make([]string, 40)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i)
	}
	m := NewModal("Long", ui.String(strings.Join(lines, "\n")))
	m.Open()
	require.Contains(t, plain(m.SheetView(DefaultContext())), "line 00")

	for range 10 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	sheet := plain(m.SheetView(DefaultContext()))
	assert.NotContains(t, sheet, "line 00")
	assert.Contains(t, sheet, "line 10")
}
