package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
)

func TestTableRows(t *testing.T) {
	t.Parallel()

	pressed := 0
	table := NewTable(
		NewTableHeader("Header"),
		NewTableRow("Title").WithDescription("Description").WithOnPress(func() { pressed++ }),
		NewTableRow("Second").WithRight(ui.String("On")),
	).WithHeading("Settings")

	view := plain(table.View())
	assert.Contains(t, view, "Settings")
	assert.Contains(t, view, "HEADER")
	assert.Contains(t, view, "Description")
	assert.Equal(t, 1, strings.Count(view, RowChevron), "rows with a right element have no chevron")
	assert.Contains(t, view, "On")

	rows := table.Rows()
	assert.Len(t, rows, 2)
	rows[0].Press()
	rows[1].Press()
	assert.Equal(t, 1, pressed)
}

func TestTableRowBorders(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithConstraints(WithMaxWidth(40))
	first := NewTableRow("Title")
	last := NewTableRow("Title")

	assert.Equal(t, 2, lipglossHeight(first.render(ctx, false)), "bottom rule under all but the last row")
	assert.Equal(t, 1, lipglossHeight(last.render(ctx, true)))
}
