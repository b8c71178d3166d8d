package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
)

type dialogCalls struct {
	closed, confirmed int
}

func newTestDialog(calls *dialogCalls) ConfirmDialog {
	d := NewConfirmDialog("Delete Item", "Are you sure you want to delete this item?").
		WithOnClose(func() { calls.closed++ }).
		WithOnConfirm(func() { calls.confirmed++ })
	d.Open()
	return d
}

func TestConfirmDialogKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		keys          []string
		wantClosed    int
		wantConfirmed int
	}{
		{name: "enter on default focus cancels", keys: []string{"enter"}, wantClosed: 1},
		{name: "right then enter confirms", keys: []string{"right", "enter"}, wantConfirmed: 1},
		{name: "tab toggles focus", keys: []string{"tab", "tab", "enter"}, wantClosed: 1},
		{name: "y confirms", keys: []string{"y"}, wantConfirmed: 1},
		{name: "n cancels", keys: []string{"n"}, wantClosed: 1},
		{name: "esc cancels", keys: []string{"esc"}, wantClosed: 1},
		{name: "keys after closing are ignored", keys: []string{"y", "y", "esc"}, wantConfirmed: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var calls dialogCalls
			d := newTestDialog(&calls)
			for _, k := range tt.keys {
				d, _ = d.Update(press(k))
			}
			assert.False(t, d.Visible())
			assert.Equal(t, tt.wantClosed, calls.closed)
			assert.Equal(t, tt.wantConfirmed, calls.confirmed)
		})
	}
}

func TestConfirmDialogOpenResetsFocus(t *testing.T) {
	t.Parallel()
	var calls dialogCalls
	d := newTestDialog(&calls)
	d, _ = d.Update(press("right"))
	require.True(t, d.ConfirmFocused())

	d.Cancel()
	d.Open()
	assert.False(t, d.ConfirmFocused())
}

func TestConfirmDialogView(t *testing.T) {
	t.Parallel()

	d := NewConfirmDialog("Delete Item", "Are you sure?")
	assert.Empty(t, d.View())

	d.Open()
	view := plain(d.WithContent(ui.String("extra")).View())
	for _, want := range []string{"Delete Item", "Are you sure?", "extra", CloseGlyph, "Cancel", "Confirm"} {
		assert.Contains(t, view, want)
	}

	tests := []struct {
		size  string
		width int
	}{
		{size: "default", width: 48},
		{size: "medium", width: 56},
		{size: "large", width: 84},
	}
	for _, tt := range tests {
		got := maxLineWidth(d.WithSize(tt.size).View())
		assert.Equal(t, tt.width, got, "size %s", tt.size)
	}

	narrow := d.ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(30)))
	assert.Equal(t, 30, maxLineWidth(narrow))
}
