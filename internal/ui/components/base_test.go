package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
)

func TestConstraintsTighten(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Constraints
		want Constraints
	}{
		{name: "both unlimited", want: Constraints{}},
		{name: "one side set", a: WithMaxWidth(20), want: Constraints{MaxWidth: 20}},
		{name: "other side set", b: Constraints{MaxHeight: 5}, want: Constraints{MaxHeight: 5}},
		{name: "smaller wins", a: Constraints{MaxWidth: 30, MaxHeight: 4}, b: Constraints{MaxWidth: 12, MaxHeight: 9}, want: Constraints{MaxWidth: 12, MaxHeight: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Tighten(tt.b))
			assert.Equal(t, tt.want, tt.b.Tighten(tt.a))
		})
	}
}

func TestAppliersRunInOrder(t *testing.T) {
	t.Parallel()

	bold := func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Bold(true) }
	unbold := func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Bold(false) }

	b := NewBaseComponent()
	b.SetAppliers(bold)
	assert.True(t, b.ComputeStyle(DefaultTheme()).GetBold())

	b.AddAppliers(unbold)
	assert.False(t, b.ComputeStyle(DefaultTheme()).GetBold())

	b.SetAppliers(bold)
	assert.True(t, b.ComputeStyle(DefaultTheme()).GetBold(), "SetAppliers replaces")
}

func TestStackHonoursTighterConstraint(t *testing.T) {
	t.Parallel()

	s := VStack(ui.String("a line that is far longer than ten cells")).
		WithConstraints(WithMaxWidth(10)).
		WithStyle(lipgloss.NewStyle().Italic(true))

	wide := DefaultContext().WithConstraints(WithMaxWidth(40))
	assert.LessOrEqual(t, maxLineWidth(s.ViewWithContext(wide)), 10)

	narrow := DefaultContext().WithConstraints(WithMaxWidth(6))
	assert.LessOrEqual(t, maxLineWidth(s.ViewWithContext(narrow)), 6)
}

func TestComponentOptions(t *testing.T) {
	t.Parallel()

	t.Run("button disabled", func(t *testing.T) {
		t.Parallel()
		b := NewButton("Go").WithDisabled(true).WithActive(true)
		assert.True(t, b.IsDisabled())
		assert.False(t, b.Press())
	})

	t.Run("dialog labels", func(t *testing.T) {
		t.Parallel()
		d := NewConfirmDialog("Delete item", "").WithLabels("Keep", "Remove")
		d.Open()
		view := plain(d.View())
		assert.Contains(t, view, "Keep")
		assert.Contains(t, view, "Remove")
		assert.NotContains(t, view, "Confirm")
	})

	t.Run("collapse starts expanded", func(t *testing.T) {
		t.Parallel()
		c := NewCollapse("Show details", ui.String("hidden body")).WithExpanded(true)
		assert.True(t, c.Expanded())
		assert.Contains(t, plain(c.View()), "hidden body")
		c.Toggle()
		assert.NotContains(t, plain(c.View()), "hidden body")
	})

	t.Run("table row left element", func(t *testing.T) {
		t.Parallel()
		row := NewTableRow("Wi-Fi").WithLeft(ui.String("◉")).WithTitleClassName("font-bold")
		view := plain(NewTable(row).WithHeading("Network").WithHeadingClassName("text-primary").View())
		assert.Contains(t, view, "◉")
		assert.Contains(t, view, "Wi-Fi")
	})

	t.Run("tabs keys", func(t *testing.T) {
		t.Parallel()
		tabs := NewTabs("b", Tab{Key: "a"}, Tab{Key: "b"})
		require.Equal(t, []string{"a", "b"}, tabs.Keys())
		assert.Equal(t, "b", tabs.Active())
	})
}
