package gallery

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	"github.com/alexisbeaulieu97/uikit/internal/ui/toast"
)

func press(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestModel(t *testing.T) (*Model, *toast.Provider) {
	t.Helper()
	p := toast.NewProvider()
	t.Cleanup(p.Close)
	m := New(p, WithScheme(components.SchemeLight))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, p
}

func send(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(press(k))
	}
	return cmd
}

func focusOn(t *testing.T, m *Model, w widget) {
	t.Helper()
	for range widgetCount {
		if m.focus == w {
			return
		}
		send(m, "tab")
	}
	require.Equal(t, w, m.focus)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewStartsOnTabs(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	assert.Equal(t, "tabs", m.Focused())
	assert.Equal(t, components.SchemeLight, m.Scheme())
	assert.Nil(t, m.Init())
}

func TestNewWithoutProviderPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, toast.ErrNoProvider, func() { New(nil) })
}

func TestFocusWraps(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	send(m, "shift+tab")
	assert.Equal(t, "popover", m.Focused())

	send(m, "tab")
	assert.Equal(t, "tabs", m.Focused())

	for range widgetCount {
		send(m, "tab")
	}
	assert.Equal(t, "tabs", m.Focused())
}

func TestToastButtons(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		widget widget
		kind   toast.Kind
		title  string
	}{
		{name: "success", widget: widgetSuccessToast, kind: toast.KindSuccess, title: "Success"},
		{name: "info", widget: widgetInfoToast, kind: toast.KindInfo, title: "Info"},
		{name: "warning", widget: widgetWarningToast, kind: toast.KindWarning, title: "Warning"},
		{name: "error", widget: widgetErrorToast, kind: toast.KindDestructive, title: "Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, p := newTestModel(t)
			focusOn(t, m, tc.widget)
			send(m, "enter")

			toasts := p.Toasts()
			require.Len(t, toasts, 1)
			assert.Equal(t, tc.kind, toasts[0].Kind)
			assert.Equal(t, tc.title, toasts[0].Title)
			assert.NotEmpty(t, toasts[0].Description)
		})
	}
}

func TestToastButtonsKeepThree(t *testing.T) {
	t.Parallel()

	m, p := newTestModel(t)
	focusOn(t, m, widgetSuccessToast)
	send(m, "enter", "enter", "enter", "enter")
	assert.Equal(t, toast.MaxVisible, p.Len())
}

func TestConfirmDialog(t *testing.T) {
	t.Parallel()

	t.Run("confirm raises a success toast", func(t *testing.T) {
		t.Parallel()

		m, p := newTestModel(t)
		focusOn(t, m, widgetDelete)
		send(m, "enter")
		require.True(t, m.dialog.Visible())
		assert.Contains(t, m.View(), "Are you sure")

		send(m, "y")
		assert.False(t, m.dialog.Visible())
		toasts := p.Toasts()
		require.Len(t, toasts, 1)
		assert.Equal(t, toast.KindSuccess, toasts[0].Kind)
		assert.Equal(t, "Item Deleted", toasts[0].Title)
		assert.Equal(t, "The item has been successfully deleted.", toasts[0].Description)
	})

	t.Run("escape cancels", func(t *testing.T) {
		t.Parallel()

		m, p := newTestModel(t)
		focusOn(t, m, widgetDelete)
		send(m, "enter", "esc")
		assert.False(t, m.dialog.Visible())
		assert.Equal(t, 0, p.Len())
		assert.Equal(t, "dialog cancelled", m.Status())
	})

	t.Run("keys go to the dialog while open", func(t *testing.T) {
		t.Parallel()

		m, _ := newTestModel(t)
		focusOn(t, m, widgetDelete)
		send(m, "enter", "tab")
		assert.Equal(t, "confirm dialog", m.Focused())
		assert.True(t, m.dialog.ConfirmFocused())
	})
}

func TestModal(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	focusOn(t, m, widgetExpand)
	send(m, "enter")
	require.True(t, m.modal.Visible())
	assert.Contains(t, m.View(), "Modal Content")

	send(m, "esc")
	assert.False(t, m.modal.Visible())
	assert.Equal(t, "modal closed", m.Status())
}

func TestPopoverSelectsItem(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	focusOn(t, m, widgetPopover)
	send(m, "enter")
	require.True(t, m.popover.IsOpen())
	assert.Contains(t, m.View(), "Item 4")

	send(m, "down", "enter")
	assert.False(t, m.popover.IsOpen())
	assert.Equal(t, "Selected item: Item 2", m.Status())
}

func TestSelectAndRadio(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	focusOn(t, m, widgetRadio)
	send(m, "down", "enter")
	assert.Equal(t, "radio changed: 2", m.Status())
	assert.Equal(t, "2", m.radio.Value())

	focusOn(t, m, widgetSelect)
	send(m, "enter")
	require.True(t, m.selectBox.IsOpen())
	assert.Contains(t, m.View(), "✓")
	send(m, "down", "enter")
	assert.Equal(t, "select changed: 2", m.Status())
	assert.False(t, m.selectBox.IsOpen())
}

func TestSelectSearchNarrowsOptions(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	focusOn(t, m, widgetSelect)
	send(m, "enter", "/", "2")
	require.True(t, m.selectBox.IsOpen())
	assert.Equal(t, "2", m.query)
	require.Len(t, m.selectBox.Options(), 1)
	assert.Equal(t, "2", m.selectBox.Options()[0].Value)

	send(m, "enter", "enter")
	assert.Equal(t, "select changed: 2", m.Status())
	assert.False(t, m.selectBox.IsOpen())
	assert.Empty(t, m.query, "closing clears the search")
	assert.Len(t, m.selectBox.Options(), 2)
}

func TestFilterChoices(t *testing.T) {
	t.Parallel()

	choices := []components.SelectOption{
		{Label: "Apple", Value: "a"},
		{Label: "Banana", Value: "b"},
	}
	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"a", "b"}},
		{query: "AN", want: []string{"b"}},
		{query: "a", want: []string{"a", "b"}},
		{query: "zz", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			var got []string
			for _, c := range filterChoices(choices, tt.query) {
				got = append(got, c.Value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTabsSwitch(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	assert.Equal(t, "This is Tab One", m.tabs.Active())
	send(m, "right")
	assert.Equal(t, "This is Tab Two", m.tabs.Active())
	assert.Equal(t, "tab changed: This is Tab Two", m.Status())
}

func TestInputTakesKeys(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	focusOn(t, m, widgetInput)
	send(m, "q", "t")
	assert.Equal(t, "qt", m.inputValue)
	assert.Equal(t, components.SchemeLight, m.Scheme())

	send(m, "tab")
	assert.Equal(t, "radio group", m.Focused())
	assert.True(t, isQuit(send(m, "q")))
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	assert.True(t, isQuit(send(m, "ctrl+c")))

	focusOn(t, m, widgetDelete)
	send(m, "enter")
	assert.True(t, isQuit(send(m, "ctrl+c")), "ctrl+c quits over an open dialog")
}

func TestThemeToggle(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	send(m, "t")
	assert.Equal(t, components.SchemeDark, m.Scheme())
	assert.True(t, m.theme.Dark())
	send(m, "t")
	assert.Equal(t, components.SchemeLight, m.Scheme())
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	assert.NotContains(t, m.View(), "previous")
	send(m, "?")
	assert.Contains(t, m.View(), "previous")
}

func TestChangedMsgIsAccepted(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	model, cmd := m.Update(toast.ChangedMsg{ID: "1"})
	assert.Same(t, m, model)
	assert.Nil(t, cmd)
}
