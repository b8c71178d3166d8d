package gallery

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	"github.com/alexisbeaulieu97/uikit/internal/ui/toast"
)

// Update routes messages. Open overlays take keys before the page; the
// input takes every key but focus movement while focused.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.toasts.Update(msg)
		m.resize(msg.Width, msg.Height)
		m.scroll.ScrollTo(m.anchors[m.focus])
		return m, nil

	case toast.ChangedMsg:
		// A timer removed a toast; the next View redraws without it.
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(k tea.KeyMsg) tea.Cmd {
	if key.Matches(k, m.keys.Cancel) {
		return tea.Quit
	}

	var cmd tea.Cmd
	switch {
	case m.dialog.Visible():
		m.dialog, cmd = m.dialog.Update(k)
		return cmd
	case m.modal.Visible():
		m.modal, cmd = m.modal.Update(k)
		return cmd
	case m.selectBox.IsOpen():
		return m.updateSelect(k)
	case m.popover.IsOpen():
		m.popover, cmd = m.popover.Update(k)
		return cmd
	}

	switch {
	case key.Matches(k, m.keys.Next):
		return m.move(1)
	case key.Matches(k, m.keys.Prev):
		return m.move(-1)
	}

	if m.focus == widgetInput {
		m.input, cmd = m.input.Update(k)
		return cmd
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return tea.Quit
	case key.Matches(k, m.keys.Theme):
		m.applyScheme(components.Toggle(m.effectiveScheme()))
		m.report("theme changed", string(m.scheme))
		return nil
	case key.Matches(k, m.keys.Debug):
		m.debug.toggle()
		return nil
	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	return m.updateFocused(k)
}

func (m *Model) updateFocused(k tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case widgetTabs:
		m.tabs, cmd = m.tabs.Update(k)
	case widgetRadio:
		m.radio, cmd = m.radio.Update(k)
	case widgetAccordion:
		m.accordion, cmd = m.accordion.Update(k)
	case widgetSelect:
		cmd = m.updateSelect(k)
	case widgetPopover:
		m.popover, cmd = m.popover.Update(k)
	case widgetCollapse:
		if key.Matches(k, components.DefaultKeyMap().Select) {
			return m.collapse.Update(k)
		}
		m.scroll, cmd = m.scroll.Update(k)
	default:
		if b, ok := m.buttons[m.focus]; ok && key.Matches(k, components.DefaultKeyMap().Select) {
			b.Press()
			return nil
		}
		m.scroll, cmd = m.scroll.Update(k)
	}
	return cmd
}

// move shifts focus by delta, wrapping at both ends.
func (m *Model) move(delta int) tea.Cmd {
	m.focus = widget((int(m.focus) + delta + int(widgetCount)) % int(widgetCount))
	return m.syncFocus()
}

// effectiveScheme resolves an adaptive theme against the terminal.
func (m *Model) effectiveScheme() components.Scheme {
	if m.scheme != "" {
		return m.scheme
	}
	if lipgloss.HasDarkBackground() {
		return components.SchemeDark
	}
	return components.SchemeLight
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.toasts.Contains(msg.X, msg.Y) {
		return m.toasts.Update(msg)
	}
	if m.debug.handleMouse(msg, m.debugRect()) {
		return nil
	}

	var cmd tea.Cmd
	if m.modal.Visible() {
		m.modal, cmd = m.modal.Update(msg)
		return cmd
	}
	m.scroll, cmd = m.scroll.Update(msg)
	return cmd
}

// updateSelect forwards k to the select, then narrows its options to the
// search query the callback recorded during Update.
func (m *Model) updateSelect(k tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.selectBox, cmd = m.selectBox.Update(k)
	m.selectBox.SetOptions(filterChoices(m.choices, m.query)...)
	return cmd
}

func filterChoices(choices []components.SelectOption, query string) []components.SelectOption {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return choices
	}
	var out []components.SelectOption
	for _, c := range choices {
		if strings.Contains(strings.ToLower(c.Label), query) || strings.Contains(c.Value, query) {
			out = append(out, c)
		}
	}
	return out
}
