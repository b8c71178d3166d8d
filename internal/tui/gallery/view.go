package gallery

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

// page accumulates rendered sections and the line each widget starts on.
type page struct {
	parts   []string
	lines   int
	anchors map[widget]int
}

// add appends view, after a blank line when gap is set, and anchors ws to
// its first line.
func (p *page) add(view string, gap bool, ws ...widget) {
	if gap && len(p.parts) > 0 {
		p.parts = append(p.parts, "")
		p.lines++
	}
	for _, w := range ws {
		p.anchors[w] = p.lines
	}
	p.parts = append(p.parts, view)
	p.lines += lipgloss.Height(view)
}

func (p *page) String() string {
	return strings.Join(p.parts, "\n")
}

func (m *Model) context() components.RenderContext {
	return components.DefaultContext().WithTheme(m.theme)
}

// refresh re-renders the page into the scroll view.
func (m *Model) refresh() {
	ctx := m.context()
	m.keys.extra = m.focusedBindings()
	m.scroll.SetSize(m.width, max(1, m.height-lipgloss.Height(m.footer(ctx))))
	ctx = ctx.WithConstraints(components.WithMaxWidth(m.scroll.ContentWidth(m.theme)))
	focused := func(w widget) components.RenderContext {
		return ctx.WithFocus(m.focus == w)
	}

	p := page{anchors: make(map[widget]int)}
	p.add(components.NewText(pageTitle).WithVariant("title1").ViewWithContext(ctx), false)
	p.add(components.NewCard(
		components.NewCardHeader(components.NewText("Title").WithVariant("title2")),
		components.NewCardContent(components.NewText("Body")),
	).ViewWithContext(ctx), true)
	p.add(m.tabs.ViewWithContext(ctx), true, widgetTabs)

	for i, w := range []widget{widgetSuccessToast, widgetInfoToast, widgetWarningToast, widgetErrorToast} {
		p.add(m.buttons[w].ViewWithContext(focused(w)), i == 0, w)
	}

	p.add(m.input.ViewWithContext(ctx), true, widgetInput)
	p.add(m.radio.ViewWithContext(ctx), true, widgetRadio)
	p.add(m.table.ViewWithContext(ctx), true)
	p.add(m.accordion.ViewWithContext(ctx), true, widgetAccordion)
	p.add(m.collapse.ViewWithContext(ctx), true, widgetCollapse)
	p.add(m.modal.ViewWithContext(focused(widgetExpand)), true, widgetExpand)
	p.add(m.buttons[widgetDelete].ViewWithContext(focused(widgetDelete)), true, widgetDelete)
	p.add(m.selectBox.ViewWithContext(ctx), true, widgetSelect)
	p.add(m.popover.ViewWithContext(ctx), true, widgetPopover)

	m.anchors = p.anchors
	m.scroll.SetContent(p.String())
}

func (m *Model) footer(ctx components.RenderContext) string {
	status := m.status
	if status == "" {
		status = "focus: " + widgetNames[m.focus]
	}
	line := components.ClassStyle(ctx.Theme, "text-muted-foreground px-4").Render(ansi.Truncate(status, max(0, m.width-4), "…"))
	return lipgloss.JoinVertical(lipgloss.Left, line, m.help.View(m.keys))
}

// View draws the page, then the open overlays, then the toasts on top.
func (m *Model) View() string {
	ctx := m.context()
	body := lipgloss.JoinVertical(lipgloss.Left, m.scroll.ViewWithContext(ctx), m.footer(ctx))
	screen := components.NewScreenLayout(ui.String(body)).WithSize(m.width, m.height).ViewWithContext(ctx)

	if m.popover.IsOpen() {
		origin := components.Point{
			X: m.scroll.ContentLeft(m.theme),
			Y: m.anchors[widgetPopover] - m.scroll.YOffset(),
		}
		at := m.popover.MenuAt(ctx, origin)
		screen = components.Overlay(screen, m.popover.MenuView(ctx), at.X, at.Y)
	}
	if m.selectBox.IsOpen() {
		sheet := m.selectBox.SheetView(ctx.WithConstraints(components.WithMaxWidth(m.width)))
		screen = components.OverlayBottom(screen, sheet, m.width, m.height)
	}
	if m.modal.Visible() {
		screen = components.OverlayCenter(screen, m.modal.SheetView(ctx), m.width, m.height)
	}
	if m.dialog.Visible() {
		dialog := m.dialog.ViewWithContext(ctx.WithConstraints(components.WithMaxWidth(max(1, m.width-4))))
		screen = components.OverlayCenter(screen, dialog, m.width, m.height)
	}

	panel := m.debugView(ctx)
	at := m.debug.origin(panel, m.width, m.height)
	screen = components.Overlay(screen, panel, at.X, at.Y)

	return m.toasts.View(screen)
}

func (m *Model) debugView(ctx components.RenderContext) string {
	return m.debug.view(ctx, [][2]string{
		{"focus", widgetNames[m.focus]},
		{"scheme", m.effectiveSchemeName()},
		{"toasts", strconv.Itoa(m.toasts.Len())},
		{"input", strconv.Quote(m.inputValue)},
		{"radio", m.radio.Value()},
		{"select", m.selectBox.Value()},
		{"tab", m.tabs.Active()},
	})
}

func (m *Model) effectiveSchemeName() string {
	if m.scheme == "" {
		return "auto"
	}
	return string(m.scheme)
}

func (m *Model) debugRect() components.Rect {
	panel := m.debugView(m.context())
	at := m.debug.origin(panel, m.width, m.height)
	return components.Rect{X: at.X, Y: at.Y, Width: lipgloss.Width(panel), Height: lipgloss.Height(panel)}
}
