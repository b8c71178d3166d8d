package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// CloseGlyph is drawn on close buttons.
const CloseGlyph = "✕"

// ModalVariants sets the sheet background by elevation.
var ModalVariants = variants.New("bg-secondary rounded-2xl border border-border", variants.Axis{
	Name: "elevation",
	Values: map[string]string{
		"1": "bg-background",
		"2": "bg-accent",
		"3": "bg-secondary",
	},
	Default: "2",
})

const (
	modalHeaderClasses = "justify-between flex-row items-center border-b border-border p-4"
	modalCloseClasses  = "bg-accent rounded-full p-2 text-foreground"
	modalBodyClasses   = "px-4 text-foreground"

	defaultModalWidth  = 60
	defaultModalHeight = 16
)

// Modal is a sheet with a title bar and a scrollable body.
type Modal struct {
	title      string
	content    ui.Renderable
	showHeader bool
	elevation  string
	className  string
	width      int
	height     int
	visible    bool
	viewport   viewport.Model
	trigger    *Button
	onClose    func()
	keys       KeyMap
}

// NewModal creates a hidden modal showing content.
func NewModal(title string, content ui.Renderable) Modal {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	return Modal{
		title:      title,
		content:    content,
		showHeader: true,
		width:      defaultModalWidth,
		height:     defaultModalHeight,
		viewport:   vp,
		keys:       DefaultKeyMap(),
	}
}

// Open shows the modal scrolled to the top.
func (m *Modal) Open() {
	m.visible = true
	m.viewport.GotoTop()
}

// Close hides the modal and runs the close callback if it was shown.
func (m *Modal) Close() {
	if !m.visible {
		return
	}
	m.visible = false
	if m.onClose != nil {
		m.onClose()
	}
}

// Visible reports whether the modal is shown.
func (m Modal) Visible() bool {
	return m.visible
}

// SetSize sets the outer size of the sheet in cells.
func (m *Modal) SetSize(width, height int) {
	m.width, m.height = width, height
}

// Update closes on esc and scrolls the body otherwise.
func (m Modal) Update(msg tea.Msg) (Modal, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Close) {
		m.Close()
		return m, nil
	}
	m.layout(DefaultContext())
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// layout sizes the body viewport and fills it for the given context.
func (m *Modal) layout(ctx RenderContext) lipgloss.Style {
	sheet := ClassStyle(ctx.Theme, ModalVariants.Resolve(variants.Selection{"elevation": m.elevation}, m.className))
	width, height := m.width, m.height
	if w := ctx.MaxWidth(); w > 0 && w < width {
		width = w
	}
	sheet = sheet.Width(maxInt(1, width-sheet.GetHorizontalBorderSize()))

	body := ClassStyle(ctx.Theme, modalBodyClasses)
	m.viewport.Width = maxInt(1, sheet.GetWidth()-sheet.GetHorizontalPadding()-body.GetHorizontalPadding())
	m.viewport.Height = maxInt(1, height-sheet.GetVerticalBorderSize()-m.headerHeight(ctx))
	m.viewport.SetContent(render(m.content, ctx.WithConstraints(WithMaxWidth(m.viewport.Width))))
	return sheet
}

func (m Modal) headerHeight(ctx RenderContext) int {
	if !m.showHeader {
		return 0
	}
	return lipgloss.Height(m.header(ctx, ClassStyle(ctx.Theme, modalHeaderClasses), 0))
}

func (m Modal) header(ctx RenderContext, sheet lipgloss.Style, width int) string {
	theme := ctx.Theme
	style := onSurface(ClassStyle(theme, modalHeaderClasses), sheet)
	title := onSurface(ClassStyle(theme, TextVariants.Resolve(variants.Selection{"variant": "headline"}, "font-bold text-foreground")), style).Render(m.title)
	closeBtn := ClassStyle(theme, modalCloseClasses).Render(CloseGlyph)
	if width > 0 {
		style = style.Width(width)
		gap := width - style.GetHorizontalPadding() - lipgloss.Width(title) - lipgloss.Width(closeBtn)
		title = lipgloss.PlaceHorizontal(lipgloss.Width(title)+maxInt(1, gap), lipgloss.Left, title,
			lipgloss.WithWhitespaceBackground(style.GetBackground()))
	}
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Center, title, closeBtn))
}

// View renders the trigger with the default theme.
func (m Modal) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger button, if any. The sheet is drawn by
// SheetView so hosts can overlay it.
func (m Modal) ViewWithContext(ctx RenderContext) string {
	if m.trigger == nil {
		return ""
	}
	return m.trigger.ViewWithContext(ctx)
}

// SheetView renders the modal, or "" when hidden.
func (m Modal) SheetView(ctx RenderContext) string {
	if !m.visible {
		return ""
	}
	sheet := m.layout(ctx)
	body := onSurface(ClassStyle(ctx.Theme, modalBodyClasses), sheet)
	m.viewport.Style = lipgloss.NewStyle().Background(sheet.GetBackground())

	var parts []string
	if m.showHeader {
		parts = append(parts, m.header(ctx, sheet, sheet.GetWidth()))
	}
	parts = append(parts, body.Render(m.viewport.View()))
	return sheet.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// WithShowHeader shows or hides the title bar.
func (m Modal) WithShowHeader(show bool) Modal {
	m.showHeader = show
	return m
}

// WithElevation sets the background depth ("1", "2", "3").
func (m Modal) WithElevation(elevation string) Modal {
	m.elevation = elevation
	return m
}

// WithClassName adds classes to the sheet.
func (m Modal) WithClassName(className string) Modal {
	m.className = className
	return m
}

// WithTrigger sets a button drawn in place of the modal.
func (m Modal) WithTrigger(b *Button) Modal {
	m.trigger = b
	return m
}

// WithOnClose sets the callback run when the modal closes.
func (m Modal) WithOnClose(fn func()) Modal {
	m.onClose = fn
	return m
}

// KeyBindings lists the bindings for help views.
func (m Modal) KeyBindings() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Close}
}
