package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

const (
	screenLayoutClasses = "flex-1 bg-background"
	scrollViewClasses   = "bg-background flex-1 px-4"
)

// ScreenLayout fills the whole screen with the background colour and draws
// its child in the top-left corner.
type ScreenLayout struct {
	BaseComponent
	child     ui.Renderable
	width     int
	height    int
	className string
}

// NewScreenLayout wraps child.
func NewScreenLayout(child ui.Renderable) *ScreenLayout {
	return &ScreenLayout{BaseComponent: NewBaseComponent(), child: child}
}

// View renders the layout with the default theme.
func (l *ScreenLayout) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the child and pads it to the screen size.
func (l *ScreenLayout) ViewWithContext(ctx RenderContext) string {
	style := Classes(variants.Merge(screenLayoutClasses, l.className))(l.ComputeStyle(ctx.Theme), ctx.Theme)
	inner := ctx
	if l.width > 0 {
		inner = ctx.WithConstraints(WithMaxWidth(l.width))
	}
	content := render(l.child, inner)
	if l.width <= 0 || l.height <= 0 {
		return style.Render(content)
	}
	return lipgloss.Place(l.width, l.height, lipgloss.Left, lipgloss.Top, style.Render(content),
		lipgloss.WithWhitespaceBackground(style.GetBackground()))
}

// WithSize sets the screen size in cells.
func (l *ScreenLayout) WithSize(width, height int) *ScreenLayout {
	l.width, l.height = width, height
	return l
}

// WithClassName adds classes, typically a different background.
func (l *ScreenLayout) WithClassName(className string) *ScreenLayout {
	l.className = className
	return l
}

// ScreenScrollView is a vertically scrolling page with side padding.
type ScreenScrollView struct {
	viewport  viewport.Model
	className string
}

// NewScreenScrollView creates a scroll view of the given size.
func NewScreenScrollView(width, height int) ScreenScrollView {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return ScreenScrollView{viewport: vp}
}

// SetSize resizes the view.
func (s *ScreenScrollView) SetSize(width, height int) {
	s.viewport.Width = width
	s.viewport.Height = height
}

// SetContent replaces the scrolled content. The scroll position is kept.
func (s *ScreenScrollView) SetContent(content string) {
	s.viewport.SetContent(content)
}

// ContentWidth is the width available to content inside the side padding.
func (s ScreenScrollView) ContentWidth(theme Theme) int {
	return maxInt(0, s.viewport.Width-s.style(theme).GetHorizontalPadding())
}

// ContentLeft is the column content starts at inside the side padding.
func (s ScreenScrollView) ContentLeft(theme Theme) int {
	return s.style(theme).GetPaddingLeft()
}

// Update scrolls on arrow, page and mouse wheel input.
func (s ScreenScrollView) Update(msg tea.Msg) (ScreenScrollView, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// ScrollTo moves so that line is visible.
func (s *ScreenScrollView) ScrollTo(line int) {
	switch {
	case line < s.viewport.YOffset:
		s.viewport.SetYOffset(line)
	case line >= s.viewport.YOffset+s.viewport.Height:
		s.viewport.SetYOffset(line - s.viewport.Height + 1)
	}
}

// YOffset returns the first visible line.
func (s ScreenScrollView) YOffset() int {
	return s.viewport.YOffset
}

// View renders with the default theme.
func (s ScreenScrollView) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the visible window of content.
func (s ScreenScrollView) ViewWithContext(ctx RenderContext) string {
	style := s.style(ctx.Theme).Width(s.viewport.Width).Height(s.viewport.Height)
	vp := s.viewport
	vp.Width = s.ContentWidth(ctx.Theme)
	vp.Style = lipgloss.NewStyle().Background(style.GetBackground())
	return style.Render(vp.View())
}

// WithClassName adds classes, typically a different background.
func (s ScreenScrollView) WithClassName(className string) ScreenScrollView {
	s.className = className
	return s
}

func (s ScreenScrollView) style(theme Theme) lipgloss.Style {
	return ClassStyle(theme, variants.Merge(scrollViewClasses, s.className))
}
