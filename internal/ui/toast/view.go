package toast

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

// Glyphs drawn on toasts.
const (
	CloseGlyph = "✕"

	IconSuccess     = "✓"
	IconInfo        = "ℹ"
	IconWarning     = "!"
	IconDestructive = "✗"
)

const (
	toastClasses  = "rounded-2xl border border-border px-4 text-foreground"
	titleClasses  = "font-bold text-foreground"
	descClasses   = "text-foreground"
	actionClasses = "border border-border rounded-lg px-2 font-bold text-foreground"
	closeClasses  = "px-1 text-foreground"
)

type zone int

const (
	zoneBody zone = iota
	zoneClose
	zoneAction
)

type hitResult struct {
	id   string
	zone zone
}

// placed is a rendered toast and where it sits on screen.
type placed struct {
	toast Toast
	view  string
	rect  components.Rect
	side  components.Rect
}

// Icon returns the glyph drawn for a toast: its own icon or the kind's.
func Icon(t Toast) string {
	if t.Icon != "" {
		return t.Icon
	}
	switch t.Kind {
	case KindSuccess:
		return IconSuccess
	case KindWarning:
		return IconWarning
	case KindDestructive:
		return IconDestructive
	default:
		return IconInfo
	}
}

func iconColor(kind Kind) string {
	switch kind {
	case KindSuccess:
		return "secondary-foreground"
	case KindWarning:
		return "warning-foreground"
	case KindDestructive:
		return "destructive-foreground"
	default:
		return "info-foreground"
	}
}

// Width is the toast width for a window width.
func Width(windowWidth int) int {
	if windowWidth <= 0 {
		return DefaultMaxWidth
	}
	return max(1, min(windowWidth-4, DefaultMaxWidth))
}

// renderToast draws one toast at the given outer width and returns the
// offset and width of its right-hand button within the view.
func renderToast(t Toast, theme components.Theme, width int) (string, int, int) {
	box := components.ClassStyle(theme, toastClasses+" bg-"+string(t.Kind))
	box = box.Width(max(1, width-box.GetHorizontalBorderSize()))
	inner := box.GetWidth() - box.GetHorizontalPadding()
	surface := lipgloss.NewStyle().Background(box.GetBackground())

	var side string
	if t.Action != nil {
		side = components.ClassStyle(theme, actionClasses).Background(box.GetBackground()).Render(t.Action.Label)
	} else {
		side = components.ClassStyle(theme, closeClasses).Background(box.GetBackground()).Render(CloseGlyph)
	}
	sideWidth := lipgloss.Width(side)
	leftWidth := max(1, inner-sideWidth-1)

	icon := surface.Foreground(theme.MustColor(iconColor(t.Kind))).Render(Icon(t) + " ")
	title := components.ClassStyle(theme, titleClasses).Background(box.GetBackground()).
		Render(TruncateTitle(t.Title))
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, icon, title)}
	if t.Description != "" {
		desc := components.ClassStyle(theme, descClasses).Background(box.GetBackground()).
			Width(leftWidth).Render(t.Description)
		lines = append(lines, desc)
	}
	left := lipgloss.PlaceHorizontal(leftWidth, lipgloss.Left, lipgloss.JoinVertical(lipgloss.Left, lines...),
		lipgloss.WithWhitespaceBackground(box.GetBackground()))

	body := lipgloss.JoinHorizontal(lipgloss.Center, left, surface.Render(" "), side)
	sideX := box.GetBorderLeftSize() + box.GetPaddingLeft() + leftWidth + 1
	return box.Render(body), sideX, sideWidth
}

// layout renders every toast and places it: centred, stacked upward from
// the bottom edge with the newest highest.
func (p *Provider) layout() []placed {
	p.mu.Lock()
	toasts := make([]Toast, len(p.entries))
	for i, e := range p.entries {
		toasts[i] = e.toast
	}
	theme, width, height, units := p.theme, p.width, p.height, p.unitsPerRow
	p.mu.Unlock()

	w := Width(width)
	x := max(0, (width-w)/2)
	bottom := height - int(float64(Offset(0))/units)
	if height <= 0 {
		bottom = 0
	}

	out := make([]placed, 0, len(toasts))
	for _, t := range toasts {
		view, sideX, sideW := renderToast(t, theme, w)
		h := lipgloss.Height(view)
		y := bottom - h
		bottom = y
		out = append(out, placed{
			toast: t,
			view:  view,
			rect:  components.Rect{X: x, Y: y, Width: lipgloss.Width(view), Height: h},
			side:  components.Rect{X: x + sideX, Y: y, Width: sideW, Height: h},
		})
	}
	if height <= 0 {
		// Without a window size, stack down from the top instead.
		shift := 0
		if len(out) > 0 {
			shift = -out[len(out)-1].rect.Y
		}
		for i := range out {
			out[i].rect.Y += shift
			out[i].side.Y += shift
		}
	}
	return out
}

func (p *Provider) hit(x, y int) (hitResult, bool) {
	for _, pl := range p.layout() {
		if !contains(pl.rect, x, y) {
			continue
		}
		z := zoneBody
		if contains(pl.side, x, y) {
			z = zoneClose
			if pl.toast.Action != nil {
				z = zoneAction
			}
		}
		return hitResult{id: pl.toast.ID, zone: z}, true
	}
	return hitResult{}, false
}

func contains(r components.Rect, x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// View draws the queued toasts over bg, which should fill the window.
func (p *Provider) View(bg string) string {
	for _, pl := range p.layout() {
		bg = components.Overlay(bg, pl.view, pl.rect.X, pl.rect.Y)
	}
	return bg
}

// Render draws the queued toasts stacked on their own, newest on top.
func (p *Provider) Render() string {
	layout := p.layout()
	views := make([]string, len(layout))
	for i, pl := range layout {
		views[len(layout)-1-i] = pl.view
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}
