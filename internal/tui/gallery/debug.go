package gallery

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

const (
	debugButtonClasses = "bg-warning text-warning-foreground rounded-xl border border-border px-2"
	debugPanelClasses  = "bg-card text-card-foreground rounded-xl border border-border px-4"
	debugTitle         = "Floating Debugger"
	debugBugGlyph      = "⚙ debug"
	debugHideGlyph     = "−"

	// Rows between the panel and the bottom edge before it is dragged.
	debugBottomRows = 6
)

// debugPanel is a draggable overlay showing gallery state. Collapsed it is
// a small button; a tap toggles it and a drag moves it.
type debugPanel struct {
	showing  bool
	dx, dy   int
	dragging bool
	moved    bool
	lastX    int
	lastY    int
}

func newDebugPanel() debugPanel {
	return debugPanel{}
}

func (d *debugPanel) toggle() {
	d.showing = !d.showing
}

// view renders the panel with one "property: value" line per entry.
func (d debugPanel) view(ctx components.RenderContext, entries [][2]string) string {
	theme := ctx.Theme
	if !d.showing {
		return components.ClassStyle(theme, debugButtonClasses).Render(debugBugGlyph)
	}

	box := components.ClassStyle(theme, debugPanelClasses)
	hide := components.ClassStyle(theme, "bg-warning text-warning-foreground px-1").Render(debugHideGlyph)
	title := components.NewText(debugTitle).WithVariant("title3").WithClassName("text-card-foreground").ViewWithContext(ctx)
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, hide, " ", title)}
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s", e[0], e[1]))
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// origin places a view of the panel against the right edge, above the
// bottom, shifted by the accumulated drag and kept on screen.
func (d debugPanel) origin(view string, width, height int) components.Point {
	w, h := lipgloss.Width(view), lipgloss.Height(view)
	x := width - w + d.dx
	y := height - debugBottomRows - h + d.dy
	return components.Point{
		X: max(0, min(x, width-w)),
		Y: max(0, min(y, height-h)),
	}
}

// handleMouse drags or toggles the panel drawn at r. It reports whether
// the event belonged to the panel.
func (d *debugPanel) handleMouse(msg tea.MouseMsg, r components.Rect) bool {
	inside := msg.X >= r.X && msg.X < r.X+r.Width && msg.Y >= r.Y && msg.Y < r.Y+r.Height
	switch msg.Action {
	case tea.MouseActionPress:
		if !inside || msg.Button != tea.MouseButtonLeft {
			return false
		}
		d.dragging, d.moved = true, false
		d.lastX, d.lastY = msg.X, msg.Y
		return true
	case tea.MouseActionMotion:
		if !d.dragging {
			return false
		}
		d.dx += msg.X - d.lastX
		d.dy += msg.Y - d.lastY
		d.moved = d.moved || msg.X != d.lastX || msg.Y != d.lastY
		d.lastX, d.lastY = msg.X, msg.Y
		return true
	case tea.MouseActionRelease:
		if !d.dragging {
			return false
		}
		d.dragging = false
		if msg.X != d.lastX || msg.Y != d.lastY {
			d.dx += msg.X - d.lastX
			d.dy += msg.Y - d.lastY
			d.moved = true
		}
		if !d.moved {
			d.toggle()
		}
		return true
	}
	return false
}
