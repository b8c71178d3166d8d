package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in one direction with an optional gap.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	mainAlign   MainAxisAlignment
	crossAlign  CrossAxisAlignment
	constraints Constraints
	className   string
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	style := s.ComputeStyle(ctx.Theme)
	if s.className != "" {
		style = Classes(s.className)(style, ctx.Theme)
	}

	limits := s.constraints.Tighten(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.childConstraints(limits))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	var content string
	switch {
	case len(views) == 0:
	case s.direction == DirectionHorizontal:
		content = s.joinHorizontal(views, limits.MaxWidth)
	default:
		content = s.join(views, "\n", lipgloss.JoinVertical)
	}

	if limits.MaxWidth > 0 {
		style = style.MaxWidth(limits.MaxWidth)
	}
	if limits.MaxHeight > 0 {
		style = style.MaxHeight(limits.MaxHeight)
	}
	return style.Render(content)
}

// childConstraints splits the width evenly between children of a
// horizontal stack. Vertical stacks pass the width through.
func (s *Stack) childConstraints(parent Constraints) Constraints {
	child := parent
	if s.direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		available := parent.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

func (s *Stack) join(views []string, gapUnit string, joinFn func(lipgloss.Position, ...string) string) string {
	pos := s.crossAlign.toLipglossPosition()
	if s.gap == 0 {
		return joinFn(pos, views...)
	}

	spacer := strings.Repeat(gapUnit, s.gap)
	if gapUnit == "\n" {
		spacer = strings.Repeat("\n", s.gap-1)
	}
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return joinFn(pos, parts...)
}

// joinHorizontal honours the main-axis alignment when the width is known.
func (s *Stack) joinHorizontal(views []string, width int) string {
	pos := s.crossAlign.toVerticalPosition()
	if width <= 0 || s.mainAlign == MainStart || len(views) < 2 && s.mainAlign >= MainSpaceBetween {
		return s.join(views, " ", func(_ lipgloss.Position, parts ...string) string {
			return lipgloss.JoinHorizontal(pos, parts...)
		})
	}

	used := 0
	for _, v := range views {
		used += lipgloss.Width(v)
	}
	free := width - used - s.gap*(len(views)-1)
	if free <= 0 {
		return s.join(views, " ", func(_ lipgloss.Position, parts ...string) string {
			return lipgloss.JoinHorizontal(pos, parts...)
		})
	}

	switch s.mainAlign {
	case MainSpaceBetween, MainSpaceAround, MainSpaceEvenly:
		slots := len(views) - 1
		parts := make([]string, 0, len(views)*2)
		for i, v := range views {
			if i > 0 {
				share := free / slots
				if i <= free%slots {
					share++
				}
				parts = append(parts, strings.Repeat(" ", share+s.gap))
			}
			parts = append(parts, v)
		}
		return lipgloss.JoinHorizontal(pos, parts...)
	default:
		row := s.join(views, " ", func(_ lipgloss.Position, parts ...string) string {
			return lipgloss.JoinHorizontal(pos, parts...)
		})
		align := lipgloss.Right
		if s.mainAlign == MainCenter {
			align = lipgloss.Center
		}
		return lipgloss.PlaceHorizontal(width, align, row)
	}
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children, in rows or columns.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithMainAlign sets the main axis alignment. It only takes effect on
// horizontal stacks with a width limit.
func (s *Stack) WithMainAlign(align MainAxisAlignment) *Stack {
	s.mainAlign = align
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithClassName styles the stack box with utility classes.
func (s *Stack) WithClassName(className string) *Stack {
	s.className = className
	return s
}

// WithStyle sets the container style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func (c CrossAxisAlignment) toVerticalPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}
