package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// Indicator is the mark drawn in front of a radio option.
type Indicator string

const (
	IndicatorCircle Indicator = "circle"
	IndicatorCheck  Indicator = "check"
)

const (
	radioLabelClasses    = "text-muted-foreground mb-2"
	radioRowClasses      = "flex-row gap-4 items-center py-4 border-b border-border"
	radioCircleClasses   = "rounded-full bg-accent w-6 h-6 text-accent"
	radioSelectedClasses = "border-[4px] bg-card border-primary text-primary"
	radioTextClasses     = "text-foreground/50"
	radioTextSelected    = "text-foreground"
	cursorClasses        = "bg-muted"
)

// RadioOption is one choice of a RadioGroup.
type RadioOption struct {
	Label string
	Value string
}

// RadioGroup is a single-choice list. The cursor moves with up/down and
// enter or space selects the option under it.
type RadioGroup struct {
	options   []RadioOption
	value     string
	cursor    int
	label     string
	indicator Indicator
	className string
	focused   bool
	onChange  func(string)
	keys      KeyMap
}

// NewRadioGroup creates a group with defaultValue selected.
func NewRadioGroup(defaultValue string, options ...RadioOption) RadioGroup {
	r := RadioGroup{
		options:   options,
		value:     defaultValue,
		indicator: IndicatorCheck,
		keys:      DefaultKeyMap(),
	}
	if i := r.indexOf(defaultValue); i >= 0 {
		r.cursor = i
	}
	return r
}

// Update moves the cursor and selects while focused.
func (r RadioGroup) Update(msg tea.Msg) (RadioGroup, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !r.focused || len(r.options) == 0 {
		return r, nil
	}
	switch {
	case key.Matches(k, r.keys.Up):
		r.cursor = maxInt(0, r.cursor-1)
	case key.Matches(k, r.keys.Down):
		r.cursor = min(len(r.options)-1, r.cursor+1)
	case key.Matches(k, r.keys.Select):
		r.Select(r.options[r.cursor].Value)
	}
	return r, nil
}

// Select makes value the selection and reports it through the change
// callback, even when it was already selected. Unknown values are ignored.
func (r *RadioGroup) Select(value string) bool {
	i := r.indexOf(value)
	if i < 0 {
		return false
	}
	r.value = value
	r.cursor = i
	if r.onChange != nil {
		r.onChange(value)
	}
	return true
}

// Value returns the selected value.
func (r RadioGroup) Value() string {
	return r.value
}

// Options returns the choices in order.
func (r RadioGroup) Options() []RadioOption {
	return r.options
}

// Focus lets the group handle keys.
func (r *RadioGroup) Focus() {
	r.focused = true
}

// Blur stops the group from handling keys.
func (r *RadioGroup) Blur() {
	r.focused = false
}

// Focused reports whether the group handles keys.
func (r RadioGroup) Focused() bool {
	return r.focused
}

// View renders the group with the default theme.
func (r RadioGroup) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the optional label and one row per option.
func (r RadioGroup) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	var lines []string
	if r.label != "" {
		lines = append(lines, NewText(r.label).WithClassName(radioLabelClasses).ViewWithContext(ctx))
	}

	for i, opt := range r.options {
		selected := opt.Value == r.value
		rowClasses := radioRowClasses
		if i == len(r.options)-1 {
			rowClasses = variants.Merge(rowClasses, "border-b-0")
		}
		if r.focused && i == r.cursor {
			rowClasses = variants.Merge(rowClasses, cursorClasses)
		}
		row := ClassStyle(theme, variants.Merge(rowClasses, r.className))
		if w := ctx.MaxWidth(); w > 0 {
			row = row.Width(w)
		}

		textClasses := radioTextClasses
		if selected {
			textClasses = radioTextSelected
		}
		text := onSurface(ClassStyle(theme, textClasses), row).Render(opt.Label)
		mark := onSurface(r.markStyle(theme, selected), row).Render(r.mark(selected))
		lines = append(lines, row.Render(lipgloss.JoinHorizontal(lipgloss.Center, mark, onSurface(lipgloss.NewStyle(), row).Render(" "), text)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r RadioGroup) mark(selected bool) string {
	switch {
	case r.indicator == IndicatorCircle && selected:
		return "◉"
	case r.indicator == IndicatorCircle:
		return "○"
	case selected:
		return "✓"
	default:
		return " "
	}
}

func (r RadioGroup) markStyle(theme Theme, selected bool) lipgloss.Style {
	if r.indicator == IndicatorCircle {
		classes := radioCircleClasses
		if selected {
			classes = variants.Merge(classes, radioSelectedClasses)
		}
		// The circle is a glyph; drop the box classes.
		return lipgloss.NewStyle().Foreground(ClassStyle(theme, classes).GetForeground())
	}
	return lipgloss.NewStyle().Foreground(theme.MustColor("primary"))
}

func (r RadioGroup) indexOf(value string) int {
	for i, opt := range r.options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// WithLabel sets the caption above the options.
func (r RadioGroup) WithLabel(label string) RadioGroup {
	r.label = label
	return r
}

// WithIndicator chooses the circle or check mark.
func (r RadioGroup) WithIndicator(indicator Indicator) RadioGroup {
	r.indicator = indicator
	return r
}

// WithClassName adds classes to every row.
func (r RadioGroup) WithClassName(className string) RadioGroup {
	r.className = className
	return r
}

// WithOnChange sets the callback run on every selection.
func (r RadioGroup) WithOnChange(fn func(string)) RadioGroup {
	r.onChange = fn
	return r
}

// WithKeyMap replaces the key bindings.
func (r RadioGroup) WithKeyMap(keys KeyMap) RadioGroup {
	r.keys = keys
	return r
}

// KeyBindings lists the bindings for help views.
func (r RadioGroup) KeyBindings() []key.Binding {
	return []key.Binding{r.keys.Up, r.keys.Down, r.keys.Select}
}
