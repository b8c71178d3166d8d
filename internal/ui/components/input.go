package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// ClearGlyph is shown after a non-empty input.
const ClearGlyph = "⊗"

// InputVariants styles the input box.
var InputVariants = variants.New(
	"flex text-foreground w-full py-1 placeholder:text-muted-foreground focus-visible:outline-none disabled:opacity-50 py-4 disabled:bg-card",
	variants.Axis{
		Name: "variant",
		Values: map[string]string{
			"default": "rounded-2xl border border-input bg-transparent px-4",
			"ghost":   "bg-transparent border-none",
			"search":  "rounded-2xl border border-input bg-card px-4",
		},
		Default: "default",
	},
)

var clearKey = key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear"))

// Input is a single-line text field built on bubbles/textinput.
type Input struct {
	model        textinput.Model
	variant      string
	className    string
	errText      string
	disabled     bool
	onChangeText func(string)
}

// NewInput creates an empty default input.
func NewInput(placeholder string) Input {
	m := textinput.New()
	m.Placeholder = placeholder
	m.Prompt = ""
	return Input{model: m}
}

// Update handles key input while focused. Any change of value is reported
// through the change callback; ctrl+u clears the field.
func (i Input) Update(msg tea.Msg) (Input, tea.Cmd) {
	if i.disabled || !i.model.Focused() {
		return i, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, clearKey) {
		i.Clear()
		return i, nil
	}

	before := i.model.Value()
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	if after := i.model.Value(); after != before && i.onChangeText != nil {
		i.onChangeText(after)
	}
	return i, cmd
}

// Clear empties the field and reports the empty value.
func (i *Input) Clear() {
	i.model.Reset()
	if i.onChangeText != nil {
		i.onChangeText("")
	}
}

// Focus gives the input keyboard focus.
func (i *Input) Focus() tea.Cmd {
	return i.model.Focus()
}

// Blur removes keyboard focus.
func (i *Input) Blur() {
	i.model.Blur()
}

// Focused reports whether the input has focus.
func (i Input) Focused() bool {
	return i.model.Focused()
}

// Value returns the current text.
func (i Input) Value() string {
	return i.model.Value()
}

// SetValue replaces the text without reporting a change.
func (i *Input) SetValue(v string) {
	i.model.SetValue(v)
}

// View renders the input with the default theme.
func (i Input) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box, the clear glyph when there is a value,
// and the error line below.
func (i Input) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	classes := i.Classes()
	var active []string
	if i.disabled {
		active = append(active, "disabled")
	}
	box := ClassStyle(theme, classes, active...)

	m := i.model
	m.TextStyle = lipgloss.NewStyle().Foreground(box.GetForeground())
	m.PlaceholderStyle = lipgloss.NewStyle().Foreground(ClassStyle(theme, classes, "placeholder").GetForeground())

	glyph := ""
	if m.Value() != "" {
		glyph = " " + lipgloss.NewStyle().Foreground(theme.MustColor("ring")).Render(ClearGlyph)
	}

	if HasClass(classes, "w-full") && ctx.MaxWidth() > 0 {
		box = box.Width(ctx.MaxWidth() - box.GetHorizontalBorderSize())
		m.Width = maxInt(1, box.GetWidth()-box.GetHorizontalPadding()-lipgloss.Width(glyph)-1)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, m.View(), glyph)
	if w := box.GetWidth(); w > 0 {
		row = lipgloss.PlaceHorizontal(w-box.GetHorizontalPadding(), lipgloss.Left, row)
	}
	view := box.Render(row)

	if i.errText != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, ClassStyle(theme, "text-destructive").Render(i.errText))
	}
	return view
}

// Classes returns the resolved class string.
func (i Input) Classes() string {
	return InputVariants.Resolve(variants.Selection{"variant": i.variant}, i.className)
}

// WithVariant sets the variant (default, ghost, search).
func (i Input) WithVariant(variant string) Input {
	i.variant = variant
	return i
}

// WithClassName adds classes that win over the variant's.
func (i Input) WithClassName(className string) Input {
	i.className = className
	return i
}

// WithError shows an error message under the field.
func (i Input) WithError(text string) Input {
	i.errText = text
	return i
}

// WithDisabled sets the disabled state.
func (i Input) WithDisabled(disabled bool) Input {
	i.disabled = disabled
	return i
}

// WithOnChangeText sets the callback run on every change of value.
func (i Input) WithOnChangeText(fn func(string)) Input {
	i.onChangeText = fn
	return i
}

// KeyBindings lists the bindings for help views.
func (i Input) KeyBindings() []key.Binding {
	return []key.Binding{clearKey}
}
