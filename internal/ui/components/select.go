package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// SelectChevron marks the closed select as expandable.
const SelectChevron = "▾"

const (
	selectTriggerClasses  = "rounded-2xl border border-input bg-transparent px-4 text-foreground"
	selectSheetClasses    = "bg-card rounded-xl border border-border px-4 pb-4"
	selectHeaderClasses   = "text-foreground mb-2"
	selectGroupClasses    = "text-muted-foreground my-2"
	selectRowClasses      = "border-b border-border w-full py-2"
	selectOptionClasses   = "p-2 text-foreground"
	selectSelectedClasses = "bg-primary text-primary-background rounded-xl"
	selectFilterClasses   = "rounded-2xl border border-input bg-card px-4 mb-2"
	defaultSelectHeader   = "Select an option"
)

// SelectOption is one choice of a Select. Options sharing a GroupLabel
// are listed under it.
type SelectOption struct {
	Label      string
	Value      string
	GroupLabel string
}

// Select shows the chosen option and opens a sheet listing every option.
type Select struct {
	options   []SelectOption
	value     string
	label     string
	className string
	open      bool
	cursor    int
	focused   bool
	filtering bool
	filter    textinput.Model
	onSelect  func(value, label string)
	onSearch  func(string)
	keys      KeyMap
}

// NewSelect creates a closed select. An empty defaultValue selects the
// first option.
func NewSelect(defaultValue string, options ...SelectOption) Select {
	if defaultValue == "" && len(options) > 0 {
		defaultValue = options[0].Value
	}
	f := textinput.New()
	f.Prompt = "/ "
	f.Placeholder = "Search"
	return Select{
		options: options,
		value:   defaultValue,
		filter:  f,
		keys:    DefaultKeyMap(),
	}
}

// Update opens, navigates and picks while focused.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return s, nil
	}
	if !s.open {
		if key.Matches(k, s.keys.Select) {
			s.Open()
		}
		return s, nil
	}
	if s.filtering {
		return s.updateFilter(k)
	}

	switch {
	case key.Matches(k, s.keys.Close):
		s.Close()
	case key.Matches(k, s.keys.Up):
		s.cursor = maxInt(0, s.cursor-1)
	case key.Matches(k, s.keys.Down):
		s.cursor = maxInt(0, min(len(s.options)-1, s.cursor+1))
	case key.Matches(k, s.keys.Select):
		if s.cursor < len(s.options) {
			s.Pick(s.options[s.cursor].Value)
		}
	case key.Matches(k, s.keys.Filter) && s.onSearch != nil:
		s.filtering = true
		return s, s.filter.Focus()
	}
	return s, nil
}

func (s Select) updateFilter(k tea.KeyMsg) (Select, tea.Cmd) {
	switch {
	case key.Matches(k, s.keys.Close):
		s.stopFilter()
		return s, nil
	case k.Type == tea.KeyEnter:
		s.filtering = false
		s.filter.Blur()
		return s, nil
	}
	before := s.filter.Value()
	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(k)
	if after := s.filter.Value(); after != before {
		s.onSearch(after)
	}
	return s, cmd
}

func (s *Select) stopFilter() {
	s.filtering = false
	s.filter.Blur()
	if s.filter.Value() != "" {
		s.filter.Reset()
		s.onSearch("")
	}
}

// Open shows the sheet with the cursor on the current selection.
func (s *Select) Open() {
	s.open = true
	s.cursor = maxInt(0, s.indexOf(s.value))
}

// Close hides the sheet and ends any search.
func (s *Select) Close() {
	s.open = false
	if s.filtering || s.filter.Value() != "" {
		s.stopFilter()
	}
}

// IsOpen reports whether the sheet is shown.
func (s Select) IsOpen() bool {
	return s.open
}

// Pick selects value, closes the sheet and reports the choice. Unknown
// values are ignored.
func (s *Select) Pick(value string) bool {
	i := s.indexOf(value)
	if i < 0 {
		return false
	}
	s.value = value
	s.Close()
	if s.onSelect != nil {
		s.onSelect(value, s.options[i].Label)
	}
	return true
}

// Value returns the selected value.
func (s Select) Value() string {
	return s.value
}

// SelectedLabel is the label of the selected option, or the raw value
// when no option carries it.
func (s Select) SelectedLabel() string {
	if i := s.indexOf(s.value); i >= 0 {
		return s.options[i].Label
	}
	return s.value
}

// SetOptions replaces the listed options, typically from a search
// callback. The selected value is kept.
func (s *Select) SetOptions(options ...SelectOption) {
	s.options = options
	s.cursor = maxInt(0, min(s.cursor, len(options)-1))
}

// Options returns the listed options.
func (s Select) Options() []SelectOption {
	return s.options
}

// Focus lets the select handle keys.
func (s *Select) Focus() {
	s.focused = true
}

// Blur closes the sheet and stops handling keys.
func (s *Select) Blur() {
	s.focused = false
	s.Close()
}

// Focused reports whether the select handles keys.
func (s Select) Focused() bool {
	return s.focused
}

// View renders the closed select with the default theme.
func (s Select) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the optional label and the trigger box. The
// sheet is drawn separately by SheetView so hosts can overlay it.
func (s Select) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	classes := variants.Merge(selectTriggerClasses, s.className)
	if s.focused {
		classes = variants.Merge(classes, "border-ring")
	}
	box := ClassStyle(theme, classes)
	chevron := onSurface(ClassStyle(theme, "text-muted-foreground"), box).Render(" " + SelectChevron)

	content := onSurface(lipgloss.NewStyle(), box).Render(s.SelectedLabel())
	if w := ctx.MaxWidth(); w > 0 && HasClass(classes, "w-full") {
		box = box.Width(w - box.GetHorizontalBorderSize())
		inner := box.GetWidth() - box.GetHorizontalPadding()
		content = lipgloss.PlaceHorizontal(inner-lipgloss.Width(chevron), lipgloss.Left, content)
	}
	view := box.Render(content + chevron)
	if s.label == "" {
		return view
	}
	label := NewText(s.label).WithVariant("subhead").WithClassName("text-muted-foreground mb-2")
	return lipgloss.JoinVertical(lipgloss.Left, label.ViewWithContext(ctx), view)
}

// SheetView renders the option sheet, or "" when closed.
func (s Select) SheetView(ctx RenderContext) string {
	if !s.open {
		return ""
	}
	theme := ctx.Theme
	sheet := ClassStyle(theme, selectSheetClasses)
	width := 0
	if w := ctx.MaxWidth(); w > 0 {
		sheet = sheet.Width(w - sheet.GetHorizontalBorderSize())
		width = sheet.GetWidth() - sheet.GetHorizontalPadding()
	}

	header := s.label
	if header == "" {
		header = defaultSelectHeader
	}
	lines := []string{
		onSurface(ClassStyle(theme, variants.Merge(TextVariants.Resolve(variants.Selection{"variant": "headline"}), selectHeaderClasses)), sheet).Render(header),
	}
	if s.filtering || s.filter.Value() != "" {
		f := s.filter
		f.Width = maxInt(1, width-6)
		lines = append(lines, ClassStyle(theme, selectFilterClasses).Render(f.View()))
	}

	seen := map[string]bool{}
	for i, opt := range s.options {
		if opt.GroupLabel != "" && !seen[opt.GroupLabel] {
			seen[opt.GroupLabel] = true
			group := TextVariants.Resolve(variants.Selection{"variant": "subhead"}, selectGroupClasses)
			lines = append(lines, onSurface(ClassStyle(theme, group), sheet).Render(opt.GroupLabel))
		}
		lines = append(lines, s.optionView(theme, sheet, i, width))
	}
	return sheet.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (s Select) optionView(theme Theme, sheet lipgloss.Style, i, width int) string {
	opt := s.options[i]
	rowClasses := selectRowClasses
	if i == len(s.options)-1 {
		rowClasses = variants.Merge(rowClasses, "border-b-0")
	}
	row := onSurface(ClassStyle(theme, rowClasses), sheet)

	optClasses := selectOptionClasses
	mark := "  "
	switch {
	case opt.Value == s.value:
		optClasses = variants.Merge(optClasses, selectSelectedClasses)
		mark = "✓ "
	case i == s.cursor:
		optClasses = variants.Merge(optClasses, cursorClasses)
	}
	if i == s.cursor && !s.filtering {
		optClasses = variants.Merge(optClasses, "underline")
	}
	option := onSurface(ClassStyle(theme, optClasses), row)
	if width > 0 {
		row = row.Width(width)
		option = option.Width(width)
	}
	return row.Render(option.Render(mark + opt.Label))
}

func (s Select) indexOf(value string) int {
	for i, opt := range s.options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// WithLabel sets the caption above the trigger and the sheet header.
func (s Select) WithLabel(label string) Select {
	s.label = label
	return s
}

// WithClassName adds classes to the trigger box.
func (s Select) WithClassName(className string) Select {
	s.className = className
	return s
}

// WithOnSelect sets the callback run when an option is picked.
func (s Select) WithOnSelect(fn func(value, label string)) Select {
	s.onSelect = fn
	return s
}

// WithOnSearch enables "/" search; fn receives the query on every change
// and "" when the search ends. fn runs inside Update on the copy being
// returned, so it cannot change the options itself: record the query and
// call SetOptions on the Select that Update returns.
func (s Select) WithOnSearch(fn func(string)) Select {
	s.onSearch = fn
	return s
}

// WithKeyMap replaces the key bindings.
func (s Select) WithKeyMap(keys KeyMap) Select {
	s.keys = keys
	return s
}

// KeyBindings lists the bindings for help views.
func (s Select) KeyBindings() []key.Binding {
	if !s.open {
		return []key.Binding{s.keys.Select}
	}
	bindings := []key.Binding{s.keys.Up, s.keys.Down, s.keys.Select, s.keys.Close}
	if s.onSearch != nil {
		bindings = append(bindings, s.keys.Filter)
	}
	return bindings
}
