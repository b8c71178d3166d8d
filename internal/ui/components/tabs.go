package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

const (
	tabListClasses    = "flex flex-row justify-between rounded-xl overflow-hidden gap-2 mb-4 bg-muted w-[300px] mx-auto p-1"
	tabTriggerClasses = "p-2 w-[48%] cursor-pointer rounded-xl overflow-hidden"
	tabActiveClasses  = "bg-accent"
	tabTextClasses    = "text-foreground text-lg font-bold text-center"
)

// Tab is one page of a Tabs component. Key doubles as the trigger label.
type Tab struct {
	Key     string
	Content ui.Renderable
}

// Tabs shows a row of triggers and the content of the active one.
type Tabs struct {
	tabs        []Tab
	active      string
	defaultTab  string
	className   string
	focused     bool
	onTabChange func(string)
	keys        KeyMap
}

// NewTabs creates tabs with defaultTab active, or the first tab when
// defaultTab names none of them.
func NewTabs(defaultTab string, tabs ...Tab) Tabs {
	t := Tabs{tabs: tabs, keys: DefaultKeyMap()}
	t.SetDefaultTab(defaultTab)
	return t
}

// SetDefaultTab changes the default and makes it active.
func (t *Tabs) SetDefaultTab(key string) {
	t.defaultTab = key
	switch {
	case t.indexOf(key) >= 0:
		t.active = key
	case len(t.tabs) > 0:
		t.active = t.tabs[0].Key
	default:
		t.active = ""
	}
}

// Select activates the tab with the given key and reports the change.
func (t *Tabs) Select(key string) bool {
	if t.indexOf(key) < 0 {
		return false
	}
	t.active = key
	if t.onTabChange != nil {
		t.onTabChange(key)
	}
	return true
}

// Update switches tabs with left/right and tab while focused.
func (t Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused || len(t.tabs) == 0 {
		return t, nil
	}
	i := maxInt(0, t.indexOf(t.active))
	switch {
	case key.Matches(k, t.keys.Left):
		if i > 0 {
			t.Select(t.tabs[i-1].Key)
		}
	case key.Matches(k, t.keys.Right):
		if i < len(t.tabs)-1 {
			t.Select(t.tabs[i+1].Key)
		}
	case key.Matches(k, t.keys.Next):
		t.Select(t.tabs[(i+1)%len(t.tabs)].Key)
	}
	return t, nil
}

// Active returns the key of the active tab.
func (t Tabs) Active() string {
	return t.active
}

// Keys returns the tab keys in order.
func (t Tabs) Keys() []string {
	keys := make([]string, len(t.tabs))
	for i, tab := range t.tabs {
		keys[i] = tab.Key
	}
	return keys
}

// Focus lets the tabs handle keys.
func (t *Tabs) Focus() {
	t.focused = true
}

// Blur stops the tabs from handling keys.
func (t *Tabs) Blur() {
	t.focused = false
}

// Focused reports whether the tabs handle keys.
func (t Tabs) Focused() bool {
	return t.focused
}

// View renders the tabs with the default theme.
func (t Tabs) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger list centred above the active content.
func (t Tabs) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	list := ClassStyle(theme, variants.Merge(tabListClasses, t.className))
	inner := list.GetWidth() - list.GetHorizontalPadding() - list.GetHorizontalBorderSize()
	if w := ctx.MaxWidth(); w > 0 && list.GetWidth() > w {
		list = list.Width(w)
		inner = w - list.GetHorizontalPadding() - list.GetHorizontalBorderSize()
	}

	triggers := make([]ui.Renderable, 0, len(t.tabs))
	for _, tab := range t.tabs {
		classes := tabTriggerClasses
		if tab.Key == t.active {
			classes = variants.Merge(classes, tabActiveClasses)
		}
		trigger := onSurface(ClassStyle(theme, classes), list)
		if n := len(t.tabs); n > 0 && inner > 0 {
			trigger = trigger.Width(maxInt(1, (inner-(n-1))/n))
		}
		text := onSurface(ClassStyle(theme, tabTextClasses), trigger)
		if t.focused && tab.Key == t.active {
			text = text.Underline(true)
		}
		triggers = append(triggers, ui.String(trigger.Render(text.Render(tab.Key))))
	}
	row := HStack(triggers...).WithGap(1).WithMainAlign(MainSpaceBetween).
		WithConstraints(WithMaxWidth(inner))
	header := list.Render(row.ViewWithContext(ctx))
	if w := ctx.MaxWidth(); w > 0 {
		header = lipgloss.PlaceHorizontal(w, lipgloss.Center, header)
	}

	var content string
	if i := t.indexOf(t.active); i >= 0 {
		content = render(t.tabs[i].Content, ctx)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content)
}

func (t Tabs) indexOf(key string) int {
	for i, tab := range t.tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// WithClassName adds classes to the trigger list.
func (t Tabs) WithClassName(className string) Tabs {
	t.className = className
	return t
}

// WithOnTabChange sets the callback run when a tab is selected.
func (t Tabs) WithOnTabChange(fn func(string)) Tabs {
	t.onTabChange = fn
	return t
}

// WithKeyMap replaces the key bindings.
func (t Tabs) WithKeyMap(keys KeyMap) Tabs {
	t.keys = keys
	return t
}

// KeyBindings lists the bindings for help views.
func (t Tabs) KeyBindings() []key.Binding {
	return []key.Binding{t.keys.Left, t.keys.Right, t.keys.Next}
}
