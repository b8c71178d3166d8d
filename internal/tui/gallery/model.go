// Package gallery is an interactive bubbletea program that shows every
// uikit component on one scrolling screen.
package gallery

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/uikit/internal/logger"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	"github.com/alexisbeaulieu97/uikit/internal/ui/toast"
)

// widget identifies a focusable element, in tab order.
type widget int

const (
	widgetTabs widget = iota
	widgetSuccessToast
	widgetInfoToast
	widgetWarningToast
	widgetErrorToast
	widgetInput
	widgetRadio
	widgetAccordion
	widgetCollapse
	widgetExpand
	widgetDelete
	widgetSelect
	widgetPopover
	widgetCount
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	pageTitle = "uikit component gallery"
)

// Model is the gallery program state. It is used through a pointer so that
// component callbacks can reach it.
type Model struct {
	toasts  *toast.Provider
	toaster toast.Toaster
	log     *logger.Logger

	scheme components.Scheme
	theme  components.Theme
	keys   keyMap
	help   help.Model

	width  int
	height int
	focus  widget
	status string

	scroll     components.ScreenScrollView
	anchors    map[widget]int
	tabs       components.Tabs
	buttons    map[widget]*components.Button
	input      components.Input
	radio      components.RadioGroup
	table      *components.Table
	accordion  components.Accordion
	collapse   *components.Collapse
	modal      components.Modal
	dialog     components.ConfirmDialog
	selectBox  components.Select
	choices    []components.SelectOption
	query      string
	popover    components.PopoverMenu
	debug      debugPanel
	inputValue string
}

// Option configures a Model.
type Option func(*Model)

// WithScheme pins the colour scheme. The default follows the terminal.
func WithScheme(s components.Scheme) Option {
	return func(m *Model) {
		m.scheme = s
	}
}

// WithLogger logs user actions.
func WithLogger(l *logger.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// New builds the gallery. Toasts raised by the gallery go to provider,
// which the host should also drive with Update and close on exit.
func New(provider *toast.Provider, opts ...Option) *Model {
	m := &Model{
		toasts:  provider,
		toaster: toast.Use(provider),
		log:     logger.Nop(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   defaultWidth,
		height:  defaultHeight,
		anchors: make(map[widget]int),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.applyScheme(m.scheme)
	m.scroll = components.NewScreenScrollView(m.width, m.height)
	m.build()
	m.resize(m.width, m.height)
	m.syncFocus()
	return m
}

func (m *Model) build() {
	m.tabs = components.NewTabs("tab1",
		components.Tab{Key: "This is Tab One", Content: components.HStack(
			components.NewBadge("Default"),
			components.SecondaryBadge("Secondary"),
			components.SuccessBadge("Success"),
			components.DestructiveBadge("Destructive"),
		).WithGap(1)},
		components.Tab{Key: "This is Tab Two", Content: components.NewText("Tab 2")},
	).WithOnTabChange(func(key string) { m.report("tab changed", key) })

	m.buttons = map[widget]*components.Button{
		widgetSuccessToast: components.NewButton("Click for success toast").WithVariant("success").
			WithOnPress(func() { m.toaster.Success("Success", toast.WithDescription("This is a success toast")) }),
		widgetInfoToast: components.NewButton("Click for info toast").WithClassName("bg-info").
			WithLabelClassName("text-primary-foreground").
			WithOnPress(func() { m.toaster.Info("Info", toast.WithDescription("This is an info toast")) }),
		widgetWarningToast: components.NewButton("Click for warning toast").WithClassName("bg-warning").
			WithLabelClassName("text-primary-foreground").
			WithOnPress(func() { m.toaster.Warning("Warning", toast.WithDescription("This is a warning toast")) }),
		widgetErrorToast: components.NewButton("Click for error toast").WithClassName("bg-destructive").
			WithLabelClassName("text-primary-foreground").
			WithOnPress(func() { m.toaster.Destructive("Error", toast.WithDescription("This is an error toast")) }),
		widgetExpand: components.NewButton("Expand").
			WithOnPress(func() { m.modal.Open() }),
		widgetDelete: components.NewButton("Delete Item").
			WithOnPress(func() { m.dialog.Open() }),
	}

	m.input = components.NewInput("Input").WithOnChangeText(func(s string) { m.inputValue = s })

	m.radio = components.NewRadioGroup("1",
		components.RadioOption{Label: "Option 1", Value: "1"},
		components.RadioOption{Label: "Option 2", Value: "2"},
	).WithIndicator(components.IndicatorCircle).WithLabel("Radio Group").
		WithOnChange(func(v string) { m.report("radio changed", v) })

	m.table = components.NewTable(
		components.NewTableHeader("Header"),
		components.NewTableRow("Title").WithDescription("Description"),
		components.NewTableRow("Title").WithDescription("Description"),
	)

	m.accordion = components.NewAccordion(
		components.AccordionItem{Title: "Is it styled?", Content: components.NewText("Yes. Every part resolves utility classes against the theme.")},
		components.AccordionItem{Title: "Is it animated?", Content: components.NewText("No. Sections open and close in place.")},
	)
	m.collapse = components.NewCollapse("Show details",
		components.NewText("Collapsed content stays out of the layout until expanded.").WithVariant("subhead"))

	m.modal = components.NewModal("Modal", components.NewText("Modal Content")).
		WithElevation("3").
		WithTrigger(m.buttons[widgetExpand]).
		WithOnClose(func() { m.report("modal closed", "") })

	m.dialog = components.NewConfirmDialog("Delete Item", "Are you sure you want to delete this item?").
		WithOnClose(func() { m.report("dialog cancelled", "") }).
		WithOnConfirm(func() {
			m.toaster.Success("Item Deleted", toast.WithDescription("The item has been successfully deleted."))
		})

	m.choices = []components.SelectOption{
		{Label: "Option", Value: "1"},
		{Label: "Option", Value: "2"},
	}
	m.selectBox = components.NewSelect("1", m.choices...).
		WithLabel("Select").
		WithOnSelect(func(value, _ string) { m.report("select changed", value) }).
		WithOnSearch(func(query string) { m.query = query })

	items := make([]components.PopoverItem, 0, 4)
	for i := 1; i <= 4; i++ {
		label := fmt.Sprintf("Item %d", i)
		items = append(items, components.PopoverItem{Label: label, OnPress: func() { m.report("Selected item", label) }})
	}
	m.popover = components.NewPopoverButton("Open Popover", items...).WithPosition(components.PositionBottom)

	m.debug = newDebugPanel()
}

// Init starts the program.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Focused returns the name of the focused widget.
func (m *Model) Focused() string {
	return widgetNames[m.focus]
}

// Status returns the last reported user action.
func (m *Model) Status() string {
	return m.status
}

// Scheme returns the active colour scheme, or "" when following the
// terminal.
func (m *Model) Scheme() components.Scheme {
	return m.scheme
}

var widgetNames = map[widget]string{
	widgetTabs:         "tabs",
	widgetSuccessToast: "success toast",
	widgetInfoToast:    "info toast",
	widgetWarningToast: "warning toast",
	widgetErrorToast:   "error toast",
	widgetInput:        "input",
	widgetRadio:        "radio group",
	widgetAccordion:    "accordion",
	widgetCollapse:     "collapse",
	widgetExpand:       "modal",
	widgetDelete:       "confirm dialog",
	widgetSelect:       "select",
	widgetPopover:      "popover",
}

func (m *Model) report(event, value string) {
	m.status = event
	if value != "" {
		m.status = fmt.Sprintf("%s: %s", event, value)
	}
	m.log.WithFields(map[string]any{"event": event, "value": value}).Info("gallery event")
}

func (m *Model) applyScheme(s components.Scheme) {
	m.scheme = s
	if s == "" {
		m.theme = components.DefaultTheme()
	} else {
		m.theme = components.ThemeForScheme(s)
	}
	m.toasts.SetTheme(m.theme)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.modal.SetSize(min(60, max(20, width-4)), min(16, max(8, height-4)))
	m.refresh()
}

// syncFocus gives input focus to the focused widget only.
func (m *Model) syncFocus() tea.Cmd {
	m.tabs.Blur()
	m.input.Blur()
	m.radio.Blur()
	m.accordion.Blur()
	m.collapse.Blur()
	m.selectBox.Blur()
	m.popover.Blur()

	var cmd tea.Cmd
	switch m.focus {
	case widgetTabs:
		m.tabs.Focus()
	case widgetInput:
		cmd = m.input.Focus()
	case widgetRadio:
		m.radio.Focus()
	case widgetAccordion:
		m.accordion.Focus()
	case widgetCollapse:
		m.collapse.Focus()
	case widgetSelect:
		m.selectBox.Focus()
	case widgetPopover:
		m.popover.Focus()
	}
	m.refresh()
	m.scroll.ScrollTo(m.anchors[m.focus])
	return cmd
}

func (m *Model) focusedBindings() []key.Binding {
	switch {
	case m.dialog.Visible():
		return m.dialog.KeyBindings()
	case m.modal.Visible():
		return m.modal.KeyBindings()
	}
	switch m.focus {
	case widgetTabs:
		return m.tabs.KeyBindings()
	case widgetInput:
		return m.input.KeyBindings()
	case widgetRadio:
		return m.radio.KeyBindings()
	case widgetAccordion:
		return m.accordion.KeyBindings()
	case widgetSelect:
		return m.selectBox.KeyBindings()
	case widgetPopover:
		return m.popover.KeyBindings()
	case widgetExpand:
		return m.modal.KeyBindings()
	case widgetDelete:
		return m.dialog.KeyBindings()
	}
	return []key.Binding{components.DefaultKeyMap().Select}
}
