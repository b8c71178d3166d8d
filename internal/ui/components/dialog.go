package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// DialogVariants sets the dialog width.
var DialogVariants = variants.New("p-4 bg-secondary rounded-2xl border border-border", variants.Axis{
	Name: "size",
	Values: map[string]string{
		"default": "w-full max-w-sm",
		"small":   "w-full max-w-sm",
		"medium":  "w-full max-w-md",
		"large":   "w-full max-w-2xl",
	},
	Default: "default",
})

const (
	dialogHeaderClasses  = "flex flex-row justify-between items-center mb-4"
	dialogDividerClasses = "text-border my-4"
)

// ConfirmDialog asks the user to confirm or cancel an action. Cancel has
// focus when it opens.
type ConfirmDialog struct {
	title          string
	details        string
	content        ui.Renderable
	size           string
	className      string
	cancelLabel    string
	confirmLabel   string
	visible        bool
	confirmFocused bool
	onClose        func()
	onConfirm      func()
	keys           KeyMap
}

// NewConfirmDialog creates a hidden dialog.
func NewConfirmDialog(title, details string) ConfirmDialog {
	return ConfirmDialog{
		title:        title,
		details:      details,
		cancelLabel:  "Cancel",
		confirmLabel: "Confirm",
		keys:         DefaultKeyMap(),
	}
}

// Update handles focus, activation and the y/n shortcuts while visible.
func (d ConfirmDialog) Update(msg tea.Msg) (ConfirmDialog, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !d.visible {
		return d, nil
	}
	switch {
	case key.Matches(k, d.keys.Close), key.Matches(k, d.keys.No):
		d.Cancel()
	case key.Matches(k, d.keys.Yes):
		d.Confirm()
	case key.Matches(k, d.keys.Left):
		d.confirmFocused = false
	case key.Matches(k, d.keys.Right):
		d.confirmFocused = true
	case key.Matches(k, d.keys.Next):
		d.confirmFocused = !d.confirmFocused
	case key.Matches(k, d.keys.Select):
		if d.confirmFocused {
			d.Confirm()
		} else {
			d.Cancel()
		}
	}
	return d, nil
}

// Open shows the dialog with Cancel focused.
func (d *ConfirmDialog) Open() {
	d.visible = true
	d.confirmFocused = false
}

// Cancel hides the dialog and runs the close callback.
func (d *ConfirmDialog) Cancel() {
	if !d.visible {
		return
	}
	d.visible = false
	if d.onClose != nil {
		d.onClose()
	}
}

// Confirm hides the dialog and runs the confirm callback.
func (d *ConfirmDialog) Confirm() {
	if !d.visible {
		return
	}
	d.visible = false
	if d.onConfirm != nil {
		d.onConfirm()
	}
}

// Visible reports whether the dialog is shown.
func (d ConfirmDialog) Visible() bool {
	return d.visible
}

// ConfirmFocused reports whether Confirm has focus.
func (d ConfirmDialog) ConfirmFocused() bool {
	return d.confirmFocused
}

// View renders the dialog with the default theme.
func (d ConfirmDialog) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dialog box, or "" when hidden. Its width is
// the size variant's limit, or the available width when smaller.
func (d ConfirmDialog) ViewWithContext(ctx RenderContext) string {
	if !d.visible {
		return ""
	}
	theme := ctx.Theme
	box := ClassStyle(theme, DialogVariants.Resolve(variants.Selection{"size": d.size}, d.className))
	width := box.GetMaxWidth()
	if w := ctx.MaxWidth(); w > 0 && (width == 0 || w < width) {
		width = w
	}
	box = box.UnsetMaxWidth()
	inner := 0
	if width > 0 {
		box = box.Width(width - box.GetHorizontalBorderSize())
		inner = box.GetWidth() - box.GetHorizontalPadding()
	}
	innerCtx := ctx.WithConstraints(WithMaxWidth(inner))

	title := NewText(d.title).WithVariant("headline").WithClassName("text-secondary-foreground")
	closeBtn := NewButton(CloseGlyph).WithVariant("outline").WithSize("icon sm")
	header := HStack(title, closeBtn).WithMainAlign(MainSpaceBetween).WithCrossAlign(CrossCenter).
		WithClassName(dialogHeaderClasses)

	parts := []string{header.ViewWithContext(innerCtx)}
	if d.details != "" {
		details := NewText(d.details).WithVariant("callout").WithClassName("mb-4 text-secondary-foreground")
		parts = append(parts, details.Style(theme).Width(maxInt(1, inner)).Render(d.details))
	}
	if d.content != nil {
		parts = append(parts, render(d.content, innerCtx))
	}
	parts = append(parts, NewDivider().WithClassName(dialogDividerClasses).ViewWithContext(innerCtx))

	cancel := NewButton(d.cancelLabel).WithVariant("outline").WithSize("sm")
	confirm := NewButton(d.confirmLabel).WithSize("sm")
	footer := HStack(
		ui.String(cancel.ViewWithContext(ctx.WithFocus(!d.confirmFocused))),
		ui.String(confirm.ViewWithContext(ctx.WithFocus(d.confirmFocused))),
	).WithGap(2).WithMainAlign(MainEnd)
	parts = append(parts, footer.ViewWithContext(innerCtx))

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// WithSize sets the width variant (default, small, medium, large).
func (d ConfirmDialog) WithSize(size string) ConfirmDialog {
	d.size = size
	return d
}

// WithClassName adds classes to the dialog box.
func (d ConfirmDialog) WithClassName(className string) ConfirmDialog {
	d.className = className
	return d
}

// WithContent adds custom content below the details.
func (d ConfirmDialog) WithContent(content ui.Renderable) ConfirmDialog {
	d.content = content
	return d
}

// WithLabels replaces the Cancel and Confirm labels.
func (d ConfirmDialog) WithLabels(cancel, confirm string) ConfirmDialog {
	d.cancelLabel, d.confirmLabel = cancel, confirm
	return d
}

// WithOnClose sets the callback run on cancel.
func (d ConfirmDialog) WithOnClose(fn func()) ConfirmDialog {
	d.onClose = fn
	return d
}

// WithOnConfirm sets the callback run on confirm.
func (d ConfirmDialog) WithOnConfirm(fn func()) ConfirmDialog {
	d.onConfirm = fn
	return d
}

// KeyBindings lists the bindings for help views.
func (d ConfirmDialog) KeyBindings() []key.Binding {
	return []key.Binding{d.keys.Left, d.keys.Right, d.keys.Select, d.keys.Yes, d.keys.No, d.keys.Close}
}
