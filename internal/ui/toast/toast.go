// Package toast keeps a short queue of transient notifications, dismisses
// them on a timer or a swipe, and draws them over a bubbletea view.
package toast

import "errors"

// Queue and timing limits.
const (
	MaxVisible      = 3
	DismissAfterMS  = 5000
	SwipeThreshold  = 50
	TitleMaxLength  = 32
	BaseOffset      = 40
	Height          = 30 + 2*innerPadding
	VerticalInset   = 40
	DefaultMaxWidth = 50

	innerPadding = 20
)

// ErrNoProvider is the panic value when a notification is raised without
// a provider.
var ErrNoProvider = errors.New("toast: notify called outside a provider")

// Kind selects the colour and default icon of a toast.
type Kind string

const (
	KindInfo        Kind = "info"
	KindSuccess     Kind = "success"
	KindWarning     Kind = "warning"
	KindDestructive Kind = "destructive"
)

// Valid reports whether k is one of the four kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindInfo, KindSuccess, KindWarning, KindDestructive:
		return true
	}
	return false
}

// Action is a labelled button on a toast. Pressing it runs OnPress and
// dismisses the toast.
type Action struct {
	Label   string
	OnPress func()
}

// Toast is one queued notification.
type Toast struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Kind        Kind
	Action      *Action
}

// Option sets an optional toast field.
type Option func(*Toast)

// WithDescription adds a second line.
func WithDescription(description string) Option {
	return func(t *Toast) {
		t.Description = description
	}
}

// WithIcon replaces the kind's icon.
func WithIcon(icon string) Option {
	return func(t *Toast) {
		t.Icon = icon
	}
}

// WithAction replaces the close glyph with an action button.
func WithAction(label string, onPress func()) Option {
	return func(t *Toast) {
		t.Action = &Action{Label: label, OnPress: onPress}
	}
}

// Notifier raises and dismisses toasts.
type Notifier interface {
	Notify(kind Kind, title string, opts ...Option) string
	Dismiss(id string)
}

// Toaster has one helper per kind.
type Toaster struct {
	n Notifier
}

// Use returns the helpers for n. It panics with ErrNoProvider when n is
// nil so a missing provider fails where it is used.
func Use(n Notifier) Toaster {
	if n == nil {
		panic(ErrNoProvider)
	}
	if p, ok := n.(*Provider); ok && p == nil {
		panic(ErrNoProvider)
	}
	return Toaster{n: n}
}

// Success raises a success toast.
func (t Toaster) Success(title string, opts ...Option) string {
	return t.n.Notify(KindSuccess, title, opts...)
}

// Info raises an info toast.
func (t Toaster) Info(title string, opts ...Option) string {
	return t.n.Notify(KindInfo, title, opts...)
}

// Warning raises a warning toast.
func (t Toaster) Warning(title string, opts ...Option) string {
	return t.n.Notify(KindWarning, title, opts...)
}

// Destructive raises a destructive toast.
func (t Toaster) Destructive(title string, opts ...Option) string {
	return t.n.Notify(KindDestructive, title, opts...)
}

// Dismiss removes a toast by id.
func (t Toaster) Dismiss(id string) {
	t.n.Dismiss(id)
}

// Offset is the distance of the i-th toast from the bottom edge, in
// layout units.
func Offset(i int) int {
	return BaseOffset + i*(Height-VerticalInset)
}

// TruncateTitle shortens titles longer than TitleMaxLength characters.
func TruncateTitle(title string) string {
	r := []rune(title)
	if len(r) <= TitleMaxLength {
		return title
	}
	return string(r[:TitleMaxLength]) + "..."
}
