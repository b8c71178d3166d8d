package toast

import (
	"strconv"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/uikit/internal/logger"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	"github.com/alexisbeaulieu97/uikit/internal/ui/gesture"
)

// DefaultUnitsPerRow converts terminal rows to layout units for swipes.
const DefaultUnitsPerRow = 16

type entry struct {
	toast Toast
	timer Timer
}

// drag follows a mouse press on a toast until release.
type drag struct {
	id      string
	tracker gesture.Tracker
	x, y    int
	moved   bool
}

// Provider owns the toast queue. It is safe for concurrent use: timers
// fire on their own goroutines and race with dismissals from the event
// loop, and removal by id makes the loser a no-op.
type Provider struct {
	mu      sync.Mutex
	entries []entry
	nextID  int64

	clock       Clock
	log         *logger.Logger
	notify      func(tea.Msg)
	theme       components.Theme
	unitsPerRow float64
	width       int
	height      int
	drag        *drag
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithClock replaces the wall clock.
func WithClock(c Clock) ProviderOption {
	return func(p *Provider) {
		p.clock = c
	}
}

// WithLogger logs queue changes at debug level.
func WithLogger(l *logger.Logger) ProviderOption {
	return func(p *Provider) {
		p.log = l
	}
}

// WithTheme sets the theme toasts are drawn with.
func WithTheme(t components.Theme) ProviderOption {
	return func(p *Provider) {
		p.theme = t
	}
}

// WithUnitsPerRow sets how many layout units one terminal row of drag
// counts as.
func WithUnitsPerRow(units float64) ProviderOption {
	return func(p *Provider) {
		if units > 0 {
			p.unitsPerRow = units
		}
	}
}

// NewProvider creates an empty provider.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{
		clock:       realClock{},
		theme:       components.DefaultTheme(),
		unitsPerRow: DefaultUnitsPerRow,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.nextID = p.clock.Now().UnixMilli()
	return p
}

// SetNotify registers fn, typically tea.Program.Send, to be called with a
// ChangedMsg when a timer dismisses a toast.
func (p *Provider) SetNotify(fn func(tea.Msg)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notify = fn
}

// SetTheme changes the theme toasts are drawn with.
func (p *Provider) SetTheme(t components.Theme) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = t
}

// Notify queues a toast and returns its id. When the queue is full the
// oldest toast is dropped first. The toast dismisses itself after
// DismissAfterMS. Notify on a nil provider panics with ErrNoProvider.
func (p *Provider) Notify(kind Kind, title string, opts ...Option) string {
	if p == nil {
		panic(ErrNoProvider)
	}
	t := Toast{Title: title, Kind: kind}
	for _, opt := range opts {
		opt(&t)
	}
	if !t.Kind.Valid() {
		t.Kind = KindInfo
	}

	p.mu.Lock()
	var evicted string
	if len(p.entries) >= MaxVisible {
		evicted = p.entries[0].toast.ID
		p.removeLocked(evicted)
	}
	t.ID = strconv.FormatInt(p.nextID, 10)
	p.nextID++
	id := t.ID
	timer := p.clock.AfterFunc(DismissAfterMS*time.Millisecond, func() { p.expire(id) })
	p.entries = append(p.entries, entry{toast: t, timer: timer})
	p.mu.Unlock()

	if evicted != "" {
		p.debug("toast evicted", evicted)
	}
	p.debug("toast added", id)
	return id
}

// Dismiss removes a toast. Unknown ids are ignored. Dismiss on a nil
// provider does nothing.
func (p *Provider) Dismiss(id string) {
	if p == nil {
		return
	}
	p.mu.Lock()
	removed := p.removeLocked(id)
	p.mu.Unlock()
	if removed {
		p.debug("toast dismissed", id)
	}
}

// Activate runs the toast's action, if any, and removes it.
func (p *Provider) Activate(id string) {
	p.mu.Lock()
	var action *Action
	if i := p.indexLocked(id); i >= 0 {
		action = p.entries[i].toast.Action
	}
	p.mu.Unlock()

	if action != nil && action.OnPress != nil {
		action.OnPress()
	}
	p.Dismiss(id)
}

// Toasts returns the queued toasts, oldest first.
func (p *Provider) Toasts() []Toast {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Toast, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.toast
	}
	return out
}

// Len returns the number of queued toasts.
func (p *Provider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// Close stops every timer and empties the queue.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range p.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	p.entries = nil
	p.drag = nil
}

func (p *Provider) expire(id string) {
	p.mu.Lock()
	removed := p.removeLocked(id)
	notify := p.notify
	p.mu.Unlock()

	if !removed {
		return
	}
	p.debug("toast expired", id)
	if notify != nil {
		notify(ChangedMsg{ID: id})
	}
}

func (p *Provider) removeLocked(id string) bool {
	i := p.indexLocked(id)
	if i < 0 {
		return false
	}
	if t := p.entries[i].timer; t != nil {
		t.Stop()
	}
	p.entries = append(p.entries[:i], p.entries[i+1:]...)
	if p.drag != nil && p.drag.id == id {
		p.drag = nil
	}
	return true
}

func (p *Provider) indexLocked(id string) int {
	for i, e := range p.entries {
		if e.toast.ID == id {
			return i
		}
	}
	return -1
}

func (p *Provider) debug(msg, id string) {
	if p.log == nil {
		return
	}
	p.log.WithFields(map[string]any{"toast_id": id, "queued": p.Len()}).Debug(msg)
}

// Update handles window size, mouse gestures and toast messages. It
// returns nil; the queue is read by View on the next render.
func (p *Provider) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.mu.Lock()
		p.width, p.height = msg.Width, msg.Height
		p.mu.Unlock()
	case tea.MouseMsg:
		p.handleMouse(msg)
	case DismissMsg:
		p.Dismiss(msg.ID)
	case ActivateMsg:
		p.Activate(msg.ID)
	case SwipeMsg:
		p.Swipe(msg.ID, msg.DY)
	}
	return nil
}

// Swipe dismisses the toast when dy, in layout units, passes the swipe
// threshold downward. It reports whether the toast was dismissed.
func (p *Provider) Swipe(id string, dy float64) bool {
	var t gesture.Tracker
	t.Threshold = SwipeThreshold
	t.Begin(0)
	t.Add(dy)
	if !t.End() {
		return false
	}
	p.debug("toast swiped", id)
	p.Dismiss(id)
	return true
}

func (p *Provider) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		hit, ok := p.hit(msg.X, msg.Y)
		if !ok {
			return
		}
		d := &drag{id: hit.id, x: msg.X, y: msg.Y}
		d.tracker.Threshold = SwipeThreshold
		d.tracker.Begin(float64(msg.Y) * p.unitsPerRow)
		p.mu.Lock()
		p.drag = d
		p.mu.Unlock()

	case tea.MouseActionMotion:
		p.mu.Lock()
		if d := p.drag; d != nil {
			d.tracker.Move(float64(msg.Y) * p.unitsPerRow)
			d.moved = d.moved || msg.X != d.x || msg.Y != d.y
		}
		p.mu.Unlock()

	case tea.MouseActionRelease:
		p.mu.Lock()
		d := p.drag
		p.drag = nil
		p.mu.Unlock()
		if d == nil {
			return
		}

		d.tracker.Move(float64(msg.Y) * p.unitsPerRow)
		moved := d.moved || msg.X != d.x || msg.Y != d.y
		if d.tracker.End() {
			p.debug("toast swiped", d.id)
			p.Dismiss(d.id)
			return
		}
		if moved {
			return
		}
		hit, ok := p.hit(msg.X, msg.Y)
		if !ok || hit.id != d.id {
			return
		}
		switch hit.zone {
		case zoneAction:
			p.Activate(d.id)
		case zoneClose:
			p.Dismiss(d.id)
		}
	}
}

// Contains reports whether (x, y) falls on a toast or a drag is in
// progress, so hosts can keep the event from reaching views underneath.
func (p *Provider) Contains(x, y int) bool {
	p.mu.Lock()
	dragging := p.drag != nil
	p.mu.Unlock()
	if dragging {
		return true
	}
	_, ok := p.hit(x, y)
	return ok
}
