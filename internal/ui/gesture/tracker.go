// Package gesture accumulates pointer drags and decides when a drag counts
// as a dismiss swipe.
package gesture

// DefaultThreshold is the downward displacement, in units, past which a
// drag dismisses.
const DefaultThreshold = 50

// Tracker follows one drag at a time. The zero value is ready to use with
// DefaultThreshold.
type Tracker struct {
	Threshold float64

	active bool
	origin float64
	dy     float64
}

// Begin starts a drag at y, discarding any drag in progress.
func (t *Tracker) Begin(y float64) {
	t.active = true
	t.origin = y
	t.dy = 0
}

// Move records the pointer at y and returns the cumulative displacement.
// Moves without a preceding Begin are ignored.
func (t *Tracker) Move(y float64) float64 {
	if !t.active {
		return 0
	}
	t.dy = y - t.origin
	return t.dy
}

// Add accumulates a relative displacement, for hosts that report deltas.
func (t *Tracker) Add(delta float64) float64 {
	if !t.active {
		t.Begin(0)
	}
	t.dy += delta
	return t.dy
}

// End finishes the drag and reports whether it passed the threshold.
// Only downward displacement counts.
func (t *Tracker) End() bool {
	if !t.active {
		return false
	}
	exceeded := t.dy > t.threshold()
	t.Reset()
	return exceeded
}

// Reset abandons the drag in progress.
func (t *Tracker) Reset() {
	t.active = false
	t.origin = 0
	t.dy = 0
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Displacement returns the current cumulative displacement.
func (t *Tracker) Displacement() float64 {
	return t.dy
}

func (t *Tracker) threshold() float64 {
	if t.Threshold > 0 {
		return t.Threshold
	}
	return DefaultThreshold
}
