package toast

// DismissMsg removes a toast, as a close tap does.
type DismissMsg struct {
	ID string
}

// ActivateMsg runs a toast's action and removes it.
type ActivateMsg struct {
	ID string
}

// SwipeMsg reports a finished drag on a toast, in layout units. Positive
// DY is downward.
type SwipeMsg struct {
	ID string
	DY float64
}

// ChangedMsg is sent through the notify hook when a timer removes a toast
// outside the event loop.
type ChangedMsg struct {
	ID string
}
