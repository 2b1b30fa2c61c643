package app

// EventKind identifies a window-system event
type EventKind int

const (
	EventRedrawRequested EventKind = iota
	EventResized
	EventCloseRequested
	EventFocusChanged
	EventOther
)

func (k EventKind) String() string {
	switch k {
	case EventRedrawRequested:
		return "redraw"
	case EventResized:
		return "resized"
	case EventCloseRequested:
		return "close"
	case EventFocusChanged:
		return "focus"
	default:
		return "other"
	}
}

// Event is a window-system event delivered to the Handler
type Event struct {
	Kind EventKind

	// EventResized only
	Width, Height int
}

// EventSource is the platform side of the event loop
type EventSource interface {
	// Poll processes pending events without blocking
	Poll() []Event
	ShouldClose() bool
}

// RedrawRequester schedules a follow-up redraw event
type RedrawRequester interface {
	RequestRedraw()
}
