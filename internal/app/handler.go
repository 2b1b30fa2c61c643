package app

import (
	"errors"
	"fmt"
)

var ErrReentrantRedraw = errors.New("redraw requested while rendering")

// State of the redraw handler
type State int

const (
	StateIdle State = iota
	StateRendering
)

func (s State) String() string {
	if s == StateRendering {
		return "rendering"
	}
	return "idle"
}

// FrameRenderer draws one frame
type FrameRenderer interface {
	RenderFrame() error
}

// Handler reacts to window events by drawing frames
type Handler struct {
	renderer FrameRenderer
	state    State
	redraws  uint64
}

func NewHandler(r FrameRenderer) *Handler {
	return &Handler{renderer: r}
}

// HandleEvent dispatches one event.
// A redraw renders a frame and asks w for the next one; resizes are ignored.
func (h *Handler) HandleEvent(ev Event, w RedrawRequester) error {
	switch ev.Kind {
	case EventRedrawRequested:
		if h.state == StateRendering {
			return ErrReentrantRedraw
		}
		h.state = StateRendering
		defer func() { h.state = StateIdle }()

		if err := h.renderer.RenderFrame(); err != nil {
			return fmt.Errorf("redraw %d: %w", h.redraws+1, err)
		}
		h.redraws++
		w.RequestRedraw()
	case EventResized:
		// viewport and projection deliberately stay at their startup values
	default:
	}
	return nil
}

func (h *Handler) State() State {
	return h.state
}

// Redraws returns the number of completed redraws
func (h *Handler) Redraws() uint64 {
	return h.redraws
}
