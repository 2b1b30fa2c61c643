package app

import (
	"context"
	"log/slog"
	"time"

	"mini-tri/internal/profiling"
)

// Options tune the event loop. The zero value runs unpaced and silent.
type Options struct {
	Logger  *slog.Logger
	Pacer   *Pacer
	Profile *profiling.Frame

	SlowFrame     time.Duration // 0 disables slow-frame warnings
	StatsInterval time.Duration // 0 disables FPS reports

	now func() time.Time
}

type loop struct {
	src     EventSource
	handler *Handler
	opts    Options
	pending bool

	frames     int
	lastReport time.Time
}

func (l *loop) RequestRedraw() {
	l.pending = true
}

// Run dispatches events from src to h until the window closes or ctx is cancelled.
// The first iteration always delivers a redraw, and every frame requests the next,
// so src is polled and never waited on. Cancellation is noticed between polls.
// Closing and cancellation return nil; a handler error stops the loop and is returned.
func Run(ctx context.Context, src EventSource, h *Handler, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.now == nil {
		opts.now = time.Now
	}
	l := &loop{
		src:        src,
		handler:    h,
		opts:       opts,
		pending:    true,
		lastReport: opts.now(),
	}

	for {
		if ctx.Err() != nil {
			l.opts.Logger.Info("event loop cancelled", "redraws", h.Redraws())
			return nil
		}

		for _, ev := range src.Poll() {
			switch ev.Kind {
			case EventCloseRequested:
				l.opts.Logger.Info("window closed", "redraws", h.Redraws())
				return nil
			case EventRedrawRequested:
				// coalesced into the single redraw below
				l.pending = true
			default:
				if err := h.HandleEvent(ev, l); err != nil {
					return err
				}
			}
		}

		if src.ShouldClose() {
			l.opts.Logger.Info("window closed", "redraws", h.Redraws())
			return nil
		}
		if ctx.Err() != nil {
			continue
		}

		if l.pending {
			l.pending = false
			if err := l.redraw(); err != nil {
				return err
			}
		}
	}
}

func (l *loop) redraw() error {
	l.opts.Pacer.Wait()

	if l.opts.Profile != nil {
		l.opts.Profile.Reset()
	}
	start := l.opts.now()
	if err := l.handler.HandleEvent(Event{Kind: EventRedrawRequested}, l); err != nil {
		return err
	}
	now := l.opts.now()
	l.frames++

	if d := now.Sub(start); l.opts.SlowFrame > 0 && d > l.opts.SlowFrame {
		l.opts.Logger.Warn("slow frame", "duration", d, "top", l.top())
	}

	if l.opts.StatsInterval > 0 {
		if elapsed := now.Sub(l.lastReport); elapsed >= l.opts.StatsInterval {
			fps := int(float64(l.frames)/elapsed.Seconds() + 0.5)
			l.opts.Logger.Debug("frame stats", "fps", fps, "top", l.top())
			l.frames = 0
			l.lastReport = now
		}
	}
	return nil
}

func (l *loop) top() string {
	if l.opts.Profile == nil {
		return ""
	}
	return l.opts.Profile.TopN(3)
}
