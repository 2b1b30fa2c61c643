package app

import "time"

// Pacer limits how often frames are rendered
type Pacer struct {
	limit int
	next  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer creates a pacer for limit frames per second; 0 disables it
func NewPacer(limit int) *Pacer {
	return &Pacer{
		limit: limit,
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Wait blocks until the next frame is due.
// Uses a hybrid sleep/spin approach for better precision on high caps.
func (p *Pacer) Wait() {
	if p == nil || p.limit <= 0 {
		return
	}

	target := time.Second / time.Duration(p.limit)

	// first frame is not delayed
	if p.next.IsZero() {
		p.next = p.now()
		return
	}
	p.next = p.next.Add(target)

	for {
		remaining := p.next.Sub(p.now())
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			p.sleep(remaining - 200*time.Microsecond)
		}
		// spin out the last few microseconds
		if p.next.Sub(p.now()) <= 0 {
			break
		}
	}

	// resync after a hitch instead of rendering a burst to catch up
	if late := p.now().Sub(p.next); late > target {
		p.next = p.now().Add(target)
	}
}
