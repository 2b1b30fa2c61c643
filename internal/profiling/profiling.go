package profiling

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Frame accumulates named stage timings for a single frame.
// Not safe for concurrent use; rendering is single threaded.
type Frame struct {
	totals map[string]time.Duration
	now    func() time.Time
}

// NewFrame creates an empty per-frame tracker
func NewFrame() *Frame {
	return &Frame{
		totals: make(map[string]time.Duration),
		now:    time.Now,
	}
}

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer f.Track("render.Draw")()
func (f *Frame) Track(name string) func() {
	start := f.now()
	return func() {
		f.totals[name] += f.now().Sub(start)
	}
}

// Reset clears the totals. Call at the start of each frame.
func (f *Frame) Reset() {
	clear(f.totals)
}

// Snapshot returns a copy of the current totals
func (f *Frame) Snapshot() map[string]time.Duration {
	out := make(map[string]time.Duration, len(f.totals))
	for k, v := range f.totals {
		out[k] = v
	}
	return out
}

// TopN formats the n slowest stages.
// Example: "render.Finish:4.2ms, render.Draw:0.1ms"
func (f *Frame) TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(f.totals))
	for k, v := range f.totals {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, list[i].name+":"+formatMs(list[i].dur))
	}
	return strings.Join(parts, ", ")
}

// one decimal, ".0" dropped
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
