package observability

import (
	"context"
	"maps"
	"sync"
	"time"
)

// Counters tallies hook events in memory. It implements every hook
// interface and is safe for concurrent use.
type Counters struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewCounters returns empty counters.
func NewCounters() *Counters {
	return &Counters{counts: make(map[string]int64)}
}

func (c *Counters) add(key string, n int64) {
	c.mu.Lock()
	c.counts[key] += n
	c.mu.Unlock()
}

// OnEvent counts events by name, plus those that need a redraw.
func (c *Counters) OnEvent(_ context.Context, event string, redraw bool, _ time.Duration) {
	c.add("events."+event, 1)
	if redraw {
		c.add("events.redraw", 1)
	}
}

// OnRender counts encoded scenes and failures by format.
func (c *Counters) OnRender(_ context.Context, format string, size int, _ time.Duration, err error) {
	if err != nil {
		c.add("render."+format+".errors", 1)
		return
	}
	c.add("render."+format, 1)
	c.add("render.bytes", int64(size))
}

// OnSessionStart counts started sessions.
func (c *Counters) OnSessionStart(context.Context) { c.add("sessions.started", 1) }

// OnSessionsExpired counts removed sessions.
func (c *Counters) OnSessionsExpired(_ context.Context, n int) { c.add("sessions.expired", int64(n)) }

// Snapshot returns a copy of the current counts.
func (c *Counters) Snapshot() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.counts)
}
