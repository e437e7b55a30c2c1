package scrollkit

import (
	"context"
	"time"
)

// DefaultInterval approximates one display frame at 60 Hz. Used by Run when
// no interval is given.
const DefaultInterval = time.Second / 60

// Scheduler drives a Registry: once per tick it reads the scroll position
// and republishes property values to the writer. Ticks are cheap when idle —
// with no active instance the scroll position is not even read, and an
// unchanged position produces no writes.
//
// A Scheduler is single-threaded by design: call Tick (or let Run call it)
// from one goroutine only, the same one that starts and stops instances.
type Scheduler struct {
	registry *Registry
	viewport Viewport
	writer   PropertyWriter

	prevScroll float64
	primed     bool

	active []*Instance     // scratch, reused across ticks
	values []PropertyValue // scratch
}

// NewScheduler creates a scheduler over the given registry, scroll source,
// and property writer.
func NewScheduler(registry *Registry, viewport Viewport, writer PropertyWriter) *Scheduler {
	return &Scheduler{registry: registry, viewport: viewport, writer: writer}
}

// Tick runs one frame of the loop and returns the number of property writes
// performed; zero means the tick was idle. All active instances are
// recomputed together whenever the scroll position differs from the
// previous tick's.
func (s *Scheduler) Tick() int {
	s.active = s.registry.appendActive(s.active[:0])
	if len(s.active) == 0 {
		return 0
	}

	scrollTop := s.viewport.ScrollTop()
	if s.primed && scrollTop == s.prevScroll {
		return 0
	}

	s.values = s.values[:0]
	for _, in := range s.active {
		s.values = in.appendUpdate(scrollTop, s.values)
	}
	for _, pv := range s.values {
		s.writer.SetProperty(pv.Key, pv.Value)
	}

	s.prevScroll = scrollTop
	s.primed = true
	return len(s.values)
}

// Run ticks at the given interval until ctx is cancelled. An interval of 0
// selects DefaultInterval. Hosts with a native per-frame callback (a game
// loop, a browser's requestAnimationFrame bridge) should call Tick from
// that callback instead of using Run.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}
