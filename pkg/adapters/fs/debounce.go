package fs

import (
	"sync"
	"time"

	"github.com/aretw0/brezel/pkg/core"
)

// debouncer coalesces bursts of events per note title.
type debouncer struct {
	delay time.Duration

	mu       sync.Mutex
	timers   map[string]*time.Timer
	pending  map[string]core.Event
	stopped  bool
	inflight sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]core.Event),
	}
}

// add schedules e for emission after the quiet period. A create followed by
// modifications stays a create.
func (d *debouncer) add(e core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if prev, ok := d.pending[e.Title]; ok && prev.Type == core.EventCreate && e.Type == core.EventModify {
		e.Type = core.EventCreate
	}
	d.pending[e.Title] = e

	if t, ok := d.timers[e.Title]; ok && t.Stop() {
		t.Reset(d.delay)
		return
	}

	key := e.Title
	d.timers[key] = time.AfterFunc(d.delay, func() { d.fire(key, emit) })
}

func (d *debouncer) fire(key string, emit func(core.Event)) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	e, ok := d.pending[key]
	delete(d.pending, key)
	delete(d.timers, key)
	if !ok {
		d.mu.Unlock()
		return
	}
	d.inflight.Add(1)
	d.mu.Unlock()

	defer d.inflight.Done()
	emit(e)
}

// stop discards pending events and waits for emissions already running.
func (d *debouncer) stop() {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
	clear(d.pending)
	d.mu.Unlock()

	d.inflight.Wait()
}
