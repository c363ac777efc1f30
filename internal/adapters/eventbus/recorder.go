package eventbus

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain/events"
	"github.com/jsamuelsen11/go-content-blueprints/internal/ports"
)

// Compile-time interface check.
var _ ports.EventBus = (*Recorder)(nil)

// Recorder is an EventBus that records every dispatched event instead of
// delivering it. Names passed to Halt make the recorder halt those events.
// Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []events.Event
	halt   map[events.Name]bool
}

// NewRecorder creates a Recorder.
func NewRecorder() *Recorder {
	return &Recorder{halt: make(map[events.Name]bool)}
}

// Halt makes subsequent dispatches of the named cancellable events fail.
func (r *Recorder) Halt(names ...events.Name) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range names {
		r.halt[n] = true
	}
	return r
}

// Dispatch implements ports.EventBus.
func (r *Recorder) Dispatch(_ context.Context, e events.Event) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return !(r.halt[e.Name] && e.Name.Cancellable())
}

// Events returns a copy of the recorded events in dispatch order.
func (r *Recorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Names returns the recorded event names in dispatch order.
func (r *Recorder) Names() []events.Name {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Name, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

// Count returns how many times the named event was dispatched.
func (r *Recorder) Count(name events.Name) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets every recorded event.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
