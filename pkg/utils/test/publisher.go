package testutils

import (
	"context"
	"sync"

	"github.com/papercomputeco/oasis/pkg/eventstream"
)

// RecordingPublisher is a test publisher that records every served event.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []*eventstream.ServedEvent
	closed bool

	// Err, when set, is returned from PublishServed after recording.
	Err error
}

func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

func (p *RecordingPublisher) PublishServed(_ context.Context, event *eventstream.ServedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.Err
}

func (p *RecordingPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// Events returns a copy of the recorded events.
func (p *RecordingPublisher) Events() []*eventstream.ServedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*eventstream.ServedEvent, len(p.events))
	copy(out, p.events)
	return out
}

// Closed reports whether Close was called.
func (p *RecordingPublisher) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
