package nop

import (
	"context"

	"github.com/papercomputeco/oasis/pkg/eventstream"
)

// Publisher is a no-op eventstream publisher used for tests and disabled mode.
type Publisher struct{}

// NewPublisher creates a new no-op eventstream publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// PublishServed validates input and otherwise does nothing.
func (p *Publisher) PublishServed(_ context.Context, event *eventstream.ServedEvent) error {
	if event == nil {
		return eventstream.ErrNilServedEvent
	}

	return nil
}

// Close is a no-op.
func (p *Publisher) Close() error {
	return nil
}
