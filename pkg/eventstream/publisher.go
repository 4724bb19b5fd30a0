package eventstream

import "context"

// Publisher publishes served events to an event stream backend.
type Publisher interface {
	PublishServed(ctx context.Context, event *ServedEvent) error
	Close() error
}
