// Package worker provides an asynchronous worker pool that publishes served
// events through a wrapped eventstream.Publisher.
//
// The pool keeps broker round trips off the API's HTTP hot path: handlers
// enqueue and return, workers publish in the background.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/papercomputeco/oasis/pkg/eventstream"
)

var (
	defaultNumWorkers   uint = 2
	defaultJobQueueSize uint = 256
)

var (
	// ErrQueueFull is returned when an event is dropped because the queue is full.
	ErrQueueFull = errors.New("event queue full, event dropped")

	// ErrPoolClosed is returned when publishing after Close.
	ErrPoolClosed = errors.New("event pool closed")
)

// Config is the configuration options for the worker pool.
type Config struct {
	// Publisher receives every event pulled off the queue.
	Publisher eventstream.Publisher

	// NumWorkers is the number of background workers in the pool.
	NumWorkers uint

	// QueueSize is the capacity of the buffered event channel (defaults to 256).
	QueueSize uint

	Logger *slog.Logger
}

// Pool publishes served events asynchronously. It satisfies
// eventstream.Publisher so it can wrap any other publisher transparently.
type Pool struct {
	config *Config
	queue  chan *eventstream.ServedEvent
	wg     sync.WaitGroup
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
}

var _ eventstream.Publisher = (*Pool)(nil)

// NewPool creates a new Pool and starts its worker goroutines.
func NewPool(c *Config) (*Pool, error) {
	if c.Publisher == nil {
		return nil, errors.New("publisher is required")
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}

	if c.NumWorkers == 0 {
		c.NumWorkers = defaultNumWorkers
	}

	if c.QueueSize == 0 {
		c.QueueSize = defaultJobQueueSize
	}

	if c.NumWorkers > uint(math.MaxInt) {
		return nil, fmt.Errorf("NumWorkers %d exceeds max int", c.NumWorkers)
	}

	wp := &Pool{
		config: c,
		queue:  make(chan *eventstream.ServedEvent, c.QueueSize),
		logger: c.Logger.With("component", "event_pool"),
	}

	wp.wg.Add(int(c.NumWorkers))
	for i := range c.NumWorkers {
		go wp.worker(i)
	}

	return wp, nil
}

// PublishServed enqueues the event for a worker. It never blocks: when the
// queue is full the event is dropped and ErrQueueFull returned.
func (p *Pool) PublishServed(_ context.Context, event *eventstream.ServedEvent) error {
	if event == nil {
		return eventstream.ErrNilServedEvent
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.queue <- event:
		p.logger.Debug("event queued",
			"event_id", event.EventID,
			"operation", event.Operation,
		)
		return nil
	default:
		p.logger.Error("event not queued, queue full, event dropped",
			"event_id", event.EventID,
			"operation", event.Operation,
		)
		return ErrQueueFull
	}
}

// Close stops accepting events, waits for queued events to drain, and closes
// the wrapped publisher. Call it after the HTTP server has stopped.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
	return p.config.Publisher.Close()
}

// worker continuously pulls events off the queue until it is closed.
func (p *Pool) worker(id uint) {
	defer p.wg.Done()
	p.logger.Debug("worker started", "worker_id", id)

	for event := range p.queue {
		if err := p.config.Publisher.PublishServed(context.Background(), event); err != nil {
			p.logger.Warn("failed to publish served event",
				"event_id", event.EventID,
				"operation", event.Operation,
				"error", err,
			)
		}
	}

	p.logger.Debug("worker stopped", "worker_id", id)
}
