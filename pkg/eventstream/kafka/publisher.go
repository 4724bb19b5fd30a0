// Package kafka publishes served events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/papercomputeco/oasis/pkg/eventstream"
)

// Config configures a Kafka publisher.
type Config struct {
	Brokers []string
	Topic   string

	// BatchTimeout bounds how long messages wait for a batch to fill.
	// Zero uses 100ms.
	BatchTimeout time.Duration

	Logger *slog.Logger
}

// messageWriter is the subset of *kafkago.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher writes served events as JSON, keyed by operation so events for
// one operation land on the same partition.
type Publisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewPublisher creates a Publisher backed by an async kafka-go writer.
// Delivery failures are reported through the logger, not to the caller.
func NewPublisher(c Config) (*Publisher, error) {
	if len(c.Brokers) == 0 {
		return nil, errors.New("at least one kafka broker is required")
	}
	if c.Topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}

	batchTimeout := c.BatchTimeout
	if batchTimeout == 0 {
		batchTimeout = 100 * time.Millisecond
	}

	logger := c.Logger.With("component", "kafka", "topic", c.Topic)
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		BatchTimeout:           batchTimeout,
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafkago.Message, err error) {
			if err != nil {
				logger.Warn("failed to deliver served events",
					"count", len(messages),
					"error", err,
				)
			}
		},
	}

	return newPublisher(w, logger), nil
}

func newPublisher(w messageWriter, logger *slog.Logger) *Publisher {
	return &Publisher{writer: w, logger: logger}
}

// PublishServed encodes the event and hands it to the writer.
func (p *Publisher) PublishServed(ctx context.Context, event *eventstream.ServedEvent) error {
	if event == nil {
		return eventstream.ErrNilServedEvent
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding served event: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(event.Operation),
		Value: payload,
		Time:  event.EmittedAt,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "event_id", Value: []byte(event.EventID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing served event: %w", err)
	}

	p.logger.Debug("published served event",
		"event_id", event.EventID,
		"operation", event.Operation,
	)
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
