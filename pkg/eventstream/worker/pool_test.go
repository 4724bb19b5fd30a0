package worker

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/oasis/pkg/eventstream"
	"github.com/papercomputeco/oasis/pkg/logger"
	testutils "github.com/papercomputeco/oasis/pkg/utils/test"
)

// blockingPublisher holds every publish until release is closed.
type blockingPublisher struct {
	*testutils.RecordingPublisher
	release chan struct{}
}

func (b *blockingPublisher) PublishServed(ctx context.Context, event *eventstream.ServedEvent) error {
	<-b.release
	return b.RecordingPublisher.PublishServed(ctx, event)
}

var _ = Describe("Event Worker Pool", func() {
	var (
		wp        *Pool
		publisher *testutils.RecordingPublisher
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		publisher = testutils.NewRecordingPublisher()

		var err error
		wp, err = NewPool(&Config{Publisher: publisher, Logger: logger.Nop()})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(wp.Close()).To(Succeed())
	})

	Describe("NewPool", func() {
		It("requires a publisher", func() {
			_, err := NewPool(&Config{Logger: logger.Nop()})
			Expect(err).To(MatchError(ContainSubstring("publisher is required")))
		})

		It("requires a logger", func() {
			_, err := NewPool(&Config{Publisher: publisher})
			Expect(err).To(MatchError(ContainSubstring("logger is required")))
		})

		It("applies default sizes", func() {
			Expect(wp.config.NumWorkers).To(Equal(defaultNumWorkers))
			Expect(cap(wp.queue)).To(Equal(int(defaultJobQueueSize)))
			Expect(wp.Close()).To(Succeed())
		})
	})

	Describe("PublishServed", func() {
		It("delivers queued events once drained", func() {
			for _, op := range []string{eventstream.OperationGetGreeting, eventstream.OperationGetEmojis} {
				Expect(wp.PublishServed(ctx, eventstream.NewServedEvent(op))).To(Succeed())
			}

			// Close drains the queue before returning
			Expect(wp.Close()).To(Succeed())

			ops := []string{}
			for _, e := range publisher.Events() {
				ops = append(ops, e.Operation)
			}
			Expect(ops).To(ConsistOf(eventstream.OperationGetGreeting, eventstream.OperationGetEmojis))
			Expect(publisher.Closed()).To(BeTrue())
		})

		It("rejects nil events", func() {
			Expect(wp.PublishServed(ctx, nil)).To(MatchError(eventstream.ErrNilServedEvent))
			Expect(wp.Close()).To(Succeed())
		})

		It("rejects events after Close", func() {
			Expect(wp.Close()).To(Succeed())
			err := wp.PublishServed(ctx, eventstream.NewServedEvent(eventstream.OperationGetEmoji))
			Expect(err).To(MatchError(ErrPoolClosed))
		})

		It("tolerates repeated Close calls", func() {
			Expect(wp.Close()).To(Succeed())
			Expect(wp.Close()).To(Succeed())
		})

		It("drops events when the queue is full", func() {
			blocked := &blockingPublisher{
				RecordingPublisher: testutils.NewRecordingPublisher(),
				release:            make(chan struct{}),
			}
			small, err := NewPool(&Config{
				Publisher:  blocked,
				NumWorkers: 1,
				QueueSize:  1,
				Logger:     logger.Nop(),
			})
			Expect(err).NotTo(HaveOccurred())

			// The worker holds at most one event and the queue one more,
			// so a third publish must be rejected.
			var errs []error
			for range 3 {
				errs = append(errs, small.PublishServed(ctx, eventstream.NewServedEvent(eventstream.OperationGetEmoji)))
			}
			Expect(errors.Join(errs...)).To(MatchError(ErrQueueFull))

			close(blocked.release)
			Expect(small.Close()).To(Succeed())
		})
	})

	It("keeps publishing after downstream failures", func() {
		publisher.Err = errors.New("broker down")
		Expect(wp.PublishServed(ctx, eventstream.NewServedEvent(eventstream.OperationGetGreeting))).To(Succeed())
		Expect(wp.PublishServed(ctx, eventstream.NewServedEvent(eventstream.OperationGetGreetings))).To(Succeed())
		Expect(wp.Close()).To(Succeed())
		Expect(publisher.Events()).To(HaveLen(2))
	})
})
