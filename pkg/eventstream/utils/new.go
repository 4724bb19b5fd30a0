package eventstreamutils

import (
	"fmt"
	"log/slog"

	"github.com/papercomputeco/oasis/pkg/eventstream"
	"github.com/papercomputeco/oasis/pkg/eventstream/kafka"
	"github.com/papercomputeco/oasis/pkg/eventstream/nop"
)

const (
	ProviderNop   = "nop"
	ProviderKafka = "kafka"
)

type NewPublisherOpts struct {
	ProviderType string
	Brokers      []string
	Topic        string
	Logger       *slog.Logger
}

func NewPublisher(o *NewPublisherOpts) (eventstream.Publisher, error) {
	switch o.ProviderType {
	case "", ProviderNop:
		return nop.NewPublisher(), nil
	case ProviderKafka:
		return kafka.NewPublisher(kafka.Config{
			Brokers: o.Brokers,
			Topic:   o.Topic,
			Logger:  o.Logger,
		})
	default:
		return nil, fmt.Errorf("unsupported events provider: %s", o.ProviderType)
	}
}
