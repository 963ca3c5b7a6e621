package bootstrap

import (
	"context"

	"leave-ledger-api/internal/infra/events"
	"leave-ledger-api/internal/pkg/config"
	"leave-ledger-api/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.EventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		return events.NewNopPublisher()
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return writer.Close()
		},
	})

	return events.NewKafkaPublisher(writer)
}
