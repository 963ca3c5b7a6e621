package events

import (
	"context"
	"encoding/json"

	"leave-ledger-api/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes leave_request.accepted events keyed by employee id,
// so one employee's events stay ordered within a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) PublishLeaveRequestAccepted(ctx context.Context, evt commands.LeaveRequestAcceptedEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.EmployeeID.String()),
		Value: payload,
	})
}
