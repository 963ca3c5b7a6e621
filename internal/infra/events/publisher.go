package events

import (
	"context"

	"leave-ledger-api/internal/usecase/commands"
)

// NopPublisher is wired when no Kafka broker is configured.
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (p *NopPublisher) PublishLeaveRequestAccepted(_ context.Context, _ commands.LeaveRequestAcceptedEvent) error {
	return nil
}
