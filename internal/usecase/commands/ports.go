package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LeaveRequestAcceptedEvent is published after the submission transaction
// commits. Consumers must tolerate duplicates; publishing is best-effort.
type LeaveRequestAcceptedEvent struct {
	RequestID  uuid.UUID `json:"request_id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Days       int       `json:"days"`
	AcceptedAt time.Time `json:"accepted_at"`
}

type EventPublisher interface {
	PublishLeaveRequestAccepted(ctx context.Context, evt LeaveRequestAcceptedEvent) error
}
