package queries

import (
	"time"

	"github.com/google/uuid"
)

type LeaveRequestView struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Status     string
	CreatedAt  time.Time
}

type EmployeeBalanceView struct {
	EmployeeID    uuid.UUID
	LeaveType     string
	RemainingDays int
}
