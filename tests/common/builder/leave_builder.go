//go:build unit || e2e

package builder

import (
	"time"

	"leave-ledger-api/internal/domain/leave"
	reqdto "leave-ledger-api/internal/handler/dto/request"
	"leave-ledger-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type LeaveBuilder struct {
	EmployeeID uuid.UUID
	LeaveType  leave.Type
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}

func NewLeaveBuilder() *LeaveBuilder {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return &LeaveBuilder{
		EmployeeID: uuid.New(),
		LeaveType:  leave.TypeAnnual,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 2), // 3日分
		CreatedAt:  time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *LeaveBuilder) Days() int {
	return int(b.EndDate.Sub(b.StartDate).Hours()/24) + 1
}

// Build methods
func (b *LeaveBuilder) BuildDomain() (*leave.Request, error) {
	dateRange, err := leave.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	return leave.NewRequest(b.EmployeeID, b.LeaveType, dateRange, b.CreatedAt)
}

func (b *LeaveBuilder) BuildSubmitRequestDTO() reqdto.SubmitLeaveRequest {
	return reqdto.SubmitLeaveRequest{
		EmployeeID: b.EmployeeID,
		LeaveType:  b.LeaveType.String(),
		StartDate:  b.StartDate.Format(time.DateOnly),
		EndDate:    b.EndDate.Format(time.DateOnly),
	}
}

func (b *LeaveBuilder) BuildViewQuery() *queries.LeaveRequestView {
	return &queries.LeaveRequestView{
		ID:         uuid.New(),
		EmployeeID: b.EmployeeID,
		LeaveType:  b.LeaveType.String(),
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Days:       b.Days(),
		Status:     leave.StatusAccepted.String(),
		CreatedAt:  b.CreatedAt,
	}
}

func (b *LeaveBuilder) BuildBalanceView(remainingDays int) *queries.EmployeeBalanceView {
	return &queries.EmployeeBalanceView{
		EmployeeID:    b.EmployeeID,
		LeaveType:     b.LeaveType.String(),
		RemainingDays: remainingDays,
	}
}

// Fluent builder methods
func (b *LeaveBuilder) WithEmployeeID(employeeID uuid.UUID) *LeaveBuilder {
	b.EmployeeID = employeeID
	return b
}

func (b *LeaveBuilder) WithLeaveType(leaveType leave.Type) *LeaveBuilder {
	b.LeaveType = leaveType
	return b
}

func (b *LeaveBuilder) WithDates(start, end time.Time) *LeaveBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *LeaveBuilder) AsSameDay() *LeaveBuilder {
	b.EndDate = b.StartDate
	return b
}

func (b *LeaveBuilder) AsReversedDates() *LeaveBuilder {
	b.StartDate, b.EndDate = b.EndDate, b.StartDate
	return b
}
