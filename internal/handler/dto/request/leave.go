package request

import (
	"time"

	"leave-ledger-api/internal/domain/leave"
	"leave-ledger-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitLeaveRequest struct {
	EmployeeID uuid.UUID `json:"employeeId" binding:"required"`
	LeaveType  string    `json:"leaveType" binding:"required,oneof=annual sick unpaid"`
	StartDate  string    `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string    `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// ToParams assumes binding already validated the date format.
func (r SubmitLeaveRequest) ToParams() (commands.SubmitLeaveRequestParams, error) {
	startDate, err := time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return commands.SubmitLeaveRequestParams{}, err
	}
	endDate, err := time.Parse(time.DateOnly, r.EndDate)
	if err != nil {
		return commands.SubmitLeaveRequestParams{}, err
	}

	return commands.SubmitLeaveRequestParams{
		EmployeeID: r.EmployeeID,
		LeaveType:  leave.Type(r.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

type GrantBalanceRequest struct {
	EmployeeID uuid.UUID `json:"employeeId" binding:"required"`
	LeaveType  string    `json:"leaveType" binding:"required,oneof=annual sick unpaid"`
	Days       int       `json:"days" binding:"required,min=1"`
}

func (r GrantBalanceRequest) ToParams() commands.GrantBalanceParams {
	return commands.GrantBalanceParams{
		EmployeeID: r.EmployeeID,
		LeaveType:  leave.Type(r.LeaveType),
		Days:       r.Days,
	}
}
