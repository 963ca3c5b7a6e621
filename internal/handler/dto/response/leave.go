package response

import (
	"time"

	"leave-ledger-api/internal/usecase/commands"
	"leave-ledger-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubmitLeaveResponse struct {
	RequestID uuid.UUID `json:"requestId"`
	Message   string    `json:"message"`
}

type LeaveRequestResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employeeId"`
	LeaveType  string    `json:"leaveType"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Days       int       `json:"days"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type BalanceResponse struct {
	EmployeeID    uuid.UUID `json:"employeeId"`
	LeaveType     string    `json:"leaveType"`
	RemainingDays int       `json:"remainingDays"`
}

func FromSubmitResult(result *commands.SubmitResult) *SubmitLeaveResponse {
	return &SubmitLeaveResponse{
		RequestID: result.RequestID,
		Message:   result.Message,
	}
}

func FromLeaveRequestView(view *queries.LeaveRequestView) *LeaveRequestResponse {
	return &LeaveRequestResponse{
		ID:         view.ID,
		EmployeeID: view.EmployeeID,
		LeaveType:  view.LeaveType,
		StartDate:  view.StartDate.Format(time.DateOnly),
		EndDate:    view.EndDate.Format(time.DateOnly),
		Days:       view.Days,
		Status:     view.Status,
		CreatedAt:  view.CreatedAt,
	}
}

func FromLeaveRequestViews(views []*queries.LeaveRequestView) []*LeaveRequestResponse {
	responses := make([]*LeaveRequestResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, FromLeaveRequestView(view))
	}
	return responses
}

func FromBalanceView(view *queries.EmployeeBalanceView) *BalanceResponse {
	return &BalanceResponse{
		EmployeeID:    view.EmployeeID,
		LeaveType:     view.LeaveType,
		RemainingDays: view.RemainingDays,
	}
}

func FromBalanceViews(views []*queries.EmployeeBalanceView) []*BalanceResponse {
	responses := make([]*BalanceResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, FromBalanceView(view))
	}
	return responses
}
