package commands

import (
	"context"
	"log/slog"
	"time"

	"leave-ledger-api/internal/domain/leave"
	"leave-ledger-api/internal/infra"
	"leave-ledger-api/internal/pkg/clock"
	"leave-ledger-api/internal/pkg/errs"
	"leave-ledger-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange        = errs.New("invalid date range")
	ErrInvalidLeaveType        = errs.New("invalid leave type")
	ErrInsufficientBalance     = errs.New("insufficient balance")
	ErrUnknownEmployee         = errs.New("unknown employee")
	ErrInvalidGrantDays        = errs.New("grant days must be positive")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const submitConfirmationMessage = "Leave request submitted successfully."

type SubmitLeaveRequestParams struct {
	EmployeeID uuid.UUID
	LeaveType  leave.Type
	StartDate  time.Time
	EndDate    time.Time
}

type SubmitResult struct {
	RequestID uuid.UUID
	Message   string
	Days      int
}

type GrantBalanceParams struct {
	EmployeeID uuid.UUID
	LeaveType  leave.Type
	Days       int
}

type LeaveCommands interface {
	SubmitLeaveRequest(ctx context.Context, params SubmitLeaveRequestParams) (*SubmitResult, error)
	GrantBalance(ctx context.Context, params GrantBalanceParams) error
}

type leaveUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
}

func NewLeaveUseCase(uow shared.UnitOfWork, publisher EventPublisher, clock clock.Clock) LeaveCommands {
	return &leaveUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clock,
	}
}

// SubmitLeaveRequest applies the business rules in a fixed order so error
// precedence stays deterministic: date ordering, then day count, then the
// balance debit. The debit and the request insert share one transaction;
// nothing is debited for a rejected submission.
func (u *leaveUseCaseImpl) SubmitLeaveRequest(ctx context.Context, params SubmitLeaveRequestParams) (*SubmitResult, error) {
	if !params.LeaveType.IsValid() {
		return nil, ErrInvalidLeaveType
	}

	dateRange, err := leave.NewDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	days := dateRange.Days()

	var request *leave.Request
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if debitErr := tx.Balances().Debit(ctx, params.EmployeeID, params.LeaveType, days); debitErr != nil {
			switch {
			case infra.IsKind(debitErr, infra.KindNotFound):
				return ErrUnknownEmployee
			case infra.IsKind(debitErr, infra.KindInsufficientBalance):
				return ErrInsufficientBalance
			default:
				return errs.Mark(debitErr, ErrDatabaseOperationFailed)
			}
		}

		var newErr error
		request, newErr = leave.NewRequest(params.EmployeeID, params.LeaveType, dateRange, u.clock.Now())
		if newErr != nil {
			return errs.Mark(newErr, ErrInvalidLeaveType)
		}

		if createErr := tx.LeaveRequests().Create(ctx, request); createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	u.publishAccepted(ctx, request, days)

	return &SubmitResult{
		RequestID: request.ID(),
		Message:   submitConfirmationMessage,
		Days:      days,
	}, nil
}

func (u *leaveUseCaseImpl) GrantBalance(ctx context.Context, params GrantBalanceParams) error {
	if !params.LeaveType.IsValid() {
		return ErrInvalidLeaveType
	}
	if params.Days <= 0 {
		return ErrInvalidGrantDays
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Balances().Grant(ctx, params.EmployeeID, params.LeaveType, params.Days); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// Publish failures never roll the submission back; the request is already
// committed and the event stream tolerates gaps.
func (u *leaveUseCaseImpl) publishAccepted(ctx context.Context, request *leave.Request, days int) {
	evt := LeaveRequestAcceptedEvent{
		RequestID:  request.ID(),
		EmployeeID: request.EmployeeID(),
		LeaveType:  request.LeaveType().String(),
		StartDate:  request.DateRange().Start().Format(time.DateOnly),
		EndDate:    request.DateRange().End().Format(time.DateOnly),
		Days:       days,
		AcceptedAt: request.CreatedAt(),
	}

	if err := u.publisher.PublishLeaveRequestAccepted(ctx, evt); err != nil {
		slog.Warn("failed to publish leave_request.accepted event",
			"request_id", request.ID().String(),
			"error", err.Error())
	}
}
