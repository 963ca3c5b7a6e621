package queries

import (
	"context"

	"leave-ledger-api/internal/infra"
	"leave-ledger-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound  = errs.New("leave request not found")
	ErrEmployeeNotFound = errs.New("employee not found")
)

type LeaveRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequestView, error)
	FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]*LeaveRequestView, error)
}

type BalanceReadStore interface {
	FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]*EmployeeBalanceView, error)
}

type LeaveQueries interface {
	GetRequestByID(ctx context.Context, id uuid.UUID) (*LeaveRequestView, error)
	ListRequestsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*LeaveRequestView, error)
	GetBalancesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*EmployeeBalanceView, error)
}

type leaveQueriesImpl struct {
	requests LeaveRequestReadStore
	balances BalanceReadStore
}

func NewLeaveQueries(requests LeaveRequestReadStore, balances BalanceReadStore) LeaveQueries {
	return &leaveQueriesImpl{
		requests: requests,
		balances: balances,
	}
}

func (q *leaveQueriesImpl) GetRequestByID(ctx context.Context, id uuid.UUID) (*LeaveRequestView, error) {
	view, err := q.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *leaveQueriesImpl) ListRequestsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*LeaveRequestView, error) {
	return q.requests.FindByEmployeeID(ctx, employeeID)
}

func (q *leaveQueriesImpl) GetBalancesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*EmployeeBalanceView, error) {
	views, err := q.balances.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrEmployeeNotFound
	}
	return views, nil
}
