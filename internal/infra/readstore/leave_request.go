package readstore

import (
	"context"
	"time"

	"leave-ledger-api/internal/infra"
	"leave-ledger-api/internal/infra/db"
	"leave-ledger-api/internal/pkg/pgconv"
	"leave-ledger-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LeaveRequestReadStore struct {
	db db.DBTX
}

func NewLeaveRequestReadStore(dbtx db.DBTX) *LeaveRequestReadStore {
	return &LeaveRequestReadStore{db: dbtx}
}

const findLeaveRequestByIDQuery = `
SELECT id, employee_id, leave_type, start_date, end_date, status, created_at
FROM leave_requests
WHERE id = $1`

func (r *LeaveRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LeaveRequestView, error) {
	row := r.db.QueryRow(ctx, findLeaveRequestByIDQuery, id)

	view, err := scanLeaveRequestView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("leave request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find leave request by id", err)
	}
	return view, nil
}

const findLeaveRequestsByEmployeeQuery = `
SELECT id, employee_id, leave_type, start_date, end_date, status, created_at
FROM leave_requests
WHERE employee_id = $1
ORDER BY created_at DESC, id DESC`

func (r *LeaveRequestReadStore) FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]*queries.LeaveRequestView, error) {
	rows, err := r.db.Query(ctx, findLeaveRequestsByEmployeeQuery, employeeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list leave requests", err)
	}
	defer rows.Close()

	var views []*queries.LeaveRequestView
	for rows.Next() {
		view, scanErr := scanLeaveRequestView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan leave request row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate leave request rows", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLeaveRequestView(row rowScanner) (*queries.LeaveRequestView, error) {
	var (
		view      queries.LeaveRequestView
		startDate pgtype.Date
		endDate   pgtype.Date
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID,
		&view.EmployeeID,
		&view.LeaveType,
		&startDate,
		&endDate,
		&view.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	view.StartDate = pgconv.DateFromPgtype(startDate)
	view.EndDate = pgconv.DateFromPgtype(endDate)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.Days = inclusiveDays(view.StartDate, view.EndDate)
	return &view, nil
}

func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
