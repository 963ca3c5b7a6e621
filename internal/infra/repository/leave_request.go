package repository

import (
	"context"
	"errors"

	"leave-ledger-api/internal/domain/leave"
	"leave-ledger-api/internal/infra"
	"leave-ledger-api/internal/infra/db"
	"leave-ledger-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type LeaveRequestRepository struct {
	db db.DBTX
}

func NewLeaveRequestRepository(dbtx db.DBTX) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: dbtx}
}

const createLeaveRequestQuery = `
INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *LeaveRequestRepository) Create(ctx context.Context, req *leave.Request) error {
	_, err := r.db.Exec(ctx, createLeaveRequestQuery,
		req.ID(),
		req.EmployeeID(),
		req.LeaveType().String(),
		pgconv.DateToPgtype(req.DateRange().Start()),
		pgconv.DateToPgtype(req.DateRange().End()),
		req.Status().String(),
		pgconv.TimeToPgtype(req.CreatedAt()),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("leave request id already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create leave request", err)
	}
	return nil
}
