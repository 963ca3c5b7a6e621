package repository

import (
	"context"

	"leave-ledger-api/internal/domain/leave"
	"leave-ledger-api/internal/infra"
	"leave-ledger-api/internal/infra/db"

	"github.com/google/uuid"
)

// BalanceRepository is the write side of the balance ledger on PostgreSQL.
// The conditional UPDATE makes check-and-debit a single atomic statement:
// the row lock serializes concurrent debits per (employee, leave type) key
// while debits on other keys proceed independently.
type BalanceRepository struct {
	db db.DBTX
}

func NewBalanceRepository(dbtx db.DBTX) *BalanceRepository {
	return &BalanceRepository{db: dbtx}
}

const debitBalanceQuery = `
UPDATE leave_balances
SET remaining_days = remaining_days - $3, updated_at = now()
WHERE employee_id = $1 AND leave_type = $2 AND remaining_days >= $3`

const balanceExistsQuery = `
SELECT EXISTS (
    SELECT 1 FROM leave_balances WHERE employee_id = $1 AND leave_type = $2
)`

func (r *BalanceRepository) Debit(ctx context.Context, employeeID uuid.UUID, leaveType leave.Type, days int) error {
	tag, err := r.db.Exec(ctx, debitBalanceQuery, employeeID, leaveType.String(), days)
	if err != nil {
		return infra.WrapRepoErr("failed to debit balance", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Zero rows means either no balance row or not enough days;
	// tell the two apart for the error taxonomy.
	var exists bool
	if err := r.db.QueryRow(ctx, balanceExistsQuery, employeeID, leaveType.String()).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to check balance existence", err)
	}
	if !exists {
		return infra.WrapRepoErr("no balance recorded for employee", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("remaining days below requested amount", nil, infra.KindInsufficientBalance)
}

const grantBalanceQuery = `
INSERT INTO leave_balances (employee_id, leave_type, remaining_days, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (employee_id, leave_type) DO UPDATE
SET remaining_days = EXCLUDED.remaining_days, updated_at = now()`

func (r *BalanceRepository) Grant(ctx context.Context, employeeID uuid.UUID, leaveType leave.Type, days int) error {
	if _, err := r.db.Exec(ctx, grantBalanceQuery, employeeID, leaveType.String(), days); err != nil {
		return infra.WrapRepoErr("failed to grant balance", err)
	}
	return nil
}
