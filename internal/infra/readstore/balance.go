package readstore

import (
	"context"

	"leave-ledger-api/internal/infra"
	"leave-ledger-api/internal/infra/db"
	"leave-ledger-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BalanceReadStore struct {
	db db.DBTX
}

func NewBalanceReadStore(dbtx db.DBTX) *BalanceReadStore {
	return &BalanceReadStore{db: dbtx}
}

const findBalancesByEmployeeQuery = `
SELECT employee_id, leave_type, remaining_days
FROM leave_balances
WHERE employee_id = $1
ORDER BY leave_type`

func (r *BalanceReadStore) FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]*queries.EmployeeBalanceView, error) {
	rows, err := r.db.Query(ctx, findBalancesByEmployeeQuery, employeeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list balances", err)
	}
	defer rows.Close()

	var views []*queries.EmployeeBalanceView
	for rows.Next() {
		var view queries.EmployeeBalanceView
		if scanErr := rows.Scan(&view.EmployeeID, &view.LeaveType, &view.RemainingDays); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan balance row", scanErr)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate balance rows", err)
	}
	return views, nil
}
