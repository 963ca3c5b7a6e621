//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedBalance upserts a leave balance row for the given employee and type.
func SeedBalance(t *testing.T, db DBLike, employeeID uuid.UUID, leaveType string, remainingDays int) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO leave_balances (employee_id, leave_type, remaining_days)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (employee_id, leave_type)
		 DO UPDATE SET remaining_days = EXCLUDED.remaining_days, updated_at = now()`,
		employeeID, leaveType, remainingDays)
	require.NoError(t, err)
}

func GetRemainingDays(t *testing.T, db DBLike, employeeID uuid.UUID, leaveType string) int {
	t.Helper()

	var remaining int
	err := db.QueryRow(context.Background(),
		"SELECT remaining_days FROM leave_balances WHERE employee_id = $1 AND leave_type = $2",
		employeeID, leaveType).Scan(&remaining)
	require.NoError(t, err)
	return remaining
}

func CountRequests(t *testing.T, db DBLike, employeeID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM leave_requests WHERE employee_id = $1",
		employeeID).Scan(&count)
	require.NoError(t, err)
	return count
}

// ResetDB truncates all mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE TABLE leave_requests, leave_balances")
	return err
}
