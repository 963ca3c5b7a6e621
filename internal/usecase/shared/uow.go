package shared

import (
	"context"

	"leave-ledger-api/internal/domain/leave"
	"leave-ledger-api/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork binds the balance debit and the request insert into one
// atomic scope. If the insert fails the debit never becomes visible.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	LeaveRequests() LeaveRequestRepository
	Balances() BalanceRepository
	DB() db.DBTX
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, req *leave.Request) error
}

// BalanceRepository is the write side of the balance ledger.
// Debit is a conditional decrement: it must be serialized per
// (employee, leave type) key by the backing store.
type BalanceRepository interface {
	// Debit fails with KindNotFound when no balance row exists and with
	// KindInsufficientBalance when days exceed the remaining count; the
	// stored balance is untouched in both cases.
	Debit(ctx context.Context, employeeID uuid.UUID, leaveType leave.Type, days int) error
	// Grant upserts the remaining-days count for the key.
	Grant(ctx context.Context, employeeID uuid.UUID, leaveType leave.Type, days int) error
}
