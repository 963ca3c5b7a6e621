//go:build unit

package memstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"leave-ledger-api/internal/domain/leave"
	"leave-ledger-api/internal/infra"
	"leave-ledger-api/internal/infra/memstore"
	"leave-ledger-api/internal/pkg/errs"
	"leave-ledger-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Debit(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("未登録キーはNOT_FOUND", func(t *testing.T) {
		store := memstore.New()

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Balances().Debit(ctx, employeeID, leave.TypeAnnual, 1)
		})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("残高超過はINSUFFICIENT_BALANCEで残高不変", func(t *testing.T) {
		store := memstore.New()
		store.Seed(employeeID, leave.TypeAnnual, 2)

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Balances().Debit(ctx, employeeID, leave.TypeAnnual, 5)
		})
		assert.True(t, infra.IsKind(err, infra.KindInsufficientBalance))

		remaining, _ := store.Balance(employeeID, leave.TypeAnnual)
		assert.Equal(t, 2, remaining)
	})

	t.Run("スコープ失敗時はundoログで減算が巻き戻る", func(t *testing.T) {
		store := memstore.New()
		store.Seed(employeeID, leave.TypeAnnual, 10)

		boom := errs.New("insert failed")
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if debitErr := tx.Balances().Debit(ctx, employeeID, leave.TypeAnnual, 4); debitErr != nil {
				return debitErr
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		remaining, _ := store.Balance(employeeID, leave.TypeAnnual)
		assert.Equal(t, 10, remaining)
	})

	t.Run("申請登録も巻き戻る", func(t *testing.T) {
		store := memstore.New()
		store.Seed(employeeID, leave.TypeAnnual, 10)

		dr, err := leave.NewDateRange(
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		req, err := leave.NewRequest(employeeID, leave.TypeAnnual, dr, time.Now())
		require.NoError(t, err)

		boom := errs.New("late failure")
		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if createErr := tx.LeaveRequests().Create(ctx, req); createErr != nil {
				return createErr
			}
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 0, store.RequestCount())
	})
}

// Debits on distinct keys must not contend; debits on one key must never
// overdraw it.
func TestStore_PerKeySerialization(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	a := uuid.New()
	b := uuid.New()
	store.Seed(a, leave.TypeAnnual, 5)
	store.Seed(b, leave.TypeAnnual, 5)

	const attempts = 20
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := a
			if i%2 == 0 {
				target = b
			}
			_ = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Balances().Debit(ctx, target, leave.TypeAnnual, 1)
			})
		}(i)
	}
	wg.Wait()

	remainingA, _ := store.Balance(a, leave.TypeAnnual)
	remainingB, _ := store.Balance(b, leave.TypeAnnual)
	assert.Equal(t, 0, remainingA)
	assert.Equal(t, 0, remainingB)
}

func TestStore_Grant(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	employeeID := uuid.New()

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Balances().Grant(ctx, employeeID, leave.TypeSick, 8)
	})
	require.NoError(t, err)

	remaining, ok := store.Balance(employeeID, leave.TypeSick)
	require.True(t, ok)
	assert.Equal(t, 8, remaining)

	// Upsert overwrites
	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Balances().Grant(ctx, employeeID, leave.TypeSick, 12)
	})
	require.NoError(t, err)

	remaining, _ = store.Balance(employeeID, leave.TypeSick)
	assert.Equal(t, 12, remaining)
}
