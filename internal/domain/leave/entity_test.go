//go:build unit

package leave_test

import (
	"testing"
	"time"

	"leave-ledger-api/internal/domain/leave"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	employeeID := uuid.New()

	t.Run("基本成功ケース", func(t *testing.T) {
		dr, err := leave.NewDateRange(date(2024, 6, 1), date(2024, 6, 3))
		require.NoError(t, err)

		actual, err := leave.NewRequest(employeeID, leave.TypeAnnual, dr, now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, employeeID, actual.EmployeeID())
		assert.Equal(t, leave.TypeAnnual, actual.LeaveType())
		assert.Equal(t, leave.StatusAccepted, actual.Status())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Equal(t, 3, actual.Days())
		assert.True(t, actual.IsAccepted())
	})

	t.Run("IDは毎回新規採番される", func(t *testing.T) {
		dr, err := leave.NewDateRange(date(2024, 6, 1), date(2024, 6, 1))
		require.NoError(t, err)

		a, err := leave.NewRequest(employeeID, leave.TypeSick, dr, now)
		require.NoError(t, err)
		b, err := leave.NewRequest(employeeID, leave.TypeSick, dr, now)
		require.NoError(t, err)

		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("無効な休暇種別NG", func(t *testing.T) {
		dr, err := leave.NewDateRange(date(2024, 6, 1), date(2024, 6, 3))
		require.NoError(t, err)

		_, err = leave.NewRequest(employeeID, leave.Type("sabbatical"), dr, now)
		assert.ErrorIs(t, err, leave.ErrInvalidLeaveType)
	})
}
