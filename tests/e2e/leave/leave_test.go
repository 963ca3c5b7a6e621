//go:build e2e

package leave_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"leave-ledger-api/internal/domain/leave"
	"leave-ledger-api/internal/handler/dto/response"
	"leave-ledger-api/tests/common/builder"
	"leave-ledger-api/tests/common/dbtest"
	"leave-ledger-api/tests/common/httptest"
	"leave-ledger-api/tests/common/testutil"
	"leave-ledger-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	applyURL    = "/api/v1/leave/apply"
	requestsURL = "/api/v1/leave/requests"
	balancesURL = "/api/v1/leave/balances"
)

type LeaveSuite struct {
	e2e.SharedSuite
}

func (s *LeaveSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestLeaveSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LeaveSuite))
}

// =============================================================================
// TestSubmitLeaveRequest - 申請APIのE2Eテスト
// =============================================================================

func (s *LeaveSuite) TestSubmitLeaveRequest() {
	s.Run("正常系: 申請が受理され残日数が減る", func() {
		t := s.T()

		b := builder.NewLeaveBuilder()
		dbtest.SeedBalance(t, s.DB, b.EmployeeID, "annual", 10)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL, b.BuildSubmitRequestDTO())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.SubmitLeaveResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.RequestID)
		require.Equal(t, "Leave request submitted successfully.", created.Message)

		require.Equal(t, 7, dbtest.GetRemainingDays(t, s.DB, b.EmployeeID, "annual"))

		// 受理された申請は参照できる
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+created.RequestID.String(), nil)
		require.Equal(t, http.StatusOK, dw.Code)

		var view response.LeaveRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &view))
		require.Equal(t, b.EmployeeID, view.EmployeeID)
		require.Equal(t, "annual", view.LeaveType)
		require.Equal(t, 3, view.Days)
		require.Equal(t, "accepted", view.Status)
	})

	s.Run("正常系: 同日の申請は1日分だけ減る", func() {
		t := s.T()

		b := builder.NewLeaveBuilder().AsSameDay()
		dbtest.SeedBalance(t, s.DB, b.EmployeeID, "annual", 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL, b.BuildSubmitRequestDTO())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.Equal(t, 4, dbtest.GetRemainingDays(t, s.DB, b.EmployeeID, "annual"))
	})

	s.Run("異常系: 終了日が開始日より前なら400で状態は変わらない", func() {
		t := s.T()

		b := builder.NewLeaveBuilder().AsReversedDates()
		dbtest.SeedBalance(t, s.DB, b.EmployeeID, "annual", 10)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL, b.BuildSubmitRequestDTO())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")

		require.Equal(t, 10, dbtest.GetRemainingDays(t, s.DB, b.EmployeeID, "annual"))
		require.Equal(t, 0, dbtest.CountRequests(t, s.DB, b.EmployeeID))
	})

	s.Run("異常系: 残日数不足なら422で申請は記録されない", func() {
		t := s.T()

		b := builder.NewLeaveBuilder() // 3日分
		dbtest.SeedBalance(t, s.DB, b.EmployeeID, "annual", 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL, b.BuildSubmitRequestDTO())
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Insufficient")

		require.Equal(t, 2, dbtest.GetRemainingDays(t, s.DB, b.EmployeeID, "annual"))
		require.Equal(t, 0, dbtest.CountRequests(t, s.DB, b.EmployeeID))
	})

	s.Run("異常系: 残高行のない従業員は404", func() {
		t := s.T()

		b := builder.NewLeaveBuilder()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL, b.BuildSubmitRequestDTO())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("異常系: 申請種別と違う残高しか無い従業員は404", func() {
		t := s.T()

		b := builder.NewLeaveBuilder().WithLeaveType(leave.TypeSick)
		dbtest.SeedBalance(t, s.DB, b.EmployeeID, "annual", 10)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL, b.BuildSubmitRequestDTO())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
		require.Equal(t, 10, dbtest.GetRemainingDays(t, s.DB, b.EmployeeID, "annual"))
	})

	s.Run("異常系: 不正なボディは400", func() {
		t := s.T()

		b := builder.NewLeaveBuilder()
		dbtest.SeedBalance(t, s.DB, b.EmployeeID, "annual", 10)

		body := testutil.DtoMap(t, b.BuildSubmitRequestDTO(), testutil.Field("startDate", "07/01/2025"))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL, body)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		require.Equal(t, 10, dbtest.GetRemainingDays(t, s.DB, b.EmployeeID, "annual"))
	})
}

// =============================================================================
// TestSubmitLeaveRequest_Concurrent - 同一残高への並行申請
// =============================================================================

func (s *LeaveSuite) TestSubmitLeaveRequest_Concurrent() {
	s.Run("並行申請でも残高が負にならない", func() {
		t := s.T()

		b := builder.NewLeaveBuilder() // 3日分の申請
		dbtest.SeedBalance(t, s.DB, b.EmployeeID, "annual", 10)

		const workers = 8
		codes := make([]int, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL, b.BuildSubmitRequestDTO())
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		accepted, rejected := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				accepted++
			case http.StatusUnprocessableEntity:
				rejected++
			default:
				t.Fatalf("unexpected status code: %d", code)
			}
		}

		// 10日の残高に3日の申請: 3件だけ受理される
		require.Equal(t, 3, accepted)
		require.Equal(t, workers-3, rejected)
		require.Equal(t, 1, dbtest.GetRemainingDays(t, s.DB, b.EmployeeID, "annual"))
		require.Equal(t, 3, dbtest.CountRequests(t, s.DB, b.EmployeeID))
	})
}

// =============================================================================
// TestListRequests - 申請一覧のE2Eテスト
// =============================================================================

func (s *LeaveSuite) TestListRequests() {
	s.Run("従業員の申請が新しい順で返る", func() {
		t := s.T()

		b := builder.NewLeaveBuilder()
		dbtest.SeedBalance(t, s.DB, b.EmployeeID, "annual", 20)

		first := b.BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL, first)
		require.Equal(t, http.StatusCreated, w.Code)

		start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
		second := b.WithDates(start, start.AddDate(0, 0, 1)).BuildSubmitRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL, second)
		require.Equal(t, http.StatusCreated, w.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"?employee_id="+b.EmployeeID.String(), nil)
		require.Equal(t, http.StatusOK, lw.Code)

		var views []response.LeaveRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &views))
		require.Len(t, views, 2)
		require.False(t, views[0].CreatedAt.Before(views[1].CreatedAt))
	})

	s.Run("申請のない従業員は空リスト", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"?employee_id="+uuid.NewString(), nil)
		require.Equal(t, http.StatusOK, lw.Code)

		var views []response.LeaveRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &views))
		require.Empty(t, views)
	})
}

// =============================================================================
// TestBalances - 残高APIのE2Eテスト
// =============================================================================

func (s *LeaveSuite) TestBalances() {
	s.Run("付与した残高が参照できる", func() {
		t := s.T()

		employeeID := uuid.New()
		grantBody := map[string]any{
			"employeeId": employeeID.String(),
			"leaveType":  "sick",
			"days":       12,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, balancesURL, grantBody)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, balancesURL+"/"+employeeID.String(), nil)
		require.Equal(t, http.StatusOK, gw.Code)

		var balances []response.BalanceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &balances))
		require.Len(t, balances, 1)
		require.Equal(t, "sick", balances[0].LeaveType)
		require.Equal(t, 12, balances[0].RemainingDays)
	})

	s.Run("残高のない従業員の参照は404", func() {
		t := s.T()

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, balancesURL+"/"+uuid.NewString(), nil)
		require.Equal(t, http.StatusNotFound, gw.Code)
	})

	s.Run("再付与は残日数を上書きする", func() {
		t := s.T()

		employeeID := uuid.New()
		dbtest.SeedBalance(t, s.DB, employeeID, "annual", 3)

		grantBody := map[string]any{
			"employeeId": employeeID.String(),
			"leaveType":  "annual",
			"days":       15,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, balancesURL, grantBody)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, 15, dbtest.GetRemainingDays(t, s.DB, employeeID, "annual"))
	})
}
