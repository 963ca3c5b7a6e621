//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"leave-ledger-api/internal/handler/api"
	resdto "leave-ledger-api/internal/handler/dto/response"
	"leave-ledger-api/internal/usecase/commands"
	"leave-ledger-api/internal/usecase/queries"
	"leave-ledger-api/tests/common/builder"
	"leave-ledger-api/tests/common/httptest"
	"leave-ledger-api/tests/common/testutil"
	commandsmock "leave-ledger-api/tests/mock/commands"
	queriesmock "leave-ledger-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LeaveHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLeaveCommands
	mockQueries  *queriesmock.MockLeaveQueries
	handler      *api.LeaveHandler
}

func (s *LeaveHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLeaveCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLeaveQueries(s.mockCtrl)
	s.handler = api.NewLeaveHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/v1/leave/apply", s.handler.Submit)
	s.router.GET("/api/v1/leave/requests", s.handler.List)
	s.router.GET("/api/v1/leave/requests/:id", s.handler.Get)
}

func (s *LeaveHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLeaveHandlerSuite(t *testing.T) {
	suite.Run(t, new(LeaveHandlerTestSuite))
}

type testCaseLeave struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *LeaveHandlerTestSuite) TestSubmit() {
	url := "/api/v1/leave/apply"

	reqBody := builder.NewLeaveBuilder().BuildSubmitRequestDTO()

	// バインディング境界ケース
	bound := []testCaseLeave{
		{name: "同日の申請はOK", mutate: testutil.Field("endDate", reqBody.StartDate), expectCode: http.StatusCreated},
		{name: "employeeId欠落は400", mutate: testutil.Field("employeeId", nil), expectCode: http.StatusBadRequest},
		{name: "employeeIdが不正な形式は400", mutate: testutil.Field("employeeId", "not-a-uuid"), expectCode: http.StatusBadRequest},
		{name: "leaveTypeが未対応の値は400", mutate: testutil.Field("leaveType", "sabbatical"), expectCode: http.StatusBadRequest},
		{name: "startDateが不正な形式は400", mutate: testutil.Field("startDate", "2025/07/01"), expectCode: http.StatusBadRequest},
		{name: "endDate欠落は400", mutate: testutil.Field("endDate", nil), expectCode: http.StatusBadRequest},
	}

	for _, tc := range bound {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusCreated {
				s.mockCommands.EXPECT().
					SubmitLeaveRequest(gomock.Any(), gomock.Any()).
					Return(&commands.SubmitResult{RequestID: uuid.New(), Message: "Leave request submitted successfully."}, nil)
			}

			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
			s.Equal(tc.expectCode, w.Code, w.Body.String())
		})
	}

	s.Run("正常な申請は201とrequestIdを返す", func() {
		requestID := uuid.New()
		s.mockCommands.EXPECT().
			SubmitLeaveRequest(gomock.Any(), gomock.Any()).
			Return(&commands.SubmitResult{RequestID: requestID, Message: "Leave request submitted successfully.", Days: 3}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var resp resdto.SubmitLeaveResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(requestID, resp.RequestID)
		s.Equal("Leave request submitted successfully.", resp.Message)
	})

	// ユースケースエラーからHTTPステータスへの変換
	usecaseErrors := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "日付範囲が不正なら400", err: commands.ErrInvalidDateRange, expectCode: http.StatusBadRequest},
		{name: "従業員が未知なら404", err: commands.ErrUnknownEmployee, expectCode: http.StatusNotFound},
		{name: "残日数不足なら422", err: commands.ErrInsufficientBalance, expectCode: http.StatusUnprocessableEntity},
		{name: "DB障害なら500", err: commands.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
	}

	for _, tc := range usecaseErrors {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().
				SubmitLeaveRequest(gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, "")
		})
	}
}

// ================================================================================
// TestGet
// ================================================================================

func (s *LeaveHandlerTestSuite) TestGet() {
	s.Run("存在する申請は200でビューを返す", func() {
		view := builder.NewLeaveBuilder().BuildViewQuery()
		s.mockQueries.EXPECT().
			GetRequestByID(gomock.Any(), view.ID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/leave/requests/"+view.ID.String(), nil)

		var resp resdto.LeaveRequestResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.Days, resp.Days)
	})

	s.Run("存在しない申請は404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetRequestByID(gomock.Any(), id).
			Return(nil, queries.ErrRequestNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/leave/requests/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found")
	})

	s.Run("UUIDでないidは400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/leave/requests/abc", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *LeaveHandlerTestSuite) TestList() {
	s.Run("従業員の申請一覧を返す", func() {
		b := builder.NewLeaveBuilder()
		views := []*queries.LeaveRequestView{b.BuildViewQuery(), b.BuildViewQuery()}
		s.mockQueries.EXPECT().
			ListRequestsByEmployee(gomock.Any(), b.EmployeeID).
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/leave/requests?employee_id="+b.EmployeeID.String(), nil)

		var resp []resdto.LeaveRequestResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
	})

	s.Run("employee_idが欠落していれば400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/leave/requests", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid employee_id")
	})
}
