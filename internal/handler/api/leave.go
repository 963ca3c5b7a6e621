package api

import (
	"errors"
	"net/http"

	reqdto "leave-ledger-api/internal/handler/dto/request"
	resdto "leave-ledger-api/internal/handler/dto/response"
	"leave-ledger-api/internal/handler/httperr"
	"leave-ledger-api/internal/usecase/commands"
	"leave-ledger-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeaveHandler struct {
	cmds commands.LeaveCommands
	q    queries.LeaveQueries
}

func NewLeaveHandler(cmds commands.LeaveCommands, q queries.LeaveQueries) *LeaveHandler {
	return &LeaveHandler{cmds: cmds, q: q}
}

// @Summary Submit leave request
// @Description Validate and submit a leave request, debiting the employee's balance
// @Tags leave
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Optional key for duplicate submission protection"
// @Param request body reqdto.SubmitLeaveRequest true "Leave request"
// @Success 201 {object} resdto.SubmitLeaveResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /leave/apply [post]
func (h *LeaveHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.ValidationDetail(err))
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.SubmitLeaveRequest(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "End date must not be before start date", nil)
		case errors.Is(err, commands.ErrInvalidLeaveType):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid leave type", nil)
		case errors.Is(err, commands.ErrUnknownEmployee):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Employee has no balance for this leave type", nil)
		case errors.Is(err, commands.ErrInsufficientBalance):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Insufficient leave balance", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// @Summary Get leave request
// @Description Get a leave request by ID
// @Tags leave
// @Produce json
// @Param id path string true "Leave request ID"
// @Success 200 {object} resdto.LeaveRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /leave/requests/{id} [get]
func (h *LeaveHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetRequestByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRequestNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Leave request not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLeaveRequestView(view))
}

// @Summary List leave requests
// @Description List an employee's leave requests, newest first
// @Tags leave
// @Produce json
// @Param employee_id query string true "Employee ID"
// @Success 200 {array} resdto.LeaveRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /leave/requests [get]
func (h *LeaveHandler) List(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid employee_id", nil)
		return
	}

	views, err := h.q.ListRequestsByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLeaveRequestViews(views))
}
