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

type BalanceHandler struct {
	cmds commands.LeaveCommands
	q    queries.LeaveQueries
}

func NewBalanceHandler(cmds commands.LeaveCommands, q queries.LeaveQueries) *BalanceHandler {
	return &BalanceHandler{cmds: cmds, q: q}
}

// @Summary Get employee balances
// @Description Get remaining leave days per leave type for an employee
// @Tags balances
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {array} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /leave/balances/{employeeId} [get]
func (h *BalanceHandler) Get(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid employee id", nil)
		return
	}

	views, err := h.q.GetBalancesByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, queries.ErrEmployeeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Employee not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBalanceViews(views))
}

// @Summary Grant leave balance
// @Description Set the remaining days for an (employee, leave type) pair
// @Tags balances
// @Accept json
// @Param request body reqdto.GrantBalanceRequest true "Grant request"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /leave/balances [post]
func (h *BalanceHandler) Grant(c *gin.Context) {
	var req reqdto.GrantBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.ValidationDetail(err))
		return
	}

	if err := h.cmds.GrantBalance(c.Request.Context(), req.ToParams()); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidLeaveType), errors.Is(err, commands.ErrInvalidGrantDays):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
