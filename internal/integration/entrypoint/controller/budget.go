// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/budget"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles the derived budget endpoints.
type BudgetController struct {
	deriveUseCase    *budget.DeriveBudgetPlanUseCase
	setTargetUseCase *budget.SetSavingsTargetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	deriveUseCase *budget.DeriveBudgetPlanUseCase,
	setTargetUseCase *budget.SetSavingsTargetUseCase,
) *BudgetController {
	return &BudgetController{
		deriveUseCase:    deriveUseCase,
		setTargetUseCase: setTargetUseCase,
	}
}

// Get handles GET /budget requests. The plan is derived from the current
// records on every call; nothing here is cached or stored.
func (c *BudgetController) Get(ctx *gin.Context) {
	output, err := c.deriveUseCase.Execute(ctx.Request.Context(), budget.DeriveBudgetPlanInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to derive budget plan",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetPlanResponse(output.Plan))
}

// SetSavingsTarget handles PUT /budget/savings-target requests.
func (c *BudgetController) SetSavingsTarget(ctx *gin.Context) {
	var req dto.SetSavingsTargetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSavingsTarget),
		})
		return
	}

	input := budget.SetSavingsTargetInput{
		Target: decimal.NewFromFloat(req.Target),
	}

	output, err := c.setTargetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var goalErr *domainerror.GoalError
		if errors.As(err, &goalErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: goalErr.Message,
				Code:  string(goalErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SetSavingsTargetResponse{
		Target: output.Target.InexactFloat64(),
	})
}
