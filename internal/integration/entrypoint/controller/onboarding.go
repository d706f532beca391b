// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/onboarding"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

// OnboardingController handles the one-shot onboarding import endpoint.
type OnboardingController struct {
	importUseCase *onboarding.ImportSnapshotUseCase
}

// NewOnboardingController creates a new onboarding controller instance.
func NewOnboardingController(importUseCase *onboarding.ImportSnapshotUseCase) *OnboardingController {
	return &OnboardingController{
		importUseCase: importUseCase,
	}
}

// Import handles POST /onboarding requests. The snapshot is validated as a
// whole before any record is written; a rejected import leaves the store
// untouched.
func (c *OnboardingController) Import(ctx *gin.Context) {
	var req dto.OnboardingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidOnboardingSnapshot),
		})
		return
	}

	input := onboarding.ImportSnapshotInput{
		MonthlySalary: decimal.NewFromFloat(req.MonthlySalary),
		OtherIncome:   decimal.NewFromFloat(req.OtherIncome),
	}
	for _, e := range req.Emis {
		input.Emis = append(input.Emis, onboarding.EmiEntry{
			Name:   e.Name,
			Amount: decimal.NewFromFloat(e.Amount),
		})
	}
	for _, e := range req.Expenses {
		input.Expenses = append(input.Expenses, onboarding.ExpenseEntry{
			Name:     e.Name,
			Amount:   decimal.NewFromFloat(e.Amount),
			Category: entity.ExpenseCategory(e.Category),
		})
	}
	for _, g := range req.Goals {
		input.Goals = append(input.Goals, onboarding.GoalEntry{
			Name:              g.Name,
			TargetAmount:      decimal.NewFromFloat(g.TargetAmount),
			MonthlyPercentage: g.MonthlyPercentage,
		})
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var onboardingErr *domainerror.OnboardingError
		if errors.As(err, &onboardingErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: onboardingErr.Message,
				Code:  string(onboardingErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.OnboardingResponse{
		IncomesCreated:    output.IncomesCreated,
		ExpensesCreated:   output.ExpensesCreated,
		GoalsCreated:      output.GoalsCreated,
		SavingsGoalTarget: output.SavingsGoalTarget.InexactFloat64(),
	})
}
