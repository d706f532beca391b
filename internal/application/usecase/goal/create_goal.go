// Package goal contains savings-goal use cases.
package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// CreateGoalInput represents the input for savings goal creation.
type CreateGoalInput struct {
	Name              string
	TargetAmount      decimal.Decimal
	MonthlyPercentage float64
}

// CreateGoalOutput represents the output of savings goal creation.
type CreateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateGoalUseCase handles savings goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > entity.MaxGoalNameLength {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			fmt.Sprintf("goal name must be 1-%d characters", entity.MaxGoalNameLength),
			domainerror.ErrInvalidGoalName,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if input.MonthlyPercentage <= 0 || input.MonthlyPercentage > 100 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidMonthlyPercentage,
			"monthly percentage must be greater than 0 and at most 100",
			domainerror.ErrInvalidMonthlyPercentage,
		)
	}

	goal := entity.NewSavingsGoal(name, input.TargetAmount, input.MonthlyPercentage)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
