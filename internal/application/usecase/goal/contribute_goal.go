// Package goal contains savings-goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// ContributeGoalInput represents the input for a goal contribution.
type ContributeGoalInput struct {
	GoalID uuid.UUID
	Amount decimal.Decimal
}

// ContributeGoalOutput represents the output of a goal contribution.
// Goal is nil when the target goal does not exist (the contribution is a
// silent no-op in that case).
type ContributeGoalOutput struct {
	Goal *entity.SavingsGoal
}

// ContributeGoalUseCase increments a goal's saved amount. Negative amounts
// are rejected here, at the boundary, which keeps CurrentSaved monotone;
// the repository itself performs no sign check.
type ContributeGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewContributeGoalUseCase creates a new ContributeGoalUseCase instance.
func NewContributeGoalUseCase(goalRepo adapter.GoalRepository) *ContributeGoalUseCase {
	return &ContributeGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the contribution.
func (uc *ContributeGoalUseCase) Execute(ctx context.Context, input ContributeGoalInput) (*ContributeGoalOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNegativeContribution,
			"contribution amount must not be negative",
			domainerror.ErrNegativeContribution,
		)
	}

	if err := uc.goalRepo.Contribute(ctx, input.GoalID, input.Amount); err != nil {
		return nil, fmt.Errorf("failed to contribute to goal: %w", err)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload goal: %w", err)
	}

	return &ContributeGoalOutput{Goal: goal}, nil
}
