// Package goal contains savings-goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// ListGoalsInput represents the input for listing savings goals.
type ListGoalsInput struct{}

// GoalWithProjection pairs a stored goal with its live projection under
// the current total income.
type GoalWithProjection struct {
	Goal       *entity.SavingsGoal
	Projection valueobject.GoalProjection
}

// ListGoalsOutput represents the output of listing savings goals.
type ListGoalsOutput struct {
	Goals       []*GoalWithProjection
	TotalIncome decimal.Decimal
}

// ListGoalsUseCase lists goals with their projections. Projections are
// recomputed on every call; they are presentation-derived, never stored.
type ListGoalsUseCase struct {
	goalRepo   adapter.GoalRepository
	incomeRepo adapter.IncomeRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, incomeRepo adapter.IncomeRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:   goalRepo,
		incomeRepo: incomeRepo,
	}
}

// Execute performs the goal listing with projections.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, _ ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	incomes, err := uc.incomeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	totalIncome := decimal.Zero
	for _, i := range incomes {
		totalIncome = totalIncome.Add(i.Amount)
	}

	output := &ListGoalsOutput{
		Goals:       make([]*GoalWithProjection, 0, len(goals)),
		TotalIncome: totalIncome,
	}
	for _, g := range goals {
		output.Goals = append(output.Goals, &GoalWithProjection{
			Goal:       g,
			Projection: valueobject.ProjectGoal(g, totalIncome),
		})
	}

	return output, nil
}
