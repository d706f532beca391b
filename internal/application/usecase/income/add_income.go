// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// AddIncomeInput represents the input for income creation.
type AddIncomeInput struct {
	Source      string
	Amount      decimal.Decimal
	IsRecurring bool
	Date        string
}

// AddIncomeOutput represents the output of income creation.
type AddIncomeOutput struct {
	Income *entity.Income
}

// AddIncomeUseCase handles income creation logic.
type AddIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewAddIncomeUseCase creates a new AddIncomeUseCase instance.
func NewAddIncomeUseCase(incomeRepo adapter.IncomeRepository) *AddIncomeUseCase {
	return &AddIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income creation.
func (uc *AddIncomeUseCase) Execute(ctx context.Context, input AddIncomeInput) (*AddIncomeOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"amount must not be negative",
			domainerror.ErrInvalidIncomeAmount,
		)
	}

	income := entity.NewIncome(input.Source, input.Amount, input.IsRecurring, input.Date)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return &AddIncomeOutput{Income: income}, nil
}
