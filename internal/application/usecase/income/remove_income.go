// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// RemoveIncomeInput represents the input for income removal.
type RemoveIncomeInput struct {
	IncomeID uuid.UUID
}

// RemoveIncomeOutput represents the output of income removal.
type RemoveIncomeOutput struct{}

// RemoveIncomeUseCase handles income removal logic. Removing an unknown ID
// is a silent no-op.
type RemoveIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewRemoveIncomeUseCase creates a new RemoveIncomeUseCase instance.
func NewRemoveIncomeUseCase(incomeRepo adapter.IncomeRepository) *RemoveIncomeUseCase {
	return &RemoveIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income removal.
func (uc *RemoveIncomeUseCase) Execute(ctx context.Context, input RemoveIncomeInput) (*RemoveIncomeOutput, error) {
	if err := uc.incomeRepo.Delete(ctx, input.IncomeID); err != nil {
		return nil, fmt.Errorf("failed to delete income: %w", err)
	}
	return &RemoveIncomeOutput{}, nil
}
