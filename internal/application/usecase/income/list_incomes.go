// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListIncomesInput represents the input for listing incomes.
type ListIncomesInput struct{}

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Incomes []*entity.Income
}

// ListIncomesUseCase handles listing income records.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute returns all income records.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, _ ListIncomesInput) (*ListIncomesOutput, error) {
	incomes, err := uc.incomeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return &ListIncomesOutput{Incomes: incomes}, nil
}
