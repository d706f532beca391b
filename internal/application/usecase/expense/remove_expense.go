// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// RemoveExpenseInput represents the input for expense removal.
type RemoveExpenseInput struct {
	ExpenseID uuid.UUID
}

// RemoveExpenseOutput represents the output of expense removal.
type RemoveExpenseOutput struct{}

// RemoveExpenseUseCase handles expense removal logic. Removing an unknown
// ID is a silent no-op so stale references (e.g. a double click) never crash.
type RemoveExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewRemoveExpenseUseCase creates a new RemoveExpenseUseCase instance.
func NewRemoveExpenseUseCase(expenseRepo adapter.ExpenseRepository) *RemoveExpenseUseCase {
	return &RemoveExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense removal.
func (uc *RemoveExpenseUseCase) Execute(ctx context.Context, input RemoveExpenseInput) (*RemoveExpenseOutput, error) {
	if err := uc.expenseRepo.Delete(ctx, input.ExpenseID); err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}
	return &RemoveExpenseOutput{}, nil
}
