// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// AddExpenseInput represents the input for expense creation.
type AddExpenseInput struct {
	Category      entity.ExpenseCategory
	Amount        decimal.Decimal
	Description   string
	Date          string
	IsRecurring   bool
	IsLoanPayment bool
}

// AddExpenseOutput represents the output of expense creation.
type AddExpenseOutput struct {
	Expense *entity.Expense
}

// AddExpenseUseCase handles expense creation logic.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(expenseRepo adapter.ExpenseRepository) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if !entity.IsValidExpenseCategory(input.Category) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			fmt.Sprintf("category %q is not a valid expense category", input.Category),
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must not be negative",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	expense := entity.NewExpense(
		input.Category,
		input.Amount,
		input.Description,
		input.Date,
		input.IsRecurring,
		input.IsLoanPayment,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &AddExpenseOutput{Expense: expense}, nil
}
