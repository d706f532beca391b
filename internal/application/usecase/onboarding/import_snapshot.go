// Package onboarding translates the guided-wizard snapshot into initial records.
package onboarding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// defaultTargetShare is the share of onboarding income used to seed the
// legacy scalar savings target.
var defaultTargetShare = decimal.NewFromFloat(0.20)

// EmiEntry is one recurring loan installment from the wizard.
type EmiEntry struct {
	Name   string
	Amount decimal.Decimal
}

// ExpenseEntry is one regular expense from the wizard.
type ExpenseEntry struct {
	Name     string
	Amount   decimal.Decimal
	Category entity.ExpenseCategory
}

// GoalEntry is one savings goal from the wizard.
type GoalEntry struct {
	Name              string
	TargetAmount      decimal.Decimal
	MonthlyPercentage float64
}

// ImportSnapshotInput is the one-shot snapshot handed over by the wizard.
type ImportSnapshotInput struct {
	MonthlySalary decimal.Decimal
	OtherIncome   decimal.Decimal
	Emis          []EmiEntry
	Expenses      []ExpenseEntry
	Goals         []GoalEntry
}

// ImportSnapshotOutput summarizes what the import created.
type ImportSnapshotOutput struct {
	IncomesCreated    int
	ExpensesCreated   int
	GoalsCreated      int
	SavingsGoalTarget decimal.Decimal
}

// ImportSnapshotUseCase seeds the record store from the onboarding wizard.
type ImportSnapshotUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	incomeRepo   adapter.IncomeRepository
	goalRepo     adapter.GoalRepository
	settingsRepo adapter.SettingsRepository
}

// NewImportSnapshotUseCase creates a new ImportSnapshotUseCase instance.
func NewImportSnapshotUseCase(
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
	goalRepo adapter.GoalRepository,
	settingsRepo adapter.SettingsRepository,
) *ImportSnapshotUseCase {
	return &ImportSnapshotUseCase{
		expenseRepo:  expenseRepo,
		incomeRepo:   incomeRepo,
		goalRepo:     goalRepo,
		settingsRepo: settingsRepo,
	}
}

// Execute validates the snapshot and creates the initial records. The whole
// snapshot is validated before the first record is written so a rejected
// import never leaves the store partially seeded.
func (uc *ImportSnapshotUseCase) Execute(ctx context.Context, input ImportSnapshotInput) (*ImportSnapshotOutput, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	today := time.Now().UTC().Format("2006-01-02")
	output := &ImportSnapshotOutput{}

	salary := entity.NewIncome("Monthly Salary", input.MonthlySalary, true, today)
	if err := uc.incomeRepo.Create(ctx, salary); err != nil {
		return nil, fmt.Errorf("failed to create salary income: %w", err)
	}
	output.IncomesCreated++

	if input.OtherIncome.IsPositive() {
		other := entity.NewIncome("Other Income", input.OtherIncome, false, today)
		if err := uc.incomeRepo.Create(ctx, other); err != nil {
			return nil, fmt.Errorf("failed to create other income: %w", err)
		}
		output.IncomesCreated++
	}

	for _, emi := range input.Emis {
		// Keep the "EMI: " prefix for display; detection relies on the
		// IsLoanPayment flag, not on the description.
		exp := entity.NewExpense(
			entity.CategoryOther,
			emi.Amount,
			"EMI: "+emi.Name,
			today,
			true,
			true,
		)
		if err := uc.expenseRepo.Create(ctx, exp); err != nil {
			return nil, fmt.Errorf("failed to create EMI expense: %w", err)
		}
		output.ExpensesCreated++
	}

	for _, e := range input.Expenses {
		exp := entity.NewExpense(e.Category, e.Amount, e.Name, today, false, false)
		if err := uc.expenseRepo.Create(ctx, exp); err != nil {
			return nil, fmt.Errorf("failed to create expense: %w", err)
		}
		output.ExpensesCreated++
	}

	for _, g := range input.Goals {
		goal := entity.NewSavingsGoal(strings.TrimSpace(g.Name), g.TargetAmount, g.MonthlyPercentage)
		if err := uc.goalRepo.Create(ctx, goal); err != nil {
			return nil, fmt.Errorf("failed to create goal: %w", err)
		}
		output.GoalsCreated++
	}

	target := input.MonthlySalary.Add(input.OtherIncome).Mul(defaultTargetShare)
	if err := uc.settingsRepo.SetSavingsGoalTarget(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to set savings target: %w", err)
	}
	output.SavingsGoalTarget = target

	return output, nil
}

func (uc *ImportSnapshotUseCase) validate(input ImportSnapshotInput) error {
	reject := func(message string) error {
		return domainerror.NewOnboardingError(
			domainerror.ErrCodeInvalidOnboardingSnapshot,
			message,
			domainerror.ErrInvalidOnboardingSnapshot,
		)
	}

	if input.MonthlySalary.IsNegative() || input.OtherIncome.IsNegative() {
		return reject("income amounts must not be negative")
	}
	for _, emi := range input.Emis {
		if strings.TrimSpace(emi.Name) == "" {
			return reject("EMI name must not be empty")
		}
		if emi.Amount.IsNegative() {
			return reject("EMI amounts must not be negative")
		}
	}
	for _, e := range input.Expenses {
		if e.Amount.IsNegative() {
			return reject("expense amounts must not be negative")
		}
		if !entity.IsValidExpenseCategory(e.Category) {
			return reject(fmt.Sprintf("category %q is not a valid expense category", e.Category))
		}
	}
	for _, g := range input.Goals {
		name := strings.TrimSpace(g.Name)
		if name == "" || len(name) > entity.MaxGoalNameLength {
			return reject(fmt.Sprintf("goal name must be 1-%d characters", entity.MaxGoalNameLength))
		}
		if !g.TargetAmount.IsPositive() {
			return reject("goal target amount must be greater than zero")
		}
		if g.MonthlyPercentage <= 0 || g.MonthlyPercentage > 100 {
			return reject("goal monthly percentage must be greater than 0 and at most 100")
		}
	}
	return nil
}
