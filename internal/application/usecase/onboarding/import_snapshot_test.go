package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.expenses = append(r.expenses, e)
	return nil
}
func (r *fakeExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }
func (r *fakeExpenseRepo) FindAll(_ context.Context) ([]*entity.Expense, error) {
	return r.expenses, nil
}

type fakeIncomeRepo struct {
	incomes []*entity.Income
}

func (r *fakeIncomeRepo) Create(_ context.Context, i *entity.Income) error {
	r.incomes = append(r.incomes, i)
	return nil
}
func (r *fakeIncomeRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }
func (r *fakeIncomeRepo) FindAll(_ context.Context) ([]*entity.Income, error) {
	return r.incomes, nil
}

type fakeGoalRepo struct {
	goals []*entity.SavingsGoal
}

func (r *fakeGoalRepo) Create(_ context.Context, g *entity.SavingsGoal) error {
	r.goals = append(r.goals, g)
	return nil
}
func (r *fakeGoalRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }
func (r *fakeGoalRepo) Contribute(_ context.Context, _ uuid.UUID, _ decimal.Decimal) error {
	return nil
}
func (r *fakeGoalRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.SavingsGoal, error) {
	return nil, nil
}
func (r *fakeGoalRepo) FindAll(_ context.Context) ([]*entity.SavingsGoal, error) {
	return r.goals, nil
}

type fakeSettingsRepo struct {
	target decimal.Decimal
	set    bool
}

func (r *fakeSettingsRepo) GetSavingsGoalTarget(_ context.Context) (decimal.Decimal, error) {
	return r.target, nil
}
func (r *fakeSettingsRepo) SetSavingsGoalTarget(_ context.Context, v decimal.Decimal) error {
	r.target = v
	r.set = true
	return nil
}

func TestImportSnapshot(t *testing.T) {
	expenseRepo := &fakeExpenseRepo{}
	incomeRepo := &fakeIncomeRepo{}
	goalRepo := &fakeGoalRepo{}
	settingsRepo := &fakeSettingsRepo{}
	uc := NewImportSnapshotUseCase(expenseRepo, incomeRepo, goalRepo, settingsRepo)

	output, err := uc.Execute(context.Background(), ImportSnapshotInput{
		MonthlySalary: decimal.NewFromInt(2200),
		OtherIncome:   decimal.NewFromInt(350),
		Emis: []EmiEntry{
			{Name: "Car loan", Amount: decimal.NewFromInt(300)},
		},
		Expenses: []ExpenseEntry{
			{Name: "Rent", Amount: decimal.NewFromInt(800), Category: entity.CategoryHousing},
			{Name: "Groceries", Amount: decimal.NewFromInt(320), Category: entity.CategoryFood},
		},
		Goals: []GoalEntry{
			{Name: "Emergency fund", TargetAmount: decimal.NewFromInt(5000), MonthlyPercentage: 10},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("creates salary and other income", func(t *testing.T) {
		if output.IncomesCreated != 2 || len(incomeRepo.incomes) != 2 {
			t.Fatalf("expected 2 incomes, got %d", len(incomeRepo.incomes))
		}
		if incomeRepo.incomes[0].Source != "Monthly Salary" || !incomeRepo.incomes[0].IsRecurring {
			t.Error("expected recurring salary income first")
		}
		if incomeRepo.incomes[1].Source != "Other Income" {
			t.Error("expected other income second")
		}
	})

	t.Run("creates EMI expenses flagged as loan payments", func(t *testing.T) {
		if output.ExpensesCreated != 3 || len(expenseRepo.expenses) != 3 {
			t.Fatalf("expected 3 expenses, got %d", len(expenseRepo.expenses))
		}
		emi := expenseRepo.expenses[0]
		if !emi.IsLoanPayment || !emi.IsRecurring {
			t.Error("expected EMI expense flagged recurring loan payment")
		}
		if emi.Description != "EMI: Car loan" {
			t.Errorf("expected EMI description prefix, got %q", emi.Description)
		}
		if emi.Category != entity.CategoryOther {
			t.Errorf("expected EMI in other category, got %s", emi.Category)
		}
	})

	t.Run("creates listed expenses without the loan flag", func(t *testing.T) {
		rent := expenseRepo.expenses[1]
		if rent.IsLoanPayment {
			t.Error("regular expense must not carry the loan flag")
		}
		if rent.Category != entity.CategoryHousing {
			t.Errorf("expected housing category, got %s", rent.Category)
		}
	})

	t.Run("creates goals with nothing saved", func(t *testing.T) {
		if output.GoalsCreated != 1 || len(goalRepo.goals) != 1 {
			t.Fatalf("expected 1 goal, got %d", len(goalRepo.goals))
		}
		if !goalRepo.goals[0].CurrentSaved.IsZero() {
			t.Error("imported goal must start with zero saved")
		}
	})

	t.Run("defaults scalar target to 20 percent of income", func(t *testing.T) {
		if !settingsRepo.set {
			t.Fatal("expected savings target to be set")
		}
		if !settingsRepo.target.Equal(decimal.NewFromInt(510)) {
			t.Errorf("expected target 510, got %s", settingsRepo.target)
		}
		if !output.SavingsGoalTarget.Equal(decimal.NewFromInt(510)) {
			t.Errorf("expected output target 510, got %s", output.SavingsGoalTarget)
		}
	})
}

func TestImportSnapshot_SkipsZeroOtherIncome(t *testing.T) {
	incomeRepo := &fakeIncomeRepo{}
	uc := NewImportSnapshotUseCase(&fakeExpenseRepo{}, incomeRepo, &fakeGoalRepo{}, &fakeSettingsRepo{})

	output, err := uc.Execute(context.Background(), ImportSnapshotInput{
		MonthlySalary: decimal.NewFromInt(1500),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.IncomesCreated != 1 || len(incomeRepo.incomes) != 1 {
		t.Errorf("expected only the salary income, got %d", len(incomeRepo.incomes))
	}
	if !output.SavingsGoalTarget.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected target 300, got %s", output.SavingsGoalTarget)
	}
}

func TestImportSnapshot_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		input ImportSnapshotInput
	}{
		{"negative salary", ImportSnapshotInput{MonthlySalary: decimal.NewFromInt(-1)}},
		{"unnamed emi", ImportSnapshotInput{Emis: []EmiEntry{{Name: " ", Amount: decimal.NewFromInt(10)}}}},
		{"bad expense category", ImportSnapshotInput{Expenses: []ExpenseEntry{
			{Name: "X", Amount: decimal.NewFromInt(5), Category: "crypto"},
		}}},
		{"zero goal target", ImportSnapshotInput{Goals: []GoalEntry{
			{Name: "G", TargetAmount: decimal.Zero, MonthlyPercentage: 10},
		}}},
		{"percentage above 100", ImportSnapshotInput{Goals: []GoalEntry{
			{Name: "G", TargetAmount: decimal.NewFromInt(100), MonthlyPercentage: 120},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenseRepo := &fakeExpenseRepo{}
			incomeRepo := &fakeIncomeRepo{}
			settingsRepo := &fakeSettingsRepo{}
			uc := NewImportSnapshotUseCase(expenseRepo, incomeRepo, &fakeGoalRepo{}, settingsRepo)

			_, err := uc.Execute(context.Background(), tt.input)

			var onboardingErr *domainerror.OnboardingError
			if !errors.As(err, &onboardingErr) {
				t.Fatalf("expected OnboardingError, got %v", err)
			}
			// A rejected snapshot must not partially seed the store.
			if len(expenseRepo.expenses) != 0 || len(incomeRepo.incomes) != 0 || settingsRepo.set {
				t.Error("rejected import must leave the store untouched")
			}
		})
	}
}
