package persistence

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.GoalModel{},
		&model.SettingModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestExpenseRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(newTestDB(t))

	first := entity.NewExpense(entity.CategoryHousing, decimal.NewFromInt(800), "Rent", "2026-02-01", true, false)
	second := entity.NewExpense(entity.CategoryFood, decimal.NewFromInt(120), "Groceries", "2026-02-03", false, false)

	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("finds all in creation order", func(t *testing.T) {
		expenses, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("find all failed: %v", err)
		}
		if len(expenses) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(expenses))
		}
		if expenses[0].ID != first.ID {
			t.Error("expected oldest expense first")
		}
		if expenses[0].Category != entity.CategoryHousing || !expenses[0].Amount.Equal(decimal.NewFromInt(800)) {
			t.Error("stored expense does not round-trip")
		}
		if !expenses[0].IsRecurring || expenses[0].IsLoanPayment {
			t.Error("expected recurring non-loan expense")
		}
	})

	t.Run("delete removes the row", func(t *testing.T) {
		if err := repo.Delete(ctx, first.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		expenses, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("find all failed: %v", err)
		}
		if len(expenses) != 1 || expenses[0].ID != second.ID {
			t.Error("expected only the second expense to remain")
		}
	})

	t.Run("delete of unknown id is a no-op", func(t *testing.T) {
		if err := repo.Delete(ctx, uuid.New()); err != nil {
			t.Errorf("expected no error for unknown id, got %v", err)
		}
	})
}

func TestIncomeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewIncomeRepository(newTestDB(t))

	income := entity.NewIncome("Salary", decimal.NewFromInt(2500), true, "2026-02-01")
	if err := repo.Create(ctx, income); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	incomes, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(incomes) != 1 {
		t.Fatalf("expected 1 income, got %d", len(incomes))
	}
	if incomes[0].Source != "Salary" || !incomes[0].Amount.Equal(decimal.NewFromInt(2500)) {
		t.Error("stored income does not round-trip")
	}

	if err := repo.Delete(ctx, income.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(ctx, income.ID); err != nil {
		t.Errorf("repeated delete must be a no-op, got %v", err)
	}
	incomes, err = repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(incomes) != 0 {
		t.Errorf("expected empty store after delete, got %d", len(incomes))
	}
}

func TestGoalRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(newTestDB(t))

	goal := entity.NewSavingsGoal("Vacation", decimal.NewFromInt(3000), 15)
	if err := repo.Create(ctx, goal); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("find by id returns the goal", func(t *testing.T) {
		found, err := repo.FindByID(ctx, goal.ID)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if found == nil || found.Name != "Vacation" {
			t.Fatal("expected the created goal")
		}
		if !found.CurrentSaved.IsZero() {
			t.Error("new goal must start with zero saved")
		}
	})

	t.Run("find by unknown id returns nil", func(t *testing.T) {
		found, err := repo.FindByID(ctx, uuid.New())
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if found != nil {
			t.Error("expected nil for unknown id")
		}
	})

	t.Run("contribute accumulates the saved balance", func(t *testing.T) {
		if err := repo.Contribute(ctx, goal.ID, decimal.NewFromInt(200)); err != nil {
			t.Fatalf("contribute failed: %v", err)
		}
		if err := repo.Contribute(ctx, goal.ID, decimal.NewFromFloat(50.50)); err != nil {
			t.Fatalf("contribute failed: %v", err)
		}
		found, err := repo.FindByID(ctx, goal.ID)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if !found.CurrentSaved.Equal(decimal.NewFromFloat(250.50)) {
			t.Errorf("expected 250.50 saved, got %s", found.CurrentSaved)
		}
	})

	t.Run("contribute to unknown id is a no-op", func(t *testing.T) {
		if err := repo.Contribute(ctx, uuid.New(), decimal.NewFromInt(10)); err != nil {
			t.Errorf("expected no error for unknown id, got %v", err)
		}
	})

	t.Run("delete removes the goal", func(t *testing.T) {
		if err := repo.Delete(ctx, goal.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		goals, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("find all failed: %v", err)
		}
		if len(goals) != 0 {
			t.Errorf("expected no goals after delete, got %d", len(goals))
		}
	})
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(newTestDB(t))

	t.Run("unset target reads as zero", func(t *testing.T) {
		target, err := repo.GetSavingsGoalTarget(ctx)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !target.IsZero() {
			t.Errorf("expected zero target, got %s", target)
		}
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		if err := repo.SetSavingsGoalTarget(ctx, decimal.NewFromInt(400)); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		target, err := repo.GetSavingsGoalTarget(ctx)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !target.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected 400, got %s", target)
		}
	})

	t.Run("second set overwrites", func(t *testing.T) {
		if err := repo.SetSavingsGoalTarget(ctx, decimal.NewFromInt(650)); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		target, err := repo.GetSavingsGoalTarget(ctx)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !target.Equal(decimal.NewFromInt(650)) {
			t.Errorf("expected 650, got %s", target)
		}
	})
}
