// Package valueobject defines derived, immutable values computed from the
// domain entities. Nothing in this package is ever stored.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// Trend describes the naive direction of a spending prediction.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// SpendingPrediction is a naive per-category forecast for next month.
type SpendingPrediction struct {
	Category        entity.ExpenseCategory
	PredictedAmount decimal.Decimal
	Trend           Trend
	Alert           string // Empty when no alert applies
}

// BudgetPlan is the fully derived budget summary consumed by the
// presentation layer. It is recomputed from scratch on every read;
// identical inputs always produce an identical plan.
type BudgetPlan struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	// Savings is the only signed quantity in the model.
	Savings decimal.Decimal
	// SavingsGoalTarget is the legacy single scalar target, independent of
	// the SavingsGoal list.
	SavingsGoalTarget decimal.Decimal
	// CategoryBudgets has one entry per expense category plus the synthetic
	// "savings" bucket; unused categories are 0, never absent.
	CategoryBudgets map[entity.ExpenseCategory]decimal.Decimal
	Recommendations []string
	Predictions     []SpendingPrediction
	Goals           []*entity.SavingsGoal
}
