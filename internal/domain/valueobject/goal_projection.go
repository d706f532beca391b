// Package valueobject defines derived, immutable values computed from the
// domain entities. Nothing in this package is ever stored.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// GoalProjection is the live time-to-completion arithmetic for one savings
// goal under the current total income. Presentation-derived, never stored.
type GoalProjection struct {
	MonthlyContribution decimal.Decimal
	Remaining           decimal.Decimal
	MonthsToGoal        int
	Years               int
	RemainderMonths     int
	ProgressPercentage  float64 // Capped at 100
	Achieved            bool
}

// ProjectGoal computes the projection for goal given the current total
// income. A goal with no funding or nothing left to save reports 0 months.
func ProjectGoal(goal *entity.SavingsGoal, totalIncome decimal.Decimal) GoalProjection {
	pct := decimal.NewFromFloat(goal.MonthlyPercentage)
	contribution := totalIncome.Mul(pct).Div(oneHundred)

	remaining := goal.TargetAmount.Sub(goal.CurrentSaved)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	months := 0
	if contribution.IsPositive() && remaining.IsPositive() {
		months = int(remaining.Div(contribution).Ceil().IntPart())
	}

	progress := 100.0
	if goal.TargetAmount.IsPositive() {
		progress, _ = goal.CurrentSaved.Mul(oneHundred).Div(goal.TargetAmount).Float64()
		if progress > 100 {
			progress = 100
		}
	}

	return GoalProjection{
		MonthlyContribution: contribution,
		Remaining:           remaining,
		MonthsToGoal:        months,
		Years:               months / 12,
		RemainderMonths:     months % 12,
		ProgressPercentage:  progress,
		Achieved:            progress >= 100,
	}
}
