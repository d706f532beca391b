// Package budget contains the budget derivation use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// Fixed design constants of the derivation engine. Not configurable.
var (
	// inflationFactor is the naive 2% prediction multiplier.
	inflationFactor = decimal.NewFromFloat(1.02)

	// trendUpThreshold marks a category as trending "up" above this amount.
	trendUpThreshold = decimal.NewFromInt(200)

	// alertIncomeShare triggers a high-spending alert above this share of income.
	alertIncomeShare = decimal.NewFromFloat(0.30)

	// emiHighRatio and emiModerateRatio bound the EMI burden warnings.
	emiHighRatio     = decimal.NewFromFloat(0.50)
	emiModerateRatio = decimal.NewFromFloat(0.30)

	// entertainmentMaxRatio caps entertainment spending before a trim note.
	entertainmentMaxRatio = decimal.NewFromFloat(0.10)

	// housingMaxRatio caps housing costs before a note (recommended 30-35%).
	housingMaxRatio = decimal.NewFromFloat(0.35)

	hundred = decimal.NewFromInt(100)
)

// Derive computes a BudgetPlan from raw records. It is pure and total:
// deterministic, side-effect free, and never fails for well-formed inputs.
// Recomputing with identical inputs yields an identical plan.
func Derive(
	expenses []*entity.Expense,
	incomes []*entity.Income,
	savingsGoalTarget decimal.Decimal,
	goals []*entity.SavingsGoal,
) *valueobject.BudgetPlan {
	totalIncome := decimal.Zero
	for _, i := range incomes {
		totalIncome = totalIncome.Add(i.Amount)
	}

	totalExpenses := decimal.Zero
	totalEmi := decimal.Zero
	categoryTotals := make(map[entity.ExpenseCategory]decimal.Decimal, len(entity.ExpenseCategories))
	for _, c := range entity.ExpenseCategories {
		categoryTotals[c] = decimal.Zero
	}
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
		categoryTotals[e.Category] = categoryTotals[e.Category].Add(e.Amount)
		if e.IsLoanPayment {
			totalEmi = totalEmi.Add(e.Amount)
		}
	}

	savings := totalIncome.Sub(totalExpenses)

	categoryBudgets := make(map[entity.ExpenseCategory]decimal.Decimal, len(categoryTotals)+1)
	for c, amount := range categoryTotals {
		categoryBudgets[c] = amount
	}
	categoryBudgets[entity.CategorySavings] = decimal.Max(decimal.Zero, savings)

	recommendations := buildRecommendations(
		totalIncome, totalEmi, savings, savingsGoalTarget, categoryBudgets,
	)

	predictions := buildPredictions(totalIncome, categoryTotals)

	return &valueobject.BudgetPlan{
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		Savings:           savings,
		SavingsGoalTarget: savingsGoalTarget,
		CategoryBudgets:   categoryBudgets,
		Recommendations:   recommendations,
		Predictions:       predictions,
		Goals:             goals,
	}
}

// buildRecommendations evaluates the advisory rules in their fixed order.
// Every ratio-based rule is skipped when totalIncome is zero.
func buildRecommendations(
	totalIncome, totalEmi, savings, savingsGoalTarget decimal.Decimal,
	categoryBudgets map[entity.ExpenseCategory]decimal.Decimal,
) []string {
	recommendations := []string{}

	if totalIncome.IsPositive() {
		if totalEmi.IsPositive() {
			emiRatio := totalEmi.Div(totalIncome)
			emiPercent := emiRatio.Mul(hundred).StringFixed(1)
			if emiRatio.GreaterThan(emiHighRatio) {
				recommendations = append(recommendations, fmt.Sprintf(
					"EMI payments are %s%% of your income. This burden is very high - consider restructuring or refinancing your loans.",
					emiPercent,
				))
			} else if emiRatio.GreaterThan(emiModerateRatio) {
				recommendations = append(recommendations, fmt.Sprintf(
					"EMI payments are %s%% of your income. Paying off smaller loans first would free up your budget.",
					emiPercent,
				))
			}
		}

		entertainmentRatio := categoryBudgets[entity.CategoryEntertainment].Div(totalIncome)
		if entertainmentRatio.GreaterThan(entertainmentMaxRatio) {
			recommendations = append(recommendations, fmt.Sprintf(
				"Entertainment spending is %s%% of income. Try to keep it under 10%%.",
				entertainmentRatio.Mul(hundred).StringFixed(1),
			))
		}

		housingRatio := categoryBudgets[entity.CategoryHousing].Div(totalIncome)
		if housingRatio.GreaterThan(housingMaxRatio) {
			recommendations = append(recommendations, fmt.Sprintf(
				"Housing costs are %s%% of income. The recommended max is 30-35%%.",
				housingRatio.Mul(hundred).StringFixed(1),
			))
		}
	}

	if savings.LessThan(savingsGoalTarget) {
		recommendations = append(recommendations, fmt.Sprintf(
			"You're $%s short of your savings goal. Consider reducing non-essential spending.",
			savingsGoalTarget.Sub(savings).String(),
		))
	} else if savingsGoalTarget.IsPositive() {
		recommendations = append(recommendations, fmt.Sprintf(
			"Great job! You're meeting your savings goal of $%s.",
			savingsGoalTarget.String(),
		))
	}

	if savings.IsNegative() {
		recommendations = append(recommendations, fmt.Sprintf(
			"You're overspending by $%s this month. Review your expenses urgently.",
			savings.Abs().String(),
		))
	}

	return recommendations
}

// buildPredictions emits a naive 2%-inflation forecast for every category
// with spending, iterating in the fixed category order for determinism.
func buildPredictions(
	totalIncome decimal.Decimal,
	categoryTotals map[entity.ExpenseCategory]decimal.Decimal,
) []valueobject.SpendingPrediction {
	predictions := []valueobject.SpendingPrediction{}

	for _, c := range entity.ExpenseCategories {
		amount := categoryTotals[c]
		if !amount.IsPositive() {
			continue
		}

		trend := valueobject.TrendStable
		if amount.GreaterThan(trendUpThreshold) {
			trend = valueobject.TrendUp
		}

		alert := ""
		if totalIncome.IsPositive() && amount.GreaterThan(totalIncome.Mul(alertIncomeShare)) {
			alert = fmt.Sprintf("High spending in %s", c)
		}

		predictions = append(predictions, valueobject.SpendingPrediction{
			Category:        c,
			PredictedAmount: amount.Mul(inflationFactor),
			Trend:           trend,
			Alert:           alert,
		})
	}

	return predictions
}

// DeriveBudgetPlanInput represents the input for budget plan derivation.
type DeriveBudgetPlanInput struct{}

// DeriveBudgetPlanOutput represents the output of budget plan derivation.
type DeriveBudgetPlanOutput struct {
	Plan *valueobject.BudgetPlan
}

// DeriveBudgetPlanUseCase recomputes the budget plan from current records.
type DeriveBudgetPlanUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	incomeRepo   adapter.IncomeRepository
	goalRepo     adapter.GoalRepository
	settingsRepo adapter.SettingsRepository
}

// NewDeriveBudgetPlanUseCase creates a new DeriveBudgetPlanUseCase instance.
func NewDeriveBudgetPlanUseCase(
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
	goalRepo adapter.GoalRepository,
	settingsRepo adapter.SettingsRepository,
) *DeriveBudgetPlanUseCase {
	return &DeriveBudgetPlanUseCase{
		expenseRepo:  expenseRepo,
		incomeRepo:   incomeRepo,
		goalRepo:     goalRepo,
		settingsRepo: settingsRepo,
	}
}

// Execute performs the plan derivation from the current record state.
func (uc *DeriveBudgetPlanUseCase) Execute(ctx context.Context, _ DeriveBudgetPlanInput) (*DeriveBudgetPlanOutput, error) {
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	incomes, err := uc.incomeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	target, err := uc.settingsRepo.GetSavingsGoalTarget(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings target: %w", err)
	}

	return &DeriveBudgetPlanOutput{
		Plan: Derive(expenses, incomes, target, goals),
	}, nil
}
