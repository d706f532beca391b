// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// SetSavingsTargetRequest represents the request body for updating the
// scalar savings goal target.
type SetSavingsTargetRequest struct {
	Target float64 `json:"target" binding:"gte=0"`
}

// SetSavingsTargetResponse represents the response after updating the target.
type SetSavingsTargetResponse struct {
	Target float64 `json:"target"`
}

// PredictionResponse represents a per-category spending prediction.
type PredictionResponse struct {
	Category        string  `json:"category"`
	PredictedAmount float64 `json:"predicted_amount"`
	Trend           string  `json:"trend"`
	Alert           string  `json:"alert,omitempty"`
}

// BudgetPlanResponse represents the derived budget plan in API responses.
type BudgetPlanResponse struct {
	TotalIncome       float64              `json:"total_income"`
	TotalExpenses     float64              `json:"total_expenses"`
	Savings           float64              `json:"savings"`
	SavingsGoalTarget float64              `json:"savings_goal_target"`
	CategoryBudgets   map[string]float64   `json:"category_budgets"`
	Recommendations   []string             `json:"recommendations"`
	Predictions       []PredictionResponse `json:"predictions"`
	Goals             []GoalResponse       `json:"goals"`
}

// ToBudgetPlanResponse converts a BudgetPlan value to its DTO.
func ToBudgetPlanResponse(plan *valueobject.BudgetPlan) BudgetPlanResponse {
	categoryBudgets := make(map[string]float64, len(plan.CategoryBudgets))
	for category, amount := range plan.CategoryBudgets {
		categoryBudgets[string(category)] = amount.InexactFloat64()
	}

	predictions := make([]PredictionResponse, len(plan.Predictions))
	for i, p := range plan.Predictions {
		predictions[i] = PredictionResponse{
			Category:        string(p.Category),
			PredictedAmount: p.PredictedAmount.InexactFloat64(),
			Trend:           string(p.Trend),
			Alert:           p.Alert,
		}
	}

	goals := make([]GoalResponse, len(plan.Goals))
	for i, g := range plan.Goals {
		goals[i] = ToGoalResponse(g)
	}

	recommendations := plan.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	return BudgetPlanResponse{
		TotalIncome:       plan.TotalIncome.InexactFloat64(),
		TotalExpenses:     plan.TotalExpenses.InexactFloat64(),
		Savings:           plan.Savings.InexactFloat64(),
		SavingsGoalTarget: plan.SavingsGoalTarget.InexactFloat64(),
		CategoryBudgets:   categoryBudgets,
		Recommendations:   recommendations,
		Predictions:       predictions,
		Goals:             goals,
	}
}
