// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/application/usecase/goal"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// CreateGoalRequest represents the request body for savings goal creation.
type CreateGoalRequest struct {
	Name              string  `json:"name" binding:"required"`
	TargetAmount      float64 `json:"target_amount" binding:"required,gt=0"`
	MonthlyPercentage float64 `json:"monthly_percentage" binding:"required,gt=0,lte=100"`
}

// ContributeGoalRequest represents the request body for a goal contribution.
type ContributeGoalRequest struct {
	Amount float64 `json:"amount" binding:"gte=0"`
}

// GoalProjectionResponse represents a goal's live projection in API responses.
type GoalProjectionResponse struct {
	MonthlyContribution float64 `json:"monthly_contribution"`
	Remaining           float64 `json:"remaining"`
	MonthsToGoal        int     `json:"months_to_goal"`
	Years               int     `json:"years"`
	RemainderMonths     int     `json:"remainder_months"`
	ProgressPercentage  float64 `json:"progress_percentage"`
	Achieved            bool    `json:"achieved"`
}

// GoalResponse represents a single savings goal in API responses.
type GoalResponse struct {
	ID                string                  `json:"id"`
	Name              string                  `json:"name"`
	TargetAmount      float64                 `json:"target_amount"`
	MonthlyPercentage float64                 `json:"monthly_percentage"`
	CurrentSaved      float64                 `json:"current_saved"`
	CreatedAt         time.Time               `json:"created_at"`
	Projection        *GoalProjectionResponse `json:"projection,omitempty"`
}

// GoalListResponse represents the response for listing savings goals.
type GoalListResponse struct {
	Goals       []GoalResponse `json:"goals"`
	TotalIncome float64        `json:"total_income"`
}

// ToGoalResponse converts a domain SavingsGoal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.SavingsGoal) GoalResponse {
	return GoalResponse{
		ID:                g.ID.String(),
		Name:              g.Name,
		TargetAmount:      g.TargetAmount.InexactFloat64(),
		MonthlyPercentage: g.MonthlyPercentage,
		CurrentSaved:      g.CurrentSaved.InexactFloat64(),
		CreatedAt:         g.CreatedAt,
	}
}

// ToGoalProjectionResponse converts a GoalProjection to its DTO.
func ToGoalProjectionResponse(p valueobject.GoalProjection) GoalProjectionResponse {
	return GoalProjectionResponse{
		MonthlyContribution: p.MonthlyContribution.InexactFloat64(),
		Remaining:           p.Remaining.InexactFloat64(),
		MonthsToGoal:        p.MonthsToGoal,
		Years:               p.Years,
		RemainderMonths:     p.RemainderMonths,
		ProgressPercentage:  p.ProgressPercentage,
		Achieved:            p.Achieved,
	}
}

// ToGoalListResponse converts a ListGoalsOutput to a GoalListResponse.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	goals := make([]GoalResponse, len(output.Goals))
	for i, gp := range output.Goals {
		response := ToGoalResponse(gp.Goal)
		projection := ToGoalProjectionResponse(gp.Projection)
		response.Projection = &projection
		goals[i] = response
	}
	return GoalListResponse{
		Goals:       goals,
		TotalIncome: output.TotalIncome.InexactFloat64(),
	}
}
