// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	Source      string  `json:"source" binding:"required"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	IsRecurring bool    `json:"is_recurring"`
	Date        string  `json:"date"`
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Amount      float64   `json:"amount"`
	IsRecurring bool      `json:"is_recurring"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(i *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          i.ID.String(),
		Source:      i.Source,
		Amount:      i.Amount.InexactFloat64(),
		IsRecurring: i.IsRecurring,
		Date:        i.Date,
		CreatedAt:   i.CreatedAt,
	}
}

// ToIncomeListResponse converts a list of incomes to an IncomeListResponse.
func ToIncomeListResponse(incomes []*entity.Income) IncomeListResponse {
	items := make([]IncomeResponse, len(incomes))
	for i, income := range incomes {
		items[i] = ToIncomeResponse(income)
	}
	return IncomeListResponse{
		Incomes: items,
	}
}
