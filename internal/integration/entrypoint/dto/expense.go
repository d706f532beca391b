// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Category      string  `json:"category" binding:"required"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	IsRecurring   bool    `json:"is_recurring"`
	IsLoanPayment bool    `json:"is_loan_payment"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Date          string    `json:"date"`
	IsRecurring   bool      `json:"is_recurring"`
	IsLoanPayment bool      `json:"is_loan_payment"`
	CreatedAt     time.Time `json:"created_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID.String(),
		Category:      string(e.Category),
		Amount:        e.Amount.InexactFloat64(),
		Description:   e.Description,
		Date:          e.Date,
		IsRecurring:   e.IsRecurring,
		IsLoanPayment: e.IsLoanPayment,
		CreatedAt:     e.CreatedAt,
	}
}

// ToExpenseListResponse converts a list of expenses to an ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		items[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Expenses: items,
	}
}
