// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income represents a single income record in the Budgetwise system.
type Income struct {
	ID          uuid.UUID
	Source      string
	Amount      decimal.Decimal // Always non-negative
	IsRecurring bool
	Date        string // Calendar date in "2006-01-02" format
	CreatedAt   time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(source string, amount decimal.Decimal, isRecurring bool, date string) *Income {
	return &Income{
		ID:          uuid.New(),
		Source:      source,
		Amount:      amount,
		IsRecurring: isRecurring,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}
