// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxGoalNameLength is the maximum allowed length for a savings goal name.
const MaxGoalNameLength = 50

// SavingsGoal represents a named savings target funded by a fixed
// percentage of monthly income.
type SavingsGoal struct {
	ID                uuid.UUID
	Name              string
	TargetAmount      decimal.Decimal // Always positive
	MonthlyPercentage float64         // Share of total income in (0, 100]
	CurrentSaved      decimal.Decimal // Monotonically non-decreasing
	CreatedAt         time.Time
}

// NewSavingsGoal creates a new SavingsGoal entity with nothing saved yet.
func NewSavingsGoal(name string, targetAmount decimal.Decimal, monthlyPercentage float64) *SavingsGoal {
	return &SavingsGoal{
		ID:                uuid.New(),
		Name:              name,
		TargetAmount:      targetAmount,
		MonthlyPercentage: monthlyPercentage,
		CurrentSaved:      decimal.Zero,
		CreatedAt:         time.Now().UTC(),
	}
}
