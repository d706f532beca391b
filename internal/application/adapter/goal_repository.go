// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// GoalRepository defines the interface for savings goal persistence operations.
type GoalRepository interface {
	// Create persists a new savings goal.
	Create(ctx context.Context, goal *entity.SavingsGoal) error

	// Delete removes the goal with the given ID. Deleting a non-existent ID
	// is a silent no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// Contribute increments the goal's CurrentSaved by amount. Contributing
	// to a non-existent ID is a silent no-op. The repository performs no
	// sign check; callers validate amounts before reaching this layer.
	Contribute(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	// FindByID returns the goal with the given ID, or nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error)

	// FindAll returns all savings goals ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.SavingsGoal, error)
}
