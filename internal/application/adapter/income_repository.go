// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create persists a new income record.
	Create(ctx context.Context, income *entity.Income) error

	// Delete removes the income with the given ID. Deleting a non-existent
	// ID is a silent no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAll returns all income records ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Income, error)
}
