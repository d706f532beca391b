// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create persists a new expense record.
	Create(ctx context.Context, expense *entity.Expense) error

	// Delete removes the expense with the given ID. Deleting a non-existent
	// ID is a silent no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAll returns all expense records ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Expense, error)
}
