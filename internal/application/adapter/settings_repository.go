// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// SettingsRepository stores the small set of scalar user settings.
type SettingsRepository interface {
	// GetSavingsGoalTarget returns the legacy scalar savings target.
	// Returns zero when no target has been set yet.
	GetSavingsGoalTarget(ctx context.Context) (decimal.Decimal, error)

	// SetSavingsGoalTarget sets the legacy scalar savings target.
	SetSavingsGoalTarget(ctx context.Context, value decimal.Decimal) error
}
