// Package budget contains the budget derivation use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// SetSavingsTargetInput represents the input for setting the legacy scalar target.
type SetSavingsTargetInput struct {
	Target decimal.Decimal
}

// SetSavingsTargetOutput represents the output of setting the target.
type SetSavingsTargetOutput struct {
	Target decimal.Decimal
}

// SetSavingsTargetUseCase updates the legacy scalar savings goal target.
type SetSavingsTargetUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewSetSavingsTargetUseCase creates a new SetSavingsTargetUseCase instance.
func NewSetSavingsTargetUseCase(settingsRepo adapter.SettingsRepository) *SetSavingsTargetUseCase {
	return &SetSavingsTargetUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute validates and stores the new target.
func (uc *SetSavingsTargetUseCase) Execute(ctx context.Context, input SetSavingsTargetInput) (*SetSavingsTargetOutput, error) {
	if input.Target.IsNegative() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidSavingsTarget,
			"savings target must not be negative",
			domainerror.ErrInvalidSavingsTarget,
		)
	}

	if err := uc.settingsRepo.SetSavingsGoalTarget(ctx, input.Target); err != nil {
		return nil, fmt.Errorf("failed to store savings target: %w", err)
	}

	return &SetSavingsTargetOutput{Target: input.Target}, nil
}
