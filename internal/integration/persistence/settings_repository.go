// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetSavingsGoalTarget returns the stored savings target, or zero when unset.
func (r *settingsRepository) GetSavingsGoalTarget(ctx context.Context) (decimal.Decimal, error) {
	var settingModel model.SettingModel
	result := r.db.WithContext(ctx).
		Where("key = ?", model.SettingSavingsGoalTarget).
		First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, result.Error
	}
	return settingModel.Value, nil
}

// SetSavingsGoalTarget upserts the savings target row.
func (r *settingsRepository) SetSavingsGoalTarget(ctx context.Context, value decimal.Decimal) error {
	settingModel := model.SettingModel{
		Key:   model.SettingSavingsGoalTarget,
		Value: value,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&settingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
