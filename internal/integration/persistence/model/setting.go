// Package model defines database models for persistence layer.
package model

import (
	"github.com/shopspring/decimal"
)

// SettingModel represents the settings table in the database. It holds
// one row per key; today only the scalar savings goal target lives here.
type SettingModel struct {
	Key   string          `gorm:"type:varchar(50);primaryKey"`
	Value decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// SettingSavingsGoalTarget is the key under which the monthly savings
// goal target is stored.
const SettingSavingsGoalTarget = "savings_goal_target"

// TableName returns the table name for the SettingModel.
func (SettingModel) TableName() string {
	return "settings"
}
