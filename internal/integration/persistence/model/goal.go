// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// GoalModel represents the savings_goals table in the database.
type GoalModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string          `gorm:"type:varchar(50);not null"`
	TargetAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlyPercentage float64         `gorm:"type:decimal(5,2);not null"`
	CurrentSaved      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "savings_goals"
}

// ToEntity converts a GoalModel to a domain SavingsGoal entity.
func (m *GoalModel) ToEntity() *entity.SavingsGoal {
	return &entity.SavingsGoal{
		ID:                m.ID,
		Name:              m.Name,
		TargetAmount:      m.TargetAmount,
		MonthlyPercentage: m.MonthlyPercentage,
		CurrentSaved:      m.CurrentSaved,
		CreatedAt:         m.CreatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain SavingsGoal entity.
func GoalFromEntity(goal *entity.SavingsGoal) *GoalModel {
	return &GoalModel{
		ID:                goal.ID,
		Name:              goal.Name,
		TargetAmount:      goal.TargetAmount,
		MonthlyPercentage: goal.MonthlyPercentage,
		CurrentSaved:      goal.CurrentSaved,
		CreatedAt:         goal.CreatedAt,
	}
}
