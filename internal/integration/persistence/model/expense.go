// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Category      string          `gorm:"type:varchar(20);not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Date          string          `gorm:"type:varchar(10);not null"`
	IsRecurring   bool            `gorm:"default:false"`
	IsLoanPayment bool            `gorm:"default:false;index"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:            m.ID,
		Category:      entity.ExpenseCategory(m.Category),
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.Date,
		IsRecurring:   m.IsRecurring,
		IsLoanPayment: m.IsLoanPayment,
		CreatedAt:     m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		Category:      string(expense.Category),
		Amount:        expense.Amount,
		Description:   expense.Description,
		Date:          expense.Date,
		IsRecurring:   expense.IsRecurring,
		IsLoanPayment: expense.IsLoanPayment,
		CreatedAt:     expense.CreatedAt,
	}
}
