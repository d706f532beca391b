// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the spending category of an expense.
type ExpenseCategory string

const (
	CategoryHousing        ExpenseCategory = "housing"
	CategoryFood           ExpenseCategory = "food"
	CategoryTransportation ExpenseCategory = "transportation"
	CategoryUtilities      ExpenseCategory = "utilities"
	CategoryHealthcare     ExpenseCategory = "healthcare"
	CategoryEntertainment  ExpenseCategory = "entertainment"
	CategoryShopping       ExpenseCategory = "shopping"
	CategoryOther          ExpenseCategory = "other"

	// CategorySavings is synthetic: it only appears in derived budget output
	// and is never a valid category for a stored expense.
	CategorySavings ExpenseCategory = "savings"
)

// ExpenseCategories lists the valid categories for stored expenses, in the
// fixed order used for deterministic iteration.
var ExpenseCategories = []ExpenseCategory{
	CategoryHousing,
	CategoryFood,
	CategoryTransportation,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEntertainment,
	CategoryShopping,
	CategoryOther,
}

// IsValidExpenseCategory reports whether c is a valid stored-expense category.
func IsValidExpenseCategory(c ExpenseCategory) bool {
	for _, valid := range ExpenseCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// Expense represents a single expense record in the Budgetwise system.
type Expense struct {
	ID            uuid.UUID
	Category      ExpenseCategory
	Amount        decimal.Decimal // Always non-negative
	Description   string
	Date          string // Calendar date in "2006-01-02" format
	IsRecurring   bool
	IsLoanPayment bool // Explicit EMI flag; replaces description sniffing
	CreatedAt     time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	category ExpenseCategory,
	amount decimal.Decimal,
	description string,
	date string,
	isRecurring bool,
	isLoanPayment bool,
) *Expense {
	return &Expense{
		ID:            uuid.New(),
		Category:      category,
		Amount:        amount,
		Description:   description,
		Date:          date,
		IsRecurring:   isRecurring,
		IsLoanPayment: isLoanPayment,
		CreatedAt:     time.Now().UTC(),
	}
}
