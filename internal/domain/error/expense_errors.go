// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrInvalidExpenseCategory is returned when the category is not part of the fixed set.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")

	// ErrInvalidExpenseAmount is returned when the amount is negative.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrMissingExpenseFields is returned when required expense fields are absent.
	ErrMissingExpenseFields = errors.New("missing expense fields")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseCategory ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010002"
	ErrCodeMissingExpenseFields   ExpenseErrorCode = "EXP-010003"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
