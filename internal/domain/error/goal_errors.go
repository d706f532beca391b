// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Savings goal domain errors.
var (
	// ErrInvalidGoalName is returned when the goal name is empty or too long.
	ErrInvalidGoalName = errors.New("invalid goal name")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidMonthlyPercentage is returned when the percentage is outside (0, 100].
	ErrInvalidMonthlyPercentage = errors.New("invalid monthly percentage")

	// ErrNegativeContribution is returned when a contribution amount is negative.
	ErrNegativeContribution = errors.New("contribution amount must not be negative")

	// ErrInvalidSavingsTarget is returned when the legacy scalar savings target is negative.
	ErrInvalidSavingsTarget = errors.New("invalid savings target")

	// ErrMissingGoalFields is returned when required goal fields are absent.
	ErrMissingGoalFields = errors.New("missing goal fields")
)

// GoalErrorCode defines error codes for savings goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoalName          GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount      GoalErrorCode = "GOL-010002"
	ErrCodeInvalidMonthlyPercentage GoalErrorCode = "GOL-010003"
	ErrCodeNegativeContribution     GoalErrorCode = "GOL-010004"
	ErrCodeInvalidSavingsTarget     GoalErrorCode = "GOL-010005"
	ErrCodeMissingGoalFields        GoalErrorCode = "GOL-010006"
)

// GoalError represents a savings goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
