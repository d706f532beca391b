// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Onboarding domain errors.
var (
	// ErrInvalidOnboardingSnapshot is returned when the onboarding snapshot
	// contains negative amounts or otherwise malformed entries.
	ErrInvalidOnboardingSnapshot = errors.New("invalid onboarding snapshot")
)

// OnboardingErrorCode defines error codes for onboarding errors.
// Format: ONB-XXYYYY where XX is category and YYYY is specific error.
type OnboardingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidOnboardingSnapshot OnboardingErrorCode = "ONB-010001"
)

// OnboardingError represents an onboarding error with code and message.
type OnboardingError struct {
	Code    OnboardingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OnboardingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OnboardingError) Unwrap() error {
	return e.Err
}

// NewOnboardingError creates a new OnboardingError with the given code and message.
func NewOnboardingError(code OnboardingErrorCode, message string, err error) *OnboardingError {
	return &OnboardingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
