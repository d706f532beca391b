// Package error defines domain-specific errors for the Budgetwise application.
package error

import "errors"

// Advice service errors. These are never surfaced to the user directly;
// the advice use case maps them to locally generated fallback messages.
var (
	// ErrAdviceRateLimited is returned when the external AI service rejects
	// the request with a rate limit (HTTP 429).
	ErrAdviceRateLimited = errors.New("advice service rate limited")

	// ErrAdviceQuotaExceeded is returned when the external AI service quota
	// is exhausted (HTTP 402).
	ErrAdviceQuotaExceeded = errors.New("advice service quota exceeded")

	// ErrAdviceUnavailable is returned for any other advice service failure.
	ErrAdviceUnavailable = errors.New("advice service unavailable")

	// ErrMissingAdviceMessage is returned when the chat message is empty.
	ErrMissingAdviceMessage = errors.New("missing advice message")
)

// AdviceErrorCode defines error codes for advice errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdviceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingAdviceMessage AdviceErrorCode = "ADV-010001"

	// External service errors (02XXXX)
	ErrCodeAdviceRateLimited   AdviceErrorCode = "ADV-020001"
	ErrCodeAdviceQuotaExceeded AdviceErrorCode = "ADV-020002"
	ErrCodeAdviceUnavailable   AdviceErrorCode = "ADV-020003"
)

// AdviceError represents an advice error with code and message.
type AdviceError struct {
	Code    AdviceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdviceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdviceError) Unwrap() error {
	return e.Err
}

// NewAdviceError creates a new AdviceError with the given code and message.
func NewAdviceError(code AdviceErrorCode, message string, err error) *AdviceError {
	return &AdviceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
