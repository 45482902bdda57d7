package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeRateLimited    = "RATE_LIMITED"
	ErrCodeUpstreamQuota  = "UPSTREAM_QUOTA"
	ErrCodeUpstreamConfig = "UPSTREAM_CONFIG"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)

// Validation errors
var (
	ErrMessageRequired = NewDomainError(ErrCodeValidation, "Message is required and must be a non-empty string")
	ErrMessageTooLong  = NewDomainError(ErrCodeValidation, "Message is too long. Please keep it under 500 characters.")
)

// Rate limit errors
var (
	ErrTooManyRequests = NewDomainError(ErrCodeRateLimited, "Too many requests from this IP, please try again later.")
)

// Upstream provider errors
var (
	ErrProviderQuotaExhausted = NewDomainError(ErrCodeUpstreamQuota, "The chatbot is temporarily unavailable. Please contact Nate directly at ncmaffly@ucdavis.edu")
	ErrProviderMisconfigured  = NewDomainError(ErrCodeUpstreamConfig, "Configuration error. Please contact the site administrator.")
)
