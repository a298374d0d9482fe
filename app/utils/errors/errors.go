package errors

import (
	"errors"
	"net/http"

	"signup-service/app/domain"
	"signup-service/app/utils/validator"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeSignupDisabled   ErrorCode = "SIGNUP_DISABLED"
	ErrCodeRateLimited      ErrorCode = "RATE_LIMITED"
	ErrCodeEmailTaken       ErrorCode = "EMAIL_TAKEN"
	ErrCodeIdentityError    ErrorCode = "IDENTITY_ERROR"
	ErrCodeProvisionError   ErrorCode = "PROVISION_ERROR"
	ErrCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// AppError maps a flow error to an HTTP status and a client-safe message.
// The cause keeps the upstream detail for logging; it is never serialized.
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return string(e.Code) + ": " + e.Message + " (caused by: " + e.Cause.Error() + ")"
	}
	return string(e.Code) + ": " + e.Message
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// FromError classifies a signup flow error. Upstream error text stays in the
// cause; clients only see the coarse message.
func FromError(err error) *AppError {
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		return &AppError{
			Code:       ErrCodeValidationFailed,
			Message:    vErr.Message,
			StatusCode: http.StatusBadRequest,
			Cause:      err,
		}
	}

	if errors.Is(err, domain.ErrSignupDisabled) {
		return &AppError{
			Code:       ErrCodeSignupDisabled,
			Message:    domain.ErrSignupDisabled.Error(),
			StatusCode: http.StatusForbidden,
			Cause:      err,
		}
	}

	if errors.Is(err, domain.ErrRateLimited) {
		return &AppError{
			Code:       ErrCodeRateLimited,
			Message:    domain.ErrRateLimited.Error(),
			StatusCode: http.StatusTooManyRequests,
			Cause:      err,
		}
	}

	if errors.Is(err, domain.ErrEmailTaken) {
		return &AppError{
			Code:       ErrCodeEmailTaken,
			Message:    domain.ErrEmailTaken.Error(),
			StatusCode: http.StatusBadRequest,
			Cause:      err,
		}
	}

	var pErr *domain.ProvisionError
	if errors.As(err, &pErr) {
		// Identity creation failures are the caller's fault (duplicate or
		// rejected credentials); anything later is ours.
		status := http.StatusInternalServerError
		code := ErrCodeProvisionError
		if pErr.Step == domain.StepIdentity {
			status = http.StatusBadRequest
			code = ErrCodeIdentityError
		}
		return &AppError{
			Code:       code,
			Message:    pErr.Message,
			StatusCode: status,
			Cause:      err,
		}
	}

	return &AppError{
		Code:       ErrCodeInternalError,
		Message:    domain.ErrInternal.Error(),
		StatusCode: http.StatusInternalServerError,
		Cause:      err,
	}
}
