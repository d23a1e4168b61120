// Package errors provides standardized error handling for the request pipeline.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// ErrCodeInvalidInput is a caller mistake: required fields missing or malformed.
	// Surfaced as HTTP 400 with an explanatory, user-facing message.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrCodeParseError is raised when the request body cannot be decoded at all.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"

	// ErrCodeInternalFault is our mistake: an unexpected server-side failure.
	// Surfaced as HTTP 500 with a generic message; the detail stays in the logs.
	ErrCodeInternalFault ErrorCode = "INTERNAL_FAULT"

	// ErrCodeNotificationSendFailed marks a failed mail delivery. It never travels
	// in an HTTP response because delivery is decoupled from the response path.
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewInvalidInputError creates a non-retryable validation error. The message is
// shown to the user verbatim, so it must already be user-facing text.
func NewInvalidInputError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewParseError creates a non-retryable error for an undecodable request body.
func NewParseError(message string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeParseError,
		Message:   message,
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalFaultError creates an internal fault. The generic message goes to
// the caller; the wrapped error only ever appears in Details for logging.
func NewInternalFaultError(message string, err error) *StandardError {
	e := &StandardError{
		Code:      ErrCodeInternalFault,
		Message:   message,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

// NewNotificationSendFailedError creates a retryable notification delivery error.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps an error code to the status the API answers with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidInput, ErrCodeParseError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsUserError reports whether the error is the caller's mistake (as opposed to
// ours). Callers rely on this to keep "you made a mistake" and "we made a
// mistake" apart even though both travel in the same error envelope.
func IsUserError(code ErrorCode) bool {
	return HTTPStatus(code) == http.StatusBadRequest
}
