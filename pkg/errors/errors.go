package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors
	ErrConfigRead   ErrorCode = "CONFIG_READ"
	ErrConfigDecode ErrorCode = "CONFIG_DECODE"
	ErrDocConsumed  ErrorCode = "DOCUMENT_CONSUMED"

	// Runtime errors
	ErrDeviceInit    ErrorCode = "DEVICE_INIT"
	ErrKeyUnknown    ErrorCode = "KEY_UNKNOWN"
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"
)

// GesticError represents a structured error with code and details
type GesticError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GesticError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GesticError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GesticError) Is(target error) bool {
	var targetErr *GesticError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GesticError with the given code and message
func New(code ErrorCode, message string) *GesticError {
	return &GesticError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GesticError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GesticError {
	return &GesticError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GesticError
func Wrap(err error, code ErrorCode, message string) *GesticError {
	if err == nil {
		return nil
	}
	return &GesticError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GesticError {
	if err == nil {
		return nil
	}
	return &GesticError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GesticError) WithDetail(key string, value interface{}) *GesticError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gerr *GesticError
	if errors.As(err, &gerr) {
		return gerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GesticError
func GetErrorCode(err error) ErrorCode {
	var gerr *GesticError
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return ErrUnknown
}
