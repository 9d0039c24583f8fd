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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Link errors
	ErrClobber  ErrorCode = "CLOBBER"
	ErrLinkType ErrorCode = "LINK_TYPE"
	ErrOsLink   ErrorCode = "OS_LINK"

	// Extraction errors
	ErrExtract    ErrorCode = "EXTRACT"
	ErrDestExists ErrorCode = "DEST_EXISTS"

	// Entry point and compilation errors
	ErrEntryPoint ErrorCode = "ENTRY_POINT"
	ErrCompile    ErrorCode = "COMPILE"

	// Registry errors
	ErrRegistryWrite ErrorCode = "REGISTRY_WRITE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// EmplaceError represents a structured error with code and details
type EmplaceError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EmplaceError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EmplaceError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EmplaceError) Is(target error) bool {
	var targetErr *EmplaceError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EmplaceError with the given code and message
func New(code ErrorCode, message string) *EmplaceError {
	return &EmplaceError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EmplaceError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EmplaceError {
	return &EmplaceError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EmplaceError
func Wrap(err error, code ErrorCode, message string) *EmplaceError {
	if err == nil {
		return nil
	}
	return &EmplaceError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EmplaceError {
	if err == nil {
		return nil
	}
	return &EmplaceError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EmplaceError) WithDetail(key string, value interface{}) *EmplaceError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var emplaceErr *EmplaceError
	if errors.As(err, &emplaceErr) {
		return emplaceErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EmplaceError
func GetErrorCode(err error) ErrorCode {
	var emplaceErr *EmplaceError
	if errors.As(err, &emplaceErr) {
		return emplaceErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an EmplaceError
func GetErrorDetails(err error) map[string]interface{} {
	var emplaceErr *EmplaceError
	if errors.As(err, &emplaceErr) {
		return emplaceErr.Details
	}
	return nil
}
