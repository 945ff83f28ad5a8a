package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies pipeline failures. The pipeline has no partial
// success mode: every one of these aborts the run.
type ErrorType string

const (
	// ErrTypeSourceUnavailable marks a reference file that is missing or a
	// remote fetch that failed (network, timeout, non-200, empty page).
	ErrTypeSourceUnavailable ErrorType = "SOURCE_UNAVAILABLE"
	// ErrTypeSchemaMismatch marks a reference table missing an expected
	// column or sheet.
	ErrTypeSchemaMismatch ErrorType = "SCHEMA_MISMATCH"
	// ErrTypeSampleSize marks an attempt to draw more unique items than a
	// population holds. Checked before drawing, never after.
	ErrTypeSampleSize ErrorType = "SAMPLE_SIZE"

	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeStorage    ErrorType = "STORAGE"
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeValidation ErrorType = "VALIDATION"
)

// AppError is the application error carrying a type, a human message,
// an optional cause and free-form context values.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair to the error and returns it.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error.
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err (or anything it wraps) is an AppError of
// the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// NewSourceUnavailableError creates a reference-source failure.
func NewSourceUnavailableError(message string, cause error) *AppError {
	return NewAppError(ErrTypeSourceUnavailable, message, cause)
}

// NewSchemaMismatchError creates a reference-schema failure.
func NewSchemaMismatchError(message string, cause error) *AppError {
	return NewAppError(ErrTypeSchemaMismatch, message, cause)
}

// NewSampleSizeError creates an over-draw failure for sampling without
// replacement.
func NewSampleSizeError(message string, requested, available int) *AppError {
	err := NewAppError(ErrTypeSampleSize, message, nil)
	err.Context["requested"] = requested
	err.Context["available"] = available
	return err
}

// NewParsingError creates a parsing-related error.
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error.
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}
