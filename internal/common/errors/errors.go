// Package errors provides standardized error handling for the tagging service.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeEmptyText      ErrorCode = "EMPTY_TEXT"
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	ErrCodeEngineUnavailable ErrorCode = "ENGINE_UNAVAILABLE"
	ErrCodeEngineFailure     ErrorCode = "ENGINE_FAILURE"
	ErrCodeEngineTimeout     ErrorCode = "ENGINE_TIMEOUT"
	ErrCodeModelLoadFailed   ErrorCode = "MODEL_LOAD_FAILED"

	ErrCodeNoProviderAvailable ErrorCode = "NO_PROVIDER_AVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewEmptyTextError creates a non-retryable client error for blank input.
func NewEmptyTextError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyText,
		Message:   "Empty text",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable client error for a malformed body.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Invalid request body",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEngineUnavailableError marks an engine that never loaded at startup.
func NewEngineUnavailableError(provider string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEngineUnavailable,
		Message:   "Tagging engine is not available",
		Details:   fmt.Sprintf("provider: %s", provider),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEngineFailureError creates a retryable error for an engine call that failed
// at request time. Retryable here means the orchestrator may fall through to the
// next tier, never that the same engine is re-invoked.
func NewEngineFailureError(provider string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEngineFailure,
		Message:   "Tagging engine call failed",
		Details:   fmt.Sprintf("provider: %s, error: %s", provider, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEngineTimeoutError creates a retryable error for an engine call that
// exceeded its configured deadline.
func NewEngineTimeoutError(provider string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEngineTimeout,
		Message:   "Tagging engine call timed out",
		Details:   fmt.Sprintf("provider: %s", provider),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelLoadFailedError records a startup load failure. Recovered, never fatal.
func NewModelLoadFailedError(provider, model string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelLoadFailed,
		Message:   "Model failed to load",
		Details:   fmt.Sprintf("provider: %s, model: %s, error: %s", provider, model, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoProviderAvailableError is the terminal error when every tier failed.
func NewNoProviderAvailableError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNoProviderAvailable,
		Message:   "No tagging provider available",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
