// Package errors provides standardized error handling for the recommendation pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Intent extraction. These codes are recovered locally by falling back to
	// the deterministic strategy; they never reach an API response.
	ErrCodeExtractorUnavailable ErrorCode = "EXTRACTOR_UNAVAILABLE"
	ErrCodeExtractorTimeout     ErrorCode = "EXTRACTOR_TIMEOUT"
	ErrCodeExtractorMalformed   ErrorCode = "EXTRACTOR_RESPONSE_MALFORMED"

	// Request handling.
	ErrCodeRequestInvalid ErrorCode = "REQUEST_INVALID"

	// Pipeline.
	ErrCodePipelineFailure ErrorCode = "PIPELINE_FAILURE"

	// Stores.
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeFeedbackInvalid  ErrorCode = "FEEDBACK_INVALID"
)

// StandardError is a structured application error carrying a stable code.
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

// New creates a StandardError with the given code and message.
func New(code ErrorCode, message string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// Wrap creates a StandardError that records err as details.
func Wrap(code ErrorCode, message string, err error) *StandardError {
	se := New(code, message)
	if err != nil {
		se.Details = err.Error()
	}
	return se
}

// WithMetadata attaches a metadata map, replacing any existing one.
func (e *StandardError) WithMetadata(md map[string]interface{}) *StandardError {
	e.Metadata = md
	return e
}

// CodeOf extracts the ErrorCode from err, or PIPELINE_FAILURE if err is not
// a StandardError.
func CodeOf(err error) ErrorCode {
	if se, ok := err.(*StandardError); ok {
		return se.Code
	}
	return ErrCodePipelineFailure
}
