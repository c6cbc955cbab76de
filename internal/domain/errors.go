package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyText indicates input that normalized to the empty string.
var ErrEmptyText = errors.New("text is empty after normalization")

// ValidationError reports a precondition failure on a single input.
// It is returned alongside a safe-default TriageResult, never raised bare.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// ItemError records one batch element's failure without affecting siblings.
type ItemError struct {
	Index   int    `json:"index"`
	Text    string `json:"text,omitempty"`
	Message string `json:"message"`

	cause error
}

// NewItemError wraps cause as a per-item batch error for the element at index.
func NewItemError(index int, text string, cause error) *ItemError {
	msg := "analysis failed"
	if cause != nil {
		msg = cause.Error()
	}
	return &ItemError{Index: index, Text: text, Message: msg, cause: cause}
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %s", e.Index, e.Message)
}

func (e *ItemError) Unwrap() error {
	return e.cause
}
