package estimator

import (
	"errors"
	"fmt"

	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// EstimateError represents a failure detected while estimating a
// pattern's truth value.
//
// Two categories are produced:
//   - Degenerate input: empty pattern, zero database size
//   - Collaborator failure: a knowledge-base or partitioner call failed
//     or returned an out-of-contract value
//
// Name-pool exhaustion is a third failure kind callers may encounter;
// it surfaces as the canonicalizer's *pattern.CapacityError and is
// recognized by IsCapacityExceeded.
//
// None of these are retried internally: they indicate malformed input
// or a broken dependency, not a transient condition. Callers should
// treat any of them as "estimate unavailable for this pattern".
type EstimateError struct {
	// Code identifies the error category.
	Code EstimateErrorCode

	// Message is a human-readable description.
	Message string

	// Pattern is the rendering of the offending pattern, when known.
	Pattern string

	// Err is the underlying error, if any.
	Err error
}

// EstimateErrorCode categorizes estimation errors.
type EstimateErrorCode string

const (
	// ErrCodeDegenerateInput indicates an input the algorithm cannot
	// operate on (empty pattern, zero database size).
	ErrCodeDegenerateInput EstimateErrorCode = "DEGENERATE_INPUT"

	// ErrCodeCollaboratorFailure indicates an external interface call
	// failed or returned an out-of-contract value.
	ErrCodeCollaboratorFailure EstimateErrorCode = "COLLABORATOR_FAILURE"
)

// Error implements the error interface.
func (e *EstimateError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("%s: %s (pattern=%s)", e.Code, e.Message, e.Pattern)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *EstimateError) Unwrap() error {
	return e.Err
}

// IsDegenerateInput returns true if the error is a degenerate-input error.
// Uses errors.As to handle wrapped errors.
func IsDegenerateInput(err error) bool {
	var ee *EstimateError
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeDegenerateInput
	}
	return false
}

// IsCapacityExceeded returns true if the error is (or wraps) the
// canonicalizer's pattern.CapacityError.
func IsCapacityExceeded(err error) bool {
	var ce *pattern.CapacityError
	return errors.As(err, &ce)
}

// IsCollaboratorFailure returns true if the error is a collaborator failure.
func IsCollaboratorFailure(err error) bool {
	var ee *EstimateError
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeCollaboratorFailure
	}
	return false
}

// NewDegenerateInputError creates an EstimateError for inputs the
// algorithm cannot operate on.
func NewDegenerateInputError(message string, p pattern.Pattern) *EstimateError {
	return &EstimateError{
		Code:    ErrCodeDegenerateInput,
		Message: message,
		Pattern: p.String(),
	}
}

// NewCollaboratorError wraps a failed or out-of-contract collaborator
// call. The operation name identifies which interface misbehaved.
func NewCollaboratorError(operation string, err error) *EstimateError {
	return &EstimateError{
		Code:    ErrCodeCollaboratorFailure,
		Message: fmt.Sprintf("%s failed", operation),
		Err:     err,
	}
}
