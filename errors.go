// errors.go: structured error handling for xanthos table operations.
//
// This file provides structured error types using the go-errors library.
// Per SPEC_FULL.md §7, capacity exhaustion and absent/stale identifiers are
// never represented as error values — Insert/Write/Remove/Exists/With/Read
// all signal those outcomes with plain bool/zero-value returns. The error
// machinery here is reserved for the two genuinely exceptional situations:
// invalid construction-time configuration, and internal invariant
// violations that indicate a programmer bug rather than an expected
// outcome.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package xanthos

import (
	goerrors "errors"
	"fmt"

	"github.com/agilira/go-errors"
)

// Error codes for xanthos table operations.
const (
	// Configuration errors (1xxx)
	ErrCodeInvalidConfig    errors.ErrorCode = "XANTHOS_INVALID_CONFIG"
	ErrCodeInvalidCapacity  errors.ErrorCode = "XANTHOS_INVALID_CAPACITY"
	ErrCodeInvalidCollector errors.ErrorCode = "XANTHOS_INVALID_COLLECTOR"

	// Internal errors (5xxx) — programmer bugs, never expected outcomes.
	ErrCodeInternalError       errors.ErrorCode = "XANTHOS_INTERNAL_ERROR"
	ErrCodeInvariantViolation  errors.ErrorCode = "XANTHOS_INVARIANT_VIOLATION"
	ErrCodePanicRecovered      errors.ErrorCode = "XANTHOS_PANIC_RECOVERED"
)

// Common error messages.
const (
	msgInvalidCapacity    = "invalid capacity: must be positive"
	msgInvalidCollector   = "invalid collector: Pin/NewCell must not return nil"
	msgInternalError      = "internal table error"
	msgInvariantViolation = "table invariant violated"
	msgPanicRecovered     = "panic recovered in table operation"
)

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrInvalidCapacity creates an error for invalid requested capacity.
// Note: Config.Validate never actually returns this — it normalizes
// capacity instead of rejecting it (see SPEC_FULL.md §7). It exists for
// callers that want to validate a capacity value ahead of constructing a
// Config.
func NewErrInvalidCapacity(requested int) error {
	return errors.NewWithContext(ErrCodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"requested_capacity": requested,
		"minimum":            MinCapacity,
		"maximum":            MaxCapacity,
	})
}

// NewErrInvalidCollector creates an error for a Collector implementation
// that violates its documented contract (returning a nil Guard or Cell).
func NewErrInvalidCollector(reason string) error {
	return errors.NewWithField(ErrCodeInvalidCollector, msgInvalidCollector, "reason", reason)
}

// =============================================================================
// INTERNAL ERRORS
// =============================================================================

// NewErrInternal creates a generic internal error.
func NewErrInternal(operation string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeInternalError, msgInternalError).
			WithContext("operation", operation).
			WithSeverity("critical")
	}
	return errors.NewWithField(ErrCodeInternalError, msgInternalError, "operation", operation).
		WithSeverity("critical")
}

// NewErrInvariantViolation creates an error describing a broken internal
// invariant. The internal invariant helper (see invariant, below) builds
// its own panic payload directly rather than calling this constructor;
// it is exported for callers that want the same error shape, e.g. to
// demonstrate or test invariant-violation handling without triggering a
// real panic.
func NewErrInvariantViolation(operation string, detail string) error {
	return errors.NewWithContext(ErrCodeInvariantViolation, msgInvariantViolation, map[string]interface{}{
		"operation": operation,
		"detail":    detail,
	}).WithSeverity("critical")
}

// NewErrPanicRecovered creates an error when a panic is recovered.
func NewErrPanicRecovered(operation string, panicValue interface{}) error {
	return errors.NewWithContext(ErrCodePanicRecovered, msgPanicRecovered, map[string]interface{}{
		"operation":   operation,
		"panic_value": fmt.Sprintf("%v", panicValue),
	}).WithSeverity("critical")
}

// invariant panics with a structured, go-errors-backed error if cond is
// false. kv is a flat list of context key/value pairs, attached to the
// panic payload the same way WithContext attaches context to a returned
// error. Used at every point where the algorithm's correctness depends on
// a property that should be unconditionally true given a well-behaved
// Collector and no data race outside this package's control.
func invariant(cond bool, code errors.ErrorCode, msg string, kv ...interface{}) {
	if cond {
		return
	}
	ctx := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kv[i+1]
	}
	panic(errors.NewWithContext(code, msg, ctx).WithSeverity("critical"))
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsConfigError checks if error is a configuration error.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeInvalidCapacity || code == ErrCodeInvalidCollector || code == ErrCodeInvalidConfig
	}
	return false
}

// IsInternalError checks if error is an internal/invariant error.
func IsInternalError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeInternalError || code == ErrCodeInvariantViolation || code == ErrCodePanicRecovered
	}
	return false
}

// IsRetryable checks if the error can be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error.
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var xanthosErr *errors.Error
	if goerrors.As(err, &xanthosErr) {
		return xanthosErr.Context
	}
	return nil
}
