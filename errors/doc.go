// Package errors provides standardized error handling for the cpplabs containers.
//
// # Overview
//
// Errors fall into three classes: Transient (may succeed if repeated), Invalid
// (bad argument, do not retry) and Fatal (the caller should stop, for example
// when an allocation strategy refuses to hand out more memory).
//
// The classification works with errors.Is, errors.As and wrapping chains.
//
// # Error Wrapping Pattern
//
// All wrapping follows the format:
//
//	"component.method: action failed: %w"
//
// Three wrappers attach a class:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// # Standard Error Variables
//
//   - Container access: ErrOutOfRange, ErrNegativeCount, ErrInvalidCapacity
//   - Allocation: ErrResourceExhausted, ErrOutOfMemory
//   - Server lifecycle: ErrAlreadyStarted, ErrNotStarted
//   - Configuration: ErrInvalidConfig, ErrMissingConfig, ErrInvalidData
//
// A checked accessor reports a bad index like this:
//
//	if i < 0 || i >= c.Len() {
//	    return zero, errors.WrapInvalid(errors.ErrOutOfRange, "Cycle", "At", "bounds check")
//	}
//
// and callers test for it without string matching:
//
//	if errors.IsInvalid(err) {
//	    // caller bug, not worth retrying
//	}
//
// # Thread Safety
//
// Error variables are immutable. A ClassifiedError is safe to share across
// goroutines after creation.
package errors
