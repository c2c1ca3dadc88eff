package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"context deadline exceeded", context.DeadlineExceeded, true},
		{"context canceled", context.Canceled, true},
		{"out of range", ErrOutOfRange, false},
		{"resource exhausted", ErrResourceExhausted, false},
		{"timeout in message", fmt.Errorf("operation timeout occurred"), true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsTransient(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"resource exhausted", ErrResourceExhausted, true},
		{"out of memory", ErrOutOfMemory, true},
		{"invalid config", ErrInvalidConfig, true},
		{"out of range", ErrOutOfRange, false},
		{"fatal in message", fmt.Errorf("fatal allocator state"), true},
		{"wrapped exhausted", fmt.Errorf("grow: %w", ErrResourceExhausted), true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: ErrResourceExhausted}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"out of range", ErrOutOfRange, true},
		{"negative count", ErrNegativeCount, true},
		{"invalid capacity", ErrInvalidCapacity, true},
		{"invalid data", ErrInvalidData, true},
		{"resource exhausted", ErrResourceExhausted, false},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil error", nil, ErrorTransient},
		{"out of range", ErrOutOfRange, ErrorInvalid},
		{"resource exhausted", ErrResourceExhausted, ErrorFatal},
		{"unknown error", fmt.Errorf("unknown error"), ErrorTransient},
		{"classified error", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, ErrorFatal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Classify(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassifiedError(t *testing.T) {
	baseErr := fmt.Errorf("base error")
	ce := newClassified(ErrorInvalid, baseErr, "Cycle", "At", "custom message")

	if ce.Class != ErrorInvalid {
		t.Errorf("expected ErrorInvalid, got %v", ce.Class)
	}
	if ce.Component != "Cycle" {
		t.Errorf("expected Cycle, got %s", ce.Component)
	}
	if ce.Operation != "At" {
		t.Errorf("expected At, got %s", ce.Operation)
	}
	if ce.Error() != "custom message" {
		t.Errorf("expected 'custom message', got %s", ce.Error())
	}
	if !errors.Is(ce, baseErr) {
		t.Error("classified error should unwrap to base error")
	}
}

func TestClassifiedError_NoMessage(t *testing.T) {
	baseErr := fmt.Errorf("base error")
	ce := newClassified(ErrorTransient, baseErr, "Cycle", "Reserve", "")

	if ce.Error() != "base error" {
		t.Errorf("expected 'base error', got %s", ce.Error())
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "Cycle", "At", "bounds check") != nil {
		t.Error("wrapping nil should return nil")
	}

	result := Wrap(ErrOutOfRange, "Cycle", "At", "bounds check")
	expected := "Cycle.At: bounds check failed: index out of range"
	if result == nil || result.Error() != expected {
		t.Errorf("expected '%s', got '%v'", expected, result)
	}
	if !errors.Is(result, ErrOutOfRange) {
		t.Error("wrapped error should match the sentinel")
	}
}

func TestWrapClassified(t *testing.T) {
	baseErr := fmt.Errorf("original error")

	tests := []struct {
		name     string
		wrapFunc func(error, string, string, string) error
		class    ErrorClass
	}{
		{"WrapTransient", WrapTransient, ErrorTransient},
		{"WrapFatal", WrapFatal, ErrorFatal},
		{"WrapInvalid", WrapInvalid, ErrorInvalid},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.wrapFunc(nil, "component", "method", "action") != nil {
				t.Fatal("wrapping nil should return nil")
			}

			result := test.wrapFunc(baseErr, "component", "method", "action")

			var ce *ClassifiedError
			if !errors.As(result, &ce) {
				t.Fatal("result should be a ClassifiedError")
			}
			if ce.Class != test.class {
				t.Errorf("expected %v, got %v", test.class, ce.Class)
			}
			if ce.Component != "component" || ce.Operation != "method" {
				t.Errorf("unexpected context %s.%s", ce.Component, ce.Operation)
			}
			if !strings.Contains(ce.Error(), "component.method: action failed") {
				t.Errorf("error should contain standard format, got: %s", ce.Error())
			}
			if !errors.Is(result, baseErr) {
				t.Error("classified error should unwrap to the original")
			}
		})
	}
}

func TestStandardErrors(t *testing.T) {
	standardErrors := []error{
		ErrOutOfRange,
		ErrNegativeCount,
		ErrInvalidCapacity,
		ErrResourceExhausted,
		ErrOutOfMemory,
		ErrAlreadyStarted,
		ErrNotStarted,
		ErrInvalidConfig,
		ErrMissingConfig,
		ErrInvalidData,
	}

	for i, err := range standardErrors {
		if err == nil {
			t.Errorf("standard error at index %d is nil", i)
			continue
		}
		if err.Error() == "" {
			t.Errorf("standard error at index %d has empty message", i)
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	err := WrapInvalid(ErrOutOfRange, "Cycle", "At", "bounds check")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Classify(err)
	}
}
