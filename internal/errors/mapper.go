package errors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// Category returns the taxonomy name for an error, used as a structured log field.
func Category(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return "ErrNotFound"
	case errors.Is(err, ErrFormat):
		return "ErrFormat"
	case errors.Is(err, ErrLookup):
		return "ErrLookup"
	case errors.Is(err, ErrVersionMismatch):
		return "ErrVersionMismatch"
	case errors.Is(err, ErrCycle):
		return "ErrCycle"
	case errors.Is(err, ErrExecution):
		return "ErrExecution"
	case errors.Is(err, ErrInvalidInput):
		return "ErrInvalidInput"
	case errors.Is(err, ErrInternal):
		return "ErrInternal"
	default:
		return "Unknown"
	}
}

// FromFS maps filesystem errors into the taxonomy. Missing files become
// ErrNotFound; everything else keeps its original chain.
func FromFS(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", message, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsTimeout reports whether err came from an expired deadline.
func IsTimeout(err error) bool {
	return err != nil && errors.Is(err, context.DeadlineExceeded)
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", message, err)
}

// IsCategory checks if error belongs to specific category
func IsCategory(err error, category error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, category)
}

// Format wraps message as a format error
func Format(message string) error {
	return fmt.Errorf("%s: %w", message, ErrFormat)
}

// Lookup wraps message as a lookup failure
func Lookup(message string) error {
	return fmt.Errorf("%s: %w", message, ErrLookup)
}

// VersionMismatch wraps message as a version mismatch
func VersionMismatch(message string) error {
	return fmt.Errorf("%s: %w", message, ErrVersionMismatch)
}

// Cycle wraps message as a cycle error
func Cycle(message string) error {
	return fmt.Errorf("%s: %w", message, ErrCycle)
}

// Execution wraps err as an execution error, keeping the original chain.
func Execution(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrExecution, err)
}

// InvalidInput wraps message as invalid input
func InvalidInput(message string) error {
	return fmt.Errorf("%s: %w", message, ErrInvalidInput)
}

// Internal wraps message as internal
func Internal(message string) error {
	return fmt.Errorf("%s: %w", message, ErrInternal)
}
