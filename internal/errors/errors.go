package errors

import (
	"errors"
)

// Sentinel errors for the skills-ref error taxonomy
var (
	// ErrNotFound - descriptor or test-case file missing
	ErrNotFound = errors.New("not found")

	// ErrFormat - malformed frontmatter, YAML structure, or missing required keys
	ErrFormat = errors.New("format error")

	// ErrLookup - referenced dependency skill absent from the registry
	ErrLookup = errors.New("lookup failure")

	// ErrVersionMismatch - present version below the required minimum
	ErrVersionMismatch = errors.New("version mismatch")

	// ErrCycle - skill participates in a circular dependency chain
	ErrCycle = errors.New("circular dependency")

	// ErrExecution - execution callback failed during a test case
	ErrExecution = errors.New("execution error")

	// ErrInvalidInput - bad CLI arguments or configuration
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal - anything else
	ErrInternal = errors.New("internal error")
)
