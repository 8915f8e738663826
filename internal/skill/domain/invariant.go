package domain

import (
	"fmt"
	"regexp"
)

var skillNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateSkillName checks the naming convention. Callers report a failure
// as a warning, not an error.
func ValidateSkillName(name string) error {
	if name == "" {
		return &SkillValidationError{
			Field:   "name",
			Message: "cannot be empty",
			Code:    CodeMissingField,
		}
	}

	if !skillNameRegex.MatchString(name) {
		return &SkillValidationError{
			Field:   "name",
			Message: fmt.Sprintf("Name '%s' should be lowercase with hyphens only", name),
			Code:    CodeInvalidFormat,
		}
	}

	return nil
}

// ValidationResult accumulates errors and warnings across checks. Once an
// error is added the result stays invalid.
type ValidationResult struct {
	errors   []string
	warnings []string
}

func NewValidationResult() *ValidationResult {
	return &ValidationResult{}
}

func (r *ValidationResult) AddError(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) AddWarning(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// Merge appends other's errors and warnings in order.
func (r *ValidationResult) Merge(other *ValidationResult) {
	if other == nil {
		return
	}
	r.errors = append(r.errors, other.errors...)
	r.warnings = append(r.warnings, other.warnings...)
}

func (r *ValidationResult) Valid() bool {
	return len(r.errors) == 0
}

func (r *ValidationResult) Errors() []string {
	return append([]string(nil), r.errors...)
}

func (r *ValidationResult) Warnings() []string {
	return append([]string(nil), r.warnings...)
}
