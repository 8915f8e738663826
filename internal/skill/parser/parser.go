package parser

import (
	"fmt"

	apperrors "github.com/harunnryd/skillref/internal/errors"
)

type ParseError struct {
	Line     int
	Message  string
	Code     ParseErrorCode
	Original error
}

type ParseErrorCode string

const (
	CodeInvalidYAML        ParseErrorCode = "INVALID_YAML"
	CodeMissingFrontmatter ParseErrorCode = "MISSING_FRONTMATTER"
	CodeMissingField       ParseErrorCode = "MISSING_FIELD"
	CodeInvalidField       ParseErrorCode = "INVALID_FIELD"
	CodeSchemaViolation    ParseErrorCode = "SCHEMA_VIOLATION"
)

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return string(e.Code) + " at line " + fmt.Sprintf("%d", e.Line) + ": " + e.Message
	}
	return string(e.Code) + ": " + e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Original
}

// Is makes every ParseError match the format category.
func (e *ParseError) Is(target error) bool {
	return target == apperrors.ErrFormat
}
