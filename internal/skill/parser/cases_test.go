package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/harunnryd/skillref/internal/errors"
)

const casesDoc = `cases:
  - name: basic_test
    description: Checks the answer
    input: "What is six times seven?"
    assertions:
      output_contains:
        - "42"
      output_not_contains:
        - "error"
      output_matches:
        - "\\d+"
      semantic_match:
        criterion: "Answer is polite"
  - name: bare
    input: "hello"
`

func TestParseTestCases(t *testing.T) {
	cases, err := ParseTestCases([]byte(casesDoc))
	if err != nil {
		t.Fatalf("ParseTestCases() failed: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("len(cases) = %d, want 2", len(cases))
	}

	first := cases[0]
	if first.Name != "basic_test" || first.Description != "Checks the answer" {
		t.Errorf("first case = %+v", first)
	}
	if len(first.Assertions.OutputContains) != 1 || first.Assertions.OutputContains[0] != "42" {
		t.Errorf("OutputContains = %v", first.Assertions.OutputContains)
	}
	if len(first.Assertions.OutputMatches) != 1 || first.Assertions.OutputMatches[0] != `\d+` {
		t.Errorf("OutputMatches = %v", first.Assertions.OutputMatches)
	}
	if first.Assertions.SemanticMatch == nil || first.Assertions.SemanticMatch.Criterion != "Answer is polite" {
		t.Errorf("SemanticMatch = %+v", first.Assertions.SemanticMatch)
	}

	bare := cases[1]
	if bare.Assertions.SemanticMatch != nil || len(bare.Assertions.OutputContains) != 0 {
		t.Errorf("bare case should have empty assertions, got %+v", bare.Assertions)
	}
}

func TestParseTestCases_NoCases(t *testing.T) {
	cases, err := ParseTestCases([]byte("other: true\n"))
	if err != nil {
		t.Fatalf("ParseTestCases() failed: %v", err)
	}
	if len(cases) != 0 {
		t.Errorf("len(cases) = %d, want 0", len(cases))
	}
}

func TestParseTestCases_SchemaViolation(t *testing.T) {
	doc := `cases:
  - name: missing_input
  - input: "no name"
`
	_, err := ParseTestCases([]byte(doc))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Code != CodeSchemaViolation {
		t.Errorf("Code = %v, want %v", pe.Code, CodeSchemaViolation)
	}
	if !strings.Contains(pe.Message, "with 2 errors") {
		t.Errorf("Message should number both violations, got %q", pe.Message)
	}
	if !errors.Is(err, apperrors.ErrFormat) {
		t.Error("schema violation should match ErrFormat")
	}
}

func TestParseTestCases_InvalidYAML(t *testing.T) {
	_, err := ParseTestCases([]byte("cases: [unclosed"))
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Code != CodeInvalidYAML {
		t.Fatalf("expected INVALID_YAML, got %v", err)
	}
}

func TestLoadTestCases(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTestCases(dir, "test/cases.yaml")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("LoadTestCases(missing) = %v, want ErrNotFound", err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "test"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "test", "cases.yaml"), []byte(casesDoc), 0644); err != nil {
		t.Fatalf("write cases: %v", err)
	}

	cases, err := LoadTestCases(dir, "test/cases.yaml")
	if err != nil {
		t.Fatalf("LoadTestCases() failed: %v", err)
	}
	if len(cases) != 2 {
		t.Errorf("len(cases) = %d, want 2", len(cases))
	}
}
