package parser

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	apperrors "github.com/harunnryd/skillref/internal/errors"
	"github.com/harunnryd/skillref/internal/skill/domain"
)

//go:embed schema/cases.schema.json
var embeddedSchemaFS embed.FS

const casesSchemaFile = "schema/cases.schema.json"

type casesDocument struct {
	Cases []caseEntry `json:"cases"`
}

type caseEntry struct {
	Name        string         `json:"name"`
	Input       string         `json:"input"`
	Description string         `json:"description"`
	Assertions  assertionEntry `json:"assertions"`
}

type assertionEntry struct {
	OutputContains    []string `json:"output_contains"`
	OutputNotContains []string `json:"output_not_contains"`
	OutputMatches     []string `json:"output_matches"`
	SemanticMatch     *struct {
		Criterion string `json:"criterion"`
	} `json:"semantic_match"`
}

// LoadTestCases reads the test-case document at relPath, resolved against
// the skill directory.
func LoadTestCases(skillDir, relPath string) ([]domain.TestCase, error) {
	full := filepath.Join(skillDir, relPath)
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, apperrors.FromFS(err, fmt.Sprintf("Test cases file not found: %s", full))
	}
	return ParseTestCases(data)
}

// ParseTestCases decodes a YAML test-case document and checks it against the
// embedded schema before building cases.
func ParseTestCases(data []byte) ([]domain.TestCase, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{
			Code:     CodeInvalidYAML,
			Message:  "invalid test cases YAML: " + err.Error(),
			Original: err,
		}
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, &ParseError{
			Code:     CodeInvalidYAML,
			Message:  "test cases document must use string keys",
			Original: err,
		}
	}

	if err := validateAgainstSchema(doc); err != nil {
		return nil, &ParseError{
			Code:     CodeSchemaViolation,
			Message:  err.Error(),
			Original: err,
		}
	}

	var parsed casesDocument
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, &ParseError{
			Code:     CodeInvalidField,
			Message:  "decode test cases: " + err.Error(),
			Original: err,
		}
	}

	cases := make([]domain.TestCase, 0, len(parsed.Cases))
	for _, c := range parsed.Cases {
		tc := domain.TestCase{
			Name:        c.Name,
			Input:       c.Input,
			Description: c.Description,
			Assertions: domain.Assertion{
				OutputContains:    c.Assertions.OutputContains,
				OutputNotContains: c.Assertions.OutputNotContains,
				OutputMatches:     c.Assertions.OutputMatches,
			},
		}
		if sm := c.Assertions.SemanticMatch; sm != nil {
			tc.Assertions.SemanticMatch = &domain.SemanticMatch{Criterion: sm.Criterion}
		}
		cases = append(cases, tc)
	}
	return cases, nil
}

func validateAgainstSchema(data []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile(casesSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", casesSchemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("test cases schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors("test cases schema validation failed", msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}
