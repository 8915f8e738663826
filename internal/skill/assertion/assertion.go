// Package assertion checks a skill's textual output against declarative
// assertions.
package assertion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/harunnryd/skillref/internal/skill/domain"
)

type Result struct {
	Passed   bool
	Failures []string
	// Notices carry semantic_match criteria. They never affect Passed.
	Notices []string
}

// Evaluate runs every check and collects all failures.
func Evaluate(output string, a domain.Assertion) Result {
	var failures []string
	lower := strings.ToLower(output)

	for _, expected := range a.OutputContains {
		if !strings.Contains(lower, strings.ToLower(expected)) {
			failures = append(failures, fmt.Sprintf("output_contains: '%s' not found in output", expected))
		}
	}

	for _, forbidden := range a.OutputNotContains {
		if strings.Contains(lower, strings.ToLower(forbidden)) {
			failures = append(failures, fmt.Sprintf("output_not_contains: '%s' found in output", forbidden))
		}
	}

	for _, pattern := range a.OutputMatches {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			failures = append(failures, fmt.Sprintf("output_matches: invalid pattern '%s': %v", pattern, err))
			continue
		}
		if !re.MatchString(output) {
			failures = append(failures, fmt.Sprintf("output_matches: pattern '%s' not matched", pattern))
		}
	}

	var notices []string
	if a.SemanticMatch != nil {
		notices = append(notices, fmt.Sprintf("semantic_match requires LLM judge: '%s'", a.SemanticMatch.Criterion))
	}

	return Result{
		Passed:   len(failures) == 0,
		Failures: failures,
		Notices:  notices,
	}
}
