// Package testrunner executes a skill's declarative test cases and tallies
// the results.
package testrunner

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/harunnryd/skillref/internal/errors"
	"github.com/harunnryd/skillref/internal/executor"
	"github.com/harunnryd/skillref/internal/logger"
	"github.com/harunnryd/skillref/internal/skill/assertion"
	"github.com/harunnryd/skillref/internal/skill/parser"
)

type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

type CaseResult struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Status      Status        `json:"status" yaml:"status"`
	Failures    []string      `json:"failures,omitempty" yaml:"failures,omitempty"`
	Notices     []string      `json:"notices,omitempty" yaml:"notices,omitempty"`
	Duration    time.Duration `json:"duration" yaml:"duration"`
}

type Report struct {
	RunID  string       `json:"run_id" yaml:"run_id"`
	Skill  string       `json:"skill" yaml:"skill"`
	Cases  []CaseResult `json:"cases" yaml:"cases"`
	Passed int          `json:"passed" yaml:"passed"`
	Total  int          `json:"total" yaml:"total"`
	// NoTests is set when the skill declares no test cases file.
	NoTests bool `json:"no_tests,omitempty" yaml:"no_tests,omitempty"`
}

// Success is true when every case passed. A report with no cases succeeds.
func (r *Report) Success() bool {
	return r.Total == 0 || r.Passed == r.Total
}

type Runner struct {
	exec executor.Executor
}

// NewRunner returns a runner using e. A nil e behaves as executor.Skip.
func NewRunner(e executor.Executor) *Runner {
	if e == nil {
		e = executor.Skip{}
	}
	return &Runner{exec: e}
}

// Run parses the skill at skillDir and runs its test cases one at a time.
// Parse failures of the skill or its test cases document are returned.
func (r *Runner) Run(ctx context.Context, skillDir string) (*Report, error) {
	if logger.GetRunID(ctx) == "" {
		ctx = logger.WithRunID(ctx, logger.NewRunID())
	}
	log := logger.FromContext(ctx)

	meta, err := parser.LoadDescriptor(skillDir)
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: logger.GetRunID(ctx), Skill: meta.Name()}

	casesPath, ok := meta.TestCasesPath().Get()
	if !ok {
		report.NoTests = true
		log.Info("No tests defined", "skill", meta.Name())
		return report, nil
	}

	cases, err := parser.LoadTestCases(skillDir, casesPath)
	if err != nil {
		return nil, err
	}

	report.Total = len(cases)
	ctx = executor.WithSkillTimeout(ctx, meta.TestConfig().Timeout)
	skip := executor.IsSkip(r.exec)

	for _, tc := range cases {
		if err := ctx.Err(); err != nil {
			return report, apperrors.Execution(err)
		}

		result := CaseResult{Name: tc.Name, Description: tc.Description}
		start := time.Now()

		switch {
		case skip:
			result.Status = StatusSkipped
			result.Notices = []string{"No agent runner configured, skipping execution"}
		default:
			output, err := r.exec.Execute(ctx, skillDir, tc.Input)
			if err != nil {
				log.Warn("Test case execution failed", "skill", meta.Name(), "case", tc.Name, "timeout", apperrors.IsTimeout(err), "error", err)
				result.Status = StatusFailed
				result.Failures = []string{fmt.Sprintf("Execution error: %v", err)}
				break
			}

			eval := assertion.Evaluate(output, tc.Assertions)
			result.Failures = eval.Failures
			result.Notices = eval.Notices
			result.Status = StatusFailed
			if eval.Passed {
				result.Status = StatusPassed
			}
		}

		result.Duration = time.Since(start)
		// skipped cases count as passed
		if result.Status != StatusFailed {
			report.Passed++
		}
		log.Info("Test case finished", "skill", meta.Name(), "case", tc.Name, "status", result.Status, "duration", result.Duration)
		report.Cases = append(report.Cases, result)
	}

	log.Info("Test run finished", "skill", meta.Name(), "passed", report.Passed, "total", report.Total)
	return report, nil
}
