package testrunner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/harunnryd/skillref/internal/errors"
	"github.com/harunnryd/skillref/internal/executor"
	"github.com/harunnryd/skillref/internal/logger"
)

const cases = `cases:
  - name: answers
    description: Gives the number
    input: "six times seven"
    assertions:
      output_contains: ["42"]
      semantic_match:
        criterion: "is concise"
  - name: no_errors
    input: "say hi"
    assertions:
      output_not_contains: ["error"]
`

func writeSkill(t *testing.T, withTests bool) string {
	t.Helper()
	dir := t.TempDir()
	fm := "---\nname: calc\ndescription: d\n"
	if withTests {
		fm += "test:\n  cases: test/cases.yaml\n  config:\n    timeout: 5\n"
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "test"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "test", "cases.yaml"), []byte(cases), 0o644))
	}
	fm += "---\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(fm), 0o644))
	return dir
}

func TestRun_NoTestsDefined(t *testing.T) {
	report, err := NewRunner(executor.Skip{}).Run(context.Background(), writeSkill(t, false))
	require.NoError(t, err)

	assert.True(t, report.NoTests)
	assert.Equal(t, 0, report.Passed)
	assert.Equal(t, 0, report.Total)
	assert.True(t, report.Success())
	assert.Len(t, report.RunID, 26)
}

func TestRun_SkippedCountAsPassed(t *testing.T) {
	report, err := NewRunner(nil).Run(context.Background(), writeSkill(t, true))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Passed)
	for _, c := range report.Cases {
		assert.Equal(t, StatusSkipped, c.Status)
	}
	assert.True(t, report.Success())
}

func TestRun_PassAndFail(t *testing.T) {
	var seenDir string
	exec := executor.Func(func(ctx context.Context, dir, input string) (string, error) {
		seenDir = dir
		if _, ok := executor.SkillTimeout(ctx); !ok {
			t.Error("skill timeout should be attached to the context")
		}
		if input == "six times seven" {
			return "The answer is 42.", nil
		}
		return "an error occurred", nil
	})

	dir := writeSkill(t, true)
	report, err := NewRunner(exec).Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, seenDir)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 2, report.Total)
	assert.False(t, report.Success())

	require.Len(t, report.Cases, 2)
	assert.Equal(t, StatusPassed, report.Cases[0].Status)
	assert.Equal(t, "Gives the number", report.Cases[0].Description)
	assert.Len(t, report.Cases[0].Notices, 1)
	assert.Equal(t, StatusFailed, report.Cases[1].Status)
	assert.Equal(t, []string{"output_not_contains: 'error' found in output"}, report.Cases[1].Failures)
}

func TestRun_ExecutionError(t *testing.T) {
	exec := executor.Func(func(context.Context, string, string) (string, error) {
		return "", errors.New("agent crashed")
	})

	report, err := NewRunner(exec).Run(context.Background(), writeSkill(t, true))
	require.NoError(t, err)

	assert.Equal(t, 0, report.Passed)
	for _, c := range report.Cases {
		assert.Equal(t, StatusFailed, c.Status)
		assert.Equal(t, []string{"Execution error: agent crashed"}, c.Failures)
	}
}

func TestRun_KeepsRunID(t *testing.T) {
	ctx := logger.WithRunID(context.Background(), "01TESTRUNID")
	report, err := NewRunner(nil).Run(ctx, writeSkill(t, false))
	require.NoError(t, err)
	assert.Equal(t, "01TESTRUNID", report.RunID)
}

func TestRun_Errors(t *testing.T) {
	_, err := NewRunner(nil).Run(context.Background(), t.TempDir())
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	dir := t.TempDir()
	fm := "---\nname: calc\ndescription: d\ntest:\n  cases: missing.yaml\n---\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(fm), 0o644))
	_, err = NewRunner(nil).Run(context.Background(), dir)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewRunner(nil).Run(ctx, writeSkill(t, true))
	assert.True(t, errors.Is(err, apperrors.ErrExecution))
}
