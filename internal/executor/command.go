package executor

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/shlex"
)

// InputPlaceholder in a runner command is replaced by the case input. When
// the command has no placeholder the input is written to stdin.
const InputPlaceholder = "{input}"

// CommandExecutor runs an external agent process once per test case, with
// the skill directory as its working directory.
type CommandExecutor struct {
	argv    []string
	timeout time.Duration
}

// NewCommandExecutor splits command with shell quoting rules. timeout of zero
// defers to the skill's declared test timeout.
func NewCommandExecutor(command string, timeout time.Duration) (*CommandExecutor, error) {
	argv, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parse runner command: %w", err)
	}
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	return &CommandExecutor{argv: argv, timeout: timeout}, nil
}

func (ce *CommandExecutor) Execute(ctx context.Context, skillDir, input string) (string, error) {
	ctx, cancel := withDeadline(ctx, ce.timeout)
	defer cancel()

	args := make([]string, 0, len(ce.argv)-1)
	usesPlaceholder := false
	for _, arg := range ce.argv[1:] {
		if strings.Contains(arg, InputPlaceholder) {
			usesPlaceholder = true
			arg = strings.ReplaceAll(arg, InputPlaceholder, input)
		}
		args = append(args, arg)
	}

	cmd := exec.CommandContext(ctx, ce.argv[0], args...)
	cmd.Dir = skillDir
	cmd.Env = append(os.Environ(), "SKILL_DIR="+skillDir)
	if !usesPlaceholder {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	slog.Debug("Runner command finished", "command", ce.argv[0], "dir", skillDir, "duration", time.Since(start), "error", err)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("command %s did not finish: %w", ce.argv[0], ctxErr)
		}
		return "", fmt.Errorf("command execution failed: %w, stderr: %s", err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
