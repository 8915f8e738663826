// Package executor provides the callbacks that turn a test case input into
// skill output.
package executor

import (
	"context"
	"time"
)

// Executor produces output text for one test case input.
type Executor interface {
	Execute(ctx context.Context, skillDir, input string) (string, error)
}

// Skip is the "no executor configured" variant. Cases run against it are
// reported as skipped.
type Skip struct{}

func (Skip) Execute(context.Context, string, string) (string, error) {
	return "", ErrSkipped
}

// IsSkip reports whether e is the Skip variant.
func IsSkip(e Executor) bool {
	switch e.(type) {
	case nil, Skip, *Skip:
		return true
	}
	return false
}

// Func adapts a plain function to Executor.
type Func func(ctx context.Context, skillDir, input string) (string, error)

func (f Func) Execute(ctx context.Context, skillDir, input string) (string, error) {
	return f(ctx, skillDir, input)
}

type timeoutKey struct{}

// WithSkillTimeout attaches the skill's declared test timeout. Executors
// apply it when they have no explicit timeout of their own.
func WithSkillTimeout(ctx context.Context, d time.Duration) context.Context {
	return context.WithValue(ctx, timeoutKey{}, d)
}

func SkillTimeout(ctx context.Context) (time.Duration, bool) {
	d, ok := ctx.Value(timeoutKey{}).(time.Duration)
	return d, ok && d > 0
}

// withDeadline derives a context bounded by explicit, or by the skill
// timeout when explicit is zero.
func withDeadline(ctx context.Context, explicit time.Duration) (context.Context, context.CancelFunc) {
	d := explicit
	if d <= 0 {
		d, _ = SkillTimeout(ctx)
	}
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
