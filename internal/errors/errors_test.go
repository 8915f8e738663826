package errors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{FromFS(fs.ErrNotExist, "SKILL.md missing"), "ErrNotFound"},
		{Format("bad frontmatter"), "ErrFormat"},
		{Lookup("dep"), "ErrLookup"},
		{VersionMismatch("1.0.0 < 2.0.0"), "ErrVersionMismatch"},
		{Cycle("a -> b -> a"), "ErrCycle"},
		{Execution(errors.New("boom")), "ErrExecution"},
		{InvalidInput("flag"), "ErrInvalidInput"},
		{Internal("oops"), "ErrInternal"},
		{errors.New("plain"), "Unknown"},
	}

	for _, tt := range tests {
		if got := Category(tt.err); got != tt.want {
			t.Errorf("Category(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestFromFS(t *testing.T) {
	_, statErr := os.Stat("/definitely/not/here/SKILL.md")
	err := FromFS(statErr, "read descriptor")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("FromFS(not exist) should wrap ErrNotFound, got %v", err)
	}

	perm := fmt.Errorf("open: %w", fs.ErrPermission)
	err = FromFS(perm, "read descriptor")
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("permission error must not map to ErrNotFound")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("original chain should be kept, got %v", err)
	}

	if FromFS(nil, "x") != nil {
		t.Fatal("FromFS(nil) should be nil")
	}
}

func TestExecutionKeepsCause(t *testing.T) {
	cause := context.DeadlineExceeded
	err := Execution(cause)
	if !IsCategory(err, ErrExecution) {
		t.Fatalf("expected ErrExecution, got %v", err)
	}
	if !IsTimeout(err) {
		t.Fatalf("expected timeout to be detectable through wrapping")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
	if IsCategory(nil, ErrFormat) {
		t.Fatal("IsCategory(nil) should be false")
	}
}
