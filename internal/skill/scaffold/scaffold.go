// Package scaffold creates new skill directories from the descriptor and
// test case templates.
package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "github.com/harunnryd/skillref/internal/errors"
	"github.com/harunnryd/skillref/internal/pathutil"
	"github.com/harunnryd/skillref/internal/skill/registry"

	"github.com/natefinch/atomic"
)

const (
	TestDir   = "test"
	CasesFile = "cases.yaml"
)

type Options struct {
	// Overwrite replaces an existing SKILL.md instead of failing.
	Overwrite bool
	Lock      *LockConfig
}

type Result struct {
	SkillFile string
	CasesFile string
	// Populated lists the skills written into the requires block.
	Populated []registry.Entry
}

// Init scaffolds skillPath, pre-filling requires with every other parseable
// skill found under root.
func Init(ctx context.Context, skillPath, root string, opts Options) (*Result, error) {
	if strings.TrimSpace(skillPath) == "" {
		return nil, apperrors.InvalidInput("skill path is required")
	}

	if err := os.MkdirAll(skillPath, 0755); err != nil {
		return nil, apperrors.Wrap(err, "create skill directory")
	}

	lock, err := acquire(ctx, skillPath, opts.Lock)
	if err != nil {
		return nil, err
	}
	defer lock.release()

	skillFile := filepath.Join(skillPath, pathutil.DescriptorFile)
	if !opts.Overwrite {
		if _, err := os.Stat(skillFile); err == nil {
			return nil, apperrors.InvalidInput(fmt.Sprintf("%s already exists (use --force to overwrite)", skillFile))
		}
	}

	idx, err := registry.Scan(root)
	if err != nil {
		return nil, err
	}
	populated := idx.Without(skillPath)

	name := filepath.Base(filepath.Clean(skillPath))
	if err := atomic.WriteFile(skillFile, bytes.NewReader([]byte(RenderDescriptor(name, populated)))); err != nil {
		return nil, apperrors.Wrap(err, "write "+pathutil.DescriptorFile)
	}

	testDir := filepath.Join(skillPath, TestDir)
	if err := os.MkdirAll(testDir, 0755); err != nil {
		return nil, apperrors.Wrap(err, "create test directory")
	}
	casesFile := filepath.Join(testDir, CasesFile)
	if err := atomic.WriteFile(casesFile, bytes.NewReader([]byte(casesTemplate))); err != nil {
		return nil, apperrors.Wrap(err, "write test cases")
	}

	if !pathutil.Same(filepath.Dir(filepath.Clean(skillPath)), root) {
		slog.Warn("Skill created outside the skills root; registry scans will not find it", "path", skillPath, "root", root)
	}
	slog.Debug("Skill scaffolded", "path", skillPath, "populated", len(populated))

	return &Result{
		SkillFile: skillFile,
		CasesFile: casesFile,
		Populated: populated,
	}, nil
}

// RenderDescriptor returns the SKILL.md template for name with requires
// listing each entry and its version when one is declared.
func RenderDescriptor(name string, requires []registry.Entry) string {
	requiresBlock := ""
	if len(requires) > 0 {
		lines := []string{"requires:"}
		for _, e := range requires {
			lines = append(lines, "  - skill: "+e.Name())
			if v, ok := e.Metadata.Version().Get(); ok && v != "" {
				lines = append(lines, "    version: "+strconv.Quote(v))
			}
		}
		requiresBlock = "\n" + strings.Join(lines, "\n")
	}

	return fmt.Sprintf(descriptorTemplate, name, requiresBlock, name)
}

const descriptorTemplate = `---
name: %s
description: TODO - Describe what this skill does and when to use it.

metadata:
  version: "1.0.0"
%s
test:
  cases: test/cases.yaml
  config:
    timeout: 60
---

# %s

## Instructions

TODO - Add skill instructions here.

## Examples

TODO - Add examples here.
`

const casesTemplate = `cases:
  - name: basic_test
    description: TODO - Describe what this test verifies
    input: "TODO - The prompt to send"
    assertions:
      output_contains:
        - "expected text"
      output_not_contains:
        - "error"
`
