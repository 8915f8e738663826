package validator

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	apperrors "github.com/harunnryd/skillref/internal/errors"
	"github.com/harunnryd/skillref/internal/skill/domain"
	"github.com/harunnryd/skillref/internal/skill/graph"
	"github.com/harunnryd/skillref/internal/skill/parser"
)

type SkillValidator interface {
	Validate(ctx context.Context, skillDir string) *domain.ValidationResult
}

// Stage is one step of a validation run.
type Stage string

const (
	StageParse        Stage = "parse"
	StageName         Stage = "name"
	StageDependencies Stage = "dependencies"
	StageCycles       Stage = "cycles"
	StageTestFile     Stage = "test_file"
	StageDone         Stage = "done"
)

type DefaultSkillValidator struct {
	root  string
	force bool
}

// run is the state carried between stages of one Validate call.
type run struct {
	skillDir string
	meta     domain.SkillMetadata
	result   *domain.ValidationResult
}

// NewSkillValidator returns a validator resolving dependencies under root.
// force downgrades missing-dependency and version errors to warnings.
func NewSkillValidator(root string, force bool) SkillValidator {
	return &DefaultSkillValidator{root: root, force: force}
}

// Validate runs parse, name, dependency, cycle and test-file checks in that
// order. A parse failure ends the run; every later stage always runs.
func (v *DefaultSkillValidator) Validate(ctx context.Context, skillDir string) *domain.ValidationResult {
	r := &run{skillDir: skillDir, result: domain.NewValidationResult()}

	stage := StageParse
	for stage != StageDone {
		if err := ctx.Err(); err != nil {
			r.result.AddError("Validation cancelled: %v", err)
			return r.result
		}
		slog.Debug("Validation stage", "stage", stage, "skill", skillDir)
		stage = v.step(stage, r)
	}

	return r.result
}

func (v *DefaultSkillValidator) step(stage Stage, r *run) Stage {
	switch stage {
	case StageParse:
		meta, err := parser.LoadDescriptor(r.skillDir)
		if err != nil {
			r.result.AddError("Failed to parse SKILL.md: %v", err)
			return StageDone
		}
		r.meta = meta
		return StageName

	case StageName:
		if err := domain.ValidateSkillName(r.meta.Name()); err != nil {
			var ve *domain.SkillValidationError
			if errors.As(err, &ve) && ve.Code == domain.CodeInvalidFormat {
				r.result.AddWarning("%s", ve.Message)
			} else {
				r.result.AddWarning("Name '%s' should be lowercase with hyphens only", r.meta.Name())
			}
		}
		return StageDependencies

	case StageDependencies:
		r.result.Merge(graph.CheckDependencies(r.meta, v.root, v.force))
		return StageCycles

	case StageCycles:
		g, err := graph.Build(v.root)
		if err != nil {
			r.result.AddError("Failed to scan skills root: %v", err)
			return StageTestFile
		}
		cycles := g.CyclesFromAnyRoot()
		if !graph.Involves(cycles, r.meta.Name()) {
			return StageTestFile
		}
		for _, cycle := range cycles {
			if !slices.Contains(cycle, r.meta.Name()) {
				continue
			}
			chain := graph.FormatCycle(cycle)
			err := apperrors.Cycle(chain)
			slog.Debug("Cycle detected", "skill", r.meta.Name(), "category", apperrors.Category(err), "error", err)
			r.result.AddError("Circular dependency detected: %s", chain)
		}
		return StageTestFile

	case StageTestFile:
		if rel, ok := r.meta.TestCasesPath().Get(); ok {
			if _, err := os.Stat(filepath.Join(r.skillDir, rel)); err != nil {
				r.result.AddError("Test cases file not found: %s", rel)
			}
		}
		return StageDone
	}

	return StageDone
}
