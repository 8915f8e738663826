package graph

import (
	"fmt"
	"log/slog"

	apperrors "github.com/harunnryd/skillref/internal/errors"
	"github.com/harunnryd/skillref/internal/skill/domain"
	"github.com/harunnryd/skillref/internal/skill/parser"
	"github.com/harunnryd/skillref/internal/skill/registry"
	"github.com/harunnryd/skillref/internal/skill/version"
)

const forceSuffix = " (ignored with --force)"

// CheckDependencies verifies that every dependency of meta is present under
// root and meets its minimum version. With force, missing dependencies and
// version mismatches become warnings; read failures stay errors.
func CheckDependencies(meta domain.SkillMetadata, root string, force bool) *domain.ValidationResult {
	result := domain.NewValidationResult()

	for _, dep := range meta.Requires() {
		entry, ok := registry.FindSkillByName(root, dep.Skill)
		if !ok {
			logFinding(dep.Skill, apperrors.Lookup(fmt.Sprintf("skill %q not under %s", dep.Skill, root)))
			if force {
				result.AddWarning("Required skill '%s' not found%s", dep.Skill, forceSuffix)
			} else {
				result.AddError("Required skill '%s' not found", dep.Skill)
			}
			continue
		}

		required, constrained := dep.Version.Get()
		if !constrained || required == "" {
			continue
		}

		depMeta, err := parser.LoadDescriptor(entry.Dir)
		if err != nil {
			logFinding(dep.Skill, err)
			result.AddError("Error reading '%s': %v", dep.Skill, err)
			continue
		}

		present, declared := depMeta.Version().Get()
		if !declared {
			logFinding(dep.Skill, apperrors.Format(fmt.Sprintf("%s has no metadata.version", dep.Skill)))
			result.AddWarning("Skill '%s' has no version in metadata, cannot verify >= %s", dep.Skill, required)
			continue
		}

		cmp := version.Satisfies(present, required)
		if cmp.Mode == version.ModeLexicographic {
			slog.Debug("Version compared lexicographically", "skill", dep.Skill, "present", present, "required", required)
		}
		if cmp.Satisfied {
			continue
		}

		logFinding(dep.Skill, apperrors.VersionMismatch(fmt.Sprintf("%s < %s", present, required)))
		if force {
			result.AddWarning("Skill '%s' version %s < required %s%s", dep.Skill, present, required, forceSuffix)
		} else {
			result.AddError("Skill '%s' version %s < required %s", dep.Skill, present, required)
		}
	}

	return result
}

func logFinding(skill string, err error) {
	slog.Debug("Dependency check finding", "skill", skill, "category", apperrors.Category(err), "error", err)
}
