package formatter

import (
	"fmt"
	"strings"

	"github.com/harunnryd/skillref/internal/skill/graph"
	"github.com/harunnryd/skillref/internal/skill/testrunner"
)

const rule = "========================================"

// TextFormatter renders plain console output.
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

func (f *TextFormatter) FormatValidation(v ValidationView) (string, error) {
	var b strings.Builder

	if len(v.Warnings) > 0 {
		b.WriteString("Warnings:\n")
		for _, w := range v.Warnings {
			fmt.Fprintf(&b, "  ⚠ %s\n", w)
		}
	}
	if len(v.Errors) > 0 {
		b.WriteString("Errors:\n")
		for _, e := range v.Errors {
			fmt.Fprintf(&b, "  ✗ %s\n", e)
		}
	}

	if v.Valid {
		fmt.Fprintf(&b, "\n✓ Skill '%s' is valid", v.Skill)
	} else {
		fmt.Fprintf(&b, "\n✗ Skill '%s' has validation errors", v.Skill)
	}
	return b.String(), nil
}

func (f *TextFormatter) FormatTestReport(r *testrunner.Report) (string, error) {
	if r.NoTests {
		return fmt.Sprintf("No tests defined for skill '%s'", r.Skill), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nRunning %d test(s) for '%s':\n\n", r.Total, r.Skill)

	for _, c := range r.Cases {
		desc := ""
		if c.Description != "" {
			desc = " - " + c.Description
		}
		fmt.Fprintf(&b, "  [%s]%s\n", c.Name, desc)

		for _, n := range c.Notices {
			fmt.Fprintf(&b, "    ⚠ %s\n", n)
		}

		if c.Status == testrunner.StatusFailed {
			b.WriteString("    ✗ FAILED\n")
			for _, e := range c.Failures {
				fmt.Fprintf(&b, "      - %s\n", e)
			}
			continue
		}
		b.WriteString("    ✓ PASSED\n")
	}

	fmt.Fprintf(&b, "\nResults: %d/%d passed", r.Passed, r.Total)
	return b.String(), nil
}

func (f *TextFormatter) FormatSkills(l Listing) (string, error) {
	var b strings.Builder
	writeWarnings(&b, l.Warnings)

	fmt.Fprintf(&b, "\nSkills in %s:\n%s", l.Root, rule)
	for _, s := range l.Skills {
		version := " (no version)"
		if s.Version != "" {
			version = "@" + s.Version
		}
		deps := ""
		if n := len(s.Requires); n > 0 {
			deps = fmt.Sprintf(", %d dep(s)", n)
		}
		fmt.Fprintf(&b, "\n  %s%s%s", s.Name, version, deps)
	}
	return b.String(), nil
}

func (f *TextFormatter) FormatGraph(l Listing) (string, error) {
	var b strings.Builder
	writeWarnings(&b, l.Warnings)

	fmt.Fprintf(&b, "\nDependency Graph:\n%s", rule)
	for _, s := range l.Skills {
		version := ""
		if s.Version != "" {
			version = "@" + s.Version
		}
		fmt.Fprintf(&b, "\n\n%s%s", s.Name, version)

		if len(s.Requires) == 0 {
			b.WriteString("\n  └── (no dependencies)")
			continue
		}
		for _, r := range s.Requires {
			fmt.Fprintf(&b, "\n  └── %s %s%s", presence(r.Present), r.Skill, constraint(r.Version))
		}
	}
	return b.String(), nil
}

func (f *TextFormatter) FormatCycles(c CycleView) (string, error) {
	var b strings.Builder
	writeWarnings(&b, c.Warnings)

	if len(c.Cycles) == 0 {
		b.WriteString("No circular dependencies found.")
		return b.String(), nil
	}

	b.WriteString("Circular dependencies detected:")
	for _, cycle := range c.Cycles {
		fmt.Fprintf(&b, "\n  %s", graph.FormatCycle(cycle))
	}
	return b.String(), nil
}

func writeWarnings(b *strings.Builder, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(b, "Warning: %s\n", w)
	}
}

func presence(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func constraint(version string) string {
	if version == "" {
		return ""
	}
	return fmt.Sprintf(" (>= %s)", version)
}
