package formatter

import (
	"fmt"
	"strings"

	"github.com/harunnryd/skillref/internal/skill/graph"
	"github.com/harunnryd/skillref/internal/skill/testrunner"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

type TableFormatter struct {
	headerStyle  lipgloss.Style
	cellStyle    lipgloss.Style
	oddRowStyle  lipgloss.Style
	evenRowStyle lipgloss.Style
	borderStyle  lipgloss.Style
}

func NewTableFormatter() *TableFormatter {
	purple := lipgloss.Color("99")
	gray := lipgloss.Color("245")
	lightGray := lipgloss.Color("241")

	return &TableFormatter{
		headerStyle: lipgloss.NewStyle().
			Foreground(purple).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 1),
		cellStyle: lipgloss.NewStyle().
			Padding(0, 1),
		oddRowStyle: lipgloss.NewStyle().
			Foreground(gray).
			Padding(0, 1),
		evenRowStyle: lipgloss.NewStyle().
			Foreground(lightGray).
			Padding(0, 1),
		borderStyle: lipgloss.NewStyle().
			Foreground(purple),
	}
}

func (f *TableFormatter) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return f.headerStyle
			case row%2 == 0:
				return f.evenRowStyle
			default:
				return f.oddRowStyle
			}
		}).
		Headers(headers...)
}

func (f *TableFormatter) FormatValidation(v ValidationView) (string, error) {
	status := "valid"
	if !v.Valid {
		status = "invalid"
	}

	t := f.newTable("Level", "Message")
	for _, e := range v.Errors {
		t.Row("error", truncateString(e, 100))
	}
	for _, w := range v.Warnings {
		t.Row("warning", truncateString(w, 100))
	}

	summary := fmt.Sprintf("Skill '%s' is %s", v.Skill, status)
	if len(v.Errors)+len(v.Warnings) == 0 {
		return summary, nil
	}
	return t.String() + "\n" + summary, nil
}

func (f *TableFormatter) FormatTestReport(r *testrunner.Report) (string, error) {
	if r.NoTests {
		return fmt.Sprintf("No tests defined for skill '%s'", r.Skill), nil
	}

	t := f.newTable("Case", "Status", "Details")
	for _, c := range r.Cases {
		details := append(append([]string{}, c.Failures...), c.Notices...)
		t.Row(
			truncateString(c.Name, 30),
			strings.ToUpper(string(c.Status)),
			truncateString(strings.Join(details, "; "), 80),
		)
	}

	return fmt.Sprintf("%s\nResults: %d/%d passed (run %s)", t.String(), r.Passed, r.Total, r.RunID), nil
}

func (f *TableFormatter) FormatSkills(l Listing) (string, error) {
	if len(l.Skills) == 0 && len(l.Warnings) == 0 {
		return "No skills found", nil
	}

	t := f.newTable("Name", "Version", "Deps", "Directory")
	for _, s := range l.Skills {
		version := s.Version
		if version == "" {
			version = "-"
		}
		t.Row(truncateString(s.Name, 30), version, fmt.Sprintf("%d", len(s.Requires)), truncateString(s.Dir, 50))
	}
	return withWarnings(t.String(), l.Warnings), nil
}

func (f *TableFormatter) FormatGraph(l Listing) (string, error) {
	if len(l.Skills) == 0 && len(l.Warnings) == 0 {
		return "No skills found", nil
	}

	t := f.newTable("Skill", "Requires", "Minimum", "Present")
	for _, s := range l.Skills {
		if len(s.Requires) == 0 {
			t.Row(s.Name, "(none)", "", "")
			continue
		}
		for _, r := range s.Requires {
			t.Row(s.Name, r.Skill, r.Version, presence(r.Present))
		}
	}
	return withWarnings(t.String(), l.Warnings), nil
}

func (f *TableFormatter) FormatCycles(c CycleView) (string, error) {
	if len(c.Cycles) == 0 {
		return withWarnings("No circular dependencies found.", c.Warnings), nil
	}

	t := f.newTable("#", "Cycle")
	for i, cycle := range c.Cycles {
		t.Row(fmt.Sprintf("%d", i+1), graph.FormatCycle(cycle))
	}
	return withWarnings(t.String(), c.Warnings), nil
}

func withWarnings(out string, warnings []string) string {
	if len(warnings) == 0 {
		return out
	}
	var b strings.Builder
	writeWarnings(&b, warnings)
	return b.String() + out
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
