package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harunnryd/skillref/internal/skill/domain"
	"github.com/harunnryd/skillref/internal/skill/registry"
	"github.com/harunnryd/skillref/internal/skill/testrunner"
)

type OutputFormat string

const (
	OutputFormatText  OutputFormat = "text"
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

type Formatter interface {
	FormatValidation(ValidationView) (string, error)
	FormatTestReport(*testrunner.Report) (string, error)
	FormatSkills(Listing) (string, error)
	FormatGraph(Listing) (string, error)
	FormatCycles(CycleView) (string, error)
}

type FormatterFactory struct{}

func NewFormatterFactory() *FormatterFactory {
	return &FormatterFactory{}
}

func (f *FormatterFactory) Create(format OutputFormat) (Formatter, error) {
	switch format {
	case OutputFormatText:
		return NewTextFormatter(), nil
	case OutputFormatTable:
		return NewTableFormatter(), nil
	case OutputFormatJSON:
		return NewJSONFormatter(), nil
	case OutputFormatYAML:
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: text, table, json, yaml)", format)
	}
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case OutputFormatText, OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (supported: text, table, json, yaml)", s)
	}
}

type ValidationView struct {
	Skill    string   `json:"skill" yaml:"skill"`
	Valid    bool     `json:"valid" yaml:"valid"`
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

func NewValidationView(skill string, r *domain.ValidationResult) ValidationView {
	return ValidationView{
		Skill:    skill,
		Valid:    r.Valid(),
		Errors:   nonNil(r.Errors()),
		Warnings: nonNil(r.Warnings()),
	}
}

type RequirementView struct {
	Skill   string `json:"skill" yaml:"skill"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Present bool   `json:"present" yaml:"present"`
}

type SkillView struct {
	Name     string            `json:"name" yaml:"name"`
	Version  string            `json:"version,omitempty" yaml:"version,omitempty"`
	Dir      string            `json:"dir" yaml:"dir"`
	Requires []RequirementView `json:"requires" yaml:"requires"`
}

// Listing is the registry as shown by `deps`: skills sorted by name and one
// warning per unparseable skill directory.
type Listing struct {
	Root     string      `json:"root" yaml:"root"`
	Skills   []SkillView `json:"skills" yaml:"skills"`
	Warnings []string    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func NewListing(idx *registry.Index) Listing {
	l := Listing{Root: idx.Root(), Skills: []SkillView{}}
	seen := make(map[string]bool)

	for _, e := range idx.Entries() {
		if seen[e.Name()] {
			continue
		}
		seen[e.Name()] = true

		view := SkillView{Name: e.Name(), Dir: e.Dir, Requires: []RequirementView{}}
		if v, ok := e.Metadata.Version().Get(); ok {
			view.Version = v
		}
		for _, dep := range e.Metadata.Requires() {
			view.Requires = append(view.Requires, RequirementView{
				Skill:   dep.Skill,
				Version: dep.Version.String(),
				Present: idx.Has(dep.Skill),
			})
		}
		l.Skills = append(l.Skills, view)
	}

	sort.SliceStable(l.Skills, func(i, j int) bool {
		return l.Skills[i].Name < l.Skills[j].Name
	})

	for _, f := range idx.Failures() {
		l.Warnings = append(l.Warnings, fmt.Sprintf("Could not parse %s: %v", f.Path, f.Cause))
	}
	return l
}

type CycleView struct {
	Root     string     `json:"root" yaml:"root"`
	Unique   bool       `json:"unique" yaml:"unique"`
	Cycles   [][]string `json:"cycles" yaml:"cycles"`
	Warnings []string   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
