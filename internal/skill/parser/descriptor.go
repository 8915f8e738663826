package parser

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/harunnryd/skillref/internal/errors"
	"github.com/harunnryd/skillref/internal/pathutil"
	"github.com/harunnryd/skillref/internal/skill/domain"
)

const frontmatterDelimiter = "---"

// frontmatter keeps the optional sections as raw nodes so scalars such as
// `version: 1.0` survive with their source spelling.
type frontmatter struct {
	Name        yaml.Node `yaml:"name"`
	Description yaml.Node `yaml:"description"`
	Metadata    yaml.Node `yaml:"metadata"`
	Requires    yaml.Node `yaml:"requires"`
	Test        yaml.Node `yaml:"test"`
}

// LoadDescriptor reads and parses <dir>/SKILL.md.
func LoadDescriptor(dir string) (domain.SkillMetadata, error) {
	path := filepath.Join(dir, pathutil.DescriptorFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SkillMetadata{}, apperrors.FromFS(err, fmt.Sprintf("SKILL.md in %s", dir))
	}
	return ParseDescriptor(string(data))
}

// ParseDescriptor extracts skill metadata from descriptor content. It has no
// side effects and returns identical records for identical input.
func ParseDescriptor(content string) (domain.SkillMetadata, error) {
	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return domain.SkillMetadata{}, &ParseError{
			Code:    CodeMissingFrontmatter,
			Message: "SKILL.md must start with YAML frontmatter (---)",
		}
	}

	parts := strings.SplitN(content, frontmatterDelimiter, 3)
	if len(parts) < 3 {
		return domain.SkillMetadata{}, &ParseError{
			Code:    CodeMissingFrontmatter,
			Message: "invalid frontmatter format",
		}
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return domain.SkillMetadata{}, &ParseError{
			Code:     CodeInvalidYAML,
			Message:  "invalid YAML frontmatter: " + err.Error(),
			Original: err,
		}
	}

	name, ok := scalar(&fm.Name)
	if !ok {
		return domain.SkillMetadata{}, missingField("name")
	}
	description, ok := scalar(&fm.Description)
	if !ok {
		return domain.SkillMetadata{}, missingField("description")
	}

	opts := []domain.MetadataOption{
		domain.WithRequires(parseRequires(&fm.Requires)...),
	}

	if v, ok := scalar(lookup(&fm.Metadata, "version")); ok {
		opts = append(opts, domain.WithVersion(domain.VersionOf(v)))
	}

	if cases, ok := scalar(lookup(&fm.Test, "cases")); ok && cases != "" {
		opts = append(opts, domain.WithTestCases(domain.PathOf(cases)))
	}

	opts = append(opts, domain.WithTestConfig(parseTestConfig(lookup(&fm.Test, "config"))))

	return domain.NewSkillMetadata(name, description, opts...), nil
}

// parseRequires keeps mapping entries only; anything else is skipped.
// Aliased entries resolve to their anchors.
func parseRequires(node *yaml.Node) []domain.Dependency {
	node = resolve(node)
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}

	deps := make([]domain.Dependency, 0, len(node.Content))
	for _, item := range node.Content {
		item = resolve(item)
		if item.Kind != yaml.MappingNode {
			continue
		}
		skill, _ := scalar(lookup(item, "skill"))
		dep := domain.Dependency{Skill: skill, Version: domain.NoVersion()}
		if v, ok := scalar(lookup(item, "version")); ok {
			dep.Version = domain.VersionOf(v)
		}
		deps = append(deps, dep)
	}
	return deps
}

// parseTestConfig never fails: values it cannot read keep their defaults.
func parseTestConfig(node *yaml.Node) domain.TestConfig {
	cfg := domain.DefaultTestConfig()
	node = resolve(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return cfg
	}

	if raw, ok := scalar(lookup(node, "timeout")); ok {
		if secs, err := strconv.Atoi(raw); err == nil && secs >= 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		} else {
			slog.Debug("Ignoring test.config.timeout", "value", raw, "default", cfg.Timeout)
		}
	}

	if raw, ok := scalar(lookup(node, "parallel")); ok {
		if parallel, ok := parseBool(raw); ok {
			cfg.Parallel = parallel
		} else {
			slog.Debug("Ignoring test.config.parallel", "value", raw, "default", cfg.Parallel)
		}
	}

	return cfg
}

// parseBool accepts YAML 1.1 spellings alongside strconv's.
func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "yes", "y", "on":
		return true, true
	case "no", "n", "off":
		return false, true
	}
	b, err := strconv.ParseBool(raw)
	return b, err == nil
}

func missingField(field string) error {
	return &ParseError{
		Code:    CodeMissingField,
		Message: fmt.Sprintf("missing required field '%s'", field),
	}
}

func lookup(node *yaml.Node, key string) *yaml.Node {
	node = resolve(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return resolve(node.Content[i+1])
		}
	}
	return nil
}

func scalar(node *yaml.Node) (string, bool) {
	node = resolve(node)
	if node == nil || node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return "", false
	}
	return node.Value, true
}

// resolve follows alias nodes to their anchored value.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}
