package domain

import "time"

const (
	DefaultTestTimeout  = 60 * time.Second
	DefaultTestParallel = true
)

// Dependency is one entry of a skill's requires list. Version is the minimum
// version the requiring skill accepts.
type Dependency struct {
	Skill   string
	Version Version
}

// TestConfig is read into the model as declared. Parallel is never acted on.
type TestConfig struct {
	Timeout  time.Duration
	Parallel bool
}

func DefaultTestConfig() TestConfig {
	return TestConfig{
		Timeout:  DefaultTestTimeout,
		Parallel: DefaultTestParallel,
	}
}

// SkillMetadata is the parsed frontmatter of a skill descriptor. It is built
// once per command invocation and never mutated afterwards.
type SkillMetadata struct {
	name          string
	description   string
	version       Version
	requires      []Dependency
	testCasesPath OptionalPath
	testConfig    TestConfig
}

type MetadataOption func(*SkillMetadata)

func WithVersion(v Version) MetadataOption {
	return func(m *SkillMetadata) { m.version = v }
}

func WithRequires(deps ...Dependency) MetadataOption {
	return func(m *SkillMetadata) {
		m.requires = append(m.requires, deps...)
	}
}

func WithTestCases(p OptionalPath) MetadataOption {
	return func(m *SkillMetadata) { m.testCasesPath = p }
}

func WithTestConfig(cfg TestConfig) MetadataOption {
	return func(m *SkillMetadata) { m.testConfig = cfg }
}

func NewSkillMetadata(name, description string, opts ...MetadataOption) SkillMetadata {
	m := SkillMetadata{
		name:        name,
		description: description,
		testConfig:  DefaultTestConfig(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m SkillMetadata) Name() string { return m.name }
func (m SkillMetadata) Description() string { return m.description }
func (m SkillMetadata) Version() Version { return m.version }
func (m SkillMetadata) TestCasesPath() OptionalPath { return m.testCasesPath }
func (m SkillMetadata) TestConfig() TestConfig { return m.testConfig }

// Requires returns a copy of the dependency list in declaration order.
func (m SkillMetadata) Requires() []Dependency {
	if len(m.requires) == 0 {
		return nil
	}
	out := make([]Dependency, len(m.requires))
	copy(out, m.requires)
	return out
}

// RequiredNames lists dependency names verbatim, including names that do not
// resolve to any skill.
func (m SkillMetadata) RequiredNames() []string {
	names := make([]string, 0, len(m.requires))
	for _, dep := range m.requires {
		names = append(names, dep.Skill)
	}
	return names
}

type SemanticMatch struct {
	Criterion string
}

type Assertion struct {
	OutputContains    []string
	OutputNotContains []string
	OutputMatches     []string
	SemanticMatch     *SemanticMatch
}

type TestCase struct {
	Name        string
	Input       string
	Description string
	Assertions  Assertion
}
