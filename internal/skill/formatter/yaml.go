package formatter

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harunnryd/skillref/internal/skill/testrunner"
)

type YAMLFormatter struct{}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) FormatValidation(v ValidationView) (string, error) {
	return marshalYAML(v)
}

func (f *YAMLFormatter) FormatTestReport(r *testrunner.Report) (string, error) {
	if r == nil {
		return "null", nil
	}
	return marshalYAML(r)
}

func (f *YAMLFormatter) FormatSkills(l Listing) (string, error) {
	return marshalYAML(l)
}

func (f *YAMLFormatter) FormatGraph(l Listing) (string, error) {
	return marshalYAML(l)
}

func (f *YAMLFormatter) FormatCycles(c CycleView) (string, error) {
	return marshalYAML(c)
}

func marshalYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
