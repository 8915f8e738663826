package formatter

import (
	"encoding/json"

	"github.com/harunnryd/skillref/internal/skill/testrunner"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) FormatValidation(v ValidationView) (string, error) {
	return marshalJSON(v)
}

func (f *JSONFormatter) FormatTestReport(r *testrunner.Report) (string, error) {
	if r == nil {
		return "null", nil
	}
	return marshalJSON(r)
}

func (f *JSONFormatter) FormatSkills(l Listing) (string, error) {
	return marshalJSON(l)
}

func (f *JSONFormatter) FormatGraph(l Listing) (string, error) {
	return marshalJSON(l)
}

func (f *JSONFormatter) FormatCycles(c CycleView) (string, error) {
	if c.Cycles == nil {
		c.Cycles = [][]string{}
	}
	return marshalJSON(c)
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
