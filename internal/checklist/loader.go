package checklist

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// InvalidError reports schema violations in a custom checklist file.
type InvalidError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	lines := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		lines = append(lines, "  - "+issue.String())
	}
	return fmt.Sprintf("checklist %s has %d validation issue(s):\n%s",
		e.Path, len(e.Issues), strings.Join(lines, "\n"))
}

// Parse validates data against the checklist schema and decodes it.
func Parse(source string, data []byte) (*Checklist, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating checklist %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Path: source, Issues: result.Issues}
	}

	var cl Checklist
	if err := yaml.Unmarshal(data, &cl); err != nil {
		return nil, fmt.Errorf("parsing checklist %s: %w", source, err)
	}
	if err := cl.Check(); err != nil {
		return nil, err
	}
	return &cl, nil
}

// LoadFile reads and parses a custom checklist file.
func LoadFile(path string) (*Checklist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading checklist %s: %w", path, err)
	}
	return Parse(path, data)
}
