package checklist

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "checklist.schema.json"

//go:embed schema/checklist.schema.json
var schemaJSON []byte

var issuePrinter = message.NewPrinter(language.English)

// ValidationResult is the outcome of checking a checklist document against
// the schema.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation.
type ValidationIssue struct {
	Path    string // JSON pointer into the document, "" for the root
	Message string
	Keyword string
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

var checklistSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("decoding checklist schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("registering checklist schema: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling checklist schema: %w", err)
	}
	return s, nil
})

// Validate checks raw checklist YAML against the embedded schema. Malformed
// YAML is returned as an error; schema violations are reported in the result.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := checklistSchema()
	if err != nil {
		return nil, err
	}

	inst, err := yamlToJSONValue(data)
	if err != nil {
		return nil, err
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating checklist: %w", err)
	}
	return &ValidationResult{Issues: issuesFrom(ve)}, nil
}

// yamlToJSONValue decodes YAML and re-reads it as JSON so numbers and maps
// have the types the schema validator expects.
func yamlToJSONValue(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding checklist as JSON: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
}

// issuesFrom flattens the error tree into its informative leaves, ordered by
// document path.
func issuesFrom(root *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	stack := []*jsonschema.ValidationError{root}
	for len(stack) > 0 {
		ve := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(ve.Causes) > 0 {
			stack = append(stack, ve.Causes...)
			continue
		}
		if issue, ok := leafIssue(ve); ok {
			issues = append(issues, issue)
		}
	}

	if len(issues) == 0 {
		return []ValidationIssue{{Message: root.Error()}}
	}

	slices.SortFunc(issues, func(a, b ValidationIssue) int {
		return strings.Compare(a.String()+"\x00"+a.Keyword, b.String()+"\x00"+b.Keyword)
	})
	return slices.Compact(issues)
}

func leafIssue(ve *jsonschema.ValidationError) (ValidationIssue, bool) {
	if ve.ErrorKind == nil {
		return ValidationIssue{}, false
	}
	kw := ve.ErrorKind.KeywordPath()
	if len(kw) == 0 {
		return ValidationIssue{}, false
	}
	keyword := kw[len(kw)-1]
	switch keyword {
	case "allOf", "anyOf", "$ref":
		return ValidationIssue{}, false
	}

	var path string
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	return ValidationIssue{
		Path:    path,
		Message: ve.ErrorKind.LocalizedString(issuePrinter),
		Keyword: keyword,
	}, true
}
