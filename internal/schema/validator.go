package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/todo-labs/todo/internal/task"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed store.schema.json
var schemaBytes []byte

const schemaURL = "store.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Result contains the outcome of validating a store file.
type Result struct {
	Valid  bool
	Tasks  int
	Issues []Issue
}

// Issue is a single problem found in the store.
type Issue struct {
	Path    string // Instance location (e.g., "/2/status")
	Message string
	Keyword string // Failing schema keyword, or "uniqueId"
}

func (i Issue) String() string {
	path := i.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s: %s", path, i.Message)
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks raw store bytes. A JSON syntax error is reported as an
// issue; the error return is reserved for schema compilation failures.
func Validate(data []byte) (*Result, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &Result{
			Issues: []Issue{{Message: fmt.Sprintf("invalid JSON: %v", err), Keyword: "syntax"}},
		}, nil
	}

	res := &Result{}
	if items, ok := inst.([]any); ok {
		res.Tasks = len(items)
	}

	if err := schema.Validate(inst); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		res.Issues = extractIssues(ve)
	}

	res.Issues = append(res.Issues, duplicateIDs(inst)...)
	res.Valid = len(res.Issues) == 0
	return res, nil
}

// ValidateFile reads a store file and validates it.
func ValidateFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Validate(data)
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	collectIssues(ve, &issues)

	if len(issues) == 0 {
		return []Issue{{Message: ve.Error()}}
	}
	return deduplicate(issues)
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword := ""
	msg := ""
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}

	// Container keywords carry no detail of their own.
	if keyword == "allOf" || keyword == "$ref" || keyword == "" {
		return
	}

	*issues = append(*issues, Issue{Path: path, Message: msg, Keyword: keyword})
}

func deduplicate(issues []Issue) []Issue {
	seen := make(map[string]bool)
	var result []Issue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}

// duplicateIDs reports every record whose id repeats an earlier one.
// JSON Schema cannot express uniqueness of a single property.
func duplicateIDs(inst any) []Issue {
	items, ok := inst.([]any)
	if !ok {
		return nil
	}

	var issues []Issue
	firstSeen := make(map[string]int)
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		num, ok := obj["id"].(json.Number)
		if !ok {
			continue
		}
		n, ok := task.WholeNumber(num)
		if !ok {
			continue
		}
		id := strconv.FormatInt(n, 10)
		if first, dup := firstSeen[id]; dup {
			issues = append(issues, Issue{
				Path:    "/" + strconv.Itoa(i) + "/id",
				Message: printer.Sprintf("id %s already used by record %d", id, first),
				Keyword: "uniqueId",
			})
			continue
		}
		firstSeen[id] = i
	}
	return issues
}
