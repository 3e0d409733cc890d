package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_ValidStore(t *testing.T) {
	data := []byte(`[
  {"id": 1, "title": "Buy milk", "description": "", "status": "pending", "created_at": "2024-01-01T00:00:00.000000+00:00"},
  {"id": 2, "title": "Read book", "status": "done", "created_at": "2024-01-02T00:00:00.000000+00:00"}
]`)

	res, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !res.Valid {
		t.Errorf("expected valid, got issues: %v", res.Issues)
	}
	if res.Tasks != 2 {
		t.Errorf("Tasks = %d, want 2", res.Tasks)
	}
}

func TestValidate_WholeNumberIDs(t *testing.T) {
	data := []byte(`[
  {"id": 1.0, "title": "a", "status": "pending", "created_at": "x"},
  {"id": 2e0, "title": "b", "status": "done", "created_at": "x"}
]`)
	res, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !res.Valid {
		t.Errorf("expected valid, got issues: %v", res.Issues)
	}
}

func TestValidate_EmptyArray(t *testing.T) {
	res, err := Validate([]byte(`[]`))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !res.Valid || res.Tasks != 0 {
		t.Errorf("expected valid empty store, got %+v", res)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		keyword string
		path    string
	}{
		{"not json", `{oops`, "syntax", ""},
		{"object root", `{"id": 1}`, "type", ""},
		{"missing title", `[{"id": 1, "status": "pending", "created_at": "x"}]`, "required", "/0"},
		{"string id", `[{"id": "1", "title": "t", "status": "pending", "created_at": "x"}]`, "type", "/0/id"},
		{"zero id", `[{"id": 0, "title": "t", "status": "pending", "created_at": "x"}]`, "minimum", "/0/id"},
		{"bad status", `[{"id": 1, "title": "t", "status": "later", "created_at": "x"}]`, "enum", "/0/status"},
		{"duplicate id", `[
			{"id": 1, "title": "a", "status": "pending", "created_at": "x"},
			{"id": 1, "title": "b", "status": "pending", "created_at": "x"}
		]`, "uniqueId", "/1/id"},
		{"duplicate id in other notation", `[
			{"id": 1.0, "title": "a", "status": "pending", "created_at": "x"},
			{"id": 1e0, "title": "b", "status": "pending", "created_at": "x"}
		]`, "uniqueId", "/1/id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if res.Valid {
				t.Fatal("expected invalid result")
			}
			found := false
			for _, issue := range res.Issues {
				if issue.Keyword == tt.keyword && issue.Path == tt.path {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no issue with keyword %q at %q in %v", tt.keyword, tt.path, res.Issues)
			}
		})
	}
}

func TestValidate_ReportsEveryRecord(t *testing.T) {
	data := []byte(`[
		{"id": 1, "title": "ok", "status": "pending", "created_at": "x"},
		{"id": 2, "title": 5, "status": "pending", "created_at": "x"},
		{"id": 3, "title": "t", "status": "nope", "created_at": "x"}
	]`)
	res, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	paths := map[string]bool{}
	for _, issue := range res.Issues {
		paths[issue.Path] = true
	}
	for _, want := range []string{"/1/title", "/2/status"} {
		if !paths[want] {
			t.Errorf("missing issue at %s in %v", want, res.Issues)
		}
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	os.WriteFile(path, []byte(`[{"id": 1, "title": "t", "status": "done", "created_at": "x"}]`), 0644)

	res, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !res.Valid {
		t.Errorf("expected valid, got %v", res.Issues)
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestIssueString(t *testing.T) {
	got := Issue{Path: "/0/id", Message: "bad"}.String()
	if got != "/0/id: bad" {
		t.Errorf("String() = %q", got)
	}
	if root := (Issue{Message: "bad"}).String(); !strings.HasPrefix(root, "/:") {
		t.Errorf("root issue String() = %q", root)
	}
}
