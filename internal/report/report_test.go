package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/lessonlint/internal/lesson"
	"github.com/abhisek/lessonlint/internal/mathcheck"
	"github.com/abhisek/lessonlint/internal/validate"
)

func TestReport_Clean(t *testing.T) {
	r := New("l.yaml", &lesson.Lesson{Title: "T", Format: "v1.0.0"}, nil, nil)
	if !r.Clean() {
		t.Fatal("expected clean report")
	}
	if !strings.Contains(r.Summary(), "ok") {
		t.Errorf("unexpected summary: %q", r.Summary())
	}
	if !strings.Contains(r.Render(), "no issues") {
		t.Error("rendered report should state no issues")
	}
}

func TestReport_WithFindings(t *testing.T) {
	vs := []validate.Violation{
		{Validator: "hints", Path: "hint_ladders[0].levels", Message: "ladder has 3 levels, want exactly 4"},
	}
	ces := []*mathcheck.ConsistencyError{
		{Rule: "Power Rule", Expected: "6x^2", Actual: "6x"},
	}
	r := New("l.yaml", &lesson.Lesson{Title: "T"}, vs, ces)

	if r.Clean() {
		t.Fatal("expected dirty report")
	}
	if r.IssueCount() != 2 {
		t.Fatalf("expected 2 issues, got %d", r.IssueCount())
	}

	out := r.Render()
	for _, want := range []string{"hint_ladders[0].levels", "Power Rule", "6x^2", "2 issue(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}
}

func TestReport_JSON(t *testing.T) {
	r := New("l.yaml", nil, []validate.Violation{
		{Validator: "rubric", Path: "rubric.tiers", Message: "rubric has 2 tiers, want exactly 4"},
	}, nil)

	data, err := r.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round-trip: %v", err)
	}
	if len(decoded.Violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(decoded.Violations))
	}
	if decoded.Violations[0].Validator != "rubric" {
		t.Errorf("unexpected validator: %q", decoded.Violations[0].Validator)
	}
	// Empty consistency list must serialize as [], not null.
	if !strings.Contains(string(data), `"consistency_errors": []`) {
		t.Errorf("expected empty array in JSON, got: %s", data)
	}
}
