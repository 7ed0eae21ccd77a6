// Package report aggregates lint findings for a lesson document and
// renders them for the terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lessonlint/internal/lesson"
	"github.com/abhisek/lessonlint/internal/mathcheck"
	"github.com/abhisek/lessonlint/internal/ui/theme"
	"github.com/abhisek/lessonlint/internal/validate"
)

// Violation is one failed document invariant.
type Violation struct {
	Validator string `json:"validator"`
	Path      string `json:"path"`
	Message   string `json:"message"`
}

// ConsistencyFinding is one worked example whose recomputation disagrees
// with the claimed result.
type ConsistencyFinding struct {
	Rule     string `json:"rule"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// Report is the outcome of linting one lesson document.
type Report struct {
	LessonPath  string               `json:"lesson_path"`
	Title       string               `json:"title,omitempty"`
	Format      string               `json:"format,omitempty"`
	Violations  []Violation          `json:"violations"`
	Consistency []ConsistencyFinding `json:"consistency_errors"`
}

// New builds a Report from validator violations and math consistency errors.
// The lesson may be nil when only structural findings are available.
func New(path string, l *lesson.Lesson, vs []validate.Violation, ces []*mathcheck.ConsistencyError) *Report {
	r := &Report{
		LessonPath:  path,
		Violations:  []Violation{},
		Consistency: []ConsistencyFinding{},
	}
	if l != nil {
		r.Title = l.Title
		r.Format = l.Format
	}
	for _, v := range vs {
		r.Violations = append(r.Violations, Violation{
			Validator: v.Validator,
			Path:      v.Path,
			Message:   v.Message,
		})
	}
	for _, ce := range ces {
		r.Consistency = append(r.Consistency, ConsistencyFinding{
			Rule:     ce.Rule,
			Expected: ce.Expected,
			Actual:   ce.Actual,
		})
	}
	return r
}

// Clean reports whether the document passed every check.
func (r *Report) Clean() bool {
	return len(r.Violations) == 0 && len(r.Consistency) == 0
}

// IssueCount returns the total number of findings.
func (r *Report) IssueCount() int {
	return len(r.Violations) + len(r.Consistency)
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Summary returns a one-line verdict.
func (r *Report) Summary() string {
	if r.Clean() {
		return fmt.Sprintf("%s: ok", r.LessonPath)
	}
	return fmt.Sprintf("%s: %d issue(s)", r.LessonPath, r.IssueCount())
}

// Render returns the styled terminal report.
func (r *Report) Render() string {
	var b strings.Builder

	title := r.Title
	if title == "" {
		title = r.LessonPath
	}
	b.WriteString(theme.Title.Render(title))
	b.WriteString("  ")
	b.WriteString(theme.Path.Render(r.LessonPath))
	b.WriteString("\n")

	if r.Clean() {
		b.WriteString(theme.Pass.Render("✓ no issues found"))
		b.WriteString("\n")
		return b.String()
	}

	if len(r.Violations) > 0 {
		b.WriteString(theme.Section.Render(fmt.Sprintf("Violations (%d)", len(r.Violations))))
		b.WriteString("\n")
		for _, v := range r.Violations {
			b.WriteString("  ")
			b.WriteString(theme.Fail.Render("✗"))
			b.WriteString(" ")
			b.WriteString(theme.Dim.Render(fmt.Sprintf("[%s]", v.Validator)))
			b.WriteString(" ")
			b.WriteString(theme.Body.Render(v.Path + ": " + v.Message))
			b.WriteString("\n")
		}
	}

	if len(r.Consistency) > 0 {
		b.WriteString(theme.Section.Render(fmt.Sprintf("Math consistency (%d)", len(r.Consistency))))
		b.WriteString("\n")
		for _, c := range r.Consistency {
			b.WriteString("  ")
			b.WriteString(theme.Flag.Render("≠"))
			b.WriteString(" ")
			b.WriteString(theme.Body.Render(fmt.Sprintf(
				"rule %q: claims %q, recomputation gives %q", c.Rule, c.Expected, c.Actual)))
			b.WriteString("\n")
		}
	}

	b.WriteString(theme.Fail.Render(fmt.Sprintf("%d issue(s)", r.IssueCount())))
	b.WriteString("\n")
	return b.String()
}
