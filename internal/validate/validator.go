package validate

import (
	"fmt"

	"github.com/abhisek/lessonlint/internal/lesson"
)

// Validator checks one family of lesson invariants.
// Implementations are stateless, never mutate the lesson, and are safe
// for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for report
	// lines), e.g. "structural", "hints", "rubric".
	Name() string

	// Validate returns every violation found. Empty slice = valid.
	Validate(l *lesson.Lesson) []Violation
}

// Violation describes one failed invariant.
type Violation struct {
	Validator string // which validator flagged it
	Path      string // where in the document, e.g. "misconceptions[1].strategy"
	Message   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Validator, v.Path, v.Message)
}

// All returns the standard validator set in report order.
func All() []Validator {
	return []Validator{
		&VersionValidator{},
		&StructuralValidator{},
		&HintValidator{},
		&RubricValidator{},
	}
}

// Run applies every standard validator and aggregates the violations.
// All validators run to completion so a single report covers the whole
// document.
func Run(l *lesson.Lesson) []Violation {
	var all []Violation
	for _, v := range All() {
		all = append(all, v.Validate(l)...)
	}
	return all
}
