package lesson

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Lesson is a parsed teaching-lesson document. It owns all child
// entities and is replaced as a unit on re-import.
type Lesson struct {
	Title          string            `yaml:"title"`
	Format         string            `yaml:"format"`
	Subject        string            `yaml:"subject,omitempty"`
	Rules          []Rule            `yaml:"rules"`
	Misconceptions []Misconception   `yaml:"misconceptions"`
	HintLadders    []HintLadder      `yaml:"hint_ladders"`
	Rubric         Rubric            `yaml:"rubric"`
	Practice       []PracticeProblem `yaml:"practice"`
}

// RuleKind selects which consistency check applies to a rule's worked example.
type RuleKind string

const (
	// KindDerivative marks rules whose worked example is a polynomial
	// differentiation (power/sum/constant rules).
	KindDerivative RuleKind = "derivative"

	// KindProduct marks rules whose worked example is a product of two
	// quantities, e.g. momentum p = m*v or force F = m*a.
	KindProduct RuleKind = "product"
)

// Rule is a named teaching rule with a symbolic formula and one worked example.
type Rule struct {
	Name    string   `yaml:"name"`
	Kind    RuleKind `yaml:"kind"`
	Formula string   `yaml:"formula"`
	Example Example  `yaml:"example"`
}

// Example is a worked example: an input expression and the answer the
// document claims for it.
type Example struct {
	Input    string `yaml:"input"`
	Expected string `yaml:"expected"`
}

// Misconception describes one known wrong answer and how to teach past it.
type Misconception struct {
	WrongAnswer string `yaml:"wrong_answer"`
	Problem     string `yaml:"problem"`
	RootCause   string `yaml:"root_cause"`
	Strategy    string `yaml:"strategy"`
}

// HintKind is the pedagogical register of a hint level.
type HintKind string

const (
	HintStrategic  HintKind = "strategic"  // problem type / overall approach
	HintConceptual HintKind = "conceptual" // governing principle
	HintProcedural HintKind = "procedural" // the next step
	HintSpecific   HintKind = "specific"   // the exact element to check
)

// LadderKinds returns the four hint kinds in escalation order.
func LadderKinds() [4]HintKind {
	return [4]HintKind{HintStrategic, HintConceptual, HintProcedural, HintSpecific}
}

// HintLevel is a single rung of a hint ladder.
type HintLevel struct {
	Kind HintKind `yaml:"kind"`
	Text string   `yaml:"text"`
}

// HintLadder is the four-level hint sequence for one problem. The final
// answer is stored so the leak check can compare against it; it is never
// part of any level's text.
type HintLadder struct {
	Problem string      `yaml:"problem"`
	Answer  string      `yaml:"answer"`
	Levels  []HintLevel `yaml:"levels"`
}

// TierName is one of the four fixed rubric credit levels.
type TierName string

const (
	TierFull    TierName = "full"
	TierPartial TierName = "partial"
	TierLimited TierName = "limited"
	TierNone    TierName = "none"
)

// TierNames returns the rubric tier names in descending-credit order.
func TierNames() [4]TierName {
	return [4]TierName{TierFull, TierPartial, TierLimited, TierNone}
}

// RubricTier is one credit level with its grading criterion.
type RubricTier struct {
	Name      TierName `yaml:"name"`
	Credit    float64  `yaml:"credit"`
	Criterion string   `yaml:"criterion"`
}

// Rubric is the four-tier grading rubric for a lesson.
type Rubric struct {
	Tiers []RubricTier `yaml:"tiers"`
}

// PracticeProblem is a prompt for the student. Answers are deliberately
// not stored in lesson documents.
type PracticeProblem struct {
	Prompt string `yaml:"prompt"`
}

// supportedFormatMajor is the document format major version this build
// understands. Minor/patch revisions within it are accepted.
const supportedFormatMajor = "v1"

// CheckFormat verifies that a document's format version is valid semver
// and within the supported major version.
func CheckFormat(format string) error {
	if format == "" {
		return fmt.Errorf("format version is empty")
	}
	if !semver.IsValid(format) {
		return fmt.Errorf("format %q is not a valid semantic version", format)
	}
	if semver.Major(format) != supportedFormatMajor {
		return fmt.Errorf("format %s is not supported (want %s.x)", format, supportedFormatMajor)
	}
	return nil
}
