package preview

import (
	"strings"
	"testing"

	"github.com/abhisek/lessonlint/internal/lesson"
)

func previewLesson() *lesson.Lesson {
	return &lesson.Lesson{
		Title:   "The Power Rule",
		Format:  "v1.0.0",
		Subject: "calculus",
		Rules: []lesson.Rule{
			{
				Name:    "Power Rule",
				Kind:    lesson.KindDerivative,
				Formula: "d/dx c*x^n = c*n*x^(n-1)",
				Example: lesson.Example{Input: "3x^2", Expected: "6x"},
			},
		},
		Misconceptions: []lesson.Misconception{
			{WrongAnswer: "6x^2", Problem: "d/dx 3x^2", RootCause: "kept the exponent", Strategy: "separate the steps"},
		},
		HintLadders: []lesson.HintLadder{
			{
				Problem: "d/dx 3x^2",
				Answer:  "6x",
				Levels: []lesson.HintLevel{
					{Kind: lesson.HintStrategic, Text: "What kind of expression is this?"},
					{Kind: lesson.HintConceptual, Text: "Recall what the power rule does."},
					{Kind: lesson.HintProcedural, Text: "Multiply coefficient by exponent."},
					{Kind: lesson.HintSpecific, Text: "Did the exponent drop by one?"},
				},
			},
		},
		Rubric: lesson.Rubric{
			Tiers: []lesson.RubricTier{
				{Name: lesson.TierFull, Credit: 1.0, Criterion: "all steps"},
				{Name: lesson.TierPartial, Credit: 0.6, Criterion: "one step"},
				{Name: lesson.TierLimited, Credit: 0.3, Criterion: "rule named"},
				{Name: lesson.TierNone, Credit: 0.0, Criterion: "nothing"},
			},
		},
		Practice: []lesson.PracticeProblem{
			{Prompt: "Differentiate 7x^4"},
			{Prompt: "Differentiate 5x^3 + 2x"},
		},
	}
}

func TestSectionLines_AllSectionsNonEmpty(t *testing.T) {
	l := previewLesson()
	for i := range sectionNames {
		lines := sectionLines(l, Section(i))
		if len(lines) == 0 {
			t.Errorf("section %s rendered no lines", sectionNames[i])
		}
	}
}

func TestSectionLines_Content(t *testing.T) {
	l := previewLesson()

	joined := strings.Join(sectionLines(l, SectionRules), "\n")
	if !strings.Contains(joined, "Power Rule") || !strings.Contains(joined, "3x^2 -> 6x") {
		t.Errorf("rules section missing content:\n%s", joined)
	}

	joined = strings.Join(sectionLines(l, SectionRubric), "\n")
	for _, want := range []string{"full", "none", "1.0", "0.0"} {
		if !strings.Contains(joined, want) {
			t.Errorf("rubric section missing %q:\n%s", want, joined)
		}
	}

	joined = strings.Join(sectionLines(l, SectionHints), "\n")
	if !strings.Contains(joined, "strategic") {
		t.Errorf("hints section missing level kinds:\n%s", joined)
	}
}

func TestFilterLines(t *testing.T) {
	lines := []string{"Differentiate 7x^4", "Differentiate 5x^3 + 2x", "something else"}

	got := filterLines(lines, "differentiate")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}

	if got := filterLines(lines, ""); len(got) != 3 {
		t.Errorf("empty query should keep all lines, got %d", len(got))
	}

	if got := filterLines(lines, "no match"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}
