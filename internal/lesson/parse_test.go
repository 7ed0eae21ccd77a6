package lesson

import (
	"errors"
	"strings"
	"testing"
)

const validDoc = `title: The Power Rule
format: v1.2.0
subject: calculus
rules:
  - name: Power Rule
    kind: derivative
    formula: d/dx c*x^n = c*n*x^(n-1)
    example:
      input: 3x^2
      expected: 6x
  - name: Momentum
    kind: product
    formula: p = m*v
    example:
      input: 4 * 2.5
      expected: "10"
misconceptions:
  - wrong_answer: 6x^2
    problem: d/dx 3x^2
    root_cause: Multiplied the coefficient but kept the exponent unchanged
    strategy: Walk through the two steps separately, multiply then reduce the exponent
hint_ladders:
  - problem: d/dx 3x^2
    answer: 6x
    levels:
      - kind: strategic
        text: What type of expression are you differentiating?
      - kind: conceptual
        text: What does the power rule say happens to the exponent?
      - kind: procedural
        text: Multiply the coefficient by the exponent first. What comes next?
      - kind: specific
        text: Check the exponent in your answer. Did it come down by one?
rubric:
  tiers:
    - name: full
      credit: 1.0
      criterion: Correct result with both power-rule steps shown
    - name: partial
      credit: 0.6
      criterion: One power-rule step correct, the other missing or wrong
    - name: limited
      credit: 0.3
      criterion: Recognizes the rule applies but cannot execute it
    - name: none
      credit: 0.0
      criterion: No relevant work
practice:
  - prompt: Differentiate 7x^4
  - prompt: Differentiate 2x + 9
`

func TestParse_ValidDocument(t *testing.T) {
	lsn, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lsn.Title != "The Power Rule" {
		t.Errorf("expected title 'The Power Rule', got %q", lsn.Title)
	}
	if lsn.Format != "v1.2.0" {
		t.Errorf("expected format v1.2.0, got %q", lsn.Format)
	}
	if len(lsn.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(lsn.Rules))
	}
	if lsn.Rules[0].Kind != KindDerivative {
		t.Errorf("expected derivative rule, got %q", lsn.Rules[0].Kind)
	}
	if lsn.Rules[1].Example.Expected != "10" {
		t.Errorf("expected product example answer '10', got %q", lsn.Rules[1].Example.Expected)
	}
	if len(lsn.HintLadders) != 1 || len(lsn.HintLadders[0].Levels) != 4 {
		t.Fatal("expected one ladder with four levels")
	}
	if len(lsn.Rubric.Tiers) != 4 {
		t.Fatalf("expected 4 rubric tiers, got %d", len(lsn.Rubric.Tiers))
	}
	if len(lsn.Practice) != 2 {
		t.Errorf("expected 2 practice problems, got %d", len(lsn.Practice))
	}
}

func TestParse_MissingSection(t *testing.T) {
	doc := `title: T
format: v1.0.0
rules: []
misconceptions: []
hint_ladders: []
practice: []
`
	lsn, err := Parse([]byte(doc))
	if lsn != nil {
		t.Fatal("expected nil lesson on malformed input")
	}
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
	if malformed.Section != "rubric" {
		t.Errorf("expected section 'rubric', got %q", malformed.Section)
	}
}

func TestParse_MisorderedSection(t *testing.T) {
	doc := `title: T
format: v1.0.0
misconceptions: []
rules: []
hint_ladders: []
rubric:
  tiers: []
practice: []
`
	_, err := Parse([]byte(doc))
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
	if malformed.Section != "rules" {
		t.Errorf("expected section 'rules', got %q", malformed.Section)
	}
	if !strings.Contains(malformed.Error(), "out of order") {
		t.Errorf("expected out-of-order message, got %q", malformed.Error())
	}
}

func TestParse_UnknownSection(t *testing.T) {
	doc := validDoc + "answers:\n  - \"42\"\n"
	_, err := Parse([]byte(doc))
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
	if malformed.Section != "answers" {
		t.Errorf("expected section 'answers', got %q", malformed.Section)
	}
}

func TestParse_DuplicateSection(t *testing.T) {
	doc := validDoc + "practice:\n  - prompt: again\n"
	_, err := Parse([]byte(doc))
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
	if malformed.Section != "practice" {
		t.Errorf("expected section 'practice', got %q", malformed.Section)
	}
}

func TestParseLenient_ToleratesMisorder(t *testing.T) {
	doc := `title: T
format: v1.0.0
misconceptions: []
rules: []
hint_ladders: []
rubric:
  tiers: []
practice: []
`
	lsn, err := ParseLenient([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lsn.Title != "T" {
		t.Errorf("expected title 'T', got %q", lsn.Title)
	}

	// Unknown sections are still rejected.
	_, err = ParseLenient([]byte(validDoc + "answers: []\n"))
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}

	// So are missing ones.
	_, err = ParseLenient([]byte("title: T\nformat: v1.0.0\n"))
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
}

func TestParse_TopLevelNotMapping(t *testing.T) {
	_, err := Parse([]byte("- just\n- a\n- list\n"))
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("title: [unclosed\n"))
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
}

func TestParse_WrongFieldType(t *testing.T) {
	doc := strings.Replace(validDoc, "credit: 1.0", "credit: high", 1)
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("expected error for non-numeric credit")
	}
}

func TestRender_RoundTrip(t *testing.T) {
	lsn, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out, err := Render(lsn)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	again, err := Parse(out)
	if err != nil {
		t.Fatalf("re-parse rendered output: %v", err)
	}
	if again.Title != lsn.Title {
		t.Errorf("title changed in round trip: %q vs %q", again.Title, lsn.Title)
	}
	if len(again.Rules) != len(lsn.Rules) {
		t.Errorf("rule count changed in round trip")
	}
	if len(again.HintLadders) != len(lsn.HintLadders) {
		t.Errorf("ladder count changed in round trip")
	}
}

func TestCheckFormat(t *testing.T) {
	cases := []struct {
		format string
		ok     bool
	}{
		{"v1.0.0", true},
		{"v1.2.0", true},
		{"v1", true},
		{"v2.0.0", false},
		{"1.0.0", false},
		{"", false},
		{"latest", false},
	}
	for _, tc := range cases {
		err := CheckFormat(tc.format)
		if tc.ok && err != nil {
			t.Errorf("CheckFormat(%q): unexpected error: %v", tc.format, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("CheckFormat(%q): expected error", tc.format)
		}
	}
}
