package mathcheck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/lessonlint/internal/lesson"
)

// ConsistencyError reports a worked example whose claimed answer does
// not match the recomputed one. Terminal for the document; there is no
// transient failure mode to retry.
type ConsistencyError struct {
	Rule     string
	Expected string // what the document claims
	Actual   string // what recomputation produced
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("rule %q: worked example claims %q but recomputation gives %q",
		e.Rule, e.Expected, e.Actual)
}

// productRe extracts "a * b" (or "a × b") from a product example input.
var productRe = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*[*×]\s*(-?\d+(?:\.\d+)?)`)

// CheckLesson recomputes every rule's worked example and collects all
// mismatches. Examples that are not computable (empty, or not in a form
// the checker understands) pass through silently.
func CheckLesson(l *lesson.Lesson) []*ConsistencyError {
	var errs []*ConsistencyError
	for _, r := range l.Rules {
		if err := CheckRule(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// CheckRule verifies a single rule's worked example against the rule it
// states. Returns nil when the example checks out or is not computable.
func CheckRule(r lesson.Rule) *ConsistencyError {
	if r.Example.Input == "" || r.Example.Expected == "" {
		return nil
	}

	switch r.Kind {
	case lesson.KindDerivative:
		return checkDerivative(r)
	case lesson.KindProduct:
		return checkProduct(r)
	default:
		return nil
	}
}

func checkDerivative(r lesson.Rule) *ConsistencyError {
	input, err := ParsePolynomial(r.Example.Input)
	if err != nil {
		// Not a polynomial the checker can differentiate.
		return nil
	}
	claimed, err := ParsePolynomial(r.Example.Expected)
	if err != nil {
		return nil
	}

	actual := input.Derivative()
	if !actual.Equal(claimed) {
		return &ConsistencyError{
			Rule:     r.Name,
			Expected: claimed.String(),
			Actual:   actual.String(),
		}
	}
	return nil
}

func checkProduct(r lesson.Rule) *ConsistencyError {
	m := productRe.FindStringSubmatch(r.Example.Input)
	if m == nil {
		return nil
	}

	a, errA := strconv.ParseFloat(m[1], 64)
	b, errB := strconv.ParseFloat(m[2], 64)
	if errA != nil || errB != nil {
		return nil
	}

	claimed, err := strconv.ParseFloat(strings.TrimSpace(r.Example.Expected), 64)
	if err != nil {
		return nil
	}

	actual := a * b
	if diff := actual - claimed; diff > 1e-9 || diff < -1e-9 {
		return &ConsistencyError{
			Rule:     r.Name,
			Expected: strconv.FormatFloat(claimed, 'f', -1, 64),
			Actual:   strconv.FormatFloat(actual, 'f', -1, 64),
		}
	}
	return nil
}
