package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/lessonlint/internal/lesson"
)

// HintValidator checks hint ladders: exactly four levels, canonical
// escalation order, and no level that gives away the final answer.
type HintValidator struct{}

func (v *HintValidator) Name() string { return "hints" }

func (v *HintValidator) Validate(l *lesson.Lesson) []Violation {
	var out []Violation
	add := func(path, msg string) {
		out = append(out, Violation{Validator: v.Name(), Path: path, Message: msg})
	}

	kinds := lesson.LadderKinds()

	for i, ladder := range l.HintLadders {
		path := fmt.Sprintf("hint_ladders[%d]", i)

		if ladder.Problem == "" {
			add(path+".problem", "problem is empty")
		}
		if ladder.Answer == "" {
			add(path+".answer", "answer is empty (required for the leak check)")
		}

		if len(ladder.Levels) != len(kinds) {
			add(path+".levels", fmt.Sprintf("ladder has %d levels, want exactly %d", len(ladder.Levels), len(kinds)))
			continue
		}

		for j, lvl := range ladder.Levels {
			lpath := fmt.Sprintf("%s.levels[%d]", path, j)
			if lvl.Kind != kinds[j] {
				add(lpath, fmt.Sprintf("level kind %q out of order, want %q", lvl.Kind, kinds[j]))
			}
			if lvl.Text == "" {
				add(lpath, "hint text is empty")
			}
			if ladder.Answer != "" && LeaksAnswer(lvl.Text, ladder.Answer) {
				add(lpath, "hint text contains the final answer")
			}
		}
	}

	return out
}

// expOneRe folds the x^1 rendering variant so "6x^1" and "6x" compare equal.
var expOneRe = regexp.MustCompile(`x\^1([^0-9]|$)`)

// LeaksAnswer reports whether hint text reveals the answer, verbatim or
// after normalization (case, whitespace, x^1 folding). Single-character
// answers only match as whole tokens so "0" does not flag "10 minutes".
func LeaksAnswer(text, answer string) bool {
	na := normalizeAnswer(answer)
	if na == "" {
		return false
	}

	if len(na) >= 2 {
		if strings.Contains(text, answer) {
			return true
		}
		return strings.Contains(normalizeAnswer(text), na)
	}

	// Single-character answers match whole tokens only, so "0" never
	// flags the "0" inside "10".
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == ';' || r == ':' || r == '?' || r == '!'
	}) {
		if normalizeAnswer(tok) == na {
			return true
		}
	}
	return false
}

func normalizeAnswer(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	return expOneRe.ReplaceAllString(s, "x$1")
}
