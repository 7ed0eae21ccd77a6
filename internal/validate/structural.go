package validate

import (
	"fmt"

	"github.com/abhisek/lessonlint/internal/lesson"
)

// maxPromptLen caps practice prompts and misconception fields; long
// entries are almost always a paste of the full solution.
const maxPromptLen = 500

// StructuralValidator checks that required fields are present and within
// length limits across all sections.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(l *lesson.Lesson) []Violation {
	var out []Violation
	add := func(path, msg string) {
		out = append(out, Violation{Validator: v.Name(), Path: path, Message: msg})
	}

	if l.Title == "" {
		add("title", "title is empty")
	}

	for i, r := range l.Rules {
		path := fmt.Sprintf("rules[%d]", i)
		if r.Name == "" {
			add(path+".name", "rule name is empty")
		}
		if r.Formula == "" {
			add(path+".formula", "formula is empty")
		}
		if (r.Example.Input == "") != (r.Example.Expected == "") {
			add(path+".example", "worked example needs both input and expected")
		}
	}

	for i, m := range l.Misconceptions {
		path := fmt.Sprintf("misconceptions[%d]", i)
		if m.WrongAnswer == "" {
			add(path+".wrong_answer", "wrong answer is empty")
		}
		if m.Problem == "" {
			add(path+".problem", "problem is empty")
		}
		if m.RootCause == "" {
			add(path+".root_cause", "root cause is empty")
		}
		if m.Strategy == "" {
			add(path+".strategy", "teaching strategy is empty")
		}
	}

	for i, p := range l.Practice {
		path := fmt.Sprintf("practice[%d].prompt", i)
		if p.Prompt == "" {
			add(path, "prompt is empty")
		}
		if len(p.Prompt) > maxPromptLen {
			add(path, fmt.Sprintf("prompt exceeds %d characters", maxPromptLen))
		}
	}

	return out
}
