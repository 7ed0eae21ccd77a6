package draft

import (
	"fmt"
	"strings"
)

const hintSystemPrompt = `You are a calculus teaching assistant drafting hint ladders for lesson authors.

Rules:
- Produce exactly 4 hints for the given problem, in escalating specificity:
  1. strategic: orient the student toward the kind of problem and overall approach.
  2. conceptual: point at the relevant rule or concept without applying it.
  3. procedural: describe the first concrete step to take.
  4. specific: narrow the student's attention to the exact place mistakes happen.
- Never state, spell out, or trivially paraphrase the final answer in any hint.
- Use plain ASCII text for all math. Write powers as x^n, no LaTeX, no Unicode.
- Each hint is one or two short sentences addressed to the student.`

const strategySystemPrompt = `You are a calculus teaching assistant drafting misconception analyses for lesson authors.

Rules:
- Given a problem and the wrong answer a student gave, explain the root cause:
  the specific conceptual error that produces exactly that wrong answer.
- Then give one concrete teaching strategy that targets the root cause.
- Be specific to the arithmetic of this problem, not generic study advice.
- Use plain ASCII text for all math. Write powers as x^n, no LaTeX, no Unicode.`

// buildHintMessage constructs the user message for a hint ladder draft.
func buildHintMessage(problem, answer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %s\n", problem)
	fmt.Fprintf(&b, "Final answer (do NOT reveal this in any hint): %s\n", answer)
	return b.String()
}

// buildStrategyMessage constructs the user message for a misconception draft.
func buildStrategyMessage(problem, wrongAnswer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %s\n", problem)
	fmt.Fprintf(&b, "Student's wrong answer: %s\n", wrongAnswer)
	return b.String()
}
