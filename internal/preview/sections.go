package preview

import (
	"fmt"
	"strings"

	"github.com/abhisek/lessonlint/internal/lesson"
	"github.com/abhisek/lessonlint/internal/ui/theme"
)

// Section indexes into sectionNames.
type Section int

const (
	SectionOverview Section = iota
	SectionRules
	SectionMisconceptions
	SectionHints
	SectionRubric
	SectionPractice
)

var sectionNames = []string{
	"Overview",
	"Rules",
	"Misconceptions",
	"Hint Ladders",
	"Rubric",
	"Practice",
}

// sectionLines renders one section of the lesson as plain lines.
// Styling is applied here so the pager only does windowing.
func sectionLines(l *lesson.Lesson, s Section) []string {
	switch s {
	case SectionOverview:
		lines := []string{
			theme.Section.Render("Title: ") + l.Title,
			theme.Section.Render("Format: ") + l.Format,
		}
		if l.Subject != "" {
			lines = append(lines, theme.Section.Render("Subject: ")+l.Subject)
		}
		lines = append(lines,
			"",
			theme.Dim.Render(fmt.Sprintf("%d rule(s), %d misconception(s), %d hint ladder(s), %d practice problem(s)",
				len(l.Rules), len(l.Misconceptions), len(l.HintLadders), len(l.Practice))),
		)
		return lines

	case SectionRules:
		var lines []string
		for i, r := range l.Rules {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines,
				theme.Section.Render(r.Name)+theme.Dim.Render(" ("+string(r.Kind)+")"),
				"  "+r.Formula,
			)
			if r.Example.Input != "" {
				lines = append(lines, theme.Dim.Render("  example: ")+r.Example.Input+" -> "+r.Example.Expected)
			}
		}
		return lines

	case SectionMisconceptions:
		var lines []string
		for i, m := range l.Misconceptions {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines,
				theme.Section.Render(m.Problem)+theme.Fail.Render(" -> "+m.WrongAnswer),
				theme.Dim.Render("  root cause: ")+m.RootCause,
				theme.Dim.Render("  strategy:   ")+m.Strategy,
			)
		}
		return lines

	case SectionHints:
		var lines []string
		for i, h := range l.HintLadders {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, theme.Section.Render(h.Problem))
			for j, lvl := range h.Levels {
				lines = append(lines, fmt.Sprintf("  %d. %s %s",
					j+1, theme.Dim.Render(string(lvl.Kind)+":"), lvl.Text))
			}
		}
		return lines

	case SectionRubric:
		var lines []string
		for _, t := range l.Rubric.Tiers {
			lines = append(lines, fmt.Sprintf("%s %s  %s",
				theme.Section.Render(fmt.Sprintf("%-8s", t.Name)),
				theme.Flag.Render(fmt.Sprintf("%.1f", t.Credit)),
				t.Criterion))
		}
		return lines

	case SectionPractice:
		var lines []string
		for i, p := range l.Practice {
			lines = append(lines, fmt.Sprintf("%s %s",
				theme.Dim.Render(fmt.Sprintf("%2d.", i+1)), p.Prompt))
		}
		return lines
	}
	return nil
}

// filterLines keeps lines containing the query, case-insensitive.
// An empty query keeps everything.
func filterLines(lines []string, query string) []string {
	if query == "" {
		return lines
	}
	q := strings.ToLower(query)
	var out []string
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), q) {
			out = append(out, line)
		}
	}
	return out
}
