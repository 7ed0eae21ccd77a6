package validate

import (
	"fmt"
	"strings"

	"github.com/abhisek/lessonlint/internal/lesson"
)

// RubricValidator checks the four-tier rubric: canonical tier names in
// order, credit strictly decreasing from full (1.0) to none (0.0), and
// one-line criteria.
type RubricValidator struct{}

func (v *RubricValidator) Name() string { return "rubric" }

func (v *RubricValidator) Validate(l *lesson.Lesson) []Violation {
	var out []Violation
	add := func(path, msg string) {
		out = append(out, Violation{Validator: v.Name(), Path: path, Message: msg})
	}

	names := lesson.TierNames()
	tiers := l.Rubric.Tiers

	if len(tiers) != len(names) {
		add("rubric.tiers", fmt.Sprintf("rubric has %d tiers, want exactly %d", len(tiers), len(names)))
		return out
	}

	for i, tier := range tiers {
		path := fmt.Sprintf("rubric.tiers[%d]", i)

		if tier.Name != names[i] {
			add(path+".name", fmt.Sprintf("tier name %q out of order, want %q", tier.Name, names[i]))
		}
		if tier.Credit < 0 || tier.Credit > 1 {
			add(path+".credit", fmt.Sprintf("credit %.2f outside [0, 1]", tier.Credit))
		}
		if i > 0 && tier.Credit >= tiers[i-1].Credit {
			add(path+".credit", fmt.Sprintf("credit %.2f not strictly below %q tier's %.2f",
				tier.Credit, tiers[i-1].Name, tiers[i-1].Credit))
		}
		if tier.Criterion == "" {
			add(path+".criterion", "criterion is empty")
		}
		if strings.Contains(tier.Criterion, "\n") {
			add(path+".criterion", "criterion must be a single line")
		}
	}

	if tiers[0].Name == lesson.TierFull && tiers[0].Credit != 1.0 {
		add("rubric.tiers[0].credit", "full-credit tier must carry credit 1.0")
	}
	last := len(tiers) - 1
	if tiers[last].Name == lesson.TierNone && tiers[last].Credit != 0.0 {
		add(fmt.Sprintf("rubric.tiers[%d].credit", last), "no-credit tier must carry credit 0.0")
	}

	return out
}

// VersionValidator checks the document format version gate.
type VersionValidator struct{}

func (v *VersionValidator) Name() string { return "version" }

func (v *VersionValidator) Validate(l *lesson.Lesson) []Violation {
	if err := lesson.CheckFormat(l.Format); err != nil {
		return []Violation{{Validator: v.Name(), Path: "format", Message: err.Error()}}
	}
	return nil
}
