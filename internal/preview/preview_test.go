package preview

import (
	"strings"
	"testing"
)

func TestRenderBody_BorderedCard(t *testing.T) {
	m := New(previewLesson(), nil)
	m.width = 60
	m.height = 20

	body := m.renderBody(18)
	if !strings.Contains(body, "╭") || !strings.Contains(body, "╰") {
		t.Errorf("expected a rounded border around the body:\n%s", body)
	}
	if !strings.Contains(body, "Power Rule") {
		t.Errorf("body missing section content:\n%s", body)
	}
}

func TestRenderBody_ScrollWindow(t *testing.T) {
	m := New(previewLesson(), nil)
	m.width = 60
	m.height = 20
	m.section = SectionPractice
	m.scroll = len(sectionLines(m.lesson, SectionPractice))

	// Scrolled past the end: no lines left, but the frame still renders.
	body := m.renderBody(18)
	if !strings.Contains(body, "╭") {
		t.Errorf("expected card frame on empty window:\n%s", body)
	}
	if strings.Contains(body, "Differentiate") {
		t.Errorf("expected no content lines past the end:\n%s", body)
	}
}
