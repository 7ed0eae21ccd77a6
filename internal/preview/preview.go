// Package preview renders a parsed lesson in an interactive terminal
// pager with per-section navigation and filtering.
package preview

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonlint/internal/lesson"
	"github.com/abhisek/lessonlint/internal/report"
	"github.com/abhisek/lessonlint/internal/ui/theme"
)

// Model is the root Bubble Tea model for the preview pager.
type Model struct {
	lesson *lesson.Lesson
	rep    *report.Report

	section   Section
	scroll    int
	width     int
	height    int
	filter    textinput.Model
	filtering bool
}

// New creates a preview model for a parsed lesson. The report is shown
// in the header so authors see lint status while browsing.
func New(l *lesson.Lesson, rep *report.Report) Model {
	ti := textinput.New()
	ti.Placeholder = "filter"
	return Model{
		lesson: l,
		rep:    rep,
		filter: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter":
				m.filtering = false
				m.filter.Blur()
				return m, nil
			case "esc":
				m.filtering = false
				m.filter.SetValue("")
				m.filter.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.scroll = 0
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left", "h", "shift+tab":
			m.section = (m.section + Section(len(sectionNames)) - 1) % Section(len(sectionNames))
			m.scroll = 0
		case "right", "l", "tab":
			m.section = (m.section + 1) % Section(len(sectionNames))
			m.scroll = 0
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			if m.scroll < m.maxScroll() {
				m.scroll++
			}
		case "/":
			m.filtering = true
			return m, m.filter.Focus()
		case "esc":
			m.filter.SetValue("")
			m.scroll = 0
		}
	}

	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	body := m.renderBody(m.height - lipgloss.Height(header) - lipgloss.Height(footer))

	v.SetContent(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
	return v
}

// renderBody windows the section lines into a bordered card filling the
// space between header and footer.
func (m Model) renderBody(avail int) string {
	inner := avail - theme.Card.GetVerticalFrameSize()
	if inner < 0 {
		inner = 0
	}

	lines := m.visibleLines()
	end := m.scroll + inner
	if end > len(lines) {
		end = len(lines)
	}
	start := m.scroll
	if start > end {
		start = end
	}

	return theme.Card.Width(m.width - theme.Card.GetHorizontalBorderSize()).
		Render(strings.Join(lines[start:end], "\n"))
}

func (m Model) visibleLines() []string {
	return filterLines(sectionLines(m.lesson, m.section), m.filter.Value())
}

func (m Model) maxScroll() int {
	n := len(m.visibleLines()) - 1
	if n < 0 {
		return 0
	}
	return n
}

func (m Model) renderHeader() string {
	var tabs []string
	for i, name := range sectionNames {
		if Section(i) == m.section {
			tabs = append(tabs, theme.Selected.Render(name))
		} else {
			tabs = append(tabs, theme.Unselected.Render(name))
		}
	}

	status := ""
	if m.rep != nil {
		if m.rep.Clean() {
			status = theme.Pass.Render("✓ clean")
		} else {
			status = theme.Fail.Render(fmt.Sprintf("✗ %d issue(s)", m.rep.IssueCount()))
		}
	}

	line := strings.Join(tabs, theme.Dim.Render(" · "))
	if status != "" {
		line += "  " + status
	}
	return theme.Header.Width(m.width).Render(line)
}

func (m Model) renderFooter() string {
	if m.filtering {
		return theme.Footer.Width(m.width).Render("/" + m.filter.View())
	}

	hint := "←→ section  ↑↓ scroll  / filter  q quit"
	if m.filter.Value() != "" {
		hint = fmt.Sprintf("filter: %q (esc clears)  %s", m.filter.Value(), hint)
	}
	return theme.Footer.Width(m.width).Render(theme.Dim.Render(hint))
}

// Run starts the preview program.
func Run(l *lesson.Lesson, rep *report.Report) error {
	p := tea.NewProgram(New(l, rep))
	_, err := p.Run()
	return err
}
