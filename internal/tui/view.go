package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	dom "github.com/Gerhardt0011/gpt5-todo/internal/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	doneStyle     = lipgloss.NewStyle().Faint(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	labelStyle    = lipgloss.NewStyle().Bold(true)
)

// View renders the whole screen from the model state and nothing else, so
// the same state always produces the same output.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todos"))
	b.WriteString(fmt.Sprintf("  [%s]\n\n", m.filter))

	switch m.mode {
	case modeBrowsing:
		b.WriteString(m.viewList())
		b.WriteString("\n")
		b.WriteString(m.viewDetails())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/space: toggle  n: new  e: edit  d: delete  f: filter  q: quit"))

	case modeCreating, modeEditing:
		heading := "New todo"
		if m.mode == modeEditing {
			heading = "Edit todo"
		}
		b.WriteString(labelStyle.Render(heading) + "\n\n")
		b.WriteString(m.viewForm())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab: switch field  enter: save  esc: cancel"))
	}

	if m.errMsg != "" {
		b.WriteString("\n\n" + errStyle.Render("error: "+m.errMsg))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewList() string {
	if len(m.visible) == 0 {
		return helpStyle.Render("(no todos)") + "\n"
	}

	var b strings.Builder
	for pos, idx := range m.visible {
		t := m.items[idx]
		line := fmt.Sprintf("%s %s", statusMark(t.Status), t.Title)
		switch {
		case pos == m.cursor:
			line = selectedStyle.Render("> " + line)
		case t.Status == dom.StatusDone:
			line = doneStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewDetails() string {
	t, ok := m.selected()
	if !ok {
		return ""
	}
	desc := "(no description)"
	if t.Description != nil {
		desc = *t.Description
	}
	return fmt.Sprintf("%s %s\n%s %s\n%s %s\n",
		labelStyle.Render("Title:"), t.Title,
		labelStyle.Render("Status:"), t.Status,
		labelStyle.Render("Description:"), desc,
	)
}

func (m Model) viewForm() string {
	titleLabel := "  Title"
	descLabel := "  Description"
	if m.focus == focusTitle {
		titleLabel = selectedStyle.Render("> Title")
	} else {
		descLabel = selectedStyle.Render("> Description")
	}
	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n",
		titleLabel, m.titleInput.View(),
		descLabel, m.descInput.View(),
	)
}

func statusMark(s dom.Status) string {
	if s == dom.StatusDone {
		return "[x]"
	}
	return "[ ]"
}
