package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agalitsyn/todo-tui/internal/model"
	"github.com/agalitsyn/todo-tui/version"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	filterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	completedStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("241"))

	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))

	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tasks") + "  " + statsStyle.Render(version.String()) + "\n\n")

	switch a.mode {
	case modeHelp:
		a.writeHelp(&b)
		return b.String()
	case modeForm:
		a.writeForm(&b)
		return b.String()
	}

	a.writeStatusLine(&b)
	a.writeList(&b)
	a.writeFooter(&b)
	return b.String()
}

func (a *App) writeStatusLine(b *strings.Builder) {
	b.WriteString(statsStyle.Render(fmt.Sprintf(
		"total %d | active %d | done %d | high %d",
		a.stats.Total, a.stats.Active, a.stats.Completed, a.stats.HighPriority,
	)))
	b.WriteString("\n")

	var parts []string
	if a.st.StatusFilter != model.StatusFilterAll {
		parts = append(parts, "status:"+string(a.st.StatusFilter))
	}
	if a.st.PriorityFilter != model.PriorityFilterAll {
		parts = append(parts, "priority:"+string(a.st.PriorityFilter))
	}
	if a.st.Search != "" {
		parts = append(parts, fmt.Sprintf("search:%q", a.st.Search))
	}
	if len(parts) > 0 {
		b.WriteString(filterStyle.Render("filters: "+strings.Join(parts, " ")) + "\n")
	}
	if a.mode == modeSearch {
		b.WriteString(a.search.View() + "\n")
	}
	b.WriteString("\n")
}

func (a *App) writeList(b *strings.Builder) {
	if len(a.visible) == 0 {
		if a.stats.Total == 0 {
			b.WriteString("  No tasks yet. Press a to add one.\n\n")
		} else {
			b.WriteString("  No tasks match the current filters.\n\n")
		}
		return
	}

	for i, t := range a.visible {
		cursor := "  "
		if i == a.cursor && a.mode == modeList {
			cursor = "> "
		}

		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}

		line := fmt.Sprintf("%s%s %s %s", cursor, mark, priorityBadge(t.Priority), t.Title)
		if t.HasDueDate() {
			line += statsStyle.Render(" due " + t.DueDate.Format(dueDateLayout))
		}
		if len(t.Tags) > 0 {
			line += statsStyle.Render(" #" + strings.Join(t.Tags, " #"))
		}

		switch {
		case t.Completed:
			line = completedStyle.Render(line)
		case i == a.cursor && a.mode == modeList:
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")

		if i == a.cursor && a.mode == modeList && t.Description != "" {
			b.WriteString(statsStyle.Render("      "+t.Description) + "\n")
		}
	}
	b.WriteString("\n")
}

func (a *App) writeForm(b *strings.Builder) {
	f := a.form
	header := "New task"
	if f.editID != "" {
		header = "Edit task"
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")

	b.WriteString(formLine(f.focus == fieldTitle, "Title      ", f.title.View()))
	b.WriteString(formLine(f.focus == fieldDescription, "Description", f.desc.View()))
	b.WriteString(formLine(f.focus == fieldPriority, "Priority   ", priorityPicker(f.priority)))
	b.WriteString(formLine(f.focus == fieldDueDate, "Due date   ", f.due.View()))
	b.WriteString(formLine(f.focus == fieldTags, "Tags       ", f.tags.View()))

	if f.errMsg != "" {
		b.WriteString("\n" + errStyle.Render(f.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab next field | enter save | esc cancel") + "\n")
}

func formLine(focused bool, label, value string) string {
	marker := "  "
	if focused {
		marker = "> "
	}
	return fmt.Sprintf("%s%s %s\n", marker, label, value)
}

func priorityPicker(selected model.Priority) string {
	var parts []string
	for _, p := range []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh} {
		s := string(p)
		if p == selected {
			s = selectedStyle.Render("[" + s + "]")
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func priorityBadge(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return highStyle.Render("(high)")
	case model.PriorityLow:
		return lowStyle.Render("(low)")
	default:
		return mediumStyle.Render("(med)")
	}
}

func (a *App) writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  j, down      Move cursor down\n")
	b.WriteString("  k, up        Move cursor up\n")
	b.WriteString("  a            Add task\n")
	b.WriteString("  e, enter     Edit selected task\n")
	b.WriteString("  x, space     Toggle selected task\n")
	b.WriteString("  d            Delete selected task\n")
	b.WriteString("  /            Search (live, esc clears)\n")
	b.WriteString("  f            Cycle status filter (all / active / completed)\n")
	b.WriteString("  p            Cycle priority filter (all / low / medium / high)\n")
	b.WriteString("  C            Clear completed tasks\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  q, ctrl+c    Quit\n\n")
	b.WriteString(helpStyle.Render("press any key to go back") + "\n")
}

func (a *App) writeFooter(b *strings.Builder) {
	hints := "a add | e edit | x toggle | d delete | / search | f status | p priority"
	if a.stats.Completed > 0 {
		hints += " | C clear done"
	}
	hints += " | ? help | q quit"
	b.WriteString(helpStyle.Render(hints) + "\n")
}
