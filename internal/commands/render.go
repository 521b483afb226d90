package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mytodo/internal/model"
	"mytodo/internal/views"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A78BFA"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("240"))

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	highStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))
)

func priorityMark(t model.Todo) string {
	switch t.Priority {
	case model.PriorityUrgent:
		return urgentStyle.Render("!!")
	case model.PriorityHigh:
		return highStyle.Render("!")
	default:
		return " "
	}
}

func renderTodoLine(t model.Todo) string {
	check := "[ ]"
	title := t.DisplayTitle()
	if t.Completed() {
		check = "[x]"
		title = doneStyle.Render(title)
	}
	line := fmt.Sprintf("%4d %s %s %s", t.ID, check, priorityMark(t), title)
	if t.DeadlineAt != nil {
		line += mutedStyle.Render("  due " + t.DeadlineAt.Format("Jan 2"))
	}
	return line
}

func renderView(name string, v views.View) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(name))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d/%d done (%d%%)",
		v.CompletedCount, v.TotalCount, v.CompletionRate())))
	b.WriteString("\n")
	if len(v.Todos) == 0 {
		b.WriteString(mutedStyle.Render("  nothing here\n"))
		return b.String()
	}
	for _, t := range v.Todos {
		b.WriteString(renderTodoLine(t))
		b.WriteString("\n")
	}
	return b.String()
}

func renderBuckets(buckets []views.Bucket) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Upcoming"))
	b.WriteString("\n")
	for _, bucket := range buckets {
		if bucket.Empty() {
			continue
		}
		b.WriteString(headerStyle.Render(bucket.Label()))
		b.WriteString("\n")
		for _, t := range bucket.Todos {
			b.WriteString(renderTodoLine(t))
			b.WriteString("\n")
		}
	}
	return b.String()
}
