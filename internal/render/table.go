package render

import (
	"fmt"
	"strings"

	"github.com/fsabado/management-app-demo/internal/domain"
)

// Column represents a table column.
type Column struct {
	Name  string
	Width int
}

var taskColumns = []Column{
	{"ID", 6},
	{"Name", 35},
	{"Status", 12},
	{"Start", 13},
	{"Due", 13},
}

var projectColumns = []Column{
	{"ID", 6},
	{"Name", 30},
	{"Tasks", 6},
	{"Start", 13},
	{"End", 13},
	{"Days", 6},
}

// TaskTable formats tasks as an ASCII table.
func TaskTable(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}

	var sb strings.Builder
	writeSeparator(&sb, taskColumns)
	writeHeader(&sb, taskColumns)
	writeSeparator(&sb, taskColumns)
	for _, t := range tasks {
		writeRow(&sb, taskColumns,
			fmt.Sprintf("%d", t.ID),
			t.Name,
			string(t.Status),
			FormatDate(t.StartDate),
			FormatDate(t.DueDate),
		)
	}
	writeSeparator(&sb, taskColumns)
	return sb.String()
}

// ProjectTable formats project metrics as an ASCII table. Degraded
// projects show a zero count and dash placeholders.
func ProjectTable(metrics []domain.ProjectMetrics) string {
	if len(metrics) == 0 {
		return "No projects found."
	}

	var sb strings.Builder
	writeSeparator(&sb, projectColumns)
	writeHeader(&sb, projectColumns)
	writeSeparator(&sb, projectColumns)
	for _, m := range metrics {
		duration := "—"
		if m.DurationDays != nil {
			duration = fmt.Sprintf("%d", *m.DurationDays)
		}
		writeRow(&sb, projectColumns,
			fmt.Sprintf("%d", m.ID),
			m.Name,
			fmt.Sprintf("%d", m.TaskCount),
			FormatDate(m.EarliestStartDate),
			FormatDate(m.LatestEndDate),
			duration,
		)
	}
	writeSeparator(&sb, projectColumns)
	return sb.String()
}

func writeSeparator(sb *strings.Builder, cols []Column) {
	sb.WriteString("+")
	for _, col := range cols {
		sb.WriteString(strings.Repeat("-", col.Width+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
}

func writeHeader(sb *strings.Builder, cols []Column) {
	sb.WriteString("|")
	for _, col := range cols {
		fmt.Fprintf(sb, " %-*s |", col.Width, col.Name)
	}
	sb.WriteString("\n")
}

func writeRow(sb *strings.Builder, cols []Column, cells ...string) {
	sb.WriteString("|")
	for i, col := range cols {
		fmt.Fprintf(sb, " %-*s |", col.Width, truncate(cells[i], col.Width))
	}
	sb.WriteString("\n")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
