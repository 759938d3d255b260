// Package render formats core structures for terminal display: tables,
// hierarchy trees, dependency lists, and a Gantt lane view.
package render

import (
	"github.com/fatih/color"

	"github.com/fsabado/management-app-demo/internal/domain"
)

// Sprint color functions for building styled strings.
var (
	Bold = color.New(color.Bold).SprintFunc()
	Dim  = color.New(color.Faint).SprintFunc()
	Cyan = color.New(color.FgCyan).SprintFunc()
)

// StatusColor returns the color for a task status.
func StatusColor(status domain.TaskStatus) *color.Color {
	switch status {
	case domain.StatusCompleted:
		return color.New(color.FgGreen)
	case domain.StatusInProgress:
		return color.New(color.FgYellow)
	case domain.StatusCancelled:
		return color.New(color.FgRed)
	case domain.StatusPlanned:
		return color.New(color.FgHiBlack)
	default:
		return color.New(color.FgWhite)
	}
}

// StatusIcon returns a compact colored marker for table rows.
func StatusIcon(status domain.TaskStatus) string {
	return StatusColor(status).Sprint(statusGlyph(status))
}

func statusGlyph(status domain.TaskStatus) string {
	switch status {
	case domain.StatusCompleted:
		return "✓"
	case domain.StatusInProgress:
		return "●"
	case domain.StatusCancelled:
		return "✗"
	default:
		return "◌"
	}
}

// FormatDate renders a nullable date for display, with a dash placeholder
// when absent.
func FormatDate(d *domain.Date) string {
	if d == nil {
		return "—"
	}
	return d.Format("Jan 2, 2006")
}
