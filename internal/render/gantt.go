package render

import (
	"fmt"
	"strings"

	"github.com/fsabado/management-app-demo/internal/schedule"
)

// ganttLaneWidth is the character width each timeline bar is scaled onto.
const ganttLaneWidth = 60

// Gantt renders a timeline as fixed-width terminal lanes, one per charted
// task, with an axis line of date markers underneath.
func Gantt(tl schedule.Timeline) string {
	if tl.Empty() {
		return fmt.Sprintf("No scheduled tasks to chart (%d total).", tl.TotalTasks)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s → %s\n\n", Bold("Timeline"), tl.Start, tl.End)

	nameWidth := 0
	for _, bar := range tl.Bars {
		if n := len([]rune(bar.Task.Name)); n > nameWidth {
			nameWidth = n
		}
	}
	if nameWidth > 24 {
		nameWidth = 24
	}

	for _, bar := range tl.Bars {
		offset := int(bar.LeftPercent / 100 * ganttLaneWidth)
		width := int(bar.WidthPercent / 100 * ganttLaneWidth)
		if width < 1 {
			width = 1
		}
		if offset+width > ganttLaneWidth {
			width = ganttLaneWidth - offset
		}

		lane := strings.Repeat(" ", offset) +
			StatusColor(bar.Task.Status).Sprint(strings.Repeat("█", width))
		fmt.Fprintf(&sb, "%-*s │%s\n", nameWidth, truncate(bar.Task.Name, nameWidth), lane)
	}

	sb.WriteString(strings.Repeat(" ", nameWidth) + " └" + strings.Repeat("─", ganttLaneWidth) + "\n")

	// Axis: first, middle, last markers keep the line readable regardless
	// of span length.
	if n := len(tl.Markers); n > 0 {
		first := tl.Markers[0].Format("Jan 2")
		last := tl.Markers[n-1].Format("Jan 2")
		mid := tl.Markers[n/2].Format("Jan 2")
		gap := ganttLaneWidth - len(first) - len(mid) - len(last)
		if gap < 2 {
			gap = 2
		}
		half := gap / 2
		fmt.Fprintf(&sb, "%s  %s%s%s%s%s\n",
			strings.Repeat(" ", nameWidth),
			Dim(first), strings.Repeat(" ", half),
			Dim(mid), strings.Repeat(" ", gap-half),
			Dim(last))
	}

	if skipped := tl.TotalTasks - len(tl.Bars); skipped > 0 {
		fmt.Fprintf(&sb, "\n%s\n", Dim(fmt.Sprintf("%d task(s) without both dates not shown", skipped)))
	}

	return sb.String()
}
