package schedule

import (
	"github.com/fsabado/management-app-demo/internal/domain"
)

const (
	// Chart span padding on each side of the occupied interval.
	spanPaddingDays = 2
	// Zero-duration tasks keep this much visible width.
	minBarWidthPercent = 1.0
	// Marker interval targets roughly this many axis labels per span.
	targetMarkerCount = 10
)

// Bar is one task positioned on the timeline, as percentages of the total
// span.
type Bar struct {
	Task         domain.Task `json:"task"`
	LeftPercent  float64     `json:"leftPercent"`
	WidthPercent float64     `json:"widthPercent"`
}

// Timeline is the computed chart layout. Only tasks carrying both dates are
// positioned; TotalTasks still counts every input task so callers can
// report how many were left off the chart.
type Timeline struct {
	Start      domain.Date   `json:"start"`
	End        domain.Date   `json:"end"`
	Bars       []Bar         `json:"bars"`
	Markers    []domain.Date `json:"markers"`
	TotalTasks int           `json:"totalTasks"`
}

// Empty reports whether no tasks qualified for layout.
func (tl Timeline) Empty() bool {
	return len(tl.Bars) == 0
}

// BuildTimeline maps each double-dated task's interval onto a normalized
// 0-100% coordinate. The span is the earliest start through the latest due
// date, padded outward two days on each side. With no qualifying tasks the
// zero-value Timeline comes back, avoiding a zero-width span division.
func BuildTimeline(tasks []domain.Task) Timeline {
	tl := Timeline{TotalTasks: len(tasks)}

	var charted []domain.Task
	for _, t := range tasks {
		if t.HasDates() {
			charted = append(charted, t)
		}
	}
	if len(charted) == 0 {
		return tl
	}

	minDate := *charted[0].StartDate
	maxDate := *charted[0].DueDate
	for _, t := range charted[1:] {
		minDate = domain.MinDate(minDate, *t.StartDate)
		maxDate = domain.MaxDate(maxDate, *t.DueDate)
	}
	tl.Start = minDate.AddDays(-spanPaddingDays)
	tl.End = maxDate.AddDays(spanPaddingDays)

	spanMs := float64(tl.End.Time().Sub(tl.Start.Time()).Milliseconds())

	tl.Bars = make([]Bar, 0, len(charted))
	for _, t := range charted {
		left := float64(t.StartDate.Time().Sub(tl.Start.Time()).Milliseconds()) / spanMs * 100
		width := float64(t.DueDate.Time().Sub(t.StartDate.Time()).Milliseconds()) / spanMs * 100
		if width < minBarWidthPercent {
			width = minBarWidthPercent
		}
		tl.Bars = append(tl.Bars, Bar{Task: t, LeftPercent: left, WidthPercent: width})
	}

	tl.Markers = dateMarkers(tl.Start, tl.End)
	return tl
}

// dateMarkers spaces axis ticks so long spans stay near ten labels while
// short spans still tick every day.
func dateMarkers(start, end domain.Date) []domain.Date {
	totalDays := start.DaysUntil(end)
	interval := totalDays / targetMarkerCount
	if interval < 1 {
		interval = 1
	}

	var markers []domain.Date
	for d := start; !d.After(end); d = d.AddDays(interval) {
		markers = append(markers, d)
	}
	return markers
}
