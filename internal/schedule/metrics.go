// Package schedule derives temporal views over task lists: project-level
// metrics, date-range filters and groupings, and Gantt timeline layout.
// Everything here is computed at read time from the raw records and never
// stored.
package schedule

import (
	"github.com/fsabado/management-app-demo/internal/domain"
)

// ComputeProjectMetrics aggregates a project's task list into its temporal
// bounds. An empty list yields zero count and nil dates; DurationDays is
// set only when both bounds resolve.
func ComputeProjectMetrics(p domain.Project, tasks []domain.Task) domain.ProjectMetrics {
	m := domain.ProjectMetrics{Project: p, TaskCount: len(tasks)}

	for _, t := range tasks {
		if t.StartDate != nil {
			if m.EarliestStartDate == nil || t.StartDate.Before(*m.EarliestStartDate) {
				d := *t.StartDate
				m.EarliestStartDate = &d
			}
		}
		if t.DueDate != nil {
			if m.LatestEndDate == nil || t.DueDate.After(*m.LatestEndDate) {
				d := *t.DueDate
				m.LatestEndDate = &d
			}
		}
	}

	if m.EarliestStartDate != nil && m.LatestEndDate != nil {
		days := m.EarliestStartDate.DaysUntil(*m.LatestEndDate)
		m.DurationDays = &days
	}

	return m
}

// FilterTasksByDateRange returns the tasks whose interval touches
// [start, end]: either date falls inside the range, or the interval spans
// it entirely. Tasks with neither date are always excluded.
func FilterTasksByDateRange(tasks []domain.Task, start, end domain.Date) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if !t.Dated() {
			continue
		}
		if inRange(t.StartDate, start, end) || inRange(t.DueDate, start, end) || spans(t, start, end) {
			out = append(out, t)
		}
	}
	return out
}

func inRange(d *domain.Date, start, end domain.Date) bool {
	return d != nil && !d.Before(start) && !d.After(end)
}

func spans(t domain.Task, start, end domain.Date) bool {
	return t.StartDate != nil && t.DueDate != nil &&
		!t.StartDate.After(start) && !t.DueDate.Before(end)
}

// UpcomingTasks filters to tasks touching the window from today through
// today plus days.
func UpcomingTasks(tasks []domain.Task, days int) []domain.Task {
	today := domain.Today()
	return FilterTasksByDateRange(tasks, today, today.AddDays(days))
}

// DateGroup is one bucket of a date grouping, keyed by the task's start
// date when present, else its due date.
type DateGroup struct {
	Date  domain.Date   `json:"date"`
	Tasks []domain.Task `json:"tasks"`
}

// GroupTasksByDate buckets tasks by their effective date. Undated tasks
// are omitted. Groups appear in first-seen key order; each bucket keeps
// input task order.
func GroupTasksByDate(tasks []domain.Task) []DateGroup {
	index := make(map[domain.Date]int)
	var groups []DateGroup

	for _, t := range tasks {
		var key domain.Date
		switch {
		case t.StartDate != nil:
			key = *t.StartDate
		case t.DueDate != nil:
			key = *t.DueDate
		default:
			continue
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DateGroup{Date: key})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}

	return groups
}
