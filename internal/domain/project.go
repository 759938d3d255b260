package domain

// Project is the record shape delivered by the upstream management API.
// Task ownership is external: tasks arrive from a separate fetch keyed by
// their ProjectID, never embedded in the project record.
type Project struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProjectMetrics is a project plus temporal aggregates derived from its
// task list at read time. It is never stored; callers recompute it whenever
// the task list changes.
type ProjectMetrics struct {
	Project
	TaskCount         int   `json:"taskCount"`
	EarliestStartDate *Date `json:"earliestStartDate"`
	LatestEndDate     *Date `json:"latestEndDate"`
	DurationDays      *int  `json:"durationDays"`
}
