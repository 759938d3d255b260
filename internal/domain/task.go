package domain

import (
	"encoding/json"
	"strings"
)

type TaskStatus string

const (
	StatusPlanned    TaskStatus = "planned"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

// NormalizeStatus maps the wire spellings the upstream API has emitted over
// time ("in_progress", "in progress") onto the canonical constants.
func NormalizeStatus(s string) TaskStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in_progress", "in progress", "in-progress":
		return StatusInProgress
	case "completed", "done":
		return StatusCompleted
	case "cancelled", "canceled":
		return StatusCancelled
	case "planned", "":
		return StatusPlanned
	default:
		return TaskStatus(s)
	}
}

func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NormalizeStatus(raw)
	return nil
}

// Task is the record shape delivered by the upstream management API.
// ParentTaskID forms a tree; DependsOn references tasks this one requires.
// Either may point outside the fetched set; consumers drop such edges.
type Task struct {
	ID           int        `json:"id"`
	ProjectID    int        `json:"projectId"`
	Name         string     `json:"name"`
	Status       TaskStatus `json:"status"`
	ParentTaskID *int       `json:"parentTaskId"`
	DependsOn    []int      `json:"dependsOn"`
	StartDate    *Date      `json:"startDate"`
	DueDate      *Date      `json:"dueDate"`
}

// HasDates reports whether the task carries both a start and a due date.
func (t Task) HasDates() bool {
	return t.StartDate != nil && t.DueDate != nil
}

// Dated reports whether the task carries at least one date.
func (t Task) Dated() bool {
	return t.StartDate != nil || t.DueDate != nil
}

// IsRoot reports whether the task has no parent.
func (t Task) IsRoot() bool {
	return t.ParentTaskID == nil
}
