package render

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/fsabado/management-app-demo/internal/domain"
	"github.com/fsabado/management-app-demo/internal/graph"
	"github.com/fsabado/management-app-demo/internal/schedule"
)

func init() {
	// Plain strings make the assertions readable
	color.NoColor = true
}

func datePtr(s string) *domain.Date {
	d := domain.MustParseDate(s)
	return &d
}

func intPtr(v int) *int { return &v }

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "—", FormatDate(nil))
	assert.Equal(t, "Mar 5, 2024", FormatDate(datePtr("2024-03-05")))
}

func TestStatusColorCoversAllStatuses(t *testing.T) {
	for _, s := range []domain.TaskStatus{
		domain.StatusPlanned, domain.StatusInProgress,
		domain.StatusCompleted, domain.StatusCancelled,
	} {
		assert.NotNil(t, StatusColor(s))
		assert.NotEmpty(t, StatusIcon(s))
	}
}

func TestTaskTable(t *testing.T) {
	out := TaskTable([]domain.Task{
		{ID: 1, Name: "Design schema", Status: domain.StatusCompleted, StartDate: datePtr("2024-03-01"), DueDate: datePtr("2024-03-05")},
		{ID: 2, Name: "Implement API", Status: domain.StatusInProgress},
	})

	assert.Contains(t, out, "Design schema")
	assert.Contains(t, out, "Mar 1, 2024")
	assert.Contains(t, out, "in-progress")
	assert.Contains(t, out, "—")

	assert.Equal(t, "No tasks found.", TaskTable(nil))
}

func TestProjectTableDegradedRow(t *testing.T) {
	days := 15
	out := ProjectTable([]domain.ProjectMetrics{
		{
			Project:           domain.Project{ID: 1, Name: "Healthy"},
			TaskCount:         4,
			EarliestStartDate: datePtr("2024-03-05"),
			LatestEndDate:     datePtr("2024-03-20"),
			DurationDays:      &days,
		},
		{Project: domain.Project{ID: 2, Name: "Degraded"}},
	})

	assert.Contains(t, out, "Healthy")
	assert.Contains(t, out, "15")
	assert.Contains(t, out, "Degraded")
	// Degraded rows render with placeholders, not zeros pretending to be data
	lines := strings.Split(out, "\n")
	var degradedLine string
	for _, l := range lines {
		if strings.Contains(l, "Degraded") {
			degradedLine = l
		}
	}
	assert.Contains(t, degradedLine, "—")
}

func TestTree(t *testing.T) {
	g := graph.Build([]domain.Task{
		{ID: 1, Name: "Epic"},
		{ID: 2, Name: "Subtask A", ParentTaskID: intPtr(1)},
		{ID: 3, Name: "Subtask B", ParentTaskID: intPtr(1)},
		{ID: 4, Name: "Standalone"},
	})

	out := Tree(g)
	assert.Contains(t, out, "#1 Epic")
	assert.Contains(t, out, "├─ ")
	assert.Contains(t, out, "└─ ")
	assert.Contains(t, out, "Standalone")
}

func TestPathList(t *testing.T) {
	g := graph.Build([]domain.Task{
		{ID: 1, Name: "Foundation"},
		{ID: 2, Name: "Walls", DependsOn: []int{1}},
	})

	out := PathList(g.PrerequisitePath(2))
	assert.Contains(t, out, " 1. ")
	assert.Contains(t, out, "#2 Walls")
	assert.Contains(t, out, "#1 Foundation")

	assert.Equal(t, "No tasks.", PathList(nil))
}

func TestGantt(t *testing.T) {
	tl := schedule.BuildTimeline([]domain.Task{
		{ID: 1, Name: "Build", Status: domain.StatusInProgress, StartDate: datePtr("2024-03-05"), DueDate: datePtr("2024-03-15")},
		{ID: 2, Name: "Undated", Status: domain.StatusPlanned},
	})

	out := Gantt(tl)
	assert.Contains(t, out, "Timeline")
	assert.Contains(t, out, "Build")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "1 task(s) without both dates not shown")
}

func TestGanttEmpty(t *testing.T) {
	out := Gantt(schedule.BuildTimeline([]domain.Task{{ID: 1, Name: "Undated"}}))
	assert.Contains(t, out, "No scheduled tasks to chart (1 total).")
}
