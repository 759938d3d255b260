package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsabado/management-app-demo/internal/domain"
)

func datePtr(s string) *domain.Date {
	d := domain.MustParseDate(s)
	return &d
}

func datedTask(id int, start, due string) domain.Task {
	t := domain.Task{ID: id, ProjectID: 1, Name: "task", Status: domain.StatusPlanned}
	if start != "" {
		t.StartDate = datePtr(start)
	}
	if due != "" {
		t.DueDate = datePtr(due)
	}
	return t
}

func TestComputeProjectMetricsEmpty(t *testing.T) {
	p := domain.Project{ID: 1, Name: "Empty"}
	m := ComputeProjectMetrics(p, nil)

	assert.Equal(t, 0, m.TaskCount)
	assert.Nil(t, m.EarliestStartDate)
	assert.Nil(t, m.LatestEndDate)
	assert.Nil(t, m.DurationDays)
	assert.Equal(t, p, m.Project)
}

func TestComputeProjectMetrics(t *testing.T) {
	m := ComputeProjectMetrics(domain.Project{ID: 1, Name: "P"}, []domain.Task{
		datedTask(1, "2024-03-10", "2024-03-20"),
		datedTask(2, "2024-03-05", "2024-03-15"),
	})

	assert.Equal(t, 2, m.TaskCount)
	require.NotNil(t, m.EarliestStartDate)
	require.NotNil(t, m.LatestEndDate)
	require.NotNil(t, m.DurationDays)
	assert.Equal(t, "2024-03-05", m.EarliestStartDate.String())
	assert.Equal(t, "2024-03-20", m.LatestEndDate.String())
	assert.Equal(t, 15, *m.DurationDays)
}

func TestComputeProjectMetricsPartialDates(t *testing.T) {
	// Only due dates present: no start bound, no duration
	m := ComputeProjectMetrics(domain.Project{ID: 1}, []domain.Task{
		datedTask(1, "", "2024-03-15"),
		datedTask(2, "", "2024-03-25"),
	})

	assert.Equal(t, 2, m.TaskCount)
	assert.Nil(t, m.EarliestStartDate)
	require.NotNil(t, m.LatestEndDate)
	assert.Equal(t, "2024-03-25", m.LatestEndDate.String())
	assert.Nil(t, m.DurationDays)
}

func TestFilterTasksByDateRange(t *testing.T) {
	start := domain.MustParseDate("2024-03-10")
	end := domain.MustParseDate("2024-03-20")

	tasks := []domain.Task{
		datedTask(1, "2024-03-12", "2024-03-14"), // inside
		datedTask(2, "2024-03-01", "2024-03-11"), // due inside
		datedTask(3, "2024-03-19", "2024-04-02"), // start inside
		datedTask(4, "2024-03-01", "2024-04-01"), // spans the whole range
		datedTask(5, "2024-01-01", "2024-01-05"), // before
		datedTask(6, "2024-05-01", "2024-05-05"), // after
		datedTask(7, "", ""),                     // undated, always excluded
	}

	got := FilterTasksByDateRange(tasks, start, end)
	var ids []int
	for _, t := range got {
		ids = append(ids, t.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, ids)
}

func TestFilterTasksByDateRangeSpanOnly(t *testing.T) {
	// Neither endpoint inside the range, but the interval covers it
	start := domain.MustParseDate("2024-03-10")
	end := domain.MustParseDate("2024-03-12")

	got := FilterTasksByDateRange([]domain.Task{
		datedTask(1, "2024-03-01", "2024-03-31"),
	}, start, end)
	require.Len(t, got, 1)
}

func TestFilterTasksByDateRangeSingleDate(t *testing.T) {
	start := domain.MustParseDate("2024-03-10")
	end := domain.MustParseDate("2024-03-20")

	got := FilterTasksByDateRange([]domain.Task{
		datedTask(1, "2024-03-15", ""), // start only, inside
		datedTask(2, "", "2024-03-18"), // due only, inside
		datedTask(3, "2024-03-25", ""), // start only, outside
	}, start, end)

	var ids []int
	for _, t := range got {
		ids = append(ids, t.ID)
	}
	assert.Equal(t, []int{1, 2}, ids)
}

func TestUpcomingTasks(t *testing.T) {
	today := domain.Today()
	tasks := []domain.Task{
		{ID: 1, StartDate: datePtrOf(today.AddDays(3)), DueDate: datePtrOf(today.AddDays(5))},
		{ID: 2, StartDate: datePtrOf(today.AddDays(30)), DueDate: datePtrOf(today.AddDays(40))},
		{ID: 3},
	}

	got := UpcomingTasks(tasks, 14)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func datePtrOf(d domain.Date) *domain.Date { return &d }

func TestGroupTasksByDate(t *testing.T) {
	tasks := []domain.Task{
		datedTask(1, "2024-03-05", "2024-03-10"),
		datedTask(2, "", "2024-03-07"), // keyed by due date
		datedTask(3, "2024-03-05", ""), // same bucket as task 1
		datedTask(4, "", ""),           // omitted
	}

	groups := GroupTasksByDate(tasks)
	require.Len(t, groups, 2)

	assert.Equal(t, "2024-03-05", groups[0].Date.String())
	assert.Len(t, groups[0].Tasks, 2)
	assert.Equal(t, 1, groups[0].Tasks[0].ID)
	assert.Equal(t, 3, groups[0].Tasks[1].ID)

	assert.Equal(t, "2024-03-07", groups[1].Date.String())
	assert.Len(t, groups[1].Tasks, 1)
	assert.Equal(t, 2, groups[1].Tasks[0].ID)
}
