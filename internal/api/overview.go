package api

import (
	"context"
	"sync"

	"github.com/fsabado/management-app-demo/internal/domain"
	"github.com/fsabado/management-app-demo/internal/schedule"
)

// ProjectOverview lists every project and computes its metrics, fetching
// the per-project task lists in parallel. A failed task fetch degrades
// that project to zero metrics and logs a warning; the rest of the batch
// is unaffected. Results keep the project listing order.
func (c *Client) ProjectOverview(ctx context.Context) ([]domain.ProjectMetrics, error) {
	projects, err := c.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	overview := make([]domain.ProjectMetrics, len(projects))
	var wg sync.WaitGroup
	for i, p := range projects {
		wg.Add(1)
		go func(i int, p domain.Project) {
			defer wg.Done()
			tasks, err := c.ListProjectTasks(ctx, p.ID)
			if err != nil {
				c.logger.Warn("task fetch failed, showing zero metrics",
					"project", p.ID, "err", err)
				overview[i] = schedule.ComputeProjectMetrics(p, nil)
				return
			}
			overview[i] = schedule.ComputeProjectMetrics(p, tasks)
		}(i, p)
	}
	wg.Wait()

	return overview, nil
}
