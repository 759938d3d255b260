package graph

// PrerequisitePath returns every task that must logically precede or
// contain id: a depth-first walk over prerequisite edges then the parent
// edge, starting from id itself. The start task comes first; each task
// appears at most once, in first-visited order. The visited set also makes
// the walk terminate on cyclic input. Unknown ids yield an empty path.
func (g *Graph) PrerequisitePath(id int) []*EnrichedTask {
	start := g.tasks[id]
	if start == nil {
		return nil
	}

	visited := make(map[int]bool)
	var path []*EnrichedTask

	var walk func(et *EnrichedTask)
	walk = func(et *EnrichedTask) {
		if visited[et.ID] {
			return
		}
		visited[et.ID] = true
		path = append(path, et)

		for _, depID := range et.PrerequisiteIDs {
			walk(g.tasks[depID])
		}
		if et.ParentTaskID != nil {
			if parent, ok := g.tasks[*et.ParentTaskID]; ok {
				walk(parent)
			}
		}
	}

	walk(start)
	return path
}

// DependentTasks returns every task affected if id slips: a depth-first
// walk over dependent edges then child edges, excluding id itself. Each
// newly discovered task is recursed into before its next sibling, with the
// same visited-set dedup and cycle guard. Unknown ids or tasks with no
// downstream relations yield an empty result.
func (g *Graph) DependentTasks(id int) []*EnrichedTask {
	start := g.tasks[id]
	if start == nil {
		return nil
	}

	visited := map[int]bool{id: true}
	var affected []*EnrichedTask

	var walk func(et *EnrichedTask)
	var visit func(nextID int)
	visit = func(nextID int) {
		next := g.tasks[nextID]
		if visited[next.ID] {
			return
		}
		visited[next.ID] = true
		affected = append(affected, next)
		walk(next)
	}
	walk = func(et *EnrichedTask) {
		for _, depID := range et.DependentIDs {
			visit(depID)
		}
		for _, childID := range et.ChildIDs {
			visit(childID)
		}
	}

	walk(start)
	return affected
}
