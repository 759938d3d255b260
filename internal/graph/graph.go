// Package graph enriches a flat task list into a queryable dependency and
// hierarchy structure. Relations are stored as id references resolved
// through a shared arena, so cyclic input cannot create ownership problems.
package graph

import (
	"github.com/fsabado/management-app-demo/internal/domain"
)

// EnrichedTask is a task plus its derived relations. The id lists reference
// other entries in the owning Graph; resolve them through the arena rather
// than holding direct pointers.
type EnrichedTask struct {
	domain.Task
	PrerequisiteIDs []int `json:"prerequisiteIds"`
	DependentIDs    []int `json:"dependentIds"`
	ChildIDs        []int `json:"childIds"`
}

// Graph is the arena: one entry per distinct input task id, plus the input
// order for deterministic iteration. It is a recomputed projection; rebuild
// it whenever the source task list changes.
type Graph struct {
	tasks map[int]*EnrichedTask
	order []int
}

// Build enriches tasks in two passes. Pass 1 indexes every task with empty
// relations; pass 2 appends prerequisite/dependent pairs and parent/child
// links for every edge that resolves within the set. Dangling DependsOn and
// ParentTaskID references are dropped silently. Duplicate ids are a
// data-quality violation; the later occurrence owns the arena entry.
func Build(tasks []domain.Task) *Graph {
	g := &Graph{
		tasks: make(map[int]*EnrichedTask, len(tasks)),
		order: make([]int, 0, len(tasks)),
	}

	for _, t := range tasks {
		if _, seen := g.tasks[t.ID]; !seen {
			g.order = append(g.order, t.ID)
		}
		g.tasks[t.ID] = &EnrichedTask{Task: t}
	}

	for _, id := range g.order {
		et := g.tasks[id]
		for _, depID := range et.DependsOn {
			prereq, ok := g.tasks[depID]
			if !ok {
				continue
			}
			// Both directions of the edge land together, keeping
			// prerequisite and dependent lists mutually consistent.
			et.PrerequisiteIDs = append(et.PrerequisiteIDs, depID)
			prereq.DependentIDs = append(prereq.DependentIDs, id)
		}
		if et.ParentTaskID != nil {
			if parent, ok := g.tasks[*et.ParentTaskID]; ok {
				parent.ChildIDs = append(parent.ChildIDs, id)
			}
		}
	}

	return g
}

// Len returns the number of distinct tasks in the graph.
func (g *Graph) Len() int {
	return len(g.tasks)
}

// Get returns the enriched task for id, or nil if absent.
func (g *Graph) Get(id int) *EnrichedTask {
	return g.tasks[id]
}

// Tasks returns all enriched tasks in input order.
func (g *Graph) Tasks() []*EnrichedTask {
	out := make([]*EnrichedTask, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.tasks[id])
	}
	return out
}

// Resolve maps ids to enriched tasks, skipping any that are absent.
func (g *Graph) Resolve(ids []int) []*EnrichedTask {
	out := make([]*EnrichedTask, 0, len(ids))
	for _, id := range ids {
		if et, ok := g.tasks[id]; ok {
			out = append(out, et)
		}
	}
	return out
}

// Prerequisites returns the tasks id directly depends on.
func (g *Graph) Prerequisites(id int) []*EnrichedTask {
	if et := g.tasks[id]; et != nil {
		return g.Resolve(et.PrerequisiteIDs)
	}
	return nil
}

// Dependents returns the tasks that directly depend on id.
func (g *Graph) Dependents(id int) []*EnrichedTask {
	if et := g.tasks[id]; et != nil {
		return g.Resolve(et.DependentIDs)
	}
	return nil
}

// Children returns the tasks whose parent is id.
func (g *Graph) Children(id int) []*EnrichedTask {
	if et := g.tasks[id]; et != nil {
		return g.Resolve(et.ChildIDs)
	}
	return nil
}

// Roots returns the tasks with no parent, in input order. These are the
// forest roots for hierarchy rendering.
func (g *Graph) Roots() []*EnrichedTask {
	var roots []*EnrichedTask
	for _, id := range g.order {
		if et := g.tasks[id]; et.ParentTaskID == nil {
			roots = append(roots, et)
		}
	}
	return roots
}
