package render

import (
	"fmt"
	"strings"

	"github.com/fsabado/management-app-demo/internal/graph"
)

// Tree renders the parent/child forest rooted at the graph's parentless
// tasks. Cyclic parent links are cut at the revisit point.
func Tree(g *graph.Graph) string {
	roots := g.Roots()
	if len(roots) == 0 {
		return "No root tasks."
	}

	var sb strings.Builder
	visited := make(map[int]bool)
	for _, root := range roots {
		writeNode(&sb, g, root, "", visited)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, g *graph.Graph, et *graph.EnrichedTask, indent string, visited map[int]bool) {
	if visited[et.ID] {
		fmt.Fprintf(sb, "%s\n", Dim(fmt.Sprintf("#%d (already shown)", et.ID)))
		return
	}
	visited[et.ID] = true

	fmt.Fprintf(sb, "%s %s %s\n", StatusIcon(et.Status), Bold(fmt.Sprintf("#%d", et.ID)), et.Name)
	children := g.Children(et.ID)
	for i, child := range children {
		branch := "├─ "
		childIndent := indent + "│  "
		if i == len(children)-1 {
			branch = "└─ "
			childIndent = indent + "   "
		}
		sb.WriteString(indent + Dim(branch))
		writeNode(sb, g, child, childIndent, visited)
	}
}

// PathList renders a prerequisite path or impact set as a numbered list
// with status and dates.
func PathList(tasks []*graph.EnrichedTask) string {
	if len(tasks) == 0 {
		return "No tasks."
	}

	var sb strings.Builder
	for i, et := range tasks {
		fmt.Fprintf(&sb, "%2d. %s %s %s  %s\n",
			i+1,
			StatusIcon(et.Status),
			Bold(fmt.Sprintf("#%d", et.ID)),
			et.Name,
			Dim(fmt.Sprintf("%s → %s", FormatDate(et.StartDate), FormatDate(et.DueDate))),
		)
	}
	return sb.String()
}
