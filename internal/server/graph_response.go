package server

import (
	"github.com/fsabado/management-app-demo/internal/graph"
)

// GraphNode is one task in the graph view payload.
type GraphNode struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	ParentID *int   `json:"parentId"`
}

// GraphEdge is a directed dependency edge, prerequisite to dependent.
type GraphEdge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// GraphStats summarizes the graph for display headers.
type GraphStats struct {
	TotalTasks int `json:"totalTasks"`
	TotalEdges int `json:"totalEdges"`
	RootTasks  int `json:"rootTasks"`
}

// GraphResponse is the normalized shape graph visualizers consume.
type GraphResponse struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
	Stats GraphStats  `json:"stats"`
}

func toGraphResponse(g *graph.Graph) GraphResponse {
	resp := GraphResponse{
		Nodes: make([]GraphNode, 0, g.Len()),
		Edges: []GraphEdge{},
	}

	for _, et := range g.Tasks() {
		resp.Nodes = append(resp.Nodes, GraphNode{
			ID:       et.ID,
			Name:     et.Name,
			Status:   string(et.Status),
			ParentID: et.ParentTaskID,
		})
		for _, preID := range et.PrerequisiteIDs {
			resp.Edges = append(resp.Edges, GraphEdge{From: preID, To: et.ID})
		}
	}

	resp.Stats = GraphStats{
		TotalTasks: g.Len(),
		TotalEdges: len(resp.Edges),
		RootTasks:  len(g.Roots()),
	}
	return resp
}
