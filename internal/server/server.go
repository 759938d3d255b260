// Package server exposes the core's derived views as read-only JSON
// endpoints. Every request fetches fresh records from the upstream API and
// recomputes the view; nothing is cached across requests.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fsabado/management-app-demo/internal/api"
	"github.com/fsabado/management-app-demo/internal/graph"
	"github.com/fsabado/management-app-demo/internal/schedule"
)

// Server serves the JSON view endpoints.
type Server struct {
	client *api.Client
	logger *log.Logger
}

// New creates a Server backed by the given upstream client.
func New(client *api.Client, logger *log.Logger) *Server {
	return &Server{client: client, logger: logger}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/projects", s.withCORS(s.handleProjects))
	mux.HandleFunc("/api/projects/", s.withCORS(s.handleProjectSubresource))
	mux.HandleFunc("/api/tasks/", s.withCORS(s.handleTaskSubresource))
	return mux
}

// Start listens on port and serves in the background, returning the base
// URL.
func (s *Server) Start(port int) (string, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return "", fmt.Errorf("listen on port %d: %w", port, err)
	}
	go http.Serve(ln, s.Handler())
	return fmt.Sprintf("http://localhost:%d", port), nil
}

// withCORS answers preflight and marks API responses for cross-origin use.
// The original deployment sat behind a CORS proxy; here the server answers
// for itself.
func (s *Server) withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	overview, err := s.client.ProjectOverview(r.Context())
	if err != nil {
		s.upstreamError(w, err)
		return
	}
	s.writeJSON(w, overview)
}

// handleProjectSubresource routes /api/projects/{id}/{view}.
func (s *Server) handleProjectSubresource(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/projects/")
	parts := strings.SplitN(rest, "/", 2)
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}
	view := ""
	if len(parts) == 2 {
		view = parts[1]
	}

	tasks, err := s.client.ListProjectTasks(r.Context(), id)
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		s.upstreamError(w, err)
		return
	}
	// An unknown project id is not a fault: every view collapses to its
	// empty form over a zero-task list.

	switch view {
	case "tasks":
		s.writeJSON(w, graph.Build(tasks).Tasks())
	case "graph":
		s.writeJSON(w, toGraphResponse(graph.Build(tasks)))
	case "timeline":
		s.writeJSON(w, schedule.BuildTimeline(tasks))
	case "tree":
		s.writeJSON(w, nonNil(graph.Build(tasks).Roots()))
	default:
		http.Error(w, "unknown view", http.StatusNotFound)
	}
}

// handleTaskSubresource routes /api/tasks/{id}/{view}. The task's project
// supplies the traversal scope.
func (s *Server) handleTaskSubresource(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
	parts := strings.SplitN(rest, "/", 2)
	id, err := strconv.Atoi(parts[0])
	if err != nil || len(parts) != 2 {
		http.Error(w, "invalid task path", http.StatusBadRequest)
		return
	}

	task, err := s.client.GetTask(r.Context(), id)
	if errors.Is(err, api.ErrNotFound) {
		// Unknown task ids yield an empty result, never a fault.
		s.writeJSON(w, []any{})
		return
	}
	if err != nil {
		s.upstreamError(w, err)
		return
	}
	tasks, err := s.client.ListProjectTasks(r.Context(), task.ProjectID)
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		s.upstreamError(w, err)
		return
	}
	g := graph.Build(tasks)

	switch parts[1] {
	case "path":
		s.writeJSON(w, nonNil(g.PrerequisitePath(id)))
	case "impact":
		s.writeJSON(w, nonNil(g.DependentTasks(id)))
	case "prerequisites":
		s.writeJSON(w, nonNil(g.Prerequisites(id)))
	case "dependents":
		s.writeJSON(w, nonNil(g.Dependents(id)))
	default:
		http.Error(w, "unknown view", http.StatusNotFound)
	}
}

// nonNil keeps empty results encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) upstreamError(w http.ResponseWriter, err error) {
	s.logger.Warn("upstream fetch failed", "err", err)
	http.Error(w, "upstream API unavailable", http.StatusBadGateway)
}
