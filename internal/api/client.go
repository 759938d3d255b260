// Package api is the HTTP client for the upstream management API. It only
// moves records: enrichment and derivation happen in the pure core
// packages, and the mutation calls carry no business logic.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/fsabado/management-app-demo/internal/domain"
)

// ErrNotFound reports that the upstream API has no record for the
// requested id. Callers can treat it as a first-class "no value" state
// rather than an availability failure.
var ErrNotFound = errors.New("not found")

// Client talks to the upstream management API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger attaches a logger for request warnings.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// unwrap locates the payload inside a response body. The demo API emits
// bare JSON arrays/objects on some endpoints and a {"data": ...} envelope
// on others.
func unwrap(body []byte) []byte {
	if data := gjson.GetBytes(body, "data"); data.Exists() {
		return []byte(data.Raw)
	}
	return body
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}
	if err := json.Unmarshal(unwrap(raw), out); err != nil {
		return fmt.Errorf("parse %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// ListProjects returns all projects.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.get(ctx, "/api/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns one project by id.
func (c *Client) GetProject(ctx context.Context, id int) (*domain.Project, error) {
	var project domain.Project
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d", id), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ListTasks returns every task across all projects.
func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.get(ctx, "/api/tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListProjectTasks returns the tasks belonging to one project.
func (c *Client) ListProjectTasks(ctx context.Context, projectID int) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d/tasks", projectID), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask returns one task by id.
func (c *Client) GetTask(ctx context.Context, id int) (*domain.Task, error) {
	var task domain.Task
	if err := c.get(ctx, fmt.Sprintf("/api/tasks/%d", id), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateProject passes a new project through to the API.
func (c *Client) CreateProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	var created domain.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProject passes project changes through to the API.
func (c *Client) UpdateProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	var updated domain.Project
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%d", p.ID), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProject removes a project upstream.
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d", id), nil, nil)
}

// CreateTask passes a new task through to the API.
func (c *Client) CreateTask(ctx context.Context, t domain.Task) (*domain.Task, error) {
	var created domain.Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", t, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTask passes task changes through to the API.
func (c *Client) UpdateTask(ctx context.Context, t domain.Task) (*domain.Task, error) {
	var updated domain.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", t.ID), t, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask removes a task upstream.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil)
}
