package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"mytodo/internal/model"
)

// APIError is a non-2xx response from the gateway.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.StatusCode, e.Body)
}

// Client is the REST client for the persistence gateway. It is a thin
// request/response boundary: no retries, no backoff, no caching. Every call
// takes a context and carries an X-Request-Id header for log correlation.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient is used by tests to inject an httptest-backed client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

// ListOptions narrows GetTodos. Zero values mean server defaults.
type ListOptions struct {
	Skip  int
	Limit int
	Sort  string
}

func (o ListOptions) query() string {
	q := url.Values{}
	if o.Skip > 0 {
		q.Set("skip", strconv.Itoa(o.Skip))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) GetTodos(ctx context.Context, opts ListOptions) ([]model.Todo, error) {
	var todos []model.Todo
	if err := c.do(ctx, http.MethodGet, "/todos"+opts.query(), nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *Client) GetTodo(ctx context.Context, id int) (model.Todo, error) {
	var todo model.Todo
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/todos/%d", id), nil, &todo)
	return todo, err
}

// CreateTodo posts the record sans id; the gateway assigns the id.
func (c *Client) CreateTodo(ctx context.Context, todo model.Todo) (model.Todo, error) {
	var created model.Todo
	todo.ID = 0
	err := c.do(ctx, http.MethodPost, "/todos", todo, &created)
	return created, err
}

// UpdateTodo sends the complete record; the gateway replaces it wholesale.
// Callers must merge their edits into a copy of the original, never send a
// partial patch.
func (c *Client) UpdateTodo(ctx context.Context, todo model.Todo) (model.Todo, error) {
	var updated model.Todo
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/todos/%d", todo.ID), todo, &updated)
	return updated, err
}

func (c *Client) DeleteTodo(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil, nil)
}

// ReorderTodos submits the full desired ordering as a list of todo ids.
func (c *Client) ReorderTodos(ctx context.Context, ids []int) error {
	body := map[string][]int{"todo_orders": ids}
	return c.do(ctx, http.MethodPut, "/todos/reorder", body, nil)
}

func (c *Client) GetProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) GetProject(ctx context.Context, id int) (model.Project, error) {
	var project model.Project
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, &project)
	return project, err
}

func (c *Client) CreateProject(ctx context.Context, project model.Project) (model.Project, error) {
	var created model.Project
	project.ID = 0
	err := c.do(ctx, http.MethodPost, "/projects", project, &created)
	return created, err
}

func (c *Client) UpdateProject(ctx context.Context, project model.Project) (model.Project, error) {
	var updated model.Project
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d", project.ID), project, &updated)
	return updated, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
