package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListTasks returns every task in server order.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var response ListResponse
	if err := c.Get(ctx, "/todos", &response); err != nil {
		return nil, err
	}
	if response.Todos == nil {
		return []Task{}, nil
	}
	return response.Todos, nil
}

// GetTask returns a single task by ID.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	var task Task
	if err := c.Get(ctx, "/todos/"+url.PathEscape(id), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a new task. The returned task carries the
// server-assigned ID.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var env taskEnvelope
	if err := c.Post(ctx, "/todos", req, &env); err != nil {
		return nil, err
	}
	if env.Task == nil || env.Task.ID == "" {
		return nil, newRequestError(http.MethodPost, "/todos", 0, "response is missing the created task id", nil)
	}
	return env.Task, nil
}

// UpdateTask updates an existing task.
func (c *Client) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*Task, error) {
	var env taskEnvelope
	if err := c.Put(ctx, "/todos/"+url.PathEscape(id), req, &env); err != nil {
		return nil, err
	}
	return env.Task, nil
}

// ToggleTask flips a task's completion on the server. The backend may answer
// with the updated task or a bare acknowledgement, so the task may be nil.
func (c *Client) ToggleTask(ctx context.Context, id string) (*Task, error) {
	var env taskEnvelope
	if err := c.Patch(ctx, "/todos/"+url.PathEscape(id)+"/toggle", nil, &env); err != nil {
		return nil, err
	}
	return env.Task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.Delete(ctx, "/todos/"+url.PathEscape(id))
}

// SearchTasks runs the server-side keyword search over title and description.
func (c *Client) SearchTasks(ctx context.Context, keyword string) ([]Task, error) {
	query := url.Values{}
	query.Set("keyword", keyword)

	var response SearchResponse
	if err := c.Get(ctx, "/todos/search", &response, WithQuery(query)); err != nil {
		return nil, err
	}
	if response.Results == nil {
		return []Task{}, nil
	}
	return response.Results, nil
}
