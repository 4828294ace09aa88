package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the calendar backend's REST surface.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given server base URL, e.g.
// "http://localhost:5000". token is optional and sent as a bearer credential.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return respBody, nil
}

// GetEvents returns all events for the signed-in user.
func (c *Client) GetEvents(ctx context.Context) ([]Event, error) {
	data, err := c.doRequest(ctx, http.MethodGet, "/api/events", nil)
	if err != nil {
		return nil, err
	}
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("unmarshal events: %w", err)
	}
	return events, nil
}

// CreateEvent creates an event and returns the server's copy, including the
// assigned id.
func (c *Client) CreateEvent(ctx context.Context, ev Event) (Event, error) {
	data, err := c.doRequest(ctx, http.MethodPost, "/api/events", ev)
	if err != nil {
		return Event{}, err
	}
	var created Event
	if err := json.Unmarshal(data, &created); err != nil {
		return Event{}, fmt.Errorf("unmarshal created event: %w", err)
	}
	return created, nil
}

// UpdateEvent replaces the event's fields and returns the server's copy.
func (c *Client) UpdateEvent(ctx context.Context, id int, ev Event) (Event, error) {
	data, err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/events/%d", id), ev)
	if err != nil {
		return Event{}, err
	}
	var updated Event
	if err := json.Unmarshal(data, &updated); err != nil {
		return Event{}, fmt.Errorf("unmarshal updated event: %w", err)
	}
	return updated, nil
}

// DeleteEvent removes the event.
func (c *Client) DeleteEvent(ctx context.Context, id int) error {
	_, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/events/%d", id), nil)
	return err
}

// GetTasks returns all tasks for the signed-in user.
func (c *Client) GetTasks(ctx context.Context) ([]Task, error) {
	data, err := c.doRequest(ctx, http.MethodGet, "/api/tasks", nil)
	if err != nil {
		return nil, err
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("unmarshal tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a task and returns the server's copy.
func (c *Client) CreateTask(ctx context.Context, task Task) (Task, error) {
	data, err := c.doRequest(ctx, http.MethodPost, "/api/tasks", task)
	if err != nil {
		return Task{}, err
	}
	var created Task
	if err := json.Unmarshal(data, &created); err != nil {
		return Task{}, fmt.Errorf("unmarshal created task: %w", err)
	}
	return created, nil
}

// UpdateTask replaces the task's fields and returns the server's copy.
func (c *Client) UpdateTask(ctx context.Context, id int, task Task) (Task, error) {
	data, err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), task)
	if err != nil {
		return Task{}, err
	}
	var updated Task
	if err := json.Unmarshal(data, &updated); err != nil {
		return Task{}, fmt.Errorf("unmarshal updated task: %w", err)
	}
	return updated, nil
}

// DeleteTask removes the task.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	_, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil)
	return err
}

// GetUser returns the signed-in user.
func (c *Client) GetUser(ctx context.Context) (User, error) {
	data, err := c.doRequest(ctx, http.MethodGet, "/api/user", nil)
	if err != nil {
		return User{}, err
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return User{}, fmt.Errorf("unmarshal user: %w", err)
	}
	return user, nil
}
