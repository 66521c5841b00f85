// Package todoapi implements the service.Service interface against the
// tracker backend's JSON API. The session cookie issued at login is attached
// to every request automatically and persisted to the config directory so
// the session survives restarts.
package todoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/service"
)

// APITimeout is the timeout for backend calls.
const APITimeout = 10 * time.Second

// Client implements service.Service over the backend's HTTP API.
type Client struct {
	base        *url.URL
	httpClient  *http.Client
	jar         http.CookieJar
	sessionPath string
	log         zerolog.Logger
}

// New creates a client for the configured server, loading any stored
// session cookie from the config directory.
func New(cfg *config.Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.ServerURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", cfg.ServerURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q", cfg.ServerURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		base:        base,
		httpClient:  &http.Client{Jar: jar},
		jar:         jar,
		sessionPath: cfg.SessionPath(),
		log:         logging.Get(),
	}
	c.loadSession()
	return c, nil
}

// NewForServer creates a client with no session persistence (for testing).
func NewForServer(serverURL string) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(serverURL, "/"))
	if err != nil {
		return nil, err
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		base:       base,
		httpClient: &http.Client{Jar: jar},
		jar:        jar,
		log:        logging.Get(),
	}, nil
}

// do issues one request. Non-2xx responses become a *Error carrying the
// status code and a message parsed from the body. A 204 yields a nil result
// without touching the body. No retries; failures surface verbatim.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("request timed out")
		}
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("backend request")

	if len(resp.Header.Values("Set-Cookie")) > 0 {
		c.saveSession()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// Signup implements service.Service.
func (c *Client) Signup(ctx context.Context, req service.SignupRequest) (service.User, error) {
	var user service.User
	err := c.do(ctx, http.MethodPost, "/auth/signup", req, &user)
	return user, err
}

// Login implements service.Service.
func (c *Client) Login(ctx context.Context, creds service.Credentials) (service.User, error) {
	var user service.User
	err := c.do(ctx, http.MethodPost, "/auth/login", creds, &user)
	return user, err
}

// CurrentUser implements service.Service.
func (c *Client) CurrentUser(ctx context.Context) (service.User, error) {
	var user service.User
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user)
	return user, err
}

// Logout implements service.Service. The stored session file is removed even
// when the backend call fails, so the client always ends up logged out
// locally.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.ClearSession()
	return err
}

// Dashboard implements service.Service.
func (c *Client) Dashboard(ctx context.Context) (service.Dashboard, error) {
	var d service.Dashboard
	err := c.do(ctx, http.MethodGet, "/dashboard", nil, &d)
	return d, err
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	err := c.do(ctx, http.MethodGet, "/todos", nil, &tasks)
	return tasks, err
}

// ListTasksByStatus implements service.Service.
func (c *Client) ListTasksByStatus(ctx context.Context, done bool) ([]service.Task, error) {
	var tasks []service.Task
	err := c.do(ctx, http.MethodGet, "/todos/status/"+strconv.FormatBool(done), nil, &tasks)
	return tasks, err
}

// TaskByID implements service.Service.
func (c *Client) TaskByID(ctx context.Context, id int64) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, http.MethodGet, "/todos/"+strconv.FormatInt(id, 10), nil, &task)
	return task, err
}

// TaskByTitle implements service.Service.
func (c *Client) TaskByTitle(ctx context.Context, title string) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, http.MethodGet, "/todos/title/"+url.PathEscape(title), nil, &task)
	return task, err
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, title string, done bool) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, http.MethodPost, "/todos", service.Task{Title: title, Status: done}, &task)
	return task, err
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, id int64, title string, done bool) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, http.MethodPut, "/todos/"+strconv.FormatInt(id, 10), service.Task{Title: title, Status: done}, &task)
	return task, err
}

// UpdateTaskByTitle implements service.Service.
func (c *Client) UpdateTaskByTitle(ctx context.Context, title, newTitle string, done bool) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, http.MethodPut, "/todos/title/"+url.PathEscape(title), service.Task{Title: newTitle, Status: done}, &task)
	return task, err
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+strconv.FormatInt(id, 10), nil, nil)
}

// DeleteTaskByTitle implements service.Service.
func (c *Client) DeleteTaskByTitle(ctx context.Context, title string) error {
	return c.do(ctx, http.MethodDelete, "/todos/title/"+url.PathEscape(title), nil, nil)
}
