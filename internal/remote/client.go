// Package remote implements the Gateway contract over HTTP against the
// planner backend's REST API. Transport failures and server status codes
// map onto the shared error kinds so callers branch with errors.Is and
// never inspect status codes themselves.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// DefaultTimeout bounds every request when the config does not set one.
const DefaultTimeout = 15 * time.Second

// TokenSource supplies the bearer token for authenticated calls. ok is
// false when the device holds no access token.
type TokenSource func() (token string, ok bool)

// Config wires a Client.
type Config struct {
	// BaseURL is the backend root, e.g. "https://api.example.edu".
	BaseURL string

	// Token supplies bearer credentials for authenticated endpoints.
	Token TokenSource

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// HTTPClient overrides the transport, for tests. When set, Timeout is
	// the caller's problem.
	HTTPClient *http.Client

	Logger *slog.Logger
}

// Compile-time interface check: Client must implement Gateway.
var _ types.Gateway = (*Client)(nil)

// Client talks to the planner backend.
type Client struct {
	baseURL string
	token   TokenSource
	http    *http.Client
	log     *slog.Logger
}

// NewClient builds a Client from config.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	token := cfg.Token
	if token == nil {
		token = func() (string, bool) { return "", false }
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   token,
		http:    httpClient,
		log:     log,
	}
}

// RegisterGuestSession announces a locally minted guest token.
func (c *Client) RegisterGuestSession(ctx context.Context, sessionID string) error {
	body := map[string]string{"session_id": sessionID}
	var resp struct {
		SessionID string `json:"session_id"`
		IsNew     bool   `json:"is_new"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/guest/session", body, &resp, false); err != nil {
		return err
	}
	c.log.Debug("guest session registered", "session_id", resp.SessionID, "is_new", resp.IsNew)
	return nil
}

// MigrateGuestSession asks the backend to adopt its guest-session rows into
// the account and reports the moved counts.
func (c *Client) MigrateGuestSession(ctx context.Context, sessionID, userID string) (types.MigrationCounts, error) {
	path := "/api/guest/migrate/" + url.PathEscape(sessionID) + "?user_id=" + url.QueryEscape(userID)
	var counts types.MigrationCounts
	if err := c.do(ctx, http.MethodPost, path, nil, &counts, true); err != nil {
		return types.MigrationCounts{}, err
	}
	return counts, nil
}

// Tasks lists the account's tasks. The backend wraps the list in an
// envelope with a total count.
func (c *Client) Tasks(ctx context.Context) ([]*types.Task, error) {
	var resp struct {
		Tasks []json.RawMessage `json:"tasks"`
		Total int               `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tasks/", nil, &resp, true); err != nil {
		return nil, err
	}
	return decodeTasks(resp.Tasks)
}

// Courses lists the account's courses. The backend returns a bare array.
func (c *Client) Courses(ctx context.Context) ([]*types.Course, error) {
	var raw []json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/courses/", nil, &raw, true); err != nil {
		return nil, err
	}
	return decodeCourses(raw)
}

// CreateTask stores a task remotely and returns the persisted record.
func (c *Client) CreateTask(ctx context.Context, task *types.Task) (*types.Task, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/api/tasks/", task, &raw, true); err != nil {
		return nil, err
	}
	return decodeTask(raw)
}

// CreateCourse stores a course remotely and returns the persisted record.
func (c *Client) CreateCourse(ctx context.Context, course *types.Course) (*types.Course, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/api/courses/", course, &raw, true); err != nil {
		return nil, err
	}
	return decodeCourse(raw)
}

// CompleteTask marks a remote task completed.
func (c *Client) CompleteTask(ctx context.Context, taskID string) (*types.Task, error) {
	path := "/api/tasks/" + url.PathEscape(taskID) + "/complete"
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, path, nil, &raw, true); err != nil {
		return nil, err
	}
	return decodeTask(raw)
}

// do runs one JSON request/response cycle. authed requests fail fast with
// ErrUnauthorized when no token is available rather than burning a round
// trip on a guaranteed 401.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, ok := c.token()
		if !ok {
			return fmt.Errorf("%w: no access token on device", types.ErrUnauthorized)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", types.ErrRemoteUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", types.ErrRemoteUnavailable, err)
	}

	if err := statusError(resp.StatusCode, respBody); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// statusError maps an HTTP status onto the shared error kinds.
func statusError(code int, body []byte) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: status %d: %s", types.ErrUnauthorized, code, detail(body))
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: status %d: %s", types.ErrNotFound, code, detail(body))
	case code >= 500:
		return fmt.Errorf("%w: status %d: %s", types.ErrRemoteUnavailable, code, detail(body))
	default:
		return fmt.Errorf("remote error: status %d: %s", code, detail(body))
	}
}

// detail pulls the message out of a {"detail": "..."} error body, falling
// back to the raw body.
func detail(body []byte) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &e) == nil && e.Detail != "" {
		return e.Detail
	}
	return strings.TrimSpace(string(body))
}
