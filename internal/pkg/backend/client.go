package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adspro/dashboard-backend-go/internal/pkg/session"
)

var (
	ErrUnauthorized    = errors.New("session rejected by backend")
	ErrNetwork         = errors.New("backend request failed")
	ErrInvalidResponse = errors.New("backend returned an invalid response")
	ErrNoSession       = errors.New("no active session")
)

// APIError represents a non-2xx answer from the agency backend
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend API error [%d] %s %s: %s", e.StatusCode, e.Method, e.Path, e.Message)
}

// Unwrap lets callers match 401 answers with errors.Is(err, ErrUnauthorized).
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Revoker is told about tokens the backend refused.
type Revoker interface {
	Revoke(token string)
}

// Client talks JSON to the agency backend on behalf of a session
type Client struct {
	baseURL    string
	httpClient *http.Client
	revoker    Revoker
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithRevoker(r Revoker) Option {
	return func(c *Client) {
		c.revoker = r
	}
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, sess *session.Session, path string, query url.Values, out interface{}) error {
	return c.do(ctx, sess, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, sess *session.Session, path string, body, out interface{}) error {
	return c.do(ctx, sess, http.MethodPost, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, sess *session.Session, path string, body, out interface{}) error {
	return c.do(ctx, sess, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, sess *session.Session, path string, out interface{}) error {
	return c.do(ctx, sess, http.MethodDelete, path, nil, nil, out)
}

// do performs one request. A nil session sends no Authorization header (login).
func (c *Client) do(ctx context.Context, sess *session.Session, method, path string, query url.Values, body, out interface{}) error {
	if sess != nil && sess.Token() == "" {
		return ErrNoSession
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if sess != nil {
		req.Header.Set("Authorization", sess.AuthorizationHeader())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading %s %s: %w", ErrNetwork, method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && sess != nil {
		if c.revoker != nil {
			c.revoker.Revoke(sess.Token())
		}
		sess.Clear()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Message:    errorMessage(raw),
		}
		slog.Warn("Backend request rejected", "method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrInvalidResponse, method, path, err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return "Request failed"
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
