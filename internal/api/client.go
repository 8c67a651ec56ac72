// File: internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/vuhp/go-helpdesk/internal/logging"
)

// TokenSource supplies the bearer token for authenticated requests.
// An empty string means "no credential"; the header is omitted.
type TokenSource interface {
	Get() string
}

// Client issues requests against the helpdesk backend. It attaches the bearer
// header, encodes and decodes bodies, and maps failures onto the Error
// taxonomy. It never retries; retry policy belongs to callers that need it.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
	logger  logging.Logger
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, tokens TokenSource, logger logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		tokens:  tokens,
		logger:  logger,
	}
}

// detailBody is FastAPI's error envelope.
type detailBody struct {
	Detail string `json:"detail"`
}

// doJSON sends a JSON-bodied request and decodes a JSON response into out
// (skipped when out is nil).
func (c *Client) doJSON(ctx context.Context, method, path string, payload interface{}, authed bool, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &Error{Type: ErrTypeValidation, Detail: "invalid request payload", Cause: err}
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, body, "application/json", authed, out)
}

// doForm sends a form-encoded request, the shape the login endpoint expects.
func (c *Client) doForm(ctx context.Context, method, path string, form url.Values, out interface{}) error {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, method, path, body, "application/x-www-form-urlencoded", false, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, authed bool, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Type: ErrTypeNetwork, Detail: "failed to create request", Cause: err}
	}

	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authed {
		if token := c.tokens.Get(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", method, "path", path, "error", err)
		return &Error{Type: ErrTypeNetwork, Detail: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Type: ErrTypeNetwork, Detail: "failed to read response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(method, path, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Type: ErrTypeData, Status: resp.StatusCode, Detail: "unexpected response shape", Cause: err}
	}
	return nil
}

func (c *Client) statusError(method, path string, status int, raw []byte) error {
	var envelope detailBody
	_ = json.Unmarshal(raw, &envelope)
	detail := envelope.Detail
	if detail == "" {
		detail = strings.TrimSpace(string(raw))
	}

	c.logger.Debug("backend rejected request", "method", method, "path", path, "status", status)

	switch {
	case status == http.StatusUnauthorized:
		return &Error{Type: ErrTypeAuth, Status: status, Detail: detail}
	case status == http.StatusNotFound:
		return &Error{Type: ErrTypeNotFound, Status: status, Detail: detail}
	default:
		return &Error{Type: ErrTypeServer, Status: status, Detail: detail}
	}
}
