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

	"github.com/google/uuid"
	"github.com/uniconnect/uniconnect-cli/internal/logging"
)

// CredentialSource supplies the bearer credential attached to outgoing
// requests and accepts the invalidation signal when the backend rejects it.
// The session store satisfies this interface.
type CredentialSource interface {
	// Token returns the current credential, or "" when anonymous. It is read
	// synchronously at request-construction time.
	Token() string

	// Invalidate is called, before the error is returned to the caller, when
	// a request comes back with status 401.
	Invalidate(ctx context.Context)
}

// Client is the one component that issues HTTP calls to the backend. The base
// URL is fixed at construction for the process lifetime. The client performs
// no retries, queuing or caching; that is the caller's business.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
	log     logging.Logger
}

func NewClient(baseURL string, timeout time.Duration, creds CredentialSource, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log,
	}
}

// errorBody is the error envelope the backend uses for non-2xx responses.
type errorBody struct {
	Error string `json:"error"`
}

// Do issues a request and decodes the JSON response into out (ignored when out
// is nil). Content-Type defaults to application/json and can be overridden via
// extra. Every failure is returned as an *APIError.
func (c *Client) Do(ctx context.Context, method, path string, body any, out any, extra map[string]string) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return transportError("encode request body: %v", err)
		}
		reqBody = bytes.NewReader(b)
	}

	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return transportError("build request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range extra {
		req.Header.Set(k, v)
	}
	// The credential is read here, at construction time, so a concurrent
	// logout cannot produce a request with a half-cleared header.
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return transportError("%v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError("read response: %v", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.httpError(ctx, resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return transportError("parse response: %v", err)
		}
	}
	return nil
}

// httpError normalizes a non-2xx response. On 401 the session is invalidated
// before the error propagates, so no caller can observe the rejection while
// still believing the user is logged in.
func (c *Client) httpError(ctx context.Context, status int, data []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    fmt.Sprintf("HTTP error: status %d", status),
	}

	if json.Valid(data) {
		apiErr.Payload = json.RawMessage(append([]byte(nil), data...))
		var eb errorBody
		if err := json.Unmarshal(data, &eb); err == nil && eb.Error != "" {
			apiErr.Message = eb.Error
		}
	}

	if status == http.StatusUnauthorized {
		c.creds.Invalidate(ctx)
	}

	return apiErr
}

// Get issues a GET request to path and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out, nil)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out, nil)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out, nil)
}
