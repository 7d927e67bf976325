package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniconnect/uniconnect-cli/internal/logging"
)

// ---- helpers ----

type fakeCreds struct {
	token       string
	invalidated int
}

func (f *fakeCreds) Token() string { return f.token }

func (f *fakeCreds) Invalidate(ctx context.Context) {
	f.invalidated++
	f.token = ""
}

func quietLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.HandlerFunc, creds *fakeCreds) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, creds, quietLogger()), srv
}

// ---- tests ----

func TestDo_AttachesBearerCredentialAndRequestID(t *testing.T) {
	var gotAuth, gotReqID, gotContentType string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}, &fakeCreds{token: "abc123"})

	require.NoError(t, c.Get(context.Background(), "/api/users/me", nil))

	assert.Equal(t, "Bearer abc123", gotAuth)
	assert.NotEmpty(t, gotReqID)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDo_NoAuthorizationWhenAnonymous(t *testing.T) {
	var sawAuthHeader bool
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{}`))
	}, &fakeCreds{})

	require.NoError(t, c.Get(context.Background(), "/api/events", nil))
	assert.False(t, sawAuthHeader)
}

func TestDo_ContentTypeCanBeOverridden(t *testing.T) {
	var gotContentType string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}, &fakeCreds{})

	err := c.Do(context.Background(), http.MethodPost, "/api/upload", nil, nil,
		map[string]string{"Content-Type": "text/plain"})
	require.NoError(t, err)
	assert.Equal(t, "text/plain", gotContentType)
}

func TestDo_NormalizesHTTPErrorWithServerMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "Not found"}`))
	}, &fakeCreds{})

	err := c.Get(context.Background(), "/api/events/nope", nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not found", apiErr.Message)
	assert.JSONEq(t, `{"error": "Not found"}`, string(apiErr.Payload))
	assert.False(t, apiErr.IsTransport())
}

func TestDo_NormalizesHTTPErrorWithoutErrorField(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}, &fakeCreds{})

	err := c.Get(context.Background(), "/api/events", nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "HTTP error: status 500", apiErr.Message)
	assert.Nil(t, apiErr.Payload)
}

func TestDo_TransportFailureHasStatusCodeZero(t *testing.T) {
	creds := &fakeCreds{}
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, creds)
	srv.Close() // no response will ever be received

	err := c.Get(context.Background(), "/api/events", nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.True(t, apiErr.IsTransport())
	assert.Zero(t, creds.invalidated)
}

func TestDo_MalformedSuccessBodyIsTransportError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"broken`))
	}, &fakeCreds{})

	var out map[string]any
	err := c.Get(context.Background(), "/api/events", &out)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "parse response")
}

func TestDo_AuthRejectionInvalidatesCredentialBeforeReturning(t *testing.T) {
	creds := &fakeCreds{token: "expired123"}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "token expired"}`))
	}, creds)

	err := c.Get(context.Background(), "/api/teams", nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsAuthRejected())
	assert.Equal(t, "token expired", apiErr.Message)
	assert.Equal(t, 1, creds.invalidated)
	assert.Empty(t, creds.token)
}

func TestDo_RequestBodyIsSerializedJSON(t *testing.T) {
	var gotBody []byte
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{}`))
	}, &fakeCreds{})

	body := map[string]any{"email": "asha@example.edu", "password": "secret"}
	require.NoError(t, c.Post(context.Background(), "/api/users/login", body, nil))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "asha@example.edu", decoded["email"])
}

func TestDo_EmptySuccessBodyLeavesOutUntouched(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, &fakeCreds{})

	var out map[string]any
	require.NoError(t, c.Delete(context.Background(), "/api/teams/t1", &out))
	assert.Nil(t, out)
}
