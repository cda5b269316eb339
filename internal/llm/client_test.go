package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/showrack/showrack/pkg/errors"
	"github.com/showrack/showrack/pkg/httpclient"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cb := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpclient.Config{Timeout: 5 * time.Second, MaxRetries: 0}),
		httpclient.CircuitBreakerConfig{
			Name:         "llm-test",
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			FailureRatio: 1.0,
			MinRequests:  100,
		}, log)
	return NewHTTPClient(Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 5 * time.Second,
	}, cb, log)
}

func TestHTTPClient_GenerateText(t *testing.T) {
	var gotAuth, gotPath string
	var gotReq chatRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Watch more sci-fi."}}]}`))
	}))

	answer, err := client.GenerateText(context.Background(), "be helpful", "what next?")
	require.NoError(t, err)
	assert.Equal(t, "Watch more sci-fi.", answer)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "be helpful", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
}

func TestHTTPClient_GenerateText_Non200(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))

	_, err := client.GenerateText(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnavailable), "expected ErrUnavailable, got: %v", err)
}

func TestHTTPClient_GenerateText_EmptyCompletion(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))

	_, err := client.GenerateText(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnavailable), "expected ErrUnavailable, got: %v", err)
}
