// Package llm holds the chat completion client the assistant uses to turn a
// wishlist summary and a question into an answer.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/showrack/showrack/pkg/errors"
	"github.com/showrack/showrack/pkg/httpclient"
)

const upstreamName = "language model"

// Client generates text from a system instruction and a user prompt.
type Client interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
}

// Config holds the settings of an OpenAI-compatible completion endpoint.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// HTTPClient calls an OpenAI-compatible /v1/chat/completions endpoint.
type HTTPClient struct {
	cfg  Config
	http *httpclient.CircuitBreakerClient
	log  *slog.Logger
}

// NewHTTPClient builds the completion client.
func NewHTTPClient(cfg Config, hc *httpclient.CircuitBreakerClient, log *slog.Logger) *HTTPClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &HTTPClient{cfg: cfg, http: hc, log: log}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateText sends one completion request. Any transport failure, non-200
// status, or empty completion surfaces as an upstream-unavailable error.
func (c *HTTPClient) GenerateText(ctx context.Context, system, user string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return "", apperrors.Unavailable(upstreamName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", apperrors.Unavailable(upstreamName,
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperrors.Unavailable(upstreamName, fmt.Errorf("decode response: %w", err))
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", apperrors.Unavailable(upstreamName, fmt.Errorf("empty completion"))
	}
	return out.Choices[0].Message.Content, nil
}
