// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gateway calls the hosted model's Messages API. Each call is one
// synchronous request and is never retried.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pdiddy/mailwright/internal/metrics"
	"github.com/pdiddy/mailwright/pkg/types"
)

// Completer turns a prompt into the model's raw text reply.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Request is one completion call.
type Request struct {
	// Operation names the caller for metrics (e.g. "braindump").
	Operation string

	// Prompt is sent as the single user message.
	Prompt string

	// MaxTokens bounds the length of the reply.
	MaxTokens int
}

// Client is the Completer backed by the Messages API.
type Client struct {
	cfg    types.GatewayConfig
	client *http.Client
}

// NewClient returns a Client for cfg. A nil httpClient gets a fresh client
// with cfg.Timeout applied.
func NewClient(cfg types.GatewayConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg.WithDefaults(), client: httpClient}
}

// Model returns the model identifier sent with every call.
func (c *Client) Model() string {
	return c.cfg.Model
}

// messagesRequest is the request body for the Messages API.
type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the subset of the response envelope we read. Content
// stays raw so a malformed content field reads as a missing reply rather
// than an undecodable envelope.
type messagesResponse struct {
	Content json.RawMessage `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Complete sends req and returns the text of the first content block.
// A non-2xx reply yields a *StatusError; a reply without text in its first
// content block yields ErrUnexpectedFormat.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	text, status, err := c.do(ctx, req)
	metrics.RecordGatewayCall(req.Operation, status, time.Since(start))
	return text, err
}

func (c *Client) do(ctx context.Context, req Request) (string, string, error) {
	body, err := json.Marshal(messagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: req.MaxTokens,
		Messages:  []message{{Role: "user", Content: req.Prompt}},
	})
	if err != nil {
		return "", "error", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", "error", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.cfg.APIKey)
	httpReq.Header.Set("anthropic-version", c.cfg.Version)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", "error", fmt.Errorf("calling model API: %w", err)
	}
	defer resp.Body.Close()

	status := strconv.Itoa(resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return "", status, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var envelope messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", status, fmt.Errorf("decoding model response: %w", err)
	}

	text, ok := firstText(envelope.Content)
	if !ok {
		return "", status, ErrUnexpectedFormat
	}
	return text, status, nil
}

// firstText returns the text of the first content block. It reports false
// when content is not an array of blocks or the first block has no text.
func firstText(content json.RawMessage) (string, bool) {
	if len(content) == 0 {
		return "", false
	}
	var blocks []contentBlock
	if err := json.Unmarshal(content, &blocks); err != nil || len(blocks) == 0 {
		return "", false
	}
	return blocks[0].Text, blocks[0].Text != ""
}
