package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// manages HTTP requests to the MorozAI REST API
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// creates a client for endpoint, falling back to MOROZAI_API_ENDPOINT
// and then to the local default
func New(endpoint string) *Client {
	if endpoint == "" {
		endpoint = os.Getenv("MOROZAI_API_ENDPOINT")
	}
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// asks the service to generate code for prompt. maxTokens <= 0 leaves
// the server default in place.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int) (*GenerateResponse, error) {
	query := url.Values{}
	query.Set("prompt", prompt)
	if maxTokens > 0 {
		query.Set("max_tokens", strconv.Itoa(maxTokens))
	}

	var result GenerateResponse
	if err := c.do(ctx, http.MethodPost, "/ai_gen?"+query.Encode(), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) Stats(ctx context.Context) (*StatsResponse, error) {
	var result StatsResponse
	if err := c.do(ctx, http.MethodGet, "/stats", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var result HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// handle error responses
	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, errResp.Detail)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
