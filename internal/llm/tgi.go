package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTGITimeout = 5 * time.Minute

type tgiGenerateRequest struct {
	Inputs     string        `json:"inputs"`
	Parameters tgiParameters `json:"parameters"`
}

type tgiParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	DoSample       bool    `json:"do_sample"`
	Truncate       int     `json:"truncate,omitempty"`
	ReturnFullText bool    `json:"return_full_text"`
}

type tgiGenerateResponse struct {
	GeneratedText string `json:"generated_text"`
}

type tgiInfoResponse struct {
	ModelID string `json:"model_id"`
}

type tgiErrorResponse struct {
	Error     string `json:"error"`
	ErrorType string `json:"error_type"`
}

type TGIConfig struct {
	Endpoint string // e.g., "http://localhost:8080"
	Model    string // e.g., "bigcode/starcoder"
	APIKey   string // optional bearer token
	Timeout  time.Duration
}

// talks to a Hugging Face text-generation-inference server
type TGIBackend struct {
	config     TGIConfig
	httpClient *http.Client
}

func NewTGIBackend(config TGIConfig) *TGIBackend {
	if config.Timeout == 0 {
		config.Timeout = defaultTGITimeout
	}

	config.Endpoint = strings.TrimRight(config.Endpoint, "/")

	return &TGIBackend{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

func (b *TGIBackend) Name() string {
	return "tgi"
}

func (b *TGIBackend) Model() string {
	return b.config.Model
}

// checks that the server is up and serves the configured model
func (b *TGIBackend) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.config.Endpoint+"/info", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	b.setHeaders(req)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach inference server: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return b.statusError(resp)
	}

	var info tgiInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return fmt.Errorf("failed to decode server info: %w", err)
	}

	if info.ModelID != b.config.Model {
		return fmt.Errorf("inference server serves model %q, expected %q", info.ModelID, b.config.Model)
	}

	return nil
}

func (b *TGIBackend) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	reqBody := tgiGenerateRequest{
		Inputs: req.Prompt,
		Parameters: tgiParameters{
			MaxNewTokens:   req.MaxNewTokens,
			Temperature:    req.Temperature,
			TopP:           req.TopP,
			DoSample:       true,
			Truncate:       req.TruncateTokens,
			ReturnFullText: true,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.config.Endpoint+"/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	b.setHeaders(httpReq)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", b.statusError(resp)
	}

	var genResp tgiGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return genResp.GeneratedText, nil
}

func (b *TGIBackend) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")

	if b.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.config.APIKey)
	}
}

// builds an error from a non-200 response, preferring the server's own message
func (b *TGIBackend) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body) //nolint:errcheck

	var errResp tgiErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("inference server returned status %d: %s", resp.StatusCode, errResp.Error)
	}

	return fmt.Errorf("inference server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
