package llm

import (
	"context"
	"errors"
)

// sampling parameters applied to every generation
const (
	Temperature         = 0.7
	TopP                = 0.9
	MaxInputTokens      = 512
	DefaultMaxNewTokens = 256
)

var (
	// returned by Generate when the model never finished loading
	ErrNotReady = errors.New("model is not loaded")

	// wraps any failure raised while the backend was producing output
	ErrGeneration = errors.New("code generation failed")
)

// a model runtime able to serve completions for one named model
type Backend interface {
	// backend kind, e.g. "tgi"
	Name() string

	// model identifier served by this backend
	Model() string

	// verifies the model is available; called once per process
	Load(ctx context.Context) error

	// runs sampling-based decoding and returns the raw decoded text
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// a single decoding call
type CompletionRequest struct {
	Prompt         string
	MaxNewTokens   int
	Temperature    float64
	TopP           float64
	TruncateTokens int
}
