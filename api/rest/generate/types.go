package generate

import (
	"context"
	"time"
)

// minimum number of non-whitespace characters a prompt must carry
const minPromptLength = 3

type CodeGenerator interface {
	GenerateCode(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// best-effort relay told about successful generations
type Notifier interface {
	IsRunning() bool
	SendGenerationNotification(ctx context.Context, prompt, result string) error
}

// runs work detached from the request
type TaskRunner interface {
	Go(name string, fn func(ctx context.Context) error) bool
}

type Counters interface {
	IncRequests()
	IncSuccesses()
	IncErrors()
	ObserveGeneration(d time.Duration, outcome string)
}

type Options struct {
	// used when the request carries no max_tokens; zero defers to the generator
	DefaultMaxTokens int

	// upper bound accepted for max_tokens
	MaxTokensLimit int
}

// query parameters of POST /ai_gen
type Request struct {
	Prompt    string `form:"prompt"`
	MaxTokens *int   `form:"max_tokens" binding:"omitempty,min=1"`
}

// Response represents a successful code generation
type Response struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
