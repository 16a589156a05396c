package llm

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/morozai/core/internal/logger"
)

// owns the loaded model for the lifetime of the process.
// concurrent Generate calls share the backend; it must be safe for concurrent use.
type Provider struct {
	backend Backend
	once    sync.Once
	ready   atomic.Bool
}

func NewProvider(backend Backend) *Provider {
	return &Provider{backend: backend}
}

// loads the model at most once. a failure is logged and leaves the
// provider permanently unready; there is no retry.
func (p *Provider) Initialize(ctx context.Context) {
	p.once.Do(func() {
		start := time.Now()

		logger.Info("loading model",
			"model", p.backend.Model(),
			"backend", p.backend.Name(),
		)

		if err := p.backend.Load(ctx); err != nil {
			logger.ErrorErr(err, "failed to load model",
				"model", p.backend.Model(),
				"backend", p.backend.Name(),
			)
			return
		}

		p.ready.Store(true)

		logger.Info("model loaded",
			"model", p.backend.Model(),
			"duration", time.Since(start).String(),
		)
	})
}

func (p *Provider) Ready() bool {
	return p.ready.Load()
}

// generates code for prompt, producing at most maxTokens new tokens
func (p *Provider) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if !p.ready.Load() {
		return "", ErrNotReady
	}

	if maxTokens <= 0 {
		maxTokens = DefaultMaxNewTokens
	}

	log := logger.FromContext(ctx)
	start := time.Now()
	enhanced := BuildPrompt(prompt)

	text, err := p.backend.Complete(ctx, CompletionRequest{
		Prompt:         enhanced,
		MaxNewTokens:   maxTokens,
		Temperature:    Temperature,
		TopP:           TopP,
		TruncateTokens: MaxInputTokens,
	})
	if err != nil {
		log.Error("code generation failed",
			"error", err,
			"model", p.backend.Model(),
			"duration", time.Since(start).String(),
		)
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	result := StripPrompt(text, enhanced)

	log.Info("code generated",
		"model", p.backend.Model(),
		"max_tokens", maxTokens,
		"duration", time.Since(start).String(),
	)

	return result, nil
}
