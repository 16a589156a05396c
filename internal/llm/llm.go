package llm

import (
	"fmt"

	"github.com/morozai/core/internal/config"
)

// creates the model backend selected by configuration
func NewBackend(cfg config.ModelConfig) (Backend, error) {
	switch cfg.Backend {
	case config.BackendTGI:
		return NewTGIBackend(TGIConfig{
			Endpoint: cfg.Endpoint,
			Model:    cfg.Name,
			APIKey:   cfg.APIKey,
			Timeout:  cfg.Timeout,
		}), nil
	case config.BackendOpenAI:
		return NewOpenAIBackend(OpenAIConfig{
			BaseURL: cfg.Endpoint,
			Model:   cfg.Name,
			APIKey:  cfg.APIKey,
			Timeout: cfg.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported model backend: %s", cfg.Backend)
	}
}
