package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// model backends understood by the llm package
const (
	BackendTGI    = "tgi"
	BackendOpenAI = "openai"
)

// loads configuration from environment variables (and .env when present)
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return Load(context.Background(), envconfig.OsLookuper())
}

// processes configuration from the given lookuper and validates it
func Load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Model.Backend {
	case BackendTGI, BackendOpenAI:
	default:
		return fmt.Errorf("unsupported MODEL_BACKEND %q", c.Model.Backend)
	}

	if c.Model.Name == "" {
		return fmt.Errorf("MODEL_NAME environment variable is required")
	}

	if c.Model.DefaultMaxTokens <= 0 {
		return fmt.Errorf("GENERATION_DEFAULT_MAX_TOKENS must be positive")
	}

	if c.Model.MaxTokensLimit < c.Model.DefaultMaxTokens {
		return fmt.Errorf("GENERATION_MAX_TOKENS_LIMIT (%d) is below GENERATION_DEFAULT_MAX_TOKENS (%d)",
			c.Model.MaxTokensLimit, c.Model.DefaultMaxTokens)
	}

	if c.Telegram.Enabled() && c.Telegram.ChatID == "" {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	if c.Tasks.Concurrency <= 0 {
		return fmt.Errorf("TASK_CONCURRENCY must be positive")
	}

	return nil
}
