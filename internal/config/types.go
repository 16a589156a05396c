package config

import "time"

// holds all runtime configuration for the service
type Config struct {
	Environment string `env:"ENVIRONMENT, default=development"`
	Port        string `env:"PORT, default=8000"`

	Server   ServerConfig
	Model    ModelConfig
	Telegram TelegramConfig
	Tasks    TaskConfig
}

type ServerConfig struct {
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT, default=15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT, default=10m"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT, default=60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	// empty means every origin is allowed
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`
}

type ModelConfig struct {
	Backend  string        `env:"MODEL_BACKEND, default=tgi"`
	Name     string        `env:"MODEL_NAME, default=bigcode/starcoder"`
	Endpoint string        `env:"MODEL_ENDPOINT, default=http://localhost:8080"`
	APIKey   string        `env:"MODEL_API_KEY"`
	Timeout  time.Duration `env:"MODEL_TIMEOUT, default=5m"`
	Warmup   bool          `env:"MODEL_WARMUP, default=true"`

	DefaultMaxTokens int `env:"GENERATION_DEFAULT_MAX_TOKENS, default=256"`
	MaxTokensLimit   int `env:"GENERATION_MAX_TOKENS_LIMIT, default=1024"`
}

type TelegramConfig struct {
	Token       string        `env:"TELEGRAM_BOT_TOKEN"`
	ChatID      string        `env:"TELEGRAM_CHAT_ID"`
	APIURL      string        `env:"TELEGRAM_API_URL, default=https://api.telegram.org"`
	PollTimeout time.Duration `env:"TELEGRAM_POLL_TIMEOUT, default=30s"`
}

type TaskConfig struct {
	Concurrency int           `env:"TASK_CONCURRENCY, default=8"`
	Timeout     time.Duration `env:"TASK_TIMEOUT, default=30s"`
}

// reports whether the notification bot has credentials to run
func (c TelegramConfig) Enabled() bool {
	return c.Token != ""
}
