package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, BackendTGI, cfg.Model.Backend)
	assert.Equal(t, "bigcode/starcoder", cfg.Model.Name)
	assert.Equal(t, 256, cfg.Model.DefaultMaxTokens)
	assert.Equal(t, 1024, cfg.Model.MaxTokensLimit)
	assert.Equal(t, 5*time.Minute, cfg.Model.Timeout)
	assert.True(t, cfg.Model.Warmup)
	assert.False(t, cfg.Telegram.Enabled())
	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIURL)
	assert.Equal(t, 8, cfg.Tasks.Concurrency)
	assert.Empty(t, cfg.Server.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":                 "9000",
		"MODEL_BACKEND":        "openai",
		"MODEL_NAME":           "gpt-4o-mini",
		"MODEL_WARMUP":         "false",
		"TELEGRAM_BOT_TOKEN":   "123:abc",
		"TELEGRAM_CHAT_ID":     "-100200",
		"CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, BackendOpenAI, cfg.Model.Backend)
	assert.Equal(t, "gpt-4o-mini", cfg.Model.Name)
	assert.False(t, cfg.Model.Warmup)
	assert.True(t, cfg.Telegram.Enabled())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown backend",
			env:     map[string]string{"MODEL_BACKEND": "torch"},
			wantErr: "unsupported MODEL_BACKEND",
		},
		{
			name:    "token without chat",
			env:     map[string]string{"TELEGRAM_BOT_TOKEN": "123:abc"},
			wantErr: "TELEGRAM_CHAT_ID",
		},
		{
			name: "limit below default",
			env: map[string]string{
				"GENERATION_DEFAULT_MAX_TOKENS": "512",
				"GENERATION_MAX_TOKENS_LIMIT":   "128",
			},
			wantErr: "GENERATION_MAX_TOKENS_LIMIT",
		},
		{
			name:    "zero concurrency",
			env:     map[string]string{"TASK_CONCURRENCY": "0"},
			wantErr: "TASK_CONCURRENCY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), envconfig.MapLookuper(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
