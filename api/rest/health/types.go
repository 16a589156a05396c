package health

import (
	"time"

	"github.com/morozai/core/internal/stats"
)

const (
	BotActive   = "active"
	BotInactive = "inactive"

	ModelReady    = "ready"
	ModelNotReady = "not_ready"
)

type Response struct {
	Status            string         `json:"status"`
	Timestamp         time.Time      `json:"timestamp"`
	Stats             stats.Snapshot `json:"stats"`
	TelegramBotStatus string         `json:"telegram_bot_status"`
	ModelStatus       string         `json:"model_status"`
}
