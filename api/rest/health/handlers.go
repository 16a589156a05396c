package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/morozai/core/internal/stats"
)

type StatsSource interface {
	Snapshot() stats.Snapshot
}

type BotStatus interface {
	IsRunning() bool
}

type ModelStatus interface {
	Ready() bool
}

// Handler godoc
// @Summary Health check
// @Description Counters snapshot plus bot and model state. Always 200 while the process serves.
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(src StatsSource, bot BotStatus, model ModelStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		botStatus := BotInactive
		if bot != nil && bot.IsRunning() {
			botStatus = BotActive
		}

		modelStatus := ModelNotReady
		if model != nil && model.Ready() {
			modelStatus = ModelReady
		}

		c.JSON(http.StatusOK, Response{
			Status:            "healthy",
			Timestamp:         time.Now(),
			Stats:             src.Snapshot(),
			TelegramBotStatus: botStatus,
			ModelStatus:       modelStatus,
		})
	}
}
