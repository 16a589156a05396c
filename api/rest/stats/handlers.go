package stats

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	corestats "github.com/morozai/core/internal/stats"
)

type Source interface {
	Snapshot() corestats.Snapshot
	Uptime(now time.Time) time.Duration
}

// Handler godoc
// @Summary Service statistics
// @Description Request counters, uptime and success rate (0 when no requests were made)
// @Tags stats
// @Produce json
// @Success 200 {object} Response
// @Router /stats [get]
func Handler(src Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := src.Snapshot()

		c.JSON(http.StatusOK, Response{
			Snapshot:    snap,
			Uptime:      src.Uptime(time.Now()).String(),
			SuccessRate: snap.SuccessRate(),
		})
	}
}
