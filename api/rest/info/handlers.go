package info

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type UptimeSource interface {
	Uptime(now time.Time) time.Duration
}

// Handler godoc
// @Summary Service info
// @Description Static status and current uptime
// @Tags info
// @Produce json
// @Success 200 {object} Response
// @Router / [get]
func Handler(src UptimeSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Msg:    "MorozAI Core 🚀",
			Status: "active",
			Uptime: src.Uptime(time.Now()).String(),
		})
	}
}
