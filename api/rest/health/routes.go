package health

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRouter, src StatsSource, bot BotStatus, model ModelStatus) {
	router.GET("/health", Handler(src, bot, model))
}
