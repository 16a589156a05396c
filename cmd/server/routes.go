package main

import (
	"github.com/gin-gonic/gin"
	"github.com/morozai/core/api/rest/generate"
	"github.com/morozai/core/api/rest/health"
	"github.com/morozai/core/api/rest/info"
	"github.com/morozai/core/api/rest/stats"
	"github.com/morozai/core/internal/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// sets up all API routes
func RegisterRoutes(router *gin.Engine, server *Server) {
	// keep interface values nil when the bot is disabled
	var notifier generate.Notifier
	var botStatus health.BotStatus
	if server.bot != nil {
		notifier = server.bot
		botStatus = server.bot
	}

	info.RegisterRoutes(router, server.stats)
	health.RegisterRoutes(router, server.stats, botStatus, server.generator)
	stats.RegisterRoutes(router, server.stats)
	generate.RegisterRoutes(router, server.generator, server.stats, notifier, server.runner, generate.Options{
		DefaultMaxTokens: server.config.Model.DefaultMaxTokens,
		MaxTokensLimit:   server.config.Model.MaxTokensLimit,
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(server.registry, promhttp.HandlerOpts{})))

	router.NoRoute(errors.NotFound)
	router.NoMethod(errors.MethodNotAllowed)
}
