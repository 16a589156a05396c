package main

import (
	"github.com/gin-gonic/gin"
	"github.com/morozai/core/internal/config"
	"github.com/morozai/core/internal/generator"
	"github.com/morozai/core/internal/notify"
	"github.com/morozai/core/internal/stats"
	"github.com/morozai/core/internal/tasks"
	"github.com/prometheus/client_golang/prometheus"
)

// holds all dependencies and state for the API server
type Server struct {
	config    *config.Config
	generator *generator.Service
	stats     *stats.Stats
	bot       *notify.Bot // nil when no bot token is configured
	runner    *tasks.Runner
	registry  *prometheus.Registry
	router    *gin.Engine
}
