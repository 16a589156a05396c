package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/morozai/core/internal/config"
	"github.com/morozai/core/internal/generator"
	"github.com/morozai/core/internal/llm"
	"github.com/morozai/core/internal/logger"
	"github.com/morozai/core/internal/middleware"
	"github.com/morozai/core/internal/notify"
	"github.com/morozai/core/internal/stats"
	"github.com/morozai/core/internal/tasks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	backend, err := llm.NewBackend(cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create model backend: %w", err)
	}

	// the provider is built and loaded on first use (or by warmup)
	gen := generator.New(func() generator.ModelProvider {
		return llm.NewProvider(backend)
	}, cfg.Model.DefaultMaxTokens)

	serviceStats := stats.New(time.Now())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if err := serviceStats.Register(registry); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	var bot *notify.Bot
	if cfg.Telegram.Enabled() {
		bot = notify.NewBot(notify.Config{
			Token:       cfg.Telegram.Token,
			ChatID:      cfg.Telegram.ChatID,
			APIURL:      cfg.Telegram.APIURL,
			PollTimeout: cfg.Telegram.PollTimeout,
		}, serviceStats)
	} else {
		logger.Warn("TELEGRAM_BOT_TOKEN not set, notifications disabled")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	server := &Server{
		config:    cfg,
		generator: gen,
		stats:     serviceStats,
		bot:       bot,
		runner:    tasks.NewRunner(cfg.Tasks.Concurrency, cfg.Tasks.Timeout),
		registry:  registry,
		router:    router,
	}

	router.Use(gin.Recovery(), middleware.CORS(cfg.Server.AllowedOrigins), middleware.RequestLogger())
	RegisterRoutes(router, server)

	return server, nil
}
