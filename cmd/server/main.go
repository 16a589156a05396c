package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/morozai/core/internal/config"
	"github.com/morozai/core/internal/logger"
)

// @title MorozAI Core API
// @version 1.0
// @description Code generation backed by a pretrained causal language model,
// @description with optional Telegram notifications for every generated snippet.

func main() {
	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}

	logger.Configure(cfg.Environment)
	slog.SetDefault(logger.Default())
	logger.Info("starting morozai core", "environment", cfg.Environment, "model", cfg.Model.Name)

	srv, err := NewServer(cfg)
	if err != nil {
		logger.FatalErr(err, "failed to create server")
	}

	// background work (bot polling, warmup) stops with this context
	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()

	// start the notification bot before serving traffic
	if srv.bot != nil {
		go func() {
			if err := srv.bot.Start(bgCtx); err != nil {
				logger.ErrorErr(err, "telegram bot failed to start, notifications disabled")
			}
		}()
	}

	// load the model ahead of the first request
	if cfg.Model.Warmup {
		go srv.generator.Warmup(bgCtx)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalErr(err, "server failed to start")
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// stop bot polling
	bgCancel()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// let in-flight notifications finish
	if err := srv.runner.Shutdown(ctx); err != nil {
		logger.ErrorErr(err, "background tasks did not finish before shutdown")
	}

	logger.Info("server stopped")
}
