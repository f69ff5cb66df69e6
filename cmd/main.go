package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/derhornspieler/gke-kubeconfig/internal/config"
	"github.com/derhornspieler/gke-kubeconfig/internal/handler"
	"github.com/derhornspieler/gke-kubeconfig/internal/server"
)

func main() {
	// Initialize structured JSON logger.
	logCfg := zap.NewProductionConfig()
	logCfg.EncoderConfig.TimeKey = "timestamp"
	logCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logCfg.EncoderConfig.StacktraceKey = "stacktrace"

	logger, err := logCfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting gke-kubeconfig")

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	logger.Info("configuration loaded",
		zap.String("port", cfg.Port),
		zap.Float64("rate_limit_rps", cfg.RateLimitRPS),
		zap.Int("rate_limit_burst", cfg.RateLimitBurst),
	)

	// Create handlers and the server.
	h := handler.NewHandler(cfg, logger)
	srv := server.New(cfg, h, logger)

	// Graceful shutdown handling.
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal.
	sig := <-shutdownCh
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	// Give outstanding requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("gke-kubeconfig stopped")
}
