package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/storm-data-web/internal/adapter/api"
	httpadapter "github.com/couchcryptid/storm-data-web/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/storm-data-web/internal/adapter/kafka"
	"github.com/couchcryptid/storm-data-web/internal/config"
	"github.com/couchcryptid/storm-data-web/internal/mapnav"
	"github.com/couchcryptid/storm-data-web/internal/notification"
	"github.com/couchcryptid/storm-data-web/internal/observability"
	"github.com/joho/godotenv"
)

func main() {
	// A local .env is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to read .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	apiClient := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger, metrics)
	notifications := notification.NewService(apiClient)

	// Navigation delivery (NAVIGATION_MODE): redirect the browser, or push
	// the map URL to connected clients over Kafka.
	var push mapnav.Opener
	var kafkaOpener *kafkaadapter.Opener
	if cfg.NavigationMode == config.NavigationKafka {
		kafkaOpener = kafkaadapter.NewOpener(cfg, logger)
		push = kafkaOpener
		logger.Info("navigation push enabled", "topic", cfg.KafkaNavigationTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("navigation redirect enabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, apiClient, notifications, push, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaOpener != nil {
		if err := kafkaOpener.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
