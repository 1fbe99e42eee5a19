package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/repsense/server/pkg/bootstrap"
	"github.com/repsense/server/pkg/infrastructure/sentry"
	"github.com/repsense/server/pkg/recommendation"
	"github.com/repsense/server/services/api"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.NewLogger("api")

	svc, err := bootstrap.NewService(ctx)
	if err != nil {
		logger.Error("service init failed", "error", err)
		os.Exit(1)
	}

	if err := sentry.Init(sentry.Config{
		DSN:              svc.Config.SentryDSN,
		Environment:      os.Getenv("SENTRY_ENVIRONMENT"),
		ServerName:       "api",
		TracesSampleRate: 0.1,
	}, logger); err != nil {
		logger.Error("sentry init failed", "error", err)
		os.Exit(1)
	}

	advisor := recommendation.NewAdvisor(svc.Config.GeminiAPIKey)
	server := api.New(svc, advisor, logger)

	httpServer := &http.Server{
		Addr:              ":" + svc.Config.Port,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("listening", "port", svc.Config.Port)
	if err := httpServer.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
