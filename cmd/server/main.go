package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/momhive/momhive/internal/app"
	"github.com/momhive/momhive/internal/config"
	"github.com/momhive/momhive/internal/logger"
	"github.com/momhive/momhive/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.Init(logger.Options{Service: "web", Dev: cfg.IsDevelopment(), SentryDSN: cfg.SentryDSN, Env: cfg.AppEnv})
	defer logger.Flush()

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	app.Jobs.Start()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(app),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", "http://localhost:"+cfg.Port)

	err = server.ListenAndServe()
	if err != nil {
		slog.Error("server failed", "error", err)
		panic(err)
	}
}
