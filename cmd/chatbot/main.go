package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/momhive/momhive/internal/app"
	"github.com/momhive/momhive/internal/config"
	"github.com/momhive/momhive/internal/logger"
	"github.com/momhive/momhive/internal/routes"
)

func main() {
	cfg := config.LoadChat()

	logger.Init(logger.Options{Service: "chatbot", Dev: cfg.IsDevelopment(), SentryDSN: cfg.SentryDSN, Env: cfg.AppEnv})
	defer logger.Flush()

	app, err := app.NewChat(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to initialize chatbot", "error", err)
		panic(err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close chatbot", "error", closeErr)
		}
	}()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupChatRoutes(app),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("chatbot starting", "port", cfg.Port, "model", cfg.GeminiModel, "url", "http://localhost:"+cfg.Port)

	err = server.ListenAndServe()
	if err != nil {
		slog.Error("chatbot failed", "error", err)
		panic(err)
	}
}
