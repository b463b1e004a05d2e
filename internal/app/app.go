package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/momhive/momhive/internal/ai"
	"github.com/momhive/momhive/internal/config"
	"github.com/momhive/momhive/internal/db"
	"github.com/momhive/momhive/internal/jobs"
	"github.com/momhive/momhive/internal/repository"
	"github.com/momhive/momhive/internal/service"
	"github.com/momhive/momhive/internal/storage"
	"github.com/redis/go-redis/v9"
)

// App wires the wellness tracker
type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	Redis            *redis.Client // nil without REDIS_URL
	AuthService      *service.AuthService
	MoodService      *service.MoodService
	ScreeningService *service.ScreeningService
	JournalService   *service.JournalService
	MemoryBoxService *service.MemoryBoxService
	Jobs             *jobs.Scheduler // started by the caller
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Open(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app, err := build(cfg, database)
	if err != nil {
		_ = database.Close()
		return nil, err
	}
	return app, nil
}

// NewWithDB wires the app around an already migrated database
func NewWithDB(cfg *config.Config, database *sqlx.DB) (*App, error) {
	return build(cfg, database)
}

func build(cfg *config.Config, database *sqlx.DB) (*App, error) {
	chartURL, err := cfg.StaticURL(cfg.ChartDir)
	if err != nil {
		return nil, fmt.Errorf("CHART_DIR: %w", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	moodRepository := repository.NewMoodRepository(database)
	screeningRepository := repository.NewScreeningRepository(database)
	photoRepository := repository.NewPhotoRepository(database)

	// Storage
	photoStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Services
	authService := service.NewAuthService(
		userRepository,
		cfg.SessionSecret,
		cfg.SessionExpiry,
		cfg.IsProduction(),
	)
	moodService := service.NewMoodService(moodRepository, cfg.ChartDir, chartURL)
	screeningService := service.NewScreeningService(screeningRepository)
	journalService := service.NewJournalService(cfg.JournalDir)
	memoryBoxService := service.NewMemoryBoxService(photoRepository, photoStorage)

	// Housekeeping, disabled by an empty schedule
	scheduler := jobs.NewScheduler()
	if cfg.ChartPruneSchedule != "" {
		err = scheduler.Add("prune mood charts", cfg.ChartPruneSchedule, func() error {
			removed, err := moodService.PruneCharts(cfg.ChartRetention)
			if removed > 0 {
				slog.Info("pruned mood charts", "removed", removed)
			}
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("CHART_PRUNE_SCHEDULE: %w", err)
		}
	}

	redisClient, err := db.ConnectRedis(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	return &App{
		Cfg:              cfg,
		DB:               database,
		Redis:            redisClient,
		AuthService:      authService,
		MoodService:      moodService,
		ScreeningService: screeningService,
		JournalService:   journalService,
		MemoryBoxService: memoryBoxService,
		Jobs:             scheduler,
	}, nil
}

func (a *App) Close() error {
	if a.Jobs != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		a.Jobs.Stop(ctx)
		cancel()
	}

	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

// ChatApp wires the standalone chat proxy
type ChatApp struct {
	Cfg         *config.ChatConfig
	Redis       *redis.Client
	ChatService *service.ChatService
}

func NewChat(ctx context.Context, cfg *config.ChatConfig) (*ChatApp, error) {
	gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}

	return NewChatWithStreamer(cfg, gemini)
}

// NewChatWithStreamer wires the chat proxy around any completion streamer
func NewChatWithStreamer(cfg *config.ChatConfig, streamer ai.Streamer) (*ChatApp, error) {
	redisClient, err := db.ConnectRedis(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	return &ChatApp{
		Cfg:         cfg,
		Redis:       redisClient,
		ChatService: service.NewChatService(streamer, cfg.ChatTimeout),
	}, nil
}

func (a *ChatApp) Close() error {
	if a.Redis != nil {
		return a.Redis.Close()
	}
	return nil
}
