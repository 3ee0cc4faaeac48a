package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"meeting-task-extractor/config"
	_ "meeting-task-extractor/docs" // Swagger docs
	"meeting-task-extractor/internal/httpserver"
	"meeting-task-extractor/internal/storage"
	"meeting-task-extractor/pkg/datemath"
	"meeting-task-extractor/pkg/encrypter"
	"meeting-task-extractor/pkg/gcalendar"
	"meeting-task-extractor/pkg/llmprovider"
	"meeting-task-extractor/pkg/log"
	"meeting-task-extractor/pkg/mq"
	pkgRedis "meeting-task-extractor/pkg/redis"
	"meeting-task-extractor/pkg/scope"
)

// @title       Meeting Task Extractor API
// @description Turns meeting transcripts into reviewed, per-user tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meeting Task Extractor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if cfg.JWT.SecretKey == "" {
		logger.Error(ctx, "jwt.secret_key is required")
		return
	}

	// 3. Storage
	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		logger.Error(ctx, "Failed to migrate storage: ", err)
		return
	}

	// Redis is optional: drafts and revoked sessions fall back to process memory.
	var redisClient *goredis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = pkgRedis.Connect(ctx, pkgRedis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warnf(ctx, "Redis not available, using in-memory stores: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			logger.Infof(ctx, "Redis connected at %s", cfg.Redis.Addr)
		}
	}

	// 4. LLM providers
	if err := cfg.LLM.Validate(); err != nil {
		logger.Error(ctx, "Invalid LLM configuration: ", err)
		return
	}
	llmManager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	dateMathParser, err := datemath.NewParser("UTC")
	if err != nil {
		logger.Error(ctx, "Failed to initialize date parser: ", err)
		return
	}

	// 5. Optional integrations
	var calendar gcalendar.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: cfg.GoogleCalendar.CredentialsPath})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `cli gcal-auth` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	var publisher mq.Publisher = mq.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		amqpPublisher, mqErr := mq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if mqErr != nil {
			logger.Warnf(ctx, "RabbitMQ not available, task events disabled: %v", mqErr)
		} else {
			publisher = amqpPublisher
			defer publisher.Close()
			logger.Infof(ctx, "RabbitMQ publisher ready on exchange %q", cfg.RabbitMQ.Exchange)
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		MetricsEnabled: cfg.Metrics.Enabled,
		PostgresDB:     store.Postgres,
		SQLiteDB:       store.SQLite,
		Redis:          redisClient,
		LLM:            llmManager,
		DateMath:       dateMathParser,
		Calendar:       calendar,
		Publisher:      publisher,
		JWTManager:     scope.New(cfg.JWT.SecretKey, cfg.JWT.TTL),
		Encrypter:      encrypter.New(0),
		JWT:            cfg.JWT,
		Cookie:         cfg.Cookie,
		Extraction:     cfg.Extraction,
		Review:         cfg.Review,
		Tasks:          cfg.Tasks,
		GoogleCalendar: cfg.GoogleCalendar,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
