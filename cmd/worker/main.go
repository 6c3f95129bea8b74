package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"editorial_pipeline/internal/config"
	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/publisher"
	"editorial_pipeline/internal/queue"
	"editorial_pipeline/internal/service"
	"editorial_pipeline/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Error("failed to ping redis", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to redis", "addr", cfg.Redis.Addr)

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	suggestionStore := postgres.NewSuggestionStore(db)
	taxonomyStore := postgres.NewTaxonomyStore(db)
	researchStore := postgres.NewResearchStore(db)
	articleStore := postgres.NewArticleStore(db)
	translationStore := postgres.NewTranslationStore(db)
	languageStore := postgres.NewLanguageStore(db)
	outboxStore := postgres.NewOutboxStore(db)
	hashtagStore := postgres.NewHashtagGroupStore(db)
	socialPostStore := postgres.NewSocialPostStore(db)
	mediaStore := postgres.NewMediaSuggestionStore(db)
	usageStore := postgres.NewUsageStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize generation client
	provider := generation.NewAnthropic(generation.AnthropicConfig{
		BaseURL:     cfg.Generation.BaseURL,
		APIKey:      cfg.Generation.APIKey,
		Model:       cfg.Generation.Model,
		Temperature: cfg.Generation.Temperature,
		MaxTokens:   cfg.Generation.MaxTokens,
		Timeout:     cfg.Generation.Timeout,
	})
	client := generation.NewClient(provider, usageStore, generation.Config{
		CallsPerMinute: cfg.Generation.CallsPerMinute,
		MaxAttempts:    cfg.Generation.Retry.MaxAttempts,
		InitialBackoff: cfg.Generation.Retry.InitialBackoff,
		MaxBackoff:     cfg.Generation.Retry.MaxBackoff,
	}, logger)

	// Initialize services
	registry := service.NewHandlerRegistry()
	registry.Register(service.NewArticleTranslationHandler(articleStore))
	registry.Register(service.NewSocialPostTranslationHandler(socialPostStore))

	editor := service.NewEditor(client, logger)
	researcher := service.NewResearcher(client, suggestionStore, taxonomyStore, researchStore, logger)
	writer := service.NewWriter(client, editor, researchStore, suggestionStore, taxonomyStore, articleStore, txManager, cfg.Pipeline, logger)
	proofreader := service.NewProofreader(client, articleStore, logger)
	translator := service.NewTranslator(client, registry, translationStore, languageStore, outboxStore, rabbitMQ, logger)
	suggestionGen := service.NewSuggestionGenerator(client, suggestionStore, taxonomyStore, articleStore, logger)
	mediaPlanner := service.NewMediaPlanner(client, researchStore, suggestionStore, taxonomyStore, mediaStore, logger)
	socialWriter := service.NewSocialWriter(client, articleStore, researchStore, hashtagStore, socialPostStore, logger)
	bulkDriver := service.NewBulkDriver(researcher, writer, suggestionStore, researchStore, cfg.Pipeline, logger)

	// Initialize job queue and worker
	jobQueue := queue.NewQueue(redisClient, cfg.Worker.ResultTTL, logger)
	worker := queue.NewWorker(redisClient, jobQueue, cfg.Worker, logger)
	worker.RegisterPipeline(queue.Services{
		Suggestions:  suggestionGen,
		Research:     researcher,
		Articles:     writer,
		Readability:  proofreader,
		Media:        mediaPlanner,
		Social:       socialWriter,
		Translations: translator,
		Bulk:         bulkDriver,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting pipeline worker",
		"concurrency", cfg.Worker.Concurrency,
		"job_timeout", cfg.Worker.JobTimeout,
		"model", cfg.Generation.Model,
	)

	worker.Run(ctx)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
