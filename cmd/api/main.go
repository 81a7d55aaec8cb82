package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thinhdeeptry/report-service/config"
	configKafka "github.com/thinhdeeptry/report-service/config/kafka"
	configPostgre "github.com/thinhdeeptry/report-service/config/postgre"
	configRedis "github.com/thinhdeeptry/report-service/config/redis"
	_ "github.com/thinhdeeptry/report-service/docs" // Import swagger docs
	"github.com/thinhdeeptry/report-service/internal/httpserver"
	"github.com/thinhdeeptry/report-service/pkg/discord"
	pkgHTTP "github.com/thinhdeeptry/report-service/pkg/http"
	"github.com/thinhdeeptry/report-service/pkg/log"
	"github.com/thinhdeeptry/report-service/pkg/statsrv"
)

// @title       EduForge Report Service API
// @description Aggregated reporting service for the EduForge platform.
// @version     1
// @host        report.eduforge.io.vn
// @schemes     https
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize Kafka producer (optional)
	producer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka producer not configured (optional): %v", err)
		producer = nil // Continue without Kafka
	} else {
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)
	}

	// 7. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 8. Initialize upstream stats clients
	statsClient := statsrv.New(logger, statsrv.StatsConfig{
		PaymentBaseURL:    cfg.Upstream.PaymentURL,
		EnrollmentBaseURL: cfg.Upstream.EnrollmentURL,
		CourseBaseURL:     cfg.Upstream.CourseURL,

		PaymentStatsPath:    cfg.Upstream.PaymentStatsPath,
		EnrollmentStatsPath: cfg.Upstream.EnrollmentStatsPath,
		CourseStatsPath:     cfg.Upstream.CourseStatsPath,

		HTTPClient: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
			Timeout:      time.Duration(cfg.Upstream.Timeout) * time.Second,
			MaxRedirects: statsrv.DefaultMaxRedirects,
		}),
	})

	// 9. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		StatsClient:   statsClient,
		KafkaProducer: producer,

		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
