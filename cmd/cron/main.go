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
	"github.com/thinhdeeptry/report-service/internal/report"
	reportPostgre "github.com/thinhdeeptry/report-service/internal/report/repository/postgre"
	reportUsecase "github.com/thinhdeeptry/report-service/internal/report/usecase"
	pkgHTTP "github.com/thinhdeeptry/report-service/pkg/http"
	"github.com/thinhdeeptry/report-service/pkg/log"
	"github.com/thinhdeeptry/report-service/pkg/statsrv"
)

// Scheduled report generation. Runs one generation immediately on start,
// then one per configured interval, until terminated.
func main() {
	// 1. Load configuration
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

	// 3. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Kafka producer (optional)
	producer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka producer not configured (optional): %v", err)
		producer = nil // Continue without Kafka
	} else {
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)
	}

	// 5. Initialize upstream stats clients
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

	// 6. Build the report use case. The scheduled path does not need the
	// read cache.
	repo := reportPostgre.New(postgresDB, logger)
	uc := reportUsecase.New(repo, nil, statsClient, producer, logger, reportUsecase.Config{})

	interval := time.Duration(cfg.Cron.Interval) * time.Minute
	logger.Infof(ctx, "Report generation scheduled every %v", interval)

	generateOnce(ctx, logger, uc)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			generateOnce(ctx, logger, uc)
		case sig := <-sigChan:
			logger.Infof(ctx, "Received signal %v, stopping scheduler", sig)
			return
		}
	}
}

func generateOnce(ctx context.Context, logger log.Logger, uc report.UseCase) {
	o, err := uc.Generate(ctx, report.GenerateInput{UserID: report.GeneratedBySystem})
	if err != nil {
		logger.Errorf(ctx, "Scheduled report generation failed: %v", err)
		return
	}
	logger.Infof(ctx, "Scheduled report %s generated", o.ID)
}
