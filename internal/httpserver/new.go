package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thinhdeeptry/report-service/pkg/discord"
	"github.com/thinhdeeptry/report-service/pkg/kafka"
	"github.com/thinhdeeptry/report-service/pkg/log"
	pkgRedis "github.com/thinhdeeptry/report-service/pkg/redis"
	"github.com/thinhdeeptry/report-service/pkg/statsrv"
)

type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	statsClient   statsrv.IStats
	kafkaProducer kafka.IProducer

	discord discord.IDiscord
}

type Config struct {
	Host        string
	Port        int
	Mode        string
	Environment string

	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	StatsClient statsrv.IStats

	// KafkaProducer is optional; nil disables event publishing.
	KafkaProducer kafka.IProducer

	// Discord is optional; nil disables failure notifications.
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		statsClient:   cfg.StatsClient,
		kafkaProducer: cfg.KafkaProducer,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.statsClient == nil {
		return errors.New("statsClient is required")
	}

	return nil
}
