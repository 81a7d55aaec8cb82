package usecase

import (
	"math/rand"
	"time"

	"github.com/thinhdeeptry/report-service/internal/report"
	"github.com/thinhdeeptry/report-service/internal/report/repository"
	"github.com/thinhdeeptry/report-service/pkg/kafka"
	"github.com/thinhdeeptry/report-service/pkg/log"
	"github.com/thinhdeeptry/report-service/pkg/statsrv"
	"github.com/thinhdeeptry/report-service/pkg/util"
)

// Config holds configuration for the report use case.
type Config struct {
	// Rand drives fallback synthesis for missing monthly series. Seeded
	// from the clock when nil; tests inject a fixed seed.
	Rand *rand.Rand

	// Now supplies the report timestamp. Defaults to util.Now.
	Now func() time.Time
}

type implUseCase struct {
	repo     repository.PostgresRepository
	cache    repository.CacheRepository
	stats    statsrv.IStats
	producer kafka.IProducer
	l        log.Logger
	config   Config
}

// New creates a new report UseCase implementation. cache and producer are
// optional and may be nil.
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	stats statsrv.IStats,
	producer kafka.IProducer,
	l log.Logger,
	cfg Config,
) report.UseCase {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Now == nil {
		cfg.Now = util.Now
	}

	return &implUseCase{
		repo:     repo,
		cache:    cache,
		stats:    stats,
		producer: producer,
		l:        l,
		config:   cfg,
	}
}
