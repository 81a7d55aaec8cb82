package redis

import (
	repo "github.com/thinhdeeptry/report-service/internal/report/repository"
	"github.com/thinhdeeptry/report-service/pkg/log"
	"github.com/thinhdeeptry/report-service/pkg/redis"
)

type implCacheRepository struct {
	redis redis.IRedis
	l     log.Logger
}

// New creates a new CacheRepository backed by Redis.
func New(redis redis.IRedis, l log.Logger) repo.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
