package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/thinhdeeptry/report-service/internal/model"
	"github.com/thinhdeeptry/report-service/internal/report/repository"
	"github.com/thinhdeeptry/report-service/pkg/redis"
)

const reportCacheTTL = 10 * time.Minute

// GetReport retrieves a cached report by id. A cache miss returns
// repository.ErrReportNotFound.
func (r *implCacheRepository) GetReport(ctx context.Context, id string) (*model.Report, error) {
	key := reportCacheKey(id)

	data, err := r.redis.Get(ctx, key)
	if redis.IsNil(err) {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.redis.GetReport: Failed to get report from cache: %v", err)
		return nil, err
	}

	var rpt model.Report
	if err := json.Unmarshal([]byte(data), &rpt); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.GetReport: Failed to unmarshal report from cache: %v", err)
		return nil, err
	}

	return &rpt, nil
}

// SaveReport stores a report in cache with a fixed TTL.
func (r *implCacheRepository) SaveReport(ctx context.Context, report *model.Report) error {
	key := reportCacheKey(report.ID)

	data, err := json.Marshal(report)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.redis.SaveReport: Failed to marshal report: %v", err)
		return err
	}

	if err := r.redis.Set(ctx, key, string(data), reportCacheTTL); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.SaveReport: Failed to set report in cache: %v", err)
		return err
	}
	return nil
}

// InvalidateReport removes a report from cache after a mutation.
func (r *implCacheRepository) InvalidateReport(ctx context.Context, id string) error {
	if err := r.redis.Delete(ctx, reportCacheKey(id)); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.InvalidateReport: Failed to delete report from cache: %v", err)
		return err
	}
	return nil
}

// reportCacheKey generates a Redis key for a report id.
func reportCacheKey(id string) string {
	return fmt.Sprintf("report:%s", id)
}
