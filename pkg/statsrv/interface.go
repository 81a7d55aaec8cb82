package statsrv

import (
	"context"

	"github.com/thinhdeeptry/report-service/pkg/log"
)

// IStats defines the interface for the upstream statistics API clients.
// Implementations are safe for concurrent use.
type IStats interface {
	FetchPaymentStats(ctx context.Context) (*PaymentStats, error)
	FetchEnrollmentStats(ctx context.Context) (*EnrollmentStats, error)
	FetchCourseStats(ctx context.Context) (*CourseStats, error)
}

// New creates a new stats client. Returns the interface.
func New(l log.Logger, cfg StatsConfig) IStats {
	if cfg.PaymentBaseURL == "" {
		cfg.PaymentBaseURL = DefaultPaymentBaseURL
	}
	if cfg.EnrollmentBaseURL == "" {
		cfg.EnrollmentBaseURL = DefaultEnrollmentBaseURL
	}
	if cfg.CourseBaseURL == "" {
		cfg.CourseBaseURL = DefaultCourseBaseURL
	}
	if cfg.PaymentStatsPath == "" {
		cfg.PaymentStatsPath = DefaultPaymentStatsPath
	}
	if cfg.EnrollmentStatsPath == "" {
		cfg.EnrollmentStatsPath = DefaultEnrollmentStatsPath
	}
	if cfg.CourseStatsPath == "" {
		cfg.CourseStatsPath = DefaultCourseStatsPath
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &statsImpl{
		l:          l,
		config:     cfg,
		httpClient: cfg.HTTPClient,
	}
}
