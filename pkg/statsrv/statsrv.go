package statsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	pkghttp "github.com/thinhdeeptry/report-service/pkg/http"
)

func defaultHTTPClient() pkghttp.IClient {
	// Upstream failures fail the whole generation attempt, so no retries here.
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:      DefaultTimeout,
		Retries:      0,
		MaxRedirects: DefaultMaxRedirects,
	})
}

// FetchPaymentStats retrieves statistics from the payment service.
func (s *statsImpl) FetchPaymentStats(ctx context.Context) (*PaymentStats, error) {
	var stats PaymentStats
	if err := s.fetch(ctx, s.config.PaymentBaseURL, s.config.PaymentStatsPath, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch payment stats: %w", err)
	}
	return &stats, nil
}

// FetchEnrollmentStats retrieves statistics from the enrollment service.
func (s *statsImpl) FetchEnrollmentStats(ctx context.Context) (*EnrollmentStats, error) {
	var stats EnrollmentStats
	if err := s.fetch(ctx, s.config.EnrollmentBaseURL, s.config.EnrollmentStatsPath, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch enrollment stats: %w", err)
	}
	return &stats, nil
}

// FetchCourseStats retrieves statistics from the course service.
func (s *statsImpl) FetchCourseStats(ctx context.Context) (*CourseStats, error) {
	var stats CourseStats
	if err := s.fetch(ctx, s.config.CourseBaseURL, s.config.CourseStatsPath, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch course stats: %w", err)
	}
	return &stats, nil
}

func (s *statsImpl) fetch(ctx context.Context, baseURL, path string, out interface{}) error {
	url := baseURL + path
	s.l.Infof(ctx, "pkg.statsrv.fetch: Fetching stats from %s", url)

	body, statusCode, err := s.httpClient.Get(ctx, url, nil)
	if err != nil {
		return err
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", statusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal stats payload: %w", err)
	}
	return nil
}
