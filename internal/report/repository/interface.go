package repository

import (
	"context"

	"github.com/thinhdeeptry/report-service/internal/model"
)

//go:generate mockery --name ReportRepository
type ReportRepository interface {
	CreateReport(ctx context.Context, opts CreateReportOptions) (*model.Report, error)
	GetReportByID(ctx context.Context, id string) (*model.Report, error)
	ListReports(ctx context.Context, opts ListReportsOptions) ([]*model.Report, error)
	UpdateReport(ctx context.Context, opts UpdateReportOptions) (*model.Report, error)
	UpdateAnalysis(ctx context.Context, opts UpdateAnalysisOptions) (*model.Report, error)
	DeleteReport(ctx context.Context, id string) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ReportRepository
}

// CacheRepository - Read-through cache for report detail lookups
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetReport(ctx context.Context, id string) (*model.Report, error)
	SaveReport(ctx context.Context, report *model.Report) error
	InvalidateReport(ctx context.Context, id string) error
}
