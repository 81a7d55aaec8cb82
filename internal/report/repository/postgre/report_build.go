package postgre

import (
	"github.com/thinhdeeptry/report-service/internal/model"
	"github.com/thinhdeeptry/report-service/internal/report/repository"
)

// buildCreateReport - Build the INSERT statement for a new report.
func buildCreateReport(opts repository.CreateReportOptions) (string, []interface{}) {
	query := `INSERT INTO reports (id, title, date, data, is_auto_generated, generated_by, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + reportColumns

	args := []interface{}{
		opts.ID,
		opts.Title,
		opts.Date,
		opts.Data,
		opts.IsAutoGenerated,
		opts.GeneratedBy,
		opts.Status,
	}

	return query, args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReport - Scan one report row into the domain model.
func scanReport(row rowScanner) (*model.Report, error) {
	var rpt model.Report

	// NULL jsonb columns scan to a nil slice.
	err := row.Scan(
		&rpt.ID,
		&rpt.Title,
		&rpt.Date,
		(*[]byte)(&rpt.Data),
		(*[]byte)(&rpt.AIAnalysis),
		&rpt.IsAutoGenerated,
		&rpt.GeneratedBy,
		&rpt.Status,
		&rpt.CreatedAt,
		&rpt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &rpt, nil
}
