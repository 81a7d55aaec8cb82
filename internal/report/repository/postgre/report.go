package postgre

import (
	"context"
	"database/sql"

	"github.com/thinhdeeptry/report-service/internal/model"
	"github.com/thinhdeeptry/report-service/internal/report/repository"
)

const reportColumns = `id, title, date, data, ai_analysis, is_auto_generated, generated_by, status, created_at, updated_at`

// CreateReport - Insert a new report record.
func (r *implRepository) CreateReport(ctx context.Context, opts repository.CreateReportOptions) (*model.Report, error) {
	query, args := buildCreateReport(opts)

	row := r.db.QueryRowContext(ctx, query, args...)

	rpt, err := scanReport(row)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CreateReport: Failed to insert report: %v", err)
		return nil, repository.ErrReportCreateFailed
	}

	return rpt, nil
}

// GetReportByID - Get report by primary key.
func (r *implRepository) GetReportByID(ctx context.Context, id string) (*model.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	rpt, err := scanReport(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetReportByID: Failed to get report: %v", err)
		return nil, err
	}

	return rpt, nil
}

// ListReports - List reports with filters, most recent date first.
func (r *implRepository) ListReports(ctx context.Context, opts repository.ListReportsOptions) ([]*model.Report, error) {
	query, args := r.buildListReportsQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to list reports: %v", err)
		return nil, err
	}
	defer rows.Close()

	result := make([]*model.Report, 0)
	for rows.Next() {
		rpt, err := scanReport(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to scan report: %v", err)
			return nil, err
		}
		result = append(result, rpt)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Row iteration failed: %v", err)
		return nil, err
	}

	return result, nil
}

// UpdateReport - Apply partial updates and return the updated row.
func (r *implRepository) UpdateReport(ctx context.Context, opts repository.UpdateReportOptions) (*model.Report, error) {
	query, args := r.buildUpdateReportQuery(opts)

	rpt, err := scanReport(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateReport: Failed to update report: %v", err)
		return nil, repository.ErrReportUpdateFailed
	}

	return rpt, nil
}

// UpdateAnalysis - Attach the AI analysis payload to a report.
func (r *implRepository) UpdateAnalysis(ctx context.Context, opts repository.UpdateAnalysisOptions) (*model.Report, error) {
	query := `UPDATE reports SET ai_analysis = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + reportColumns

	rpt, err := scanReport(r.db.QueryRowContext(ctx, query, opts.ID, opts.Analysis))
	if err == sql.ErrNoRows {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateAnalysis: Failed to update analysis: %v", err)
		return nil, repository.ErrReportUpdateFailed
	}

	return rpt, nil
}

// DeleteReport - Delete report by primary key.
func (r *implRepository) DeleteReport(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.DeleteReport: Failed to delete report: %v", err)
		return repository.ErrReportDeleteFailed
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.DeleteReport: Failed to read affected rows: %v", err)
		return repository.ErrReportDeleteFailed
	}
	if affected == 0 {
		return repository.ErrReportNotFound
	}

	return nil
}
