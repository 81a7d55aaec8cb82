package postgre

import (
	"fmt"
	"strings"

	"github.com/thinhdeeptry/report-service/internal/report/repository"
)

// buildListReportsQuery - Build query for ListReports.
func (r *implRepository) buildListReportsQuery(opts repository.ListReportsOptions) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	if opts.IsAutoGenerated != nil {
		args = append(args, *opts.IsAutoGenerated)
		conds = append(conds, fmt.Sprintf("is_auto_generated = $%d", len(args)))
	}
	if opts.Status != "" {
		args = append(args, opts.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + reportColumns + ` FROM reports`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	// Sorting: most recent report date first
	query += " ORDER BY date DESC"

	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return query, args
}

// buildUpdateReportQuery - Build partial UPDATE for a report.
func (r *implRepository) buildUpdateReportQuery(opts repository.UpdateReportOptions) (string, []interface{}) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{opts.ID}

	if opts.Title != nil {
		args = append(args, *opts.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if opts.Date != nil {
		args = append(args, *opts.Date)
		sets = append(sets, fmt.Sprintf("date = $%d", len(args)))
	}
	if opts.Data != nil {
		args = append(args, opts.Data)
		sets = append(sets, fmt.Sprintf("data = $%d", len(args)))
	}
	if opts.Status != nil {
		args = append(args, *opts.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}

	query := fmt.Sprintf(`UPDATE reports SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), reportColumns)

	return query, args
}
