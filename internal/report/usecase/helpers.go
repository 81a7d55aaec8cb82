package usecase

import (
	"context"

	"github.com/thinhdeeptry/report-service/internal/model"
	"github.com/thinhdeeptry/report-service/internal/report"
)

func isValidStatus(status string) bool {
	switch status {
	case report.StatusPending, report.StatusCompleted, report.StatusFailed:
		return true
	}
	return false
}

func (uc *implUseCase) buildReportOutput(rpt *model.Report) report.ReportOutput {
	return report.ReportOutput{
		ID:              rpt.ID,
		Title:           rpt.Title,
		Date:            rpt.Date,
		Data:            rpt.Data,
		AIAnalysis:      rpt.AIAnalysis,
		IsAutoGenerated: rpt.IsAutoGenerated,
		GeneratedBy:     rpt.GeneratedBy,
		Status:          rpt.Status,
		CreatedAt:       rpt.CreatedAt,
		UpdatedAt:       rpt.UpdatedAt,
	}
}

func (uc *implUseCase) invalidateCache(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateReport(ctx, id); err != nil {
		uc.l.Warnf(ctx, "report.usecase.invalidateCache: Failed to invalidate report cache: %v", err)
	}
}
