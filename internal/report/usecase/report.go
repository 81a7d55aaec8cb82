package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/thinhdeeptry/report-service/internal/report"
	"github.com/thinhdeeptry/report-service/internal/report/repository"
)

// Create persists a manually supplied report.
func (uc *implUseCase) Create(ctx context.Context, input report.CreateInput) (report.ReportOutput, error) {
	if input.Title == "" {
		return report.ReportOutput{}, report.ErrTitleRequired
	}

	status := input.Status
	if status == "" {
		status = report.StatusPending
	}
	if !isValidStatus(status) {
		return report.ReportOutput{}, report.ErrInvalidStatus
	}

	date := input.Date
	if date.IsZero() {
		date = uc.config.Now()
	}

	data := input.Data
	if len(data) == 0 {
		data = []byte(`{}`)
	}

	rpt, err := uc.repo.CreateReport(ctx, repository.CreateReportOptions{
		ID:              uuid.New().String(),
		Title:           input.Title,
		Date:            date,
		Data:            data,
		IsAutoGenerated: input.IsAutoGenerated,
		GeneratedBy:     input.GeneratedBy,
		Status:          status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Create: Failed to create report: %v", err)
		return report.ReportOutput{}, err
	}

	return uc.buildReportOutput(rpt), nil
}

// List returns all reports, most recent date first.
func (uc *implUseCase) List(ctx context.Context) ([]report.ReportOutput, error) {
	rpts, err := uc.repo.ListReports(ctx, repository.ListReportsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.List: Failed to list reports: %v", err)
		return nil, err
	}

	outputs := make([]report.ReportOutput, 0, len(rpts))
	for _, rpt := range rpts {
		outputs = append(outputs, uc.buildReportOutput(rpt))
	}

	return outputs, nil
}

// GetByID returns one report, trying cache first.
func (uc *implUseCase) GetByID(ctx context.Context, input report.GetInput) (report.ReportOutput, error) {
	if _, err := uuid.Parse(input.ID); err != nil {
		return report.ReportOutput{}, report.ErrInvalidID
	}

	if uc.cache != nil {
		if cached, err := uc.cache.GetReport(ctx, input.ID); err == nil {
			return uc.buildReportOutput(cached), nil
		}
	}

	rpt, err := uc.repo.GetReportByID(ctx, input.ID)
	if err == repository.ErrReportNotFound {
		return report.ReportOutput{}, report.ErrReportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.GetByID: Failed to get report: %v", err)
		return report.ReportOutput{}, err
	}

	if uc.cache != nil {
		// Cache failures never fail the read path.
		_ = uc.cache.SaveReport(ctx, rpt)
	}

	return uc.buildReportOutput(rpt), nil
}

// Update applies a partial update to a report.
func (uc *implUseCase) Update(ctx context.Context, input report.UpdateInput) (report.ReportOutput, error) {
	if _, err := uuid.Parse(input.ID); err != nil {
		return report.ReportOutput{}, report.ErrInvalidID
	}
	if input.Title != nil && *input.Title == "" {
		return report.ReportOutput{}, report.ErrTitleRequired
	}
	if input.Status != nil && !isValidStatus(*input.Status) {
		return report.ReportOutput{}, report.ErrInvalidStatus
	}

	rpt, err := uc.repo.UpdateReport(ctx, repository.UpdateReportOptions{
		ID:     input.ID,
		Title:  input.Title,
		Date:   input.Date,
		Data:   input.Data,
		Status: input.Status,
	})
	if err == repository.ErrReportNotFound {
		return report.ReportOutput{}, report.ErrReportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Update: Failed to update report: %v", err)
		return report.ReportOutput{}, err
	}

	uc.invalidateCache(ctx, input.ID)

	return uc.buildReportOutput(rpt), nil
}

// Delete removes a report.
func (uc *implUseCase) Delete(ctx context.Context, input report.DeleteInput) error {
	if _, err := uuid.Parse(input.ID); err != nil {
		return report.ErrInvalidID
	}

	err := uc.repo.DeleteReport(ctx, input.ID)
	if err == repository.ErrReportNotFound {
		return report.ErrReportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Delete: Failed to delete report: %v", err)
		return err
	}

	uc.invalidateCache(ctx, input.ID)

	return nil
}

// AttachAnalysis sets the AI analysis payload on an existing report.
func (uc *implUseCase) AttachAnalysis(ctx context.Context, input report.AttachAnalysisInput) (report.ReportOutput, error) {
	if _, err := uuid.Parse(input.ID); err != nil {
		return report.ReportOutput{}, report.ErrInvalidID
	}

	analysis := input.Analysis
	if len(analysis) == 0 {
		analysis = []byte(`{}`)
	}

	rpt, err := uc.repo.UpdateAnalysis(ctx, repository.UpdateAnalysisOptions{
		ID:       input.ID,
		Analysis: analysis,
	})
	if err == repository.ErrReportNotFound {
		return report.ReportOutput{}, report.ErrReportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.AttachAnalysis: Failed to attach analysis: %v", err)
		return report.ReportOutput{}, err
	}

	uc.invalidateCache(ctx, input.ID)

	return uc.buildReportOutput(rpt), nil
}
