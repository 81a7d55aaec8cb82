package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thinhdeeptry/report-service/internal/model"
	"github.com/thinhdeeptry/report-service/internal/report"
	"github.com/thinhdeeptry/report-service/internal/report/repository"
	"github.com/thinhdeeptry/report-service/pkg/locale"
	"github.com/thinhdeeptry/report-service/pkg/statsrv"
	"github.com/thinhdeeptry/report-service/pkg/util"
)

// reportGeneratedEvent is the payload published after a successful generation.
type reportGeneratedEvent struct {
	Event       string `json:"event"`
	ReportID    string `json:"reportId"`
	GeneratedBy string `json:"generatedBy"`
	Date        string `json:"date"`
}

// Generate fetches stats from the three upstream services, shapes them into
// a report body and persists the result. All three fetches must succeed; a
// single failure aborts the whole operation with nothing persisted.
func (uc *implUseCase) Generate(ctx context.Context, input report.GenerateInput) (report.ReportOutput, error) {
	userID := input.UserID
	if userID == "" {
		userID = report.GeneratedBySystem
	}

	uc.l.Infof(ctx, "report.usecase.Generate: Starting report generation for user %s", userID)

	var (
		payment    *statsrv.PaymentStats
		enrollment *statsrv.EnrollmentStats
		course     *statsrv.CourseStats

		paymentErr    error
		enrollmentErr error
		courseErr     error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		payment, paymentErr = uc.stats.FetchPaymentStats(ctx)
	}()
	go func() {
		defer wg.Done()
		enrollment, enrollmentErr = uc.stats.FetchEnrollmentStats(ctx)
	}()
	go func() {
		defer wg.Done()
		course, courseErr = uc.stats.FetchCourseStats(ctx)
	}()
	wg.Wait()

	for _, err := range []error{paymentErr, enrollmentErr, courseErr} {
		if err != nil {
			uc.l.Errorf(ctx, "report.usecase.Generate: Upstream fetch failed: %v", err)
			return report.ReportOutput{}, report.ErrUpstreamFailed
		}
	}

	now := uc.config.Now()

	data, err := model.EncodeData(uc.buildReportData(payment, enrollment, course))
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: Failed to encode report data: %v", err)
		return report.ReportOutput{}, report.ErrGenerationFailed
	}

	rpt, err := uc.repo.CreateReport(ctx, repository.CreateReportOptions{
		ID:              uuid.New().String(),
		Title:           autoTitle(locale.GetLang(ctx), now),
		Date:            now,
		Data:            data,
		IsAutoGenerated: true,
		GeneratedBy:     userID,
		Status:          report.StatusCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: Failed to persist report: %v", err)
		return report.ReportOutput{}, report.ErrGenerationFailed
	}

	uc.publishGenerated(ctx, rpt.ID, userID, now)

	uc.l.Infof(ctx, "report.usecase.Generate: Report %s generated", rpt.ID)

	return uc.buildReportOutput(rpt), nil
}

// publishGenerated emits the report.generated event. Publishing is best
// effort and never fails the generation.
func (uc *implUseCase) publishGenerated(ctx context.Context, reportID, userID string, date time.Time) {
	if uc.producer == nil {
		return
	}

	payload, err := json.Marshal(reportGeneratedEvent{
		Event:       "report.generated",
		ReportID:    reportID,
		GeneratedBy: userID,
		Date:        util.DateTimeToStr(date),
	})
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.publishGenerated: Failed to marshal event: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(reportID), payload); err != nil {
		uc.l.Warnf(ctx, "report.usecase.publishGenerated: Failed to publish event: %v", err)
	}
}

// autoTitle builds the localized date-stamped title for generated reports.
func autoTitle(lang string, t time.Time) string {
	switch lang {
	case locale.EN:
		return "Automated Report - " + t.Format("01/02/2006")
	case locale.JA:
		return "自動レポート - " + t.Format("2006/01/02")
	default:
		return "Báo cáo tự động - " + t.Format("02/01/2006")
	}
}
