package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thinhdeeptry/report-service/internal/model"
	"github.com/thinhdeeptry/report-service/pkg/statsrv"
	"github.com/thinhdeeptry/report-service/pkg/util"
)

const (
	fallbackYear        = 2025
	fallbackRevenueMin  = 5000
	fallbackRevenueMax  = 15000
	fallbackEnrollMin   = 100
	fallbackEnrollMax   = 300
	fallbackMonthsCount = 12
)

// buildReportData maps the three raw upstream payloads into the normalized
// report body.
func (uc *implUseCase) buildReportData(
	payment *statsrv.PaymentStats,
	enrollment *statsrv.EnrollmentStats,
	course *statsrv.CourseStats,
) model.ReportData {
	revenueMonthly := payment.MonthlyRevenue
	if revenueMonthly == nil {
		revenueMonthly = uc.synthesizeMonthly(fallbackRevenueMin, fallbackRevenueMax)
	}
	enrollMonthly := enrollment.MonthlyEnrollments
	if enrollMonthly == nil {
		enrollMonthly = uc.synthesizeMonthly(fallbackEnrollMin, fallbackEnrollMax)
	}

	return model.ReportData{
		SchemaVersion: model.ReportDataSchemaVersion,
		Revenue: model.RevenueStats{
			Total:              payment.TotalRevenue,
			Last30Days:         payment.RevenueLast30Days,
			AverageTransaction: payment.AverageTransactionValue,
			FailedRate:         payment.FailedTransactionsRate,
			ByMethod:           payment.PaymentMethodsBreakdown,
			Monthly:            toModelMonthly(revenueMonthly),
		},
		Enrollments: model.EnrollmentStats{
			Total:                 enrollment.TotalEnrollments,
			Last30Days:            enrollment.NewEnrollmentsLast30Days,
			DropoutRate:           enrollment.DropoutRate,
			ByCourse:              enrollment.EnrollmentsByCourse,
			AverageTimeToComplete: enrollment.AverageTimeToComplete,
			CompletionRate:        enrollment.AverageCompletionRate,
			PopularCourses:        enrollment.PopularCourses,
			Monthly:               toModelMonthly(enrollMonthly),
		},
		Courses: model.CourseStats{
			Total:  course.TotalCourses,
			Active: course.ActiveCourses,
		},
		MonthlyStats: uc.buildMonthlyStats(revenueMonthly, enrollMonthly),
	}
}

// synthesizeMonthly produces a full year of months with uniformly random
// totals in [min, max). Fallback for upstreams that omit their series.
func (uc *implUseCase) synthesizeMonthly(min, max float64) []statsrv.MonthlyEntry {
	entries := make([]statsrv.MonthlyEntry, 0, fallbackMonthsCount)
	for m := time.January; m <= time.December; m++ {
		entries = append(entries, statsrv.MonthlyEntry{
			Month: time.Date(fallbackYear, m, 1, 0, 0, 0, 0, time.UTC).Format(util.MonthFormat),
			Total: min + uc.config.Rand.Float64()*(max-min),
		})
	}
	return entries
}

// buildMonthlyStats joins the revenue and enrollment series into one
// comparison series, one row per revenue entry, matched by month key. Rows
// are labeled "T<n>" from the numeric month component. When either series is
// empty the join degenerates into 12 generic rows with fresh random values.
func (uc *implUseCase) buildMonthlyStats(revenue, enrollment []statsrv.MonthlyEntry) []model.MonthlyStat {
	if len(revenue) == 0 || len(enrollment) == 0 {
		stats := make([]model.MonthlyStat, 0, fallbackMonthsCount)
		for m := 1; m <= fallbackMonthsCount; m++ {
			stats = append(stats, model.MonthlyStat{
				Name:       fmt.Sprintf("T%d", m),
				Revenue:    fallbackRevenueMin + uc.config.Rand.Float64()*(fallbackRevenueMax-fallbackRevenueMin),
				Enrollment: fallbackEnrollMin + uc.config.Rand.Float64()*(fallbackEnrollMax-fallbackEnrollMin),
			})
		}
		return stats
	}

	byMonth := make(map[string]float64, len(enrollment))
	for _, e := range enrollment {
		byMonth[e.Month] = e.Total
	}

	stats := make([]model.MonthlyStat, 0, len(revenue))
	for _, r := range revenue {
		stats = append(stats, model.MonthlyStat{
			Name:       monthLabel(r.Month),
			Revenue:    r.Total,
			Enrollment: byMonth[r.Month],
		})
	}
	return stats
}

// monthLabel turns a "YYYY-MM" key into a "T<n>" label.
func monthLabel(month string) string {
	if idx := strings.LastIndex(month, "-"); idx >= 0 {
		if n, err := strconv.Atoi(month[idx+1:]); err == nil {
			return fmt.Sprintf("T%d", n)
		}
	}
	return "T" + month
}

func toModelMonthly(entries []statsrv.MonthlyEntry) []model.MonthlyEntry {
	out := make([]model.MonthlyEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.MonthlyEntry{Month: e.Month, Total: e.Total})
	}
	return out
}
