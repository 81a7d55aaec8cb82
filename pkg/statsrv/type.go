package statsrv

import (
	"encoding/json"

	pkghttp "github.com/thinhdeeptry/report-service/pkg/http"
	"github.com/thinhdeeptry/report-service/pkg/log"
)

// StatsConfig holds configuration for the stats clients. The path suffixes
// are configurable because upstream deployments have not agreed on a single
// route layout.
type StatsConfig struct {
	PaymentBaseURL    string
	EnrollmentBaseURL string
	CourseBaseURL     string

	PaymentStatsPath    string
	EnrollmentStatsPath string
	CourseStatsPath     string

	HTTPClient pkghttp.IClient
}

// MonthlyEntry is one month of an upstream time series.
type MonthlyEntry struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// PaymentStats is the payment service statistics payload. Fields the
// upstream omits are left at their zero value; the monthly series is nil
// when absent.
type PaymentStats struct {
	TotalRevenue            float64         `json:"totalRevenue"`
	RevenueLast30Days       float64         `json:"revenueLast30Days"`
	AverageTransactionValue float64         `json:"averageTransactionValue"`
	FailedTransactionsRate  float64         `json:"failedTransactionsRate"`
	PaymentMethodsBreakdown json.RawMessage `json:"paymentMethodsBreakdown"`
	MonthlyRevenue          []MonthlyEntry  `json:"monthlyRevenue"`
}

// EnrollmentStats is the enrollment service statistics payload.
type EnrollmentStats struct {
	TotalEnrollments         float64         `json:"totalEnrollments"`
	NewEnrollmentsLast30Days float64         `json:"newEnrollmentsLast30Days"`
	DropoutRate              float64         `json:"dropoutRate"`
	EnrollmentsByCourse      json.RawMessage `json:"enrollmentsByCourse"`
	AverageTimeToComplete    float64         `json:"averageTimeToComplete"`
	AverageCompletionRate    float64         `json:"averageCompletionRate"`
	PopularCourses           json.RawMessage `json:"popularCourses"`
	MonthlyEnrollments       []MonthlyEntry  `json:"monthlyEnrollments"`
}

// CourseStats is the course service statistics payload.
type CourseStats struct {
	TotalCourses  int `json:"totalCourses"`
	ActiveCourses int `json:"activeCourses"`
}

// statsImpl implements IStats.
type statsImpl struct {
	l          log.Logger
	config     StatsConfig
	httpClient pkghttp.IClient
}
