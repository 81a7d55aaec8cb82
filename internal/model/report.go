package model

import (
	"encoding/json"
	"time"
)

// Report is a persisted snapshot of aggregated business metrics, either
// created manually through the API or produced by the generation pipeline.
type Report struct {
	ID    string
	Title string
	Date  time.Time

	// Data is the schema-flexible report body. Auto-generated reports carry
	// a ReportData document; manual creates may store any JSON object.
	Data json.RawMessage

	// AIAnalysis is attached post-creation by a separate update operation.
	AIAnalysis json.RawMessage

	IsAutoGenerated bool
	GeneratedBy     string
	Status          string // PENDING | COMPLETED | FAILED

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReportDataSchemaVersion stamps generated report bodies so consumers can
// detect shape drift.
const ReportDataSchemaVersion = 1

// ReportData is the normalized report body produced by the shaper.
type ReportData struct {
	SchemaVersion int             `json:"schemaVersion"`
	Revenue       RevenueStats    `json:"revenue"`
	Enrollments   EnrollmentStats `json:"enrollments"`
	Courses       CourseStats     `json:"courses"`
	MonthlyStats  []MonthlyStat   `json:"monthlyStats"`
}

// RevenueStats aggregates payment metrics.
type RevenueStats struct {
	Total              float64         `json:"total"`
	Last30Days         float64         `json:"last30Days"`
	AverageTransaction float64         `json:"averageTransaction"`
	FailedRate         float64         `json:"failedRate"`
	ByMethod           json.RawMessage `json:"byMethod,omitempty"`
	Monthly            []MonthlyEntry  `json:"monthly"`
}

// EnrollmentStats aggregates enrollment metrics.
type EnrollmentStats struct {
	Total                 float64         `json:"total"`
	Last30Days            float64         `json:"last30Days"`
	DropoutRate           float64         `json:"dropoutRate"`
	ByCourse              json.RawMessage `json:"byCourse,omitempty"`
	AverageTimeToComplete float64         `json:"averageTimeToComplete"`
	CompletionRate        float64         `json:"completionRate"`
	PopularCourses        json.RawMessage `json:"popularCourses,omitempty"`
	Monthly               []MonthlyEntry  `json:"monthly"`
}

// CourseStats aggregates course catalog metrics.
type CourseStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// MonthlyEntry is one month of a revenue or enrollment series.
type MonthlyEntry struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

// MonthlyStat is one row of the derived month-by-month comparison view.
type MonthlyStat struct {
	Name       string  `json:"name"` // T<month-number>
	Revenue    float64 `json:"revenue"`
	Enrollment float64 `json:"enrollment"`
}

// EncodeData marshals a ReportData into the report body format.
func EncodeData(data ReportData) (json.RawMessage, error) {
	data.SchemaVersion = ReportDataSchemaVersion
	return json.Marshal(data)
}

// DecodeData unmarshals a report body into ReportData. Bodies written by
// manual creates may not conform; callers must treat an error as "opaque
// payload", not corruption.
func DecodeData(raw json.RawMessage) (*ReportData, error) {
	var data ReportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
