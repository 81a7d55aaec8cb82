package repository

import "time"

type CreateReportOptions struct {
	ID              string
	Title           string
	Date            time.Time
	Data            []byte // JSON
	IsAutoGenerated bool
	GeneratedBy     string
	Status          string
}

type UpdateReportOptions struct {
	ID     string
	Title  *string
	Date   *time.Time
	Data   []byte // JSON, nil means unchanged
	Status *string
}

type UpdateAnalysisOptions struct {
	ID       string
	Analysis []byte // JSON
}

type ListReportsOptions struct {
	IsAutoGenerated *bool
	Status          string
	Limit           int
	Offset          int
}
