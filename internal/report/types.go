package report

import (
	"encoding/json"
	"time"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"

	// GeneratedBySystem is the actor recorded when no user triggered the
	// generation.
	GeneratedBySystem = "system"
)

type CreateInput struct {
	Title           string
	Date            time.Time
	Data            json.RawMessage
	IsAutoGenerated bool
	GeneratedBy     string
	Status          string
}

type UpdateInput struct {
	ID     string
	Title  *string
	Date   *time.Time
	Data   json.RawMessage
	Status *string
}

type GetInput struct {
	ID string
}

type DeleteInput struct {
	ID string
}

type AttachAnalysisInput struct {
	ID       string
	Analysis json.RawMessage
}

type GenerateInput struct {
	UserID string
}

type ReportOutput struct {
	ID              string
	Title           string
	Date            time.Time
	Data            json.RawMessage
	AIAnalysis      json.RawMessage
	IsAutoGenerated bool
	GeneratedBy     string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
