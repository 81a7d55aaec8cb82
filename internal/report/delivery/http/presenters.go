package http

import (
	"encoding/json"
	"time"

	"github.com/thinhdeeptry/report-service/internal/report"
)

type createReportReq struct {
	Title           string          `json:"title" binding:"required"`
	Date            time.Time       `json:"date" binding:"required"`
	Data            json.RawMessage `json:"data" binding:"required"`
	IsAutoGenerated bool            `json:"isAutoGenerated"`
	GeneratedBy     string          `json:"generatedBy"`
	Status          string          `json:"status"`
}

func (r createReportReq) toInput() report.CreateInput {
	return report.CreateInput{
		Title:           r.Title,
		Date:            r.Date,
		Data:            r.Data,
		IsAutoGenerated: r.IsAutoGenerated,
		GeneratedBy:     r.GeneratedBy,
		Status:          r.Status,
	}
}

type updateReportReq struct {
	ReportID string          `json:"-"`
	Title    *string         `json:"title"`
	Date     *time.Time      `json:"date"`
	Data     json.RawMessage `json:"data"`
	Status   *string         `json:"status"`
}

func (r updateReportReq) toInput() report.UpdateInput {
	return report.UpdateInput{
		ID:     r.ReportID,
		Title:  r.Title,
		Date:   r.Date,
		Data:   r.Data,
		Status: r.Status,
	}
}

type getReportReq struct {
	ReportID string
}

func (r getReportReq) toInput() report.GetInput {
	return report.GetInput{
		ID: r.ReportID,
	}
}

type deleteReportReq struct {
	ReportID string
}

func (r deleteReportReq) toInput() report.DeleteInput {
	return report.DeleteInput{
		ID: r.ReportID,
	}
}

type attachAnalysisReq struct {
	ReportID string
	Analysis json.RawMessage
}

func (r attachAnalysisReq) toInput() report.AttachAnalysisInput {
	return report.AttachAnalysisInput{
		ID:       r.ReportID,
		Analysis: r.Analysis,
	}
}

type generateReportReq struct {
	UserID string `json:"userId"`
}

func (r generateReportReq) toInput() report.GenerateInput {
	return report.GenerateInput{
		UserID: r.UserID,
	}
}

type reportResp struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Date            time.Time       `json:"date"`
	Data            json.RawMessage `json:"data"`
	AIAnalysis      json.RawMessage `json:"aiAnalysis,omitempty"`
	IsAutoGenerated bool            `json:"isAutoGenerated"`
	GeneratedBy     string          `json:"generatedBy,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (h *handler) newReportResp(o report.ReportOutput) reportResp {
	return reportResp{
		ID:              o.ID,
		Title:           o.Title,
		Date:            o.Date,
		Data:            o.Data,
		AIAnalysis:      o.AIAnalysis,
		IsAutoGenerated: o.IsAutoGenerated,
		GeneratedBy:     o.GeneratedBy,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func (h *handler) newListReportsResp(os []report.ReportOutput) []reportResp {
	resps := make([]reportResp, 0, len(os))
	for _, o := range os {
		resps = append(resps, h.newReportResp(o))
	}
	return resps
}
