package http

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateReportRequest(c *gin.Context) (createReportReq, error) {
	var req createReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processCreateReportRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidBody
	}

	return req, nil
}

func (h *handler) processGetReportRequest(c *gin.Context) (getReportReq, error) {
	return getReportReq{
		ReportID: c.Param("report_id"),
	}, nil
}

func (h *handler) processUpdateReportRequest(c *gin.Context) (updateReportReq, error) {
	var req updateReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processUpdateReportRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidBody
	}

	req.ReportID = c.Param("report_id")
	return req, nil
}

func (h *handler) processDeleteReportRequest(c *gin.Context) (deleteReportReq, error) {
	return deleteReportReq{
		ReportID: c.Param("report_id"),
	}, nil
}

// processAttachAnalysisRequest reads the raw body. The analysis payload is
// stored as-is, so the only requirement is that it is valid JSON.
func (h *handler) processAttachAnalysisRequest(c *gin.Context) (attachAnalysisReq, error) {
	req := attachAnalysisReq{
		ReportID: c.Param("report_id"),
	}

	ctx := c.Request.Context()
	body, err := c.GetRawData()
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processAttachAnalysisRequest: GetRawData failed: %v", err)
		return req, errInvalidBody
	}

	if len(body) > 0 && !json.Valid(body) {
		return req, errInvalidBody
	}

	req.Analysis = body
	return req, nil
}

// processGenerateReportRequest binds the optional body. An empty body is
// valid and means "generate on behalf of the system".
func (h *handler) processGenerateReportRequest(c *gin.Context) (generateReportReq, error) {
	var req generateReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateReportRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidBody
	}

	return req, nil
}
