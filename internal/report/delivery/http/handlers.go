package http

import (
	"github.com/thinhdeeptry/report-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Create a report
// @Description Persist a manually supplied report document
// @Tags Report
// @Accept json
// @Produce json
// @Param body body createReportReq true "Report fields"
// @Success 201 {object} reportResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /reports [post]
func (h *handler) CreateReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.CreateReport: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, h.newReportResp(o))
}

// @Summary List reports
// @Description Return all reports sorted by report date, newest first
// @Tags Report
// @Produce json
// @Success 200 {array} reportResp
// @Failure 500 {object} response.Resp
// @Router /reports [get]
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	os, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListReportsResp(os))
}

// @Summary Get a report
// @Description Return one report by id
// @Tags Report
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} reportResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /reports/{report_id} [get]
func (h *handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetByID(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: usecase GetByID failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Update a report
// @Description Apply a partial update to a report
// @Tags Report
// @Accept json
// @Produce json
// @Param report_id path string true "Report ID"
// @Param body body updateReportReq true "Fields to update"
// @Success 200 {object} reportResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /reports/{report_id} [put]
func (h *handler) UpdateReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.UpdateReport: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Delete a report
// @Description Remove a report by id
// @Tags Report
// @Param report_id path string true "Report ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /reports/{report_id} [delete]
func (h *handler) DeleteReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DeleteReport: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.NoContent(c)
}

// @Summary Attach AI analysis
// @Description Set the AI analysis payload on an existing report
// @Tags Report
// @Accept json
// @Produce json
// @Param report_id path string true "Report ID"
// @Param body body object true "Arbitrary analysis payload"
// @Success 200 {object} reportResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /reports/{report_id}/analysis [post]
func (h *handler) AttachAnalysis(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAttachAnalysisRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.AttachAnalysis(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.AttachAnalysis: usecase AttachAnalysis failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Generate a report
// @Description Fetch statistics from the payment, enrollment and course services and persist an aggregated report
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateReportReq false "Generation request"
// @Success 201 {object} reportResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /reports/generate [post]
func (h *handler) GenerateReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateReport: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, h.newReportResp(o))
}
