package http

import (
	"github.com/thinhdeeptry/report-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("", h.CreateReport)
	r.GET("", h.ListReports)
	r.POST("/generate", h.GenerateReport)
	r.GET("/:report_id", h.GetReport)
	r.PUT("/:report_id", h.UpdateReport)
	r.DELETE("/:report_id", h.DeleteReport)
	r.POST("/:report_id/analysis", h.AttachAnalysis)
}
