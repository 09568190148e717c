package handler

import (
	"merchant-reporting-bff/internal/adapter/http/dto"
	"merchant-reporting-bff/internal/adapter/http/middleware"
	"merchant-reporting-bff/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportSvc ports.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportSvc ports.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// GetRefundsReport handles POST /api/v1/reports/refunds.
func (h *ReportHandler) GetRefundsReport(c *gin.Context) {
	var req dto.RefundsReportRequest
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.reportSvc.GetRefundsReport(c.Request.Context(), req.ToDomain(), middleware.AuthToken(c))
	respond(c, report, err)
}
