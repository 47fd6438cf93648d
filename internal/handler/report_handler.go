package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uema-profitec/sigep-api/internal/service"
	"github.com/uema-profitec/sigep-api/pkg/response"
)

// ReportHandler exposes the workload aggregation, as JSON and as a
// printable PDF.
type ReportHandler struct {
	reports *service.ReportService
	exports *service.ExportService
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(reports *service.ReportService, exports *service.ExportService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

// Workload godoc
// @Summary Workload report for a semester
// @Tags Reports
// @Produce json
// @Param semesterId query string true "Semester ID"
// @Success 200 {object} response.Envelope
// @Router /reports/workload [get]
func (h *ReportHandler) Workload(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.reports.Workload(c.Query("semesterId")))
}

// WorkloadPrint godoc
// @Summary Printable workload report
// @Tags Reports
// @Produce application/pdf
// @Param semesterId query string true "Semester ID"
// @Success 200
// @Router /reports/workload/print [get]
func (h *ReportHandler) WorkloadPrint(c *gin.Context) {
	content, filename, err := h.exports.WorkloadPDF(c.Query("semesterId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", content)
}
