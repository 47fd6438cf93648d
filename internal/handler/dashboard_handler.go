package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uema-profitec/sigep-api/internal/service"
	"github.com/uema-profitec/sigep-api/pkg/response"
)

// DashboardHandler exposes aggregate counters for the landing screen.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats godoc
// @Summary Dashboard statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.dashboard.Stats())
}
