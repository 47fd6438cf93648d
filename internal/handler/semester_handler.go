package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uema-profitec/sigep-api/internal/service"
	appErrors "github.com/uema-profitec/sigep-api/pkg/errors"
	"github.com/uema-profitec/sigep-api/pkg/response"
)

// SemesterHandler wires semester and offering services to HTTP routes.
type SemesterHandler struct {
	semesters *service.SemesterService
}

// NewSemesterHandler constructs a SemesterHandler.
func NewSemesterHandler(semesters *service.SemesterService) *SemesterHandler {
	return &SemesterHandler{semesters: semesters}
}

// List godoc
// @Summary List semesters
// @Tags Semesters
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /semesters [get]
func (h *SemesterHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.semesters.List())
}

// Get godoc
// @Summary Get semester detail
// @Tags Semesters
// @Produce json
// @Param id path string true "Semester ID"
// @Success 200 {object} response.Envelope
// @Router /semesters/{id} [get]
func (h *SemesterHandler) Get(c *gin.Context) {
	semester, err := h.semesters.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, semester)
}

// Create godoc
// @Summary Create semester
// @Tags Semesters
// @Accept json
// @Produce json
// @Param payload body service.CreateSemesterRequest true "Semester payload"
// @Success 201 {object} response.Envelope
// @Router /semesters [post]
func (h *SemesterHandler) Create(c *gin.Context) {
	var req service.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid semester payload"))
		return
	}
	semester, err := h.semesters.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, semester)
}

// Update godoc
// @Summary Update semester
// @Tags Semesters
// @Accept json
// @Produce json
// @Param id path string true "Semester ID"
// @Param payload body service.CreateSemesterRequest true "Semester payload"
// @Success 200 {object} response.Envelope
// @Router /semesters/{id} [put]
func (h *SemesterHandler) Update(c *gin.Context) {
	var req service.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid semester payload"))
		return
	}
	semester, err := h.semesters.Update(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, semester)
}

// UpdateStatus godoc
// @Summary Update semester status
// @Tags Semesters
// @Accept json
// @Produce json
// @Param id path string true "Semester ID"
// @Param payload body service.UpdateSemesterStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Router /semesters/{id}/status [patch]
func (h *SemesterHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateSemesterStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}
	semester, err := h.semesters.UpdateStatus(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, semester)
}

// AddOffering godoc
// @Summary Add offering to semester
// @Tags Offerings
// @Accept json
// @Produce json
// @Param id path string true "Semester ID"
// @Param payload body service.AddOfferingRequest true "Offering payload"
// @Success 201 {object} response.Envelope
// @Router /semesters/{id}/offerings [post]
func (h *SemesterHandler) AddOffering(c *gin.Context) {
	var req service.AddOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid offering payload"))
		return
	}
	offering, err := h.semesters.AddOffering(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, offering)
}

// RemoveOffering godoc
// @Summary Remove offering from semester
// @Tags Offerings
// @Param id path string true "Semester ID"
// @Param offeringID path string true "Offering ID"
// @Success 204
// @Router /semesters/{id}/offerings/{offeringID} [delete]
func (h *SemesterHandler) RemoveOffering(c *gin.Context) {
	h.semesters.RemoveOffering(c.Param("id"), c.Param("offeringID"))
	response.NoContent(c)
}
