package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uema-profitec/sigep-api/internal/service"
	appErrors "github.com/uema-profitec/sigep-api/pkg/errors"
	"github.com/uema-profitec/sigep-api/pkg/response"
)

// DisciplineHandler wires the catalog service to HTTP routes.
type DisciplineHandler struct {
	disciplines *service.DisciplineService
}

// NewDisciplineHandler constructs a DisciplineHandler.
func NewDisciplineHandler(disciplines *service.DisciplineService) *DisciplineHandler {
	return &DisciplineHandler{disciplines: disciplines}
}

// List godoc
// @Summary List disciplines
// @Tags Disciplines
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /disciplines [get]
func (h *DisciplineHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.disciplines.List())
}

// Create godoc
// @Summary Create discipline
// @Tags Disciplines
// @Accept json
// @Produce json
// @Param payload body service.CreateDisciplineRequest true "Discipline payload"
// @Success 201 {object} response.Envelope
// @Router /disciplines [post]
func (h *DisciplineHandler) Create(c *gin.Context) {
	var req service.CreateDisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid discipline payload"))
		return
	}
	discipline, err := h.disciplines.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, discipline)
}

// Update godoc
// @Summary Update discipline
// @Tags Disciplines
// @Accept json
// @Produce json
// @Param id path string true "Discipline ID"
// @Param payload body service.CreateDisciplineRequest true "Discipline payload"
// @Success 200 {object} response.Envelope
// @Router /disciplines/{id} [put]
func (h *DisciplineHandler) Update(c *gin.Context) {
	var req service.CreateDisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid discipline payload"))
		return
	}
	discipline, err := h.disciplines.Update(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, discipline)
}
