package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uema-profitec/sigep-api/internal/service"
	appErrors "github.com/uema-profitec/sigep-api/pkg/errors"
	"github.com/uema-profitec/sigep-api/pkg/response"
)

// ProfessorHandler wires roster services to HTTP routes.
type ProfessorHandler struct {
	professors *service.ProfessorService
	exports    *service.ExportService
}

// NewProfessorHandler constructs a ProfessorHandler.
func NewProfessorHandler(professors *service.ProfessorService, exports *service.ExportService) *ProfessorHandler {
	return &ProfessorHandler{professors: professors, exports: exports}
}

// List godoc
// @Summary List professors
// @Tags Professors
// @Produce json
// @Param search query string false "Search by name/area"
// @Param active query bool false "Filter by active status"
// @Success 200 {object} response.Envelope
// @Router /professors [get]
func (h *ProfessorHandler) List(c *gin.Context) {
	filter := service.ProfessorFilter{Search: strings.TrimSpace(c.Query("search"))}
	if active := c.Query("active"); active != "" {
		switch strings.ToLower(active) {
		case "true":
			val := true
			filter.Active = &val
		case "false":
			val := false
			filter.Active = &val
		}
	}
	response.JSON(c, http.StatusOK, h.professors.List(filter))
}

// Get godoc
// @Summary Get professor detail
// @Tags Professors
// @Produce json
// @Param id path string true "Professor ID"
// @Success 200 {object} response.Envelope
// @Router /professors/{id} [get]
func (h *ProfessorHandler) Get(c *gin.Context) {
	professor, err := h.professors.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, professor)
}

// Create godoc
// @Summary Create professor
// @Tags Professors
// @Accept json
// @Produce json
// @Param payload body service.CreateProfessorRequest true "Professor payload"
// @Success 201 {object} response.Envelope
// @Router /professors [post]
func (h *ProfessorHandler) Create(c *gin.Context) {
	var req service.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid professor payload"))
		return
	}
	professor, err := h.professors.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, professor)
}

// Update godoc
// @Summary Update professor
// @Tags Professors
// @Accept json
// @Produce json
// @Param id path string true "Professor ID"
// @Param payload body service.UpdateProfessorRequest true "Professor payload"
// @Success 200 {object} response.Envelope
// @Router /professors/{id} [put]
func (h *ProfessorHandler) Update(c *gin.Context) {
	var req service.UpdateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid professor payload"))
		return
	}
	professor, err := h.professors.Update(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, professor)
}

// AddDocument godoc
// @Summary Upload professor document
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Professor ID"
// @Param payload body service.AddDocumentRequest true "Document payload"
// @Success 201 {object} response.Envelope
// @Router /professors/{id}/documents [post]
func (h *ProfessorHandler) AddDocument(c *gin.Context) {
	var req service.AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid document payload"))
		return
	}
	doc, err := h.professors.AddDocument(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, doc)
}

// RemoveDocument godoc
// @Summary Remove professor document
// @Tags Documents
// @Param id path string true "Professor ID"
// @Param docID path string true "Document ID"
// @Success 204
// @Router /professors/{id}/documents/{docID} [delete]
func (h *ProfessorHandler) RemoveDocument(c *gin.Context) {
	h.professors.RemoveDocument(c.Param("id"), c.Param("docID"))
	response.NoContent(c)
}

// DownloadDocument godoc
// @Summary Download professor document
// @Tags Documents
// @Param id path string true "Professor ID"
// @Param docID path string true "Document ID"
// @Success 200
// @Router /professors/{id}/documents/{docID}/download [get]
func (h *ProfessorHandler) DownloadDocument(c *gin.Context) {
	download, err := h.professors.DownloadDocument(c.Param("id"), c.Param("docID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	c.Data(http.StatusOK, download.MimeType, download.Content)
}

// ExportCSV godoc
// @Summary Export professor roster as CSV
// @Tags Professors
// @Produce text/csv
// @Success 200
// @Router /professors/export [get]
func (h *ProfessorHandler) ExportCSV(c *gin.Context) {
	content, err := h.exports.RosterCSV()
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.RosterCSVFilename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", content)
}
