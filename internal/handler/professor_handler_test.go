package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uema-profitec/sigep-api/internal/service"
	"github.com/uema-profitec/sigep-api/internal/store"
	"github.com/uema-profitec/sigep-api/pkg/export"
)

func newProfessorHandler(t *testing.T) (*ProfessorHandler, *store.Store) {
	t.Helper()
	st := store.New()
	professors := service.NewProfessorService(st, nil, nil)
	reports := service.NewReportService(st, nil)
	exports := service.NewExportService(st, reports, export.NewCSVExporter(), export.NewPDFExporter(), nil)
	return NewProfessorHandler(professors, exports), st
}

func TestProfessorCreateAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, st := newProfessorHandler(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	body := `{"name":"Dr. João Silva","email":"joao@uema.br","cpf":"111.222.333-44","titulation":"Doutor","area":"Computação","max_workload":40,"active":true}`
	c.Request = httptest.NewRequest(http.MethodPost, "/professors", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	require.Equal(t, http.StatusCreated, rec.Code)

	professors := st.Professors()
	require.Len(t, professors, 1)

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/professors/"+professors[0].ID, nil)
	c.Params = gin.Params{{Key: "id", Value: professors[0].ID}}
	h.Get(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dr. João Silva")
}

func TestProfessorCreateInvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newProfessorHandler(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/professors", bytes.NewBufferString(`{"name":""}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfessorGetUnknownID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newProfessorHandler(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/professors/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfessorExportCSVSetsDisposition(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, st := newProfessorHandler(t)
	store.Seed(st)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/professors/export", nil)
	h.ExportCSV(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), service.RosterCSVFilename)
	assert.Contains(t, rec.Body.String(), "Dr. João Silva")
}
