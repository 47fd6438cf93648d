package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uema-profitec/sigep-api/internal/models"
	"github.com/uema-profitec/sigep-api/internal/store"
	"github.com/uema-profitec/sigep-api/pkg/export"
)

func newExportFixture(st *store.Store) *ExportService {
	reports := NewReportService(st, nil)
	svc := NewExportService(st, reports, export.NewCSVExporter(), export.NewPDFExporter(), nil)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestRosterCSVRendersOneRowPerProfessor(t *testing.T) {
	st := store.New()
	st.AddProfessor(models.Professor{
		Name: "Silva, João", Email: "joao@uema.br", CPF: "111.222.333-44",
		Titulation: models.TitulationDoutor, Area: "Computação", MaxWorkload: 40, Active: true,
	})
	prof := st.AddProfessor(models.Professor{
		Name: "Maria Santos", Email: "maria@uema.br", CPF: "555.666.777-88",
		Titulation: models.TitulationMestre, Area: "Matemática", MaxWorkload: 20, Active: false,
	})
	_, ok := st.AddDocument(prof.ID, models.Document{Name: "diploma.pdf", Type: "application/pdf", DataURL: "ZGF0YQ=="})
	require.True(t, ok)

	content, err := newExportFixture(st).RosterCSV()
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Nome", "Email", "CPF", "Titulação", "Área", "Carga Máxima", "Status", "Documentos"}, records[0])
	// The comma inside the name must survive the round trip.
	assert.Equal(t, "Silva, João", records[1][0])
	assert.Equal(t, "Ativo", records[1][6])
	assert.Equal(t, "0", records[1][7])
	assert.Equal(t, "Inativo", records[2][6])
	assert.Equal(t, "1", records[2][7])
}

func TestRosterCSVEmptyRosterKeepsHeader(t *testing.T) {
	content, err := newExportFixture(store.New()).RosterCSV()
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestWorkloadPDFFilenameFollowsSemesterName(t *testing.T) {
	st := store.New()
	store.Seed(st)
	var semesterID string
	for _, sem := range st.Semesters() {
		semesterID = sem.ID
	}

	content, filename, err := newExportFixture(st).WorkloadPDF(semesterID)
	require.NoError(t, err)

	assert.Equal(t, "relatorio_carga_horaria_2024.1.pdf", filename)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestWorkloadPDFUnknownSemesterUsesFallbackName(t *testing.T) {
	content, filename, err := newExportFixture(store.New()).WorkloadPDF("missing")
	require.NoError(t, err)

	assert.Equal(t, "relatorio_carga_horaria_semestre.pdf", filename)
	assert.NotEmpty(t, content)
}
