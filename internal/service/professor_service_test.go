package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uema-profitec/sigep-api/internal/models"
	"github.com/uema-profitec/sigep-api/internal/store"
	appErrors "github.com/uema-profitec/sigep-api/pkg/errors"
)

func newProfessorFixture() (*ProfessorService, *store.Store) {
	st := store.New()
	return NewProfessorService(st, nil, nil), st
}

func validProfessorRequest() CreateProfessorRequest {
	return CreateProfessorRequest{
		Name:        "Dr. João Silva",
		Email:       "joao@uema.br",
		CPF:         "111.222.333-44",
		Titulation:  models.TitulationDoutor,
		Area:        "Computação",
		MaxWorkload: 40,
		Active:      true,
	}
}

func TestCreateProfessorStartsWithEmptyDocuments(t *testing.T) {
	svc, _ := newProfessorFixture()

	p, err := svc.Create(validProfessorRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.NotNil(t, p.Documents)
	assert.Empty(t, p.Documents)
}

func TestCreateProfessorRejectsUnknownTitulation(t *testing.T) {
	svc, _ := newProfessorFixture()

	req := validProfessorRequest()
	req.Titulation = "PhD"
	_, err := svc.Create(req)

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCreateProfessorRejectsMissingFields(t *testing.T) {
	svc, _ := newProfessorFixture()

	req := validProfessorRequest()
	req.Email = ""
	_, err := svc.Create(req)

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUpdateProfessorPreservesDocuments(t *testing.T) {
	svc, st := newProfessorFixture()
	created, err := svc.Create(validProfessorRequest())
	require.NoError(t, err)
	_, ok := st.AddDocument(created.ID, models.Document{Name: "diploma.pdf", Type: "application/pdf", DataURL: "ZGF0YQ=="})
	require.True(t, ok)

	update := UpdateProfessorRequest(validProfessorRequest())
	update.Area = "Engenharia de Software"
	updated, err := svc.Update(created.ID, update)
	require.NoError(t, err)

	assert.Equal(t, "Engenharia de Software", updated.Area)
	require.Len(t, updated.Documents, 1)
	assert.Equal(t, "diploma.pdf", updated.Documents[0].Name)
}

func TestUpdateUnknownProfessorFails(t *testing.T) {
	svc, _ := newProfessorFixture()

	_, err := svc.Update("missing", UpdateProfessorRequest(validProfessorRequest()))

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestListFiltersBySearchAndActive(t *testing.T) {
	svc, _ := newProfessorFixture()
	_, err := svc.Create(validProfessorRequest())
	require.NoError(t, err)

	other := validProfessorRequest()
	other.Name = "Maria Santos"
	other.Email = "maria@uema.br"
	other.Area = "Matemática"
	other.Active = false
	_, err = svc.Create(other)
	require.NoError(t, err)

	byName := svc.List(ProfessorFilter{Search: "joão"})
	require.Len(t, byName, 1)
	assert.Equal(t, "Dr. João Silva", byName[0].Name)

	byArea := svc.List(ProfessorFilter{Search: "matemática"})
	require.Len(t, byArea, 1)
	assert.Equal(t, "Maria Santos", byArea[0].Name)

	inactive := false
	byActive := svc.List(ProfessorFilter{Active: &inactive})
	require.Len(t, byActive, 1)
	assert.Equal(t, "Maria Santos", byActive[0].Name)

	assert.Len(t, svc.List(ProfessorFilter{}), 2)
}

func TestAddDocumentToUnknownProfessorFails(t *testing.T) {
	svc, _ := newProfessorFixture()

	_, err := svc.AddDocument("missing", AddDocumentRequest{Name: "x.pdf", Type: "application/pdf", DataURL: "ZGF0YQ=="})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDownloadDocumentDecodesDataURI(t *testing.T) {
	svc, _ := newProfessorFixture()
	created, err := svc.Create(validProfessorRequest())
	require.NoError(t, err)

	payload := base64.StdEncoding.EncodeToString([]byte("conteúdo do diploma"))
	doc, err := svc.AddDocument(created.ID, AddDocumentRequest{
		Name:    "diploma.pdf",
		Type:    "application/pdf",
		DataURL: "data:application/pdf;base64," + payload,
	})
	require.NoError(t, err)

	download, err := svc.DownloadDocument(created.ID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "diploma.pdf", download.Filename)
	assert.Equal(t, "application/pdf", download.MimeType)
	assert.Equal(t, []byte("conteúdo do diploma"), download.Content)
}

func TestRemoveDocumentIsSilentForUnknownIDs(t *testing.T) {
	svc, st := newProfessorFixture()
	created, err := svc.Create(validProfessorRequest())
	require.NoError(t, err)

	svc.RemoveDocument(created.ID, "missing")
	svc.RemoveDocument("missing", "missing")

	p, ok := st.FindProfessor(created.ID)
	require.True(t, ok)
	assert.Empty(t, p.Documents)
}
