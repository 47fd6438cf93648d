package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uema-profitec/sigep-api/internal/models"
	"github.com/uema-profitec/sigep-api/internal/store"
	appErrors "github.com/uema-profitec/sigep-api/pkg/errors"
)

func newSemesterFixture() (*SemesterService, *store.Store) {
	st := store.New()
	return NewSemesterService(st, nil, nil), st
}

func validSemesterRequest() CreateSemesterRequest {
	return CreateSemesterRequest{
		Name:      "2024.2",
		Status:    models.SemesterPlanning,
		StartDate: "2024-08-01",
		EndDate:   "2024-12-15",
	}
}

func TestCreateSemesterStartsWithoutOfferings(t *testing.T) {
	svc, _ := newSemesterFixture()

	sem, err := svc.Create(validSemesterRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, sem.ID)
	assert.NotNil(t, sem.Offerings)
	assert.Empty(t, sem.Offerings)
}

func TestCreateSemesterRejectsUnknownStatus(t *testing.T) {
	svc, _ := newSemesterFixture()

	req := validSemesterRequest()
	req.Status = "paused"
	_, err := svc.Create(req)

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUpdateSemesterPreservesOfferings(t *testing.T) {
	svc, _ := newSemesterFixture()
	sem, err := svc.Create(validSemesterRequest())
	require.NoError(t, err)
	_, err = svc.AddOffering(sem.ID, AddOfferingRequest{DisciplineID: "d1", Workload: 60})
	require.NoError(t, err)

	req := validSemesterRequest()
	req.Name = "2024.2 (ajustado)"
	updated, err := svc.Update(sem.ID, req)
	require.NoError(t, err)

	assert.Equal(t, "2024.2 (ajustado)", updated.Name)
	assert.Len(t, updated.Offerings, 1)
}

func TestUpdateStatusIsUnconditional(t *testing.T) {
	svc, _ := newSemesterFixture()
	sem, err := svc.Create(validSemesterRequest())
	require.NoError(t, err)

	closed, err := svc.UpdateStatus(sem.ID, UpdateSemesterStatusRequest{Status: models.SemesterClosed})
	require.NoError(t, err)
	assert.Equal(t, models.SemesterClosed, closed.Status)

	// Closed semesters may reopen.
	reopened, err := svc.UpdateStatus(sem.ID, UpdateSemesterStatusRequest{Status: models.SemesterActive})
	require.NoError(t, err)
	assert.Equal(t, models.SemesterActive, reopened.Status)
}

func TestUpdateStatusUnknownSemesterFails(t *testing.T) {
	svc, _ := newSemesterFixture()

	_, err := svc.UpdateStatus("missing", UpdateSemesterStatusRequest{Status: models.SemesterClosed})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAddOfferingAllowsDuplicatesAndDanglingRefs(t *testing.T) {
	svc, _ := newSemesterFixture()
	sem, err := svc.Create(validSemesterRequest())
	require.NoError(t, err)

	profID := "ghost-professor"
	_, err = svc.AddOffering(sem.ID, AddOfferingRequest{DisciplineID: "d1", ProfessorID: &profID, Workload: 60})
	require.NoError(t, err)
	_, err = svc.AddOffering(sem.ID, AddOfferingRequest{DisciplineID: "d1", ProfessorID: &profID, Workload: 60})
	require.NoError(t, err)

	current, err := svc.Get(sem.ID)
	require.NoError(t, err)
	assert.Len(t, current.Offerings, 2)
}

func TestAddOfferingUnknownSemesterFails(t *testing.T) {
	svc, _ := newSemesterFixture()

	_, err := svc.AddOffering("missing", AddOfferingRequest{DisciplineID: "d1"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestRemoveOfferingScopedToSemester(t *testing.T) {
	svc, _ := newSemesterFixture()
	first, err := svc.Create(validSemesterRequest())
	require.NoError(t, err)
	second, err := svc.Create(CreateSemesterRequest{Name: "2025.1", Status: models.SemesterPlanning, StartDate: "2025-02-01", EndDate: "2025-06-30"})
	require.NoError(t, err)

	offering, err := svc.AddOffering(first.ID, AddOfferingRequest{DisciplineID: "d1", Workload: 30})
	require.NoError(t, err)

	// Removing through the wrong semester must not touch the offering.
	svc.RemoveOffering(second.ID, offering.ID)
	current, err := svc.Get(first.ID)
	require.NoError(t, err)
	assert.Len(t, current.Offerings, 1)

	svc.RemoveOffering(first.ID, offering.ID)
	current, err = svc.Get(first.ID)
	require.NoError(t, err)
	assert.Empty(t, current.Offerings)
}
