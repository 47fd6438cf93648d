package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uema-profitec/sigep-api/internal/store"
	appErrors "github.com/uema-profitec/sigep-api/pkg/errors"
)

func TestCreateDisciplineAllowsDuplicateCodes(t *testing.T) {
	svc := NewDisciplineService(store.New(), nil, nil)

	_, err := svc.Create(CreateDisciplineRequest{Name: "Algoritmos", Code: "COMP01", DefaultWorkload: 60})
	require.NoError(t, err)
	_, err = svc.Create(CreateDisciplineRequest{Name: "Algoritmos Avançados", Code: "COMP01", DefaultWorkload: 60})
	require.NoError(t, err)

	assert.Len(t, svc.List(), 2)
}

func TestCreateDisciplineRequiresNameAndCode(t *testing.T) {
	svc := NewDisciplineService(store.New(), nil, nil)

	_, err := svc.Create(CreateDisciplineRequest{Name: "", Code: "COMP01"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUpdateDisciplineReplacesEntry(t *testing.T) {
	svc := NewDisciplineService(store.New(), nil, nil)
	created, err := svc.Create(CreateDisciplineRequest{Name: "Cálculo I", Code: "MAT01", DefaultWorkload: 60})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, CreateDisciplineRequest{Name: "Cálculo Diferencial", Code: "MAT01", DefaultWorkload: 90})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Cálculo Diferencial", updated.Name)
	assert.Equal(t, 90, updated.DefaultWorkload)
}

func TestUpdateUnknownDisciplineFails(t *testing.T) {
	svc := NewDisciplineService(store.New(), nil, nil)

	_, err := svc.Update("missing", CreateDisciplineRequest{Name: "X", Code: "Y"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
