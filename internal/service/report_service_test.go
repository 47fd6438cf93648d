package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uema-profitec/sigep-api/internal/models"
	"github.com/uema-profitec/sigep-api/internal/store"
)

func seedReportFixture(t *testing.T) (*store.Store, models.Professor, models.Professor, models.Semester) {
	t.Helper()
	st := store.New()

	profA := st.AddProfessor(models.Professor{Name: "Dr. João Silva", Titulation: models.TitulationDoutor, Active: true})
	profB := st.AddProfessor(models.Professor{Name: "Msc. Maria Santos", Titulation: models.TitulationMestre, Active: true})

	alg := st.AddDiscipline(models.Discipline{Name: "Algoritmos", Code: "COMP01"})
	calc := st.AddDiscipline(models.Discipline{Name: "Cálculo I", Code: "MAT01"})

	sem := st.AddSemester(models.Semester{Name: "2024.1", Status: models.SemesterActive})
	_, ok := st.AddOffering(sem.ID, models.Offering{DisciplineID: alg.ID, ProfessorID: &profA.ID, Workload: 60})
	require.True(t, ok)
	_, ok = st.AddOffering(sem.ID, models.Offering{DisciplineID: calc.ID, ProfessorID: &profA.ID, Workload: 30})
	require.True(t, ok)

	return st, profA, profB, sem
}

func TestWorkloadAggregatesPerProfessor(t *testing.T) {
	st, profA, _, sem := seedReportFixture(t)
	svc := NewReportService(st, nil)

	report := svc.Workload(sem.ID)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, profA.ID, row.ProfessorID)
	assert.Equal(t, "Dr. João Silva", row.ProfessorName)
	assert.Equal(t, models.TitulationDoutor, row.Titulation)
	assert.Equal(t, "Algoritmos, Cálculo I", row.Disciplines)
	assert.Equal(t, 90, row.TotalHours)
	assert.Equal(t, 90, report.GrandTotal)
	assert.Equal(t, "2024.1", report.SemesterName)
}

func TestWorkloadOmitsProfessorsWithoutOfferings(t *testing.T) {
	st, _, profB, sem := seedReportFixture(t)
	svc := NewReportService(st, nil)

	report := svc.Workload(sem.ID)

	for _, row := range report.Rows {
		assert.NotEqual(t, profB.ID, row.ProfessorID)
	}
}

func TestWorkloadRowsFollowRosterOrder(t *testing.T) {
	st, profA, profB, sem := seedReportFixture(t)
	disc := st.AddDiscipline(models.Discipline{Name: "Estruturas de Dados", Code: "COMP02"})
	// profB gets an offering appended after profA's, yet the row order
	// must track the roster, not insertion.
	_, ok := st.AddOffering(sem.ID, models.Offering{DisciplineID: disc.ID, ProfessorID: &profB.ID, Workload: 45})
	require.True(t, ok)

	svc := NewReportService(st, nil)
	report := svc.Workload(sem.ID)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, profA.ID, report.Rows[0].ProfessorID)
	assert.Equal(t, profB.ID, report.Rows[1].ProfessorID)
	assert.Equal(t, 135, report.GrandTotal)
}

func TestWorkloadResolvesDanglingDiscipline(t *testing.T) {
	st := store.New()
	prof := st.AddProfessor(models.Professor{Name: "Dr. X", Titulation: models.TitulationDoutor})
	sem := st.AddSemester(models.Semester{Name: "2024.2", Status: models.SemesterPlanning})
	_, ok := st.AddOffering(sem.ID, models.Offering{DisciplineID: "gone", ProfessorID: &prof.ID, Workload: 40})
	require.True(t, ok)

	report := NewReportService(st, nil).Workload(sem.ID)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, UnknownDisciplineLabel, report.Rows[0].Disciplines)
	assert.Equal(t, 40, report.Rows[0].TotalHours)
}

func TestWorkloadIgnoresUnassignedOfferings(t *testing.T) {
	st, _, _, sem := seedReportFixture(t)
	disc := st.AddDiscipline(models.Discipline{Name: "Física I", Code: "FIS01"})
	_, ok := st.AddOffering(sem.ID, models.Offering{DisciplineID: disc.ID, ProfessorID: nil, Workload: 80})
	require.True(t, ok)

	report := NewReportService(st, nil).Workload(sem.ID)

	assert.Equal(t, 90, report.GrandTotal)
}

func TestWorkloadUnknownSemesterYieldsEmptyReport(t *testing.T) {
	st, _, _, _ := seedReportFixture(t)

	report := NewReportService(st, nil).Workload("missing")

	assert.Empty(t, report.Rows)
	assert.Zero(t, report.GrandTotal)
	assert.Empty(t, report.SemesterName)
	assert.Equal(t, "missing", report.SemesterID)
}
