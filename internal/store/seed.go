package store

import "github.com/uema-profitec/sigep-api/internal/models"

// Seed loads the demo fixtures: two professors, three disciplines and
// an active 2024.1 semester with two assigned offerings.
func Seed(s *Store) {
	joao := s.AddProfessor(models.Professor{
		Name:        "Dr. João Silva",
		Email:       "joao@uema.br",
		CPF:         "123.456.789-00",
		Titulation:  models.TitulationDoutor,
		Area:        "Computação",
		MaxWorkload: 40,
		Active:      true,
	})
	maria := s.AddProfessor(models.Professor{
		Name:        "Msc. Maria Santos",
		Email:       "maria@uema.br",
		CPF:         "987.654.321-11",
		Titulation:  models.TitulationMestre,
		Area:        "Matemática",
		MaxWorkload: 20,
		Active:      true,
	})

	algoritmos := s.AddDiscipline(models.Discipline{
		Name:            "Algoritmos e Programação",
		Code:            "COMP01",
		DefaultWorkload: 60,
	})
	calculo := s.AddDiscipline(models.Discipline{
		Name:            "Cálculo I",
		Code:            "MAT01",
		DefaultWorkload: 60,
	})
	s.AddDiscipline(models.Discipline{
		Name:            "Engenharia de Software",
		Code:            "COMP02",
		DefaultWorkload: 45,
	})

	sem := s.AddSemester(models.Semester{
		Name:      "2024.1",
		Status:    models.SemesterActive,
		StartDate: "2024-02-01",
		EndDate:   "2024-06-30",
	})
	s.AddOffering(sem.ID, models.Offering{DisciplineID: algoritmos.ID, ProfessorID: &joao.ID, Workload: 60})
	s.AddOffering(sem.ID, models.Offering{DisciplineID: calculo.ID, ProfessorID: &maria.ID, Workload: 60})
}
