package dto

// DashboardStats is the overview panel payload.
type DashboardStats struct {
	ProfessorCount  int            `json:"professor_count"`
	DisciplineCount int            `json:"discipline_count"`
	SemesterCount   int            `json:"semester_count"`
	ActiveSemester  string         `json:"active_semester"`
	ActiveOfferings int            `json:"active_offerings"`
	Titulations     map[string]int `json:"titulations"`
}
