package models

// SemesterStatus tracks the lifecycle of a semester. Transitions are
// unconstrained: a status update is an unconditional overwrite.
type SemesterStatus string

const (
	SemesterPlanning SemesterStatus = "planning"
	SemesterActive   SemesterStatus = "active"
	SemesterClosed   SemesterStatus = "closed"
)

// Valid reports whether the value is a known status.
func (s SemesterStatus) Valid() bool {
	switch s {
	case SemesterPlanning, SemesterActive, SemesterClosed:
		return true
	}
	return false
}

// Offering assigns one discipline to at most one professor within a
// semester, carrying its own workload which may differ from the
// discipline default. A nil ProfessorID means the slot is pending.
type Offering struct {
	ID           string  `json:"id"`
	DisciplineID string  `json:"discipline_id"`
	ProfessorID  *string `json:"professor_id"`
	Workload     int     `json:"workload"`
}

// Semester groups the offerings of one academic period, e.g. "2024.1".
type Semester struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Status    SemesterStatus `json:"status"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Offerings []Offering     `json:"offerings"`
}
