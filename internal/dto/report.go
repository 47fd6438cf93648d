package dto

import "github.com/uema-profitec/sigep-api/internal/models"

// WorkloadRow consolidates one professor's load within a semester.
// Disciplines holds the taught discipline names joined in offering
// order; TotalHours sums the offering workloads.
type WorkloadRow struct {
	ProfessorID   string            `json:"professor_id"`
	ProfessorName string            `json:"professor_name"`
	Titulation    models.Titulation `json:"titulation"`
	Disciplines   string            `json:"disciplines"`
	TotalHours    int               `json:"total_hours"`
}

// WorkloadReport is the consolidated view for one semester. Rows keep
// professor-collection order and omit professors without offerings.
type WorkloadReport struct {
	SemesterID   string        `json:"semester_id"`
	SemesterName string        `json:"semester_name"`
	Rows         []WorkloadRow `json:"rows"`
	GrandTotal   int           `json:"grand_total"`
}
