package models

// Discipline is a catalog entry. Codes are not unique by design: the
// catalog mirrors whatever the secretariat registers.
type Discipline struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Code            string `json:"code"`
	DefaultWorkload int    `json:"default_workload"`
}
