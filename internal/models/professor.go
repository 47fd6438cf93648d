package models

import "time"

// Titulation is the academic degree level of a professor.
type Titulation string

const (
	TitulationGraduado     Titulation = "Graduado"
	TitulationEspecialista Titulation = "Especialista"
	TitulationMestre       Titulation = "Mestre"
	TitulationDoutor       Titulation = "Doutor"
)

// Valid reports whether the value is one of the known degree levels.
func (t Titulation) Valid() bool {
	switch t {
	case TitulationGraduado, TitulationEspecialista, TitulationMestre, TitulationDoutor:
		return true
	}
	return false
}

// Document is a file owned by exactly one professor. Content is kept
// inline as a base64 data URI; there is no external file storage.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	UploadDate time.Time `json:"upload_date"`
	DataURL    string    `json:"data_url"`
}

// Professor is a roster entry of the Profitec program.
type Professor struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	CPF         string     `json:"cpf"`
	Titulation  Titulation `json:"titulation"`
	Area        string     `json:"area"`
	MaxWorkload int        `json:"max_workload"`
	Active      bool       `json:"active"`
	Documents   []Document `json:"documents"`
}
