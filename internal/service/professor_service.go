package service

import (
	"encoding/base64"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uema-profitec/sigep-api/internal/models"
	appErrors "github.com/uema-profitec/sigep-api/pkg/errors"
)

type professorStore interface {
	Professors() []models.Professor
	FindProfessor(id string) (models.Professor, bool)
	AddProfessor(p models.Professor) models.Professor
	UpdateProfessor(p models.Professor) bool
	AddDocument(professorID string, doc models.Document) (models.Document, bool)
	RemoveDocument(professorID, docID string)
}

// ProfessorFilter narrows the roster listing.
type ProfessorFilter struct {
	Search string
	Active *bool
}

// CreateProfessorRequest represents payload for registering professors.
// Workload has no range check: the form layer owns anything beyond
// required-field presence.
type CreateProfessorRequest struct {
	Name        string            `json:"name" validate:"required"`
	Email       string            `json:"email" validate:"required,email"`
	CPF         string            `json:"cpf" validate:"required"`
	Titulation  models.Titulation `json:"titulation" validate:"required"`
	Area        string            `json:"area" validate:"required"`
	MaxWorkload int               `json:"max_workload"`
	Active      bool              `json:"active"`
}

// UpdateProfessorRequest represents payload for editing professors.
type UpdateProfessorRequest struct {
	Name        string            `json:"name" validate:"required"`
	Email       string            `json:"email" validate:"required,email"`
	CPF         string            `json:"cpf" validate:"required"`
	Titulation  models.Titulation `json:"titulation" validate:"required"`
	Area        string            `json:"area" validate:"required"`
	MaxWorkload int               `json:"max_workload"`
	Active      bool              `json:"active"`
}

// AddDocumentRequest carries one uploaded file as a base64 data URI.
type AddDocumentRequest struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type" validate:"required"`
	DataURL string `json:"data_url" validate:"required"`
}

// DocumentDownload is a decoded document ready to be re-offered.
type DocumentDownload struct {
	Filename string
	MimeType string
	Content  []byte
}

// ProfessorService orchestrates roster operations.
type ProfessorService struct {
	store     professorStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfessorService constructs a ProfessorService.
func NewProfessorService(store professorStore, validate *validator.Validate, logger *zap.Logger) *ProfessorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfessorService{store: store, validator: validate, logger: logger}
}

// List returns the roster, optionally filtered by a name/area search
// term and the active flag. Collection order is preserved.
func (s *ProfessorService) List(filter ProfessorFilter) []models.Professor {
	professors := s.store.Professors()
	if filter.Search == "" && filter.Active == nil {
		return professors
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]models.Professor, 0, len(professors))
	for _, p := range professors {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Area), term) {
			continue
		}
		if filter.Active != nil && p.Active != *filter.Active {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get returns one professor by id.
func (s *ProfessorService) Get(id string) (*models.Professor, error) {
	p, ok := s.store.FindProfessor(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "professor not found")
	}
	return &p, nil
}

// Create registers a new professor with an empty document list.
func (s *ProfessorService) Create(req CreateProfessorRequest) (*models.Professor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professor payload")
	}
	if !req.Titulation.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown titulation")
	}

	p := s.store.AddProfessor(models.Professor{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		CPF:         strings.TrimSpace(req.CPF),
		Titulation:  req.Titulation,
		Area:        strings.TrimSpace(req.Area),
		MaxWorkload: req.MaxWorkload,
		Active:      req.Active,
	})
	s.logger.Info("professor created", zap.String("id", p.ID))
	return &p, nil
}

// Update replaces the professor with the matching id, carrying its
// document list through unchanged.
func (s *ProfessorService) Update(id string, req UpdateProfessorRequest) (*models.Professor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professor payload")
	}
	if !req.Titulation.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown titulation")
	}

	existing, ok := s.store.FindProfessor(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "professor not found")
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Email = strings.TrimSpace(req.Email)
	existing.CPF = strings.TrimSpace(req.CPF)
	existing.Titulation = req.Titulation
	existing.Area = strings.TrimSpace(req.Area)
	existing.MaxWorkload = req.MaxWorkload
	existing.Active = req.Active

	s.store.UpdateProfessor(existing)
	return &existing, nil
}

// AddDocument attaches an uploaded file to a professor.
func (s *ProfessorService) AddDocument(professorID string, req AddDocumentRequest) (*models.Document, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid document payload")
	}

	doc, ok := s.store.AddDocument(professorID, models.Document{
		Name:    req.Name,
		Type:    req.Type,
		DataURL: req.DataURL,
	})
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "professor not found")
	}
	s.logger.Info("document uploaded", zap.String("professor_id", professorID), zap.String("document_id", doc.ID))
	return &doc, nil
}

// RemoveDocument deletes a document. Unknown professor or document ids
// silently match nothing.
func (s *ProfessorService) RemoveDocument(professorID, docID string) {
	s.store.RemoveDocument(professorID, docID)
}

// DownloadDocument re-offers a stored data URI as decoded bytes with
// the original filename.
func (s *ProfessorService) DownloadDocument(professorID, docID string) (*DocumentDownload, error) {
	p, ok := s.store.FindProfessor(professorID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "professor not found")
	}
	for _, doc := range p.Documents {
		if doc.ID != docID {
			continue
		}
		content, err := decodeDataURL(doc.DataURL)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "stored document is not a valid data URI")
		}
		return &DocumentDownload{Filename: doc.Name, MimeType: doc.Type, Content: content}, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "document not found")
}

// decodeDataURL strips the "data:<mime>;base64," prefix and decodes
// the payload. A bare base64 string is accepted as well.
func decodeDataURL(dataURL string) ([]byte, error) {
	payload := dataURL
	if idx := strings.Index(dataURL, ","); idx >= 0 && strings.HasPrefix(dataURL, "data:") {
		payload = dataURL[idx+1:]
	}
	return base64.StdEncoding.DecodeString(payload)
}
