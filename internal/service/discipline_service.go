package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uema-profitec/sigep-api/internal/models"
	appErrors "github.com/uema-profitec/sigep-api/pkg/errors"
)

type disciplineStore interface {
	Disciplines() []models.Discipline
	AddDiscipline(d models.Discipline) models.Discipline
	UpdateDiscipline(d models.Discipline) bool
}

// CreateDisciplineRequest represents payload for catalog entries.
// Codes are intentionally not checked for uniqueness.
type CreateDisciplineRequest struct {
	Name            string `json:"name" validate:"required"`
	Code            string `json:"code" validate:"required"`
	DefaultWorkload int    `json:"default_workload"`
}

// DisciplineService orchestrates catalog operations.
type DisciplineService struct {
	store     disciplineStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDisciplineService constructs a DisciplineService.
func NewDisciplineService(store disciplineStore, validate *validator.Validate, logger *zap.Logger) *DisciplineService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DisciplineService{store: store, validator: validate, logger: logger}
}

// List returns the catalog in collection order.
func (s *DisciplineService) List() []models.Discipline {
	return s.store.Disciplines()
}

// Create registers a catalog entry.
func (s *DisciplineService) Create(req CreateDisciplineRequest) (*models.Discipline, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid discipline payload")
	}

	d := s.store.AddDiscipline(models.Discipline{
		Name:            strings.TrimSpace(req.Name),
		Code:            strings.TrimSpace(req.Code),
		DefaultWorkload: req.DefaultWorkload,
	})
	s.logger.Info("discipline created", zap.String("id", d.ID), zap.String("code", d.Code))
	return &d, nil
}

// Update replaces the discipline with the matching id.
func (s *DisciplineService) Update(id string, req CreateDisciplineRequest) (*models.Discipline, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid discipline payload")
	}

	d := models.Discipline{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		Code:            strings.TrimSpace(req.Code),
		DefaultWorkload: req.DefaultWorkload,
	}
	if !s.store.UpdateDiscipline(d) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "discipline not found")
	}
	return &d, nil
}
