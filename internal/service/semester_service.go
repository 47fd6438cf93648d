package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uema-profitec/sigep-api/internal/models"
	appErrors "github.com/uema-profitec/sigep-api/pkg/errors"
)

type semesterStore interface {
	Semesters() []models.Semester
	FindSemester(id string) (models.Semester, bool)
	AddSemester(sem models.Semester) models.Semester
	UpdateSemester(sem models.Semester) bool
	UpdateSemesterStatus(id string, status models.SemesterStatus) bool
	AddOffering(semesterID string, o models.Offering) (models.Offering, bool)
	RemoveOffering(semesterID, offeringID string)
}

// CreateSemesterRequest represents payload for planning a semester.
type CreateSemesterRequest struct {
	Name      string                `json:"name" validate:"required"`
	Status    models.SemesterStatus `json:"status" validate:"required"`
	StartDate string                `json:"start_date" validate:"required"`
	EndDate   string                `json:"end_date" validate:"required"`
}

// UpdateSemesterStatusRequest overwrites a semester status.
type UpdateSemesterStatusRequest struct {
	Status models.SemesterStatus `json:"status" validate:"required"`
}

// AddOfferingRequest assigns a discipline, optionally with a professor,
// to a semester. No uniqueness constraint applies: the same discipline
// or professor may appear in multiple offerings (co-teaching and split
// classes are legitimate).
type AddOfferingRequest struct {
	DisciplineID string  `json:"discipline_id" validate:"required"`
	ProfessorID  *string `json:"professor_id"`
	Workload     int     `json:"workload"`
}

// SemesterService orchestrates semester planning operations.
type SemesterService struct {
	store     semesterStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSemesterService constructs a SemesterService.
func NewSemesterService(store semesterStore, validate *validator.Validate, logger *zap.Logger) *SemesterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SemesterService{store: store, validator: validate, logger: logger}
}

// List returns the semesters in collection order.
func (s *SemesterService) List() []models.Semester {
	return s.store.Semesters()
}

// Get returns one semester by id.
func (s *SemesterService) Get(id string) (*models.Semester, error) {
	sem, ok := s.store.FindSemester(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
	}
	return &sem, nil
}

// Create registers a semester with an empty offering list.
func (s *SemesterService) Create(req CreateSemesterRequest) (*models.Semester, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid semester payload")
	}
	if !req.Status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown semester status")
	}

	sem := s.store.AddSemester(models.Semester{
		Name:      strings.TrimSpace(req.Name),
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	s.logger.Info("semester created", zap.String("id", sem.ID), zap.String("name", sem.Name))
	return &sem, nil
}

// Update replaces the semester with the matching id, carrying its
// offering list through unchanged.
func (s *SemesterService) Update(id string, req CreateSemesterRequest) (*models.Semester, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid semester payload")
	}
	if !req.Status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown semester status")
	}

	existing, ok := s.store.FindSemester(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Status = req.Status
	existing.StartDate = req.StartDate
	existing.EndDate = req.EndDate

	s.store.UpdateSemester(existing)
	return &existing, nil
}

// UpdateStatus overwrites the lifecycle status without transition
// validation: closed semesters may reopen.
func (s *SemesterService) UpdateStatus(id string, req UpdateSemesterStatusRequest) (*models.Semester, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload")
	}
	if !req.Status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown semester status")
	}

	if !s.store.UpdateSemesterStatus(id, req.Status) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
	}
	sem, _ := s.store.FindSemester(id)
	return &sem, nil
}

// AddOffering appends an offering to a semester. The referenced
// discipline and professor are not checked for existence; dangling
// references render as fallback labels downstream.
func (s *SemesterService) AddOffering(semesterID string, req AddOfferingRequest) (*models.Offering, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid offering payload")
	}

	o, ok := s.store.AddOffering(semesterID, models.Offering{
		DisciplineID: req.DisciplineID,
		ProfessorID:  req.ProfessorID,
		Workload:     req.Workload,
	})
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
	}
	return &o, nil
}

// RemoveOffering deletes an offering within one semester only. Unknown
// ids silently match nothing.
func (s *SemesterService) RemoveOffering(semesterID, offeringID string) {
	s.store.RemoveOffering(semesterID, offeringID)
}
