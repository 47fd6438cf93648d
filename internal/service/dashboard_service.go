package service

import (
	"go.uber.org/zap"

	"github.com/uema-profitec/sigep-api/internal/dto"
	"github.com/uema-profitec/sigep-api/internal/models"
)

// NoActiveSemesterLabel renders when no semester is active.
const NoActiveSemesterLabel = "Nenhum"

// DashboardService assembles the overview panel. Like the report
// aggregator it recomputes from the live snapshot on every call.
type DashboardService struct {
	store  snapshotStore
	logger *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(store snapshotStore, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{store: store, logger: logger}
}

// Stats counts the collections, resolves the first active semester and
// breaks the roster down by titulation.
func (s *DashboardService) Stats() *dto.DashboardStats {
	snap := s.store.Snapshot()

	stats := &dto.DashboardStats{
		ProfessorCount:  len(snap.Professors),
		DisciplineCount: len(snap.Disciplines),
		SemesterCount:   len(snap.Semesters),
		ActiveSemester:  NoActiveSemesterLabel,
		Titulations: map[string]int{
			string(models.TitulationDoutor):       0,
			string(models.TitulationMestre):       0,
			string(models.TitulationEspecialista): 0,
			string(models.TitulationGraduado):     0,
		},
	}

	for _, sem := range snap.Semesters {
		if sem.Status == models.SemesterActive {
			stats.ActiveSemester = sem.Name
			stats.ActiveOfferings = len(sem.Offerings)
			break
		}
	}

	for _, p := range snap.Professors {
		if _, ok := stats.Titulations[string(p.Titulation)]; ok {
			stats.Titulations[string(p.Titulation)]++
		}
	}

	return stats
}
