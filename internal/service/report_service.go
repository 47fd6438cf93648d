package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/uema-profitec/sigep-api/internal/dto"
	"github.com/uema-profitec/sigep-api/internal/models"
	"github.com/uema-profitec/sigep-api/internal/store"
)

// Fallback labels for dangling offering references.
const (
	UnknownDisciplineLabel = "Desconhecida"
	PendingProfessorLabel  = "Pendente"
)

type snapshotStore interface {
	Snapshot() store.Snapshot
}

// ReportService computes the consolidated workload view. It is a pure
// read side: every call recomputes from the current snapshot, nothing
// is cached.
type ReportService struct {
	store  snapshotStore
	logger *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(store snapshotStore, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{store: store, logger: logger}
}

// Workload consolidates one semester: per professor (in roster order),
// the sum of assigned offering hours and the taught discipline names
// joined in offering order. Professors without offerings are omitted.
// An unknown semester id yields an empty report.
func (s *ReportService) Workload(semesterID string) *dto.WorkloadReport {
	snap := s.store.Snapshot()

	report := &dto.WorkloadReport{SemesterID: semesterID, Rows: []dto.WorkloadRow{}}

	var semester *models.Semester
	for i := range snap.Semesters {
		if snap.Semesters[i].ID == semesterID {
			semester = &snap.Semesters[i]
			break
		}
	}
	if semester == nil {
		return report
	}
	report.SemesterName = semester.Name

	disciplineNames := make(map[string]string, len(snap.Disciplines))
	for _, d := range snap.Disciplines {
		disciplineNames[d.ID] = d.Name
	}

	for _, prof := range snap.Professors {
		var names []string
		total := 0
		for _, o := range semester.Offerings {
			if o.ProfessorID == nil || *o.ProfessorID != prof.ID {
				continue
			}
			name, ok := disciplineNames[o.DisciplineID]
			if !ok {
				name = UnknownDisciplineLabel
			}
			names = append(names, name)
			total += o.Workload
		}
		if len(names) == 0 {
			continue
		}
		report.Rows = append(report.Rows, dto.WorkloadRow{
			ProfessorID:   prof.ID,
			ProfessorName: prof.Name,
			Titulation:    prof.Titulation,
			Disciplines:   strings.Join(names, ", "),
			TotalHours:    total,
		})
		report.GrandTotal += total
	}

	return report
}
