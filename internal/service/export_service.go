package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/uema-profitec/sigep-api/internal/models"
	"github.com/uema-profitec/sigep-api/pkg/export"
)

// RosterCSVFilename is the fixed download name of the roster export.
const RosterCSVFilename = "professores_sigep.csv"

var rosterHeaders = []string{"Nome", "Email", "CPF", "Titulação", "Área", "Carga Máxima", "Status", "Documentos"}

type rosterStore interface {
	Professors() []models.Professor
}

// ExportService renders the client-side downloads: the professor
// roster as CSV and the workload report as a printable PDF.
type ExportService struct {
	store   rosterStore
	reports *ReportService
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(store rosterStore, reports *ReportService, csv *export.CSVExporter, pdf *export.PDFExporter, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		store:   store,
		reports: reports,
		csv:     csv,
		pdf:     pdf,
		logger:  logger,
		now:     time.Now,
	}
}

// RosterCSV renders the full professor roster: header line plus one
// row per professor, document counts included.
func (s *ExportService) RosterCSV() ([]byte, error) {
	professors := s.store.Professors()
	rows := make([]map[string]string, 0, len(professors))
	for _, p := range professors {
		status := "Inativo"
		if p.Active {
			status = "Ativo"
		}
		rows = append(rows, map[string]string{
			"Nome":         p.Name,
			"Email":        p.Email,
			"CPF":          p.CPF,
			"Titulação":    string(p.Titulation),
			"Área":         p.Area,
			"Carga Máxima": strconv.Itoa(p.MaxWorkload),
			"Status":       status,
			"Documentos":   strconv.Itoa(len(p.Documents)),
		})
	}
	return s.csv.Render(export.Dataset{Headers: rosterHeaders, Rows: rows})
}

// WorkloadPDF renders the report print view for one semester and
// returns the bytes plus the suggested filename.
func (s *ExportService) WorkloadPDF(semesterID string) ([]byte, string, error) {
	report := s.reports.Workload(semesterID)

	rows := make([]map[string]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, map[string]string{
			"Professor":               row.ProfessorName,
			"Titulação":               string(row.Titulation),
			"Disciplinas Ministradas": row.Disciplines,
			"C.H. Total":              fmt.Sprintf("%dh", row.TotalHours),
		})
	}

	doc := export.PDFDocument{
		Heading:    "Universidade Estadual do Maranhão - UEMA",
		Subheading: "Programa Profitec - Relatório de Carga Horária",
		Reference:  fmt.Sprintf("Semestre de Referência: %s", report.SemesterName),
		Table: export.Dataset{
			Headers: []string{"Professor", "Titulação", "Disciplinas Ministradas", "C.H. Total"},
			Rows:    rows,
		},
		TotalLabel: "Total Geral de Horas:",
		TotalValue: fmt.Sprintf("%dh", report.GrandTotal),
		Footer:     fmt.Sprintf("Gerado pelo sistema SIGEP em %s. Este documento não serve como comprovante de pagamento.", s.now().Format("02/01/2006")),
	}

	content, err := s.pdf.Render(doc)
	if err != nil {
		return nil, "", err
	}

	label := strings.TrimSpace(report.SemesterName)
	if label == "" {
		label = "semestre"
	}
	filename := fmt.Sprintf("relatorio_carga_horaria_%s.pdf", strings.ReplaceAll(label, " ", "_"))
	return content, filename, nil
}
