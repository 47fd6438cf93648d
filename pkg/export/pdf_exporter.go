package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFDocument describes the print layout of a tabular report: an
// institutional heading block, the table itself, an optional total row
// spanning all but the last column, and a footer note.
type PDFDocument struct {
	Heading    string
	Subheading string
	Reference  string
	Table      Dataset
	TotalLabel string
	TotalValue string
	Footer     string
}

// PDFExporter renders report documents into printable PDFs.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates the PDF bytes for a document.
func (e *PDFExporter) Render(doc PDFDocument) ([]byte, error) {
	if len(doc.Table.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if doc.Heading != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 8, tr(strings.ToUpper(doc.Heading)), "", 1, "C", false, 0, "")
	}
	if doc.Subheading != "" {
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(0, 7, tr(doc.Subheading), "", 1, "C", false, 0, "")
	}
	if doc.Reference != "" {
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 6, tr(doc.Reference), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	colWidth := 190.0 / float64(len(doc.Table.Headers))

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for _, header := range doc.Table.Headers {
		pdf.CellFormat(colWidth, 8, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range doc.Table.Rows {
		for _, header := range doc.Table.Headers {
			pdf.CellFormat(colWidth, 7, tr(row[header]), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if doc.TotalLabel != "" {
		pdf.SetFont("Arial", "B", 9)
		span := colWidth * float64(len(doc.Table.Headers)-1)
		pdf.CellFormat(span, 7, tr(doc.TotalLabel), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidth, 7, tr(doc.TotalValue), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	if doc.Footer != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 7)
		pdf.CellFormat(0, 5, tr(doc.Footer), "", 1, "L", false, 0, "")
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
