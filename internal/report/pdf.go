package report

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

// PDFRenderer lays the descriptive report out on A4 pages.
// Core fonts are cp1252, so category icons are left out.
type PDFRenderer struct {
	formatter *Formatter
	labels    Labels
	text      *TextRenderer
	logger    *zap.Logger
}

// NewPDFRenderer creates a PDFRenderer
func NewPDFRenderer(formatter *Formatter, labels Labels, logger *zap.Logger) *PDFRenderer {
	return &PDFRenderer{
		formatter: formatter,
		labels:    labels,
		text:      newPlainTextRenderer(formatter, labels),
		logger:    logger,
	}
}

// Render returns the PDF document
func (r *PDFRenderer) Render(report entity.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(r.labels.ReportTitle, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(r.labels.ReportTitle))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range r.text.Lines(report) {
		pdf.MultiCell(0, 6, tr(line), "", "", false)
		pdf.Ln(1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, tr(r.labels.SummaryTitle))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, c := range entity.AllCategories {
		pdf.CellFormat(60, 6, tr(r.labels.CategoryName(c)), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(r.formatter.Money(report.Summary.Get(c))), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr(r.text.TotalLine(report)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: pdf: %v", ErrRenderFailed, err)
	}

	r.logger.Debug("PDF rendered",
		zap.Int("row_count", len(report.Rows)),
		zap.Int("bytes", buf.Len()))

	return buf.Bytes(), nil
}
