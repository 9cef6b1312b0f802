package report

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

// Format is an export file type
type Format string

const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// Export file names and mime types
const (
	TextFileName = "relatorio_viagem.txt"
	CSVFileName  = "dados_viagem.csv"
	XLSXFileName = "dados_viagem.xlsx"
	PDFFileName  = "relatorio_viagem.pdf"

	MimeText = "text/plain; charset=utf-8"
	MimeCSV  = "text/csv"
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimePDF  = "application/pdf"
)

// ParseFormat accepts txt (or text), csv, xlsx and pdf, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "txt", "text":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// File is an in-memory export handed to the caller
type File struct {
	Name     string
	MimeType string
	Content  []byte
}

// Exporter renders a report in any supported format
type Exporter struct {
	text   *TextRenderer
	csv    *CSVRenderer
	xlsx   *XLSXRenderer
	pdf    *PDFRenderer
	logger *zap.Logger
}

// NewExporter wires every renderer with the same formatter and labels
func NewExporter(formatter *Formatter, labels Labels, logger *zap.Logger) *Exporter {
	return &Exporter{
		text:   NewTextRenderer(formatter, labels),
		csv:    NewCSVRenderer(labels),
		xlsx:   NewXLSXRenderer(labels, logger),
		pdf:    NewPDFRenderer(formatter, labels, logger),
		logger: logger,
	}
}

// Text returns the descriptive report
func (e *Exporter) Text(report entity.Report) string {
	return e.text.Render(report)
}

// Export renders report as format
func (e *Exporter) Export(format Format, report entity.Report) (*File, error) {
	var (
		file = &File{}
		err  error
	)

	switch format {
	case FormatText:
		file.Name, file.MimeType = TextFileName, MimeText
		file.Content = []byte(e.text.Render(report))
	case FormatCSV:
		file.Name, file.MimeType = CSVFileName, MimeCSV
		file.Content, err = e.csv.Render(report)
	case FormatXLSX:
		file.Name, file.MimeType = XLSXFileName, MimeXLSX
		file.Content, err = e.xlsx.Render(report)
	case FormatPDF:
		file.Name, file.MimeType = PDFFileName, MimePDF
		file.Content, err = e.pdf.Render(report)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		e.logger.Error("Report export failed", zap.String("format", string(format)), zap.Error(err))
		return nil, err
	}

	e.logger.Debug("Report exported",
		zap.String("format", string(format)),
		zap.String("file_name", file.Name),
		zap.Int("bytes", len(file.Content)))

	return file, nil
}
