package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

// Workbook layout
const (
	headerRow     = 1
	firstDataRow  = 2
	firstCostCol  = 3 // C: first category column
	totalCol      = 9 // I: row total
	summaryRow    = 2
	chartAnchor   = "D2"
	numFmtTwoDecs = 4 // built-in "#,##0.00"
)

// XLSXRenderer builds a workbook with a report sheet and a summary sheet with chart
type XLSXRenderer struct {
	labels Labels
	logger *zap.Logger
}

// NewXLSXRenderer creates an XLSXRenderer
func NewXLSXRenderer(labels Labels, logger *zap.Logger) *XLSXRenderer {
	return &XLSXRenderer{labels: labels, logger: logger}
}

// Render returns the workbook bytes
func (r *XLSXRenderer) Render(report entity.Report) ([]byte, error) {
	file := excelize.NewFile()
	defer func() {
		if err := file.Close(); err != nil {
			r.logger.Warn("Failed to close workbook", zap.Error(err))
		}
	}()

	if err := file.SetSheetName("Sheet1", r.labels.ReportSheet); err != nil {
		return nil, fmt.Errorf("%w: rename sheet: %v", ErrRenderFailed, err)
	}

	if err := r.fillReportSheet(file, report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	if err := r.fillSummarySheet(file, report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: write workbook: %v", ErrRenderFailed, err)
	}

	r.logger.Debug("Workbook rendered",
		zap.Int("row_count", len(report.Rows)),
		zap.Int("bytes", buf.Len()))

	return buf.Bytes(), nil
}

// fillReportSheet writes header, one row per day and a total row
func (r *XLSXRenderer) fillReportSheet(file *excelize.File, report entity.Report) error {
	sheet := r.labels.ReportSheet

	for i, caption := range r.labels.Header() {
		if err := setCell(file, sheet, i+1, headerRow, caption); err != nil {
			return err
		}
	}

	row := firstDataRow
	for _, expense := range report.Rows {
		if err := setCell(file, sheet, 1, row, expense.Date.Display()); err != nil {
			return err
		}
		if err := setCell(file, sheet, 2, row, r.labels.DayType(expense.Type)); err != nil {
			return err
		}
		for i, c := range entity.AllCategories {
			if err := setCell(file, sheet, firstCostCol+i, row, expense.Cost(c).InexactFloat64()); err != nil {
				return err
			}
		}
		if err := setCell(file, sheet, totalCol, row, expense.Total.InexactFloat64()); err != nil {
			return err
		}
		row++
	}

	// total row
	if err := setCell(file, sheet, 1, row, r.labels.PeriodTotal); err != nil {
		return err
	}
	for i, c := range entity.AllCategories {
		if err := setCell(file, sheet, firstCostCol+i, row, report.Summary.Get(c).InexactFloat64()); err != nil {
			return err
		}
	}
	if err := setCell(file, sheet, totalCol, row, report.GrandTotal.InexactFloat64()); err != nil {
		return err
	}

	return r.applyNumberFormat(file, sheet, firstCostCol, firstDataRow, totalCol, row)
}

// fillSummarySheet writes the per-category totals and a column chart over them
func (r *XLSXRenderer) fillSummarySheet(file *excelize.File, report entity.Report) error {
	sheet := r.labels.SummarySheet
	if _, err := file.NewSheet(sheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	if err := setCell(file, sheet, 1, headerRow, r.labels.CategoryHead); err != nil {
		return err
	}
	if err := setCell(file, sheet, 2, headerRow, r.labels.TotalHeader); err != nil {
		return err
	}

	row := summaryRow
	for _, c := range entity.AllCategories {
		if err := setCell(file, sheet, 1, row, r.labels.CategoryName(c)); err != nil {
			return err
		}
		if err := setCell(file, sheet, 2, row, report.Summary.Get(c).InexactFloat64()); err != nil {
			return err
		}
		row++
	}
	lastRow := row - 1

	if err := r.applyNumberFormat(file, sheet, 2, summaryRow, 2, lastRow); err != nil {
		return err
	}

	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("'%s'!$B$%d", sheet, headerRow),
				Categories: fmt.Sprintf("'%s'!$A$%d:$A$%d", sheet, summaryRow, lastRow),
				Values:     fmt.Sprintf("'%s'!$B$%d:$B$%d", sheet, summaryRow, lastRow),
			},
		},
		Title: []excelize.RichTextRun{{Text: r.labels.SummaryTitle}},
	}
	if err := file.AddChart(sheet, chartAnchor, chart); err != nil {
		return fmt.Errorf("add summary chart: %w", err)
	}

	return nil
}

func (r *XLSXRenderer) applyNumberFormat(file *excelize.File, sheet string, fromCol, fromRow, toCol, toRow int) error {
	style, err := file.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecs})
	if err != nil {
		return fmt.Errorf("create number style: %w", err)
	}
	from, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		return err
	}
	if err := file.SetCellStyle(sheet, from, to, style); err != nil {
		return fmt.Errorf("set number style %s:%s: %w", from, to, err)
	}
	return nil
}

func setCell(file *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := file.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
	}
	return nil
}
