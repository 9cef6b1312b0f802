package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

// CSVRenderer writes one record per row with raw decimal amounts
type CSVRenderer struct {
	labels Labels
}

// NewCSVRenderer creates a CSVRenderer
func NewCSVRenderer(labels Labels) *CSVRenderer {
	return &CSVRenderer{labels: labels}
}

// Render returns the CSV document, header included
func (r *CSVRenderer) Render(report entity.Report) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write(r.labels.Header()); err != nil {
		return nil, fmt.Errorf("%w: csv header: %v", ErrRenderFailed, err)
	}

	for _, row := range report.Rows {
		record := make([]string, 0, len(entity.AllCategories)+3)
		record = append(record, row.Date.Display(), r.labels.DayType(row.Type))
		for _, c := range entity.AllCategories {
			record = append(record, row.Cost(c).String())
		}
		record = append(record, row.Total.String())

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("%w: csv row %s: %v", ErrRenderFailed, row.Date, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("%w: csv flush: %v", ErrRenderFailed, err)
	}

	return b.Bytes(), nil
}
