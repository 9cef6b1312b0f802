package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

// Aggregate sums rows into a report. An empty input yields zero totals
// with every category present in the summary.
func Aggregate(rows []entity.ExpenseRow) entity.Report {
	report := entity.Report{
		Rows:       make([]entity.ExpenseRow, 0, len(rows)),
		GrandTotal: decimal.Zero,
		Summary:    make(entity.CategorySummary, len(entity.AllCategories)),
	}
	for _, c := range entity.AllCategories {
		report.Summary[c] = decimal.Zero
	}

	for _, row := range rows {
		report.Rows = append(report.Rows, row)
		report.GrandTotal = report.GrandTotal.Add(row.Total)
		for _, c := range entity.AllCategories {
			report.Summary[c] = report.Summary[c].Add(row.Cost(c))
		}
	}

	return report
}
