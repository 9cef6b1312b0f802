package report

import (
	"strings"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

// TextRenderer produces the descriptive report: one line per day listing the
// nonzero categories in fixed order, then the trip total.
type TextRenderer struct {
	formatter *Formatter
	labels    Labels
	icons     bool
}

// NewTextRenderer creates a renderer that prefixes categories with their icon
func NewTextRenderer(formatter *Formatter, labels Labels) *TextRenderer {
	return &TextRenderer{formatter: formatter, labels: labels, icons: true}
}

// newPlainTextRenderer omits icons, for targets without emoji glyphs
func newPlainTextRenderer(formatter *Formatter, labels Labels) *TextRenderer {
	return &TextRenderer{formatter: formatter, labels: labels}
}

// Line renders a single row, e.g. "10/03/2024 – + ☕ Café da manhã R$ 20,00 = R$ 20,00".
// A row without costs still yields "10/03/2024 – = R$ 0,00".
func (r *TextRenderer) Line(row entity.ExpenseRow) string {
	parts := []string{row.Date.Display() + " –"}
	for _, c := range entity.AllCategories {
		cost := row.Cost(c)
		if !cost.Round(2).IsPositive() {
			continue
		}
		parts = append(parts, "+ "+r.categoryLabel(c)+" "+r.formatter.Money(cost))
	}
	parts = append(parts, "= "+r.formatter.Money(row.Total))
	return strings.Join(parts, " ")
}

// Lines renders every row in order
func (r *TextRenderer) Lines(report entity.Report) []string {
	lines := make([]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		lines = append(lines, r.Line(row))
	}
	return lines
}

// TotalLine renders "<caption>: <grand total>"
func (r *TextRenderer) TotalLine(report entity.Report) string {
	return r.labels.PeriodTotal + ": " + r.formatter.Money(report.GrandTotal)
}

// Render joins the day lines, a blank line and the total line
func (r *TextRenderer) Render(report entity.Report) string {
	lines := r.Lines(report)
	lines = append(lines, "", r.TotalLine(report))
	return strings.Join(lines, "\n")
}

func (r *TextRenderer) categoryLabel(c entity.Category) string {
	if r.icons {
		return r.labels.Category(c)
	}
	return r.labels.CategoryName(c)
}
