package report

import (
	"golang.org/x/text/language"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

// CategoryLabel is the display name of an expense category
type CategoryLabel struct {
	Icon string
	Name string
}

// Labels holds every user-facing caption of a report
type Labels struct {
	Categories   map[entity.Category]CategoryLabel
	DayTypes     map[entity.DayType]string
	DateHeader   string
	TypeHeader   string
	TotalHeader  string
	PeriodTotal  string
	ReportTitle  string
	SummaryTitle string
	CategoryHead string
	ReportSheet  string
	SummarySheet string
}

// PortugueseLabels are the Brazilian Portuguese captions
var PortugueseLabels = Labels{
	Categories: map[entity.Category]CategoryLabel{
		entity.CategoryBreakfast: {Icon: "☕", Name: "Café da manhã"},
		entity.CategoryLunch:     {Icon: "🍽️", Name: "Almoço"},
		entity.CategoryDinner:    {Icon: "🌙", Name: "Jantar"},
		entity.CategoryMinibar:   {Icon: "🧊", Name: "Frigobar"},
		entity.CategoryLaundry:   {Icon: "👕", Name: "Lavanderia"},
		entity.CategoryTransport: {Icon: "🚗", Name: "Deslocamento"},
	},
	DayTypes: map[entity.DayType]string{
		entity.DayTypeWeekday:        "Dia útil",
		entity.DayTypeSaturday:       "Sábado",
		entity.DayTypeSunday:         "Domingo",
		entity.DayTypeHolidayWeekday: "Feriado dia útil",
		entity.DayTypeHolidayWeekend: "Feriado final de semana",
	},
	DateHeader:   "Dia",
	TypeHeader:   "Tipo",
	TotalHeader:  "Total",
	PeriodTotal:  "Total do Período",
	ReportTitle:  "Relatório Completo de Gastos",
	SummaryTitle: "Resumo por Categoria",
	CategoryHead: "Categoria",
	ReportSheet:  "Relatório",
	SummarySheet: "Resumo",
}

// EnglishLabels are used for every non-Portuguese locale
var EnglishLabels = Labels{
	Categories: map[entity.Category]CategoryLabel{
		entity.CategoryBreakfast: {Icon: "☕", Name: "Breakfast"},
		entity.CategoryLunch:     {Icon: "🍽️", Name: "Lunch"},
		entity.CategoryDinner:    {Icon: "🌙", Name: "Dinner"},
		entity.CategoryMinibar:   {Icon: "🧊", Name: "Minibar"},
		entity.CategoryLaundry:   {Icon: "👕", Name: "Laundry"},
		entity.CategoryTransport: {Icon: "🚗", Name: "Transport"},
	},
	DayTypes: map[entity.DayType]string{
		entity.DayTypeWeekday:        "Weekday",
		entity.DayTypeSaturday:       "Saturday",
		entity.DayTypeSunday:         "Sunday",
		entity.DayTypeHolidayWeekday: "Holiday (weekday)",
		entity.DayTypeHolidayWeekend: "Holiday (weekend)",
	},
	DateHeader:   "Date",
	TypeHeader:   "Type",
	TotalHeader:  "Total",
	PeriodTotal:  "Trip total",
	ReportTitle:  "Trip Expense Report",
	SummaryTitle: "Summary by Category",
	CategoryHead: "Category",
	ReportSheet:  "Report",
	SummarySheet: "Summary",
}

// LabelsFor picks the label set matching tag's base language
func LabelsFor(tag language.Tag) Labels {
	base, _ := tag.Base()
	if base.String() == "pt" {
		return PortugueseLabels
	}
	return EnglishLabels
}

// Category returns "icon name"
func (l Labels) Category(c entity.Category) string {
	label := l.Categories[c]
	if label.Icon == "" {
		return l.CategoryName(c)
	}
	return label.Icon + " " + l.CategoryName(c)
}

// CategoryName returns the plain name, falling back to the category key
func (l Labels) CategoryName(c entity.Category) string {
	if label, ok := l.Categories[c]; ok && label.Name != "" {
		return label.Name
	}
	return string(c)
}

// DayType returns the display name of a day type
func (l Labels) DayType(t entity.DayType) string {
	if name, ok := l.DayTypes[t]; ok {
		return name
	}
	return t.String()
}

// Header returns the nine column captions shared by CSV and XLSX
func (l Labels) Header() []string {
	header := make([]string, 0, len(entity.AllCategories)+3)
	header = append(header, l.DateHeader, l.TypeHeader)
	for _, c := range entity.AllCategories {
		header = append(header, l.CategoryName(c))
	}
	return append(header, l.TotalHeader)
}
