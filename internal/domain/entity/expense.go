package entity

import (
	"github.com/shopspring/decimal"
)

// Category is one of the six priced expense columns
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategoryMinibar   Category = "minibar"
	CategoryLaundry   Category = "laundry"
	CategoryTransport Category = "transport"
)

// AllCategories is the fixed order used by every report
var AllCategories = []Category{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategoryMinibar,
	CategoryLaundry,
	CategoryTransport,
}

// ExpenseRow is the priced breakdown of one day. Total is always the sum of the six costs.
type ExpenseRow struct {
	Date      Date            `json:"date"`
	Type      DayType         `json:"type"`
	Breakfast decimal.Decimal `json:"breakfast"`
	Lunch     decimal.Decimal `json:"lunch"`
	Dinner    decimal.Decimal `json:"dinner"`
	Minibar   decimal.Decimal `json:"minibar"`
	Laundry   decimal.Decimal `json:"laundry"`
	Transport decimal.Decimal `json:"transport"`
	Total     decimal.Decimal `json:"total"`
}

// Cost returns the amount of a single category
func (r ExpenseRow) Cost(c Category) decimal.Decimal {
	switch c {
	case CategoryBreakfast:
		return r.Breakfast
	case CategoryLunch:
		return r.Lunch
	case CategoryDinner:
		return r.Dinner
	case CategoryMinibar:
		return r.Minibar
	case CategoryLaundry:
		return r.Laundry
	case CategoryTransport:
		return r.Transport
	}
	return decimal.Zero
}

// CategorySum adds up the six category costs
func (r ExpenseRow) CategorySum() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range AllCategories {
		sum = sum.Add(r.Cost(c))
	}
	return sum
}

// CategorySummary maps each category to its total across a trip
type CategorySummary map[Category]decimal.Decimal

// Get returns the total for c, zero when absent
func (s CategorySummary) Get(c Category) decimal.Decimal {
	if v, ok := s[c]; ok {
		return v
	}
	return decimal.Zero
}

// Total adds up every category
func (s CategorySummary) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range AllCategories {
		sum = sum.Add(s.Get(c))
	}
	return sum
}

// Report is the full trip: ordered rows, grand total and per-category summary
type Report struct {
	Rows       []ExpenseRow    `json:"rows"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Summary    CategorySummary `json:"summary"`
}
