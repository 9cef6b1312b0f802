package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

// Price computes the cost row of one day.
// Inputs are assumed validated; with non-negative rates and fee the total is non-negative.
func Price(day entity.DayRecord, rates entity.RateTable, transportFee decimal.Decimal, transportDates entity.TransportDates) entity.ExpenseRow {
	row := entity.ExpenseRow{
		Date:      day.Date,
		Type:      day.Type,
		Breakfast: flagged(day.Flags.Breakfast, rates.Breakfast),
		Lunch:     lunchCost(day, rates),
		Dinner:    dinnerCost(day, rates),
		Minibar:   flagged(day.Flags.Minibar, rates.Minibar),
		Laundry:   flagged(day.Flags.Laundry, rates.Laundry),
		Transport: flagged(transportDates.Has(day.Date), transportFee),
	}
	row.Total = row.CategorySum()
	return row
}

// PriceAll prices days in order
func PriceAll(days []entity.DayRecord, rates entity.RateTable, transportFee decimal.Decimal, transportDates entity.TransportDates) []entity.ExpenseRow {
	rows := make([]entity.ExpenseRow, 0, len(days))
	for _, day := range days {
		rows = append(rows, Price(day, rates, transportFee, transportDates))
	}
	return rows
}

// lunchCost: the regular flag wins when both are set; weekday and plain
// weekend lunches share the regular rate.
func lunchCost(day entity.DayRecord, rates entity.RateTable) decimal.Decimal {
	switch {
	case day.Flags.LunchRegular:
		return rates.LunchRegular
	case day.Flags.LunchHoliday && day.Type == entity.DayTypeHolidayWeekend:
		return rates.LunchHolidayWeekend
	case day.Flags.LunchHoliday:
		return rates.LunchHolidayWeekday
	default:
		return decimal.Zero
	}
}

func dinnerCost(day entity.DayRecord, rates entity.RateTable) decimal.Decimal {
	if !day.Flags.Dinner {
		return decimal.Zero
	}
	if day.Type.IsHoliday() {
		return rates.DinnerHoliday
	}
	return rates.DinnerRegular
}

func flagged(set bool, amount decimal.Decimal) decimal.Decimal {
	if set {
		return amount
	}
	return decimal.Zero
}
