// Package pricing turns classified trip days into priced expense rows.
// Every function here is pure: no I/O, no logging, no shared state.
package pricing

import (
	"time"

	"github.com/garyjia/trip-expense/internal/domain/entity"
	"github.com/garyjia/trip-expense/internal/domain/holiday"
)

// IsWeekend reports whether date is a Saturday or Sunday
func IsWeekend(date entity.Date) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Classify tags a day. The holiday indicator takes precedence in naming:
// a weekend holiday is HolidayWeekend, never Saturday or Sunday.
func Classify(date entity.Date, isWeekend, isHoliday bool) entity.DayType {
	switch {
	case isHoliday && isWeekend:
		return entity.DayTypeHolidayWeekend
	case isHoliday:
		return entity.DayTypeHolidayWeekday
	case isWeekend && date.Weekday() == time.Saturday:
		return entity.DayTypeSaturday
	case isWeekend:
		return entity.DayTypeSunday
	default:
		return entity.DayTypeWeekday
	}
}

// ClassifyDate derives the weekend indicator and asks policy for the holiday one
func ClassifyDate(date entity.Date, policy holiday.Policy, declaredHoliday bool) entity.DayType {
	return Classify(date, IsWeekend(date), policy.IsHoliday(date, declaredHoliday))
}

// OfferedLunch returns the lunch checkbox a form shows for a day type.
// Plain weekdays offer none; the pricer still honours any flag it is given.
func OfferedLunch(t entity.DayType) entity.LunchOption {
	switch {
	case t.IsHoliday() && t.IsWeekend():
		return entity.LunchOptionHolidayWeekend
	case t.IsHoliday():
		return entity.LunchOptionHolidayWeekday
	case t.IsWeekend():
		return entity.LunchOptionRegular
	default:
		return entity.LunchOptionNone
	}
}
