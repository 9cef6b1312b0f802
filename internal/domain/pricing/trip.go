package pricing

import (
	"fmt"

	"github.com/garyjia/trip-expense/internal/domain/entity"
	"github.com/garyjia/trip-expense/internal/domain/holiday"
)

// DayInput is what the form collector gathered for one date
type DayInput struct {
	Flags           entity.DayFlags
	DeclaredHoliday bool
}

// TripDays returns every date of the inclusive range start..end
func TripDays(start, end entity.Date) ([]entity.Date, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s is before %s", ErrInvalidDateRange, end, start)
	}
	dates := make([]entity.Date, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates, nil
}

// BuildTrip creates one DayRecord per date of the range. Dates without
// input get no flags; inputs for dates outside the range are ignored.
func BuildTrip(start, end entity.Date, inputs map[entity.Date]DayInput, policy holiday.Policy) ([]entity.DayRecord, error) {
	dates, err := TripDays(start, end)
	if err != nil {
		return nil, err
	}

	days := make([]entity.DayRecord, 0, len(dates))
	for _, date := range dates {
		in := inputs[date]
		days = append(days, entity.DayRecord{
			Date:  date,
			Type:  ClassifyDate(date, policy, in.DeclaredHoliday),
			Flags: in.Flags,
		})
	}
	return days, nil
}

// RegisterTransportDates marks matching days as transport days and returns
// the registered dates that fall outside the trip, in input order.
func RegisterTransportDates(days []entity.DayRecord, dates []entity.Date) []entity.Date {
	set := entity.NewTransportDates(dates...)
	inTrip := make(map[entity.Date]struct{}, len(days))

	for i := range days {
		inTrip[days[i].Date] = struct{}{}
		days[i].TransportDay = set.Has(days[i].Date)
	}

	unmatched := make([]entity.Date, 0)
	seen := make(map[entity.Date]struct{}, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		if _, ok := inTrip[d]; !ok {
			unmatched = append(unmatched, d)
		}
	}
	return unmatched
}
