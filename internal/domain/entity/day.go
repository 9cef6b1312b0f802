package entity

import "fmt"

// DayType controls which lunch and dinner rates apply to a day
type DayType int

const (
	DayTypeWeekday DayType = iota
	DayTypeSaturday
	DayTypeSunday
	DayTypeHolidayWeekday
	DayTypeHolidayWeekend
)

var dayTypeNames = map[DayType]string{
	DayTypeWeekday:        "Weekday",
	DayTypeSaturday:       "Saturday",
	DayTypeSunday:         "Sunday",
	DayTypeHolidayWeekday: "HolidayWeekday",
	DayTypeHolidayWeekend: "HolidayWeekend",
}

// AllDayTypes lists every day type in declaration order
var AllDayTypes = []DayType{
	DayTypeWeekday,
	DayTypeSaturday,
	DayTypeSunday,
	DayTypeHolidayWeekday,
	DayTypeHolidayWeekend,
}

func (t DayType) String() string {
	if name, ok := dayTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DayType(%d)", int(t))
}

// IsHoliday reports whether t is one of the holiday variants
func (t DayType) IsHoliday() bool {
	return t == DayTypeHolidayWeekday || t == DayTypeHolidayWeekend
}

// IsWeekend reports whether t falls on a Saturday or Sunday
func (t DayType) IsWeekend() bool {
	return t == DayTypeSaturday || t == DayTypeSunday || t == DayTypeHolidayWeekend
}

// MarshalText implements encoding.TextMarshaler
func (t DayType) MarshalText() ([]byte, error) {
	if _, ok := dayTypeNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDayType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *DayType) UnmarshalText(text []byte) error {
	for dt, name := range dayTypeNames {
		if name == string(text) {
			*t = dt
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownDayType, string(text))
}

// LunchOption is the lunch checkbox a form offers for a given day type
type LunchOption string

const (
	LunchOptionNone           LunchOption = "NONE"
	LunchOptionRegular        LunchOption = "REGULAR"
	LunchOptionHolidayWeekday LunchOption = "HOLIDAY_WEEKDAY"
	LunchOptionHolidayWeekend LunchOption = "HOLIDAY_WEEKEND"
)

// DayFlags are the expense checkboxes selected for one day
type DayFlags struct {
	Breakfast    bool `json:"breakfast"`
	LunchRegular bool `json:"lunch_regular"`
	LunchHoliday bool `json:"lunch_holiday"`
	Dinner       bool `json:"dinner"`
	Minibar      bool `json:"minibar"`
	Laundry      bool `json:"laundry"`
}

// DayRecord is one classified calendar day of a trip.
// Only TransportDay changes after creation, when transport dates are registered.
type DayRecord struct {
	Date         Date     `json:"date"`
	Type         DayType  `json:"type"`
	Flags        DayFlags `json:"flags"`
	TransportDay bool     `json:"transport_day"`
}
