package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date layouts
const (
	// ISODateLayout is the wire format used in JSON requests and responses
	ISODateLayout = "2006-01-02"

	// DisplayDateLayout is the day/month/year format used in exported reports
	DisplayDateLayout = "02/01/2006"
)

// Date is a calendar day without time-of-day or zone.
// It is comparable and can be used as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normalizes year/month/day into a Date (e.g. Feb 30 becomes Mar 1 or 2)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate accepts either ISO (2006-01-02) or display (02/01/2006) dates
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{ISODateLayout, DisplayDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// MustParseDate is ParseDate for literals; it panics on malformed input
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n days later (earlier if n is negative)
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is strictly after other
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// DaysUntil returns the number of days from d to other (negative if other is earlier)
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// Format formats the date with a time layout
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// String returns the ISO representation
func (d Date) String() string {
	return d.Format(ISODateLayout)
}

// Display returns the day/month/year representation used in reports
func (d Date) Display() string {
	return d.Format(DisplayDateLayout)
}

// MarshalJSON encodes the date as an ISO string
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes an ISO or display date string
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, string(data))
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TransportDates is the set of dates on which the transport fee is charged
type TransportDates map[Date]struct{}

// NewTransportDates builds a set from a list; duplicates collapse
func NewTransportDates(dates ...Date) TransportDates {
	set := make(TransportDates, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// Has reports membership
func (s TransportDates) Has(d Date) bool {
	_, ok := s[d]
	return ok
}
