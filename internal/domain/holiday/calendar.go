package holiday

import (
	"fmt"
	"strings"
	"time"

	"github.com/rickar/cal/v2"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

// Fixed-date national holidays of Brazil
var (
	NewYear = &cal.Holiday{
		Name:  "Confraternização Universal",
		Type:  cal.ObservancePublic,
		Month: time.January,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	Tiradentes = &cal.Holiday{
		Name:  "Tiradentes",
		Type:  cal.ObservancePublic,
		Month: time.April,
		Day:   21,
		Func:  cal.CalcDayOfMonth,
	}
	LabourDay = &cal.Holiday{
		Name:  "Dia do Trabalho",
		Type:  cal.ObservancePublic,
		Month: time.May,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	IndependenceDay = &cal.Holiday{
		Name:  "Independência do Brasil",
		Type:  cal.ObservancePublic,
		Month: time.September,
		Day:   7,
		Func:  cal.CalcDayOfMonth,
	}
	OurLadyAparecida = &cal.Holiday{
		Name:  "Nossa Senhora Aparecida",
		Type:  cal.ObservancePublic,
		Month: time.October,
		Day:   12,
		Func:  cal.CalcDayOfMonth,
	}
	AllSoulsDay = &cal.Holiday{
		Name:  "Finados",
		Type:  cal.ObservancePublic,
		Month: time.November,
		Day:   2,
		Func:  cal.CalcDayOfMonth,
	}
	RepublicDay = &cal.Holiday{
		Name:  "Proclamação da República",
		Type:  cal.ObservancePublic,
		Month: time.November,
		Day:   15,
		Func:  cal.CalcDayOfMonth,
	}
	BlackConsciousnessDay = &cal.Holiday{
		Name:      "Dia Nacional de Zumbi e da Consciência Negra",
		Type:      cal.ObservancePublic,
		Month:     time.November,
		Day:       20,
		StartYear: 2024,
		Func:      cal.CalcDayOfMonth,
	}
	Christmas = &cal.Holiday{
		Name:  "Natal",
		Type:  cal.ObservancePublic,
		Month: time.December,
		Day:   25,
		Func:  cal.CalcDayOfMonth,
	}

	// NationalHolidays is the built-in fixed list used by the calendar policy
	NationalHolidays = []*cal.Holiday{
		NewYear,
		Tiradentes,
		LabourDay,
		IndependenceDay,
		OurLadyAparecida,
		AllSoulsDay,
		RepublicDay,
		BlackConsciousnessDay,
		Christmas,
	}
)

// CalendarPolicy looks dates up in a fixed holiday calendar
type CalendarPolicy struct {
	calendar *cal.BusinessCalendar
}

// NewCalendarPolicy creates a policy over the national holidays plus any
// extra fixed dates given as "DD/MM"
func NewCalendarPolicy(extraHolidays ...string) (*CalendarPolicy, error) {
	c := cal.NewBusinessCalendar()
	c.Name = "Brazilian national holidays"
	c.AddHoliday(NationalHolidays...)

	for _, raw := range extraHolidays {
		h, err := parseExtraHoliday(raw)
		if err != nil {
			return nil, err
		}
		c.AddHoliday(h)
	}

	return &CalendarPolicy{calendar: c}, nil
}

// IsHoliday ignores the declaration and checks the calendar
func (p *CalendarPolicy) IsHoliday(date entity.Date, _ bool) bool {
	actual, _, _ := p.calendar.IsHoliday(date.Time())
	return actual
}

// HolidayName returns the holiday's name, or "" when date is not a holiday
func (p *CalendarPolicy) HolidayName(date entity.Date) string {
	actual, _, h := p.calendar.IsHoliday(date.Time())
	if !actual || h == nil {
		return ""
	}
	return h.Name
}

// Name returns PolicyCalendar
func (p *CalendarPolicy) Name() PolicyName {
	return PolicyCalendar
}

func parseExtraHoliday(raw string) (*cal.Holiday, error) {
	t, err := time.Parse("02/01", strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHoliday, raw)
	}
	return &cal.Holiday{
		Name:  "Feriado " + t.Format("02/01"),
		Type:  cal.ObservancePublic,
		Month: t.Month(),
		Day:   t.Day(),
		Func:  cal.CalcDayOfMonth,
	}, nil
}
