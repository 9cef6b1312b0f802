package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

func TestDeclaredPolicy(t *testing.T) {
	p := NewDeclaredPolicy()
	christmas := entity.NewDate(2024, time.December, 25)

	assert.True(t, p.IsHoliday(entity.NewDate(2024, time.March, 12), true))
	assert.False(t, p.IsHoliday(christmas, false), "declared policy never consults the calendar")
	assert.Equal(t, PolicyDeclared, p.Name())
	assert.Empty(t, p.HolidayName(christmas))
}

func TestCalendarPolicy(t *testing.T) {
	p, err := NewCalendarPolicy()
	require.NoError(t, err)

	tests := []struct {
		name     string
		date     entity.Date
		declared bool
		want     bool
	}{
		{name: "new year", date: entity.NewDate(2025, time.January, 1), want: true},
		{name: "tiradentes", date: entity.NewDate(2024, time.April, 21), want: true},
		{name: "independence", date: entity.NewDate(2024, time.September, 7), want: true},
		{name: "christmas", date: entity.NewDate(2024, time.December, 25), want: true},
		{name: "ordinary day", date: entity.NewDate(2024, time.March, 12), want: false},
		{name: "declaration ignored", date: entity.NewDate(2024, time.March, 12), declared: true, want: false},
		{name: "black consciousness from 2024", date: entity.NewDate(2024, time.November, 20), want: true},
		{name: "black consciousness before 2024", date: entity.NewDate(2023, time.November, 20), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsHoliday(tt.date, tt.declared))
		})
	}

	assert.Equal(t, "Natal", p.HolidayName(entity.NewDate(2024, time.December, 25)))
	assert.Empty(t, p.HolidayName(entity.NewDate(2024, time.December, 26)))
	assert.Equal(t, PolicyCalendar, p.Name())
}

func TestCalendarPolicy_ExtraHolidays(t *testing.T) {
	p, err := NewCalendarPolicy("25/01", " 09/07 ")
	require.NoError(t, err)

	assert.True(t, p.IsHoliday(entity.NewDate(2024, time.January, 25), false))
	assert.True(t, p.IsHoliday(entity.NewDate(2024, time.July, 9), false))

	_, err = NewCalendarPolicy("31/02")
	assert.ErrorIs(t, err, ErrInvalidHoliday)
}

func TestNewPolicy(t *testing.T) {
	p, err := NewPolicy("declared", nil)
	require.NoError(t, err)
	assert.Equal(t, PolicyDeclared, p.Name())

	p, err = NewPolicy(" Calendar ", []string{"25/01"})
	require.NoError(t, err)
	assert.Equal(t, PolicyCalendar, p.Name())

	_, err = NewPolicy("both", nil)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}
