package service

import (
	"github.com/shopspring/decimal"

	"github.com/garyjia/trip-expense/internal/domain/entity"
)

// RateOverrides holds the rates a request changes; nil fields keep the configured value
type RateOverrides struct {
	Breakfast           *decimal.Decimal `json:"breakfast,omitempty"`
	LunchRegular        *decimal.Decimal `json:"lunch_regular,omitempty"`
	LunchHolidayWeekday *decimal.Decimal `json:"lunch_holiday_weekday,omitempty"`
	LunchHolidayWeekend *decimal.Decimal `json:"lunch_holiday_weekend,omitempty"`
	DinnerRegular       *decimal.Decimal `json:"dinner_regular,omitempty"`
	DinnerHoliday       *decimal.Decimal `json:"dinner_holiday,omitempty"`
	Minibar             *decimal.Decimal `json:"minibar,omitempty"`
	Laundry             *decimal.Decimal `json:"laundry,omitempty"`
}

// Apply returns base with every set field replaced
func (o *RateOverrides) Apply(base entity.RateTable) entity.RateTable {
	if o == nil {
		return base
	}
	override(&base.Breakfast, o.Breakfast)
	override(&base.LunchRegular, o.LunchRegular)
	override(&base.LunchHolidayWeekday, o.LunchHolidayWeekday)
	override(&base.LunchHolidayWeekend, o.LunchHolidayWeekend)
	override(&base.DinnerRegular, o.DinnerRegular)
	override(&base.DinnerHoliday, o.DinnerHoliday)
	override(&base.Minibar, o.Minibar)
	override(&base.Laundry, o.Laundry)
	return base
}

// TransportOverrides holds the transport parameters a request changes
type TransportOverrides struct {
	Mode           *entity.TransportMode `json:"mode,omitempty"`
	DistanceKm     *decimal.Decimal      `json:"distance_km,omitempty"`
	FuelEfficiency *decimal.Decimal      `json:"fuel_efficiency,omitempty"`
	FuelPrice      *decimal.Decimal      `json:"fuel_price,omitempty"`
	FlatFee        *decimal.Decimal      `json:"flat_fee,omitempty"`
}

// Apply returns base with every set field replaced
func (o *TransportOverrides) Apply(base entity.TransportConfig) entity.TransportConfig {
	if o == nil {
		return base
	}
	if o.Mode != nil {
		base.Mode = *o.Mode
	}
	override(&base.DistanceKm, o.DistanceKm)
	override(&base.FuelEfficiency, o.FuelEfficiency)
	override(&base.FuelPrice, o.FuelPrice)
	override(&base.FlatFee, o.FlatFee)
	return base
}

func override(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}
